// Package config decodes and validates the merge engine's configuration
// document: the ordered list of inputs and their per-input directives the
// driver feeds to merge.Merge.
//
// Field names and shape are grounded on rperez95/openapi-merge's
// internal/config package (found in the retrieved corpus) — pathModification
// .stripStart/.prepend, operationSelection.includeTags/.excludeTags,
// dispute.prefix, description.append/.title all match that package's
// InputConfig exactly, adjusted to this tool's narrower scope: only
// inputFile/inputURL, pathModification, operationSelection, description, and
// dispute are carried over — the rperez95 config's additional knobs like
// includeExtraParameters and top-level securitySchemes have no counterpart
// here.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/erraggy/openapi-merge/merrors"
)

// Config is the top-level configuration document.
type Config struct {
	Inputs []InputConfig `json:"inputs"`
	Output string        `json:"output"`

	// OpenAPIVersion overrides the merged document's openapi field; if
	// empty the Output Assembler uses the first input's version.
	OpenAPIVersion string `json:"openapiVersion,omitempty"`
}

// InputConfig is one input's source and per-input directives.
type InputConfig struct {
	InputFile string `json:"inputFile,omitempty"`
	InputURL  string `json:"inputURL,omitempty"`

	PathModification   PathModificationConfig   `json:"pathModification,omitempty"`
	OperationSelection OperationSelectionConfig `json:"operationSelection,omitempty"`
	Description        DescriptionConfig        `json:"description,omitempty"`
	Dispute            *DisputeConfig           `json:"dispute,omitempty"`
}

// PathModificationConfig is the Path Transformer's per-input directive.
type PathModificationConfig struct {
	StripStart string `json:"stripStart,omitempty"`
	Prepend    string `json:"prepend,omitempty"`
}

// OperationSelectionConfig is the Path Transformer's tag-based operation
// filter.
type OperationSelectionConfig struct {
	IncludeTags []string `json:"includeTags,omitempty"`
	ExcludeTags []string `json:"excludeTags,omitempty"`
}

// DescriptionConfig is the Description Joiner's per-input directive.
type DescriptionConfig struct {
	Append bool   `json:"append,omitempty"`
	Title  string `json:"title,omitempty"`
}

// DisputeConfig is the Component Namer's per-input rename policy. Exactly
// one of Prefix/Suffix may be set.
type DisputeConfig struct {
	Prefix      string `json:"prefix,omitempty"`
	Suffix      string `json:"suffix,omitempty"`
	AlwaysApply bool   `json:"alwaysApply,omitempty"`
}

// Load reads and decodes the configuration document at path, then validates
// it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &merrors.ConfigInvalidError{Message: fmt.Sprintf("reading %s", path), Cause: err}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &merrors.ConfigInvalidError{Message: fmt.Sprintf("parsing %s", path), Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration's structural requirements: a non-empty
// input list, exactly one source per input, and exactly one dispute
// direction when a dispute policy is configured.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return &merrors.ConfigInvalidError{Field: "inputs", Message: "at least one input is required"}
	}

	for i, input := range c.Inputs {
		if err := input.validate(i); err != nil {
			return err
		}
	}
	return nil
}

func (ic *InputConfig) validate(index int) error {
	field := fmt.Sprintf("inputs[%d]", index)

	hasFile, hasURL := ic.InputFile != "", ic.InputURL != ""
	if hasFile == hasURL {
		return &merrors.ConfigInvalidError{
			Field:   field,
			Message: "exactly one of inputFile or inputURL is required",
		}
	}

	if ic.Dispute != nil {
		hasPrefix, hasSuffix := ic.Dispute.Prefix != "", ic.Dispute.Suffix != ""
		if hasPrefix == hasSuffix {
			return &merrors.ConfigInvalidError{
				Field:   field + ".dispute",
				Message: "exactly one of prefix or suffix is required",
			}
		}
	}
	return nil
}
