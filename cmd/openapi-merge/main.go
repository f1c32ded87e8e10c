// Command openapi-merge reads a merge configuration document, loads its
// inputs, merges them into a single OpenAPI 3.0 document, and writes the
// result. Stdout carries only the merged document (or nothing, when writing
// to a file) and the --version output; every diagnostic goes to stderr, and a non-zero exit code
// follows any error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	openapimerge "github.com/erraggy/openapi-merge"
	"github.com/erraggy/openapi-merge/config"
	"github.com/erraggy/openapi-merge/internal/cliutil"
	"github.com/erraggy/openapi-merge/internal/loader"
	"github.com/erraggy/openapi-merge/merge"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		cliutil.Writef(os.Stderr, "openapi-merge: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("openapi-merge", flag.ContinueOnError)
	configPath := fs.String("config", "./openapi-merge.json", "path to the merge configuration document")
	quiet := fs.Bool("q", false, "suppress diagnostic messages (for pipelining)")
	fs.BoolVar(quiet, "quiet", false, "suppress diagnostic messages (for pipelining)")
	showVersion := fs.Bool("version", false, "print version information and exit")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: openapi-merge [--config <path>]\n\n")
		cliutil.Writef(fs.Output(), "Merge a configured list of OpenAPI 3.0 documents into one.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		cliutil.Writef(os.Stdout, "%s\n", openapimerge.BuildInfo())
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	docs, err := loader.LoadAll(ctx, cfg.Inputs)
	if err != nil {
		return err
	}

	inputs := make([]merge.Input, len(docs))
	for i, doc := range docs {
		inputs[i] = merge.Input{Document: doc, Config: cfg.Inputs[i]}
	}

	merged, err := merge.Merge(cfg, inputs)
	if err != nil {
		return err
	}

	data, err := marshalOutput(merged, cfg.Output)
	if err != nil {
		return fmt.Errorf("marshaling merged document: %w", err)
	}

	if cfg.Output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing merged document to stdout: %w", err)
		}
		return nil
	}

	cleaned := filepath.Clean(cfg.Output)
	if err := cliutil.RejectSymlinkOutput(cleaned); err != nil {
		return err
	}
	if err := os.WriteFile(cleaned, data, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if err := os.Chmod(cleaned, 0o600); err != nil {
		return fmt.Errorf("setting output file permissions: %w", err)
	}

	if !*quiet {
		cliutil.Writef(os.Stderr, "merged %d inputs into %s\n", len(inputs), cfg.Output)
	}
	return nil
}

// marshalOutput encodes doc as YAML when output names a .yaml/.yml file (or
// names no file at all), and as JSON for any other output path.
func marshalOutput(doc any, output string) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(output))
	if output == "" || ext == ".yaml" || ext == ".yml" {
		return yaml.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}
