// Package merrors provides structured error types for the merge engine's
// nine error kinds, so callers can branch on failure category with
// errors.Is/errors.As instead of matching on message text.
package merrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	ErrConfigInvalid         = errors.New("invalid configuration")
	ErrInputUnreachable      = errors.New("input unreachable")
	ErrInputUnparseable      = errors.New("input unparseable")
	ErrPathConflict          = errors.New("path conflict")
	ErrDisputeUnresolved     = errors.New("dispute unresolved")
	ErrDisputeStillConflicts = errors.New("dispute still conflicts after rename")
	ErrDanglingReference     = errors.New("dangling reference")
	ErrIntegrityFailure      = errors.New("integrity failure")
	ErrUnsupportedVersion    = errors.New("unsupported openapi version")
)

// ConfigInvalidError reports a structurally or semantically invalid merge
// configuration (an unreadable or malformed file, missing inputs, an input
// with both or neither of inputFile/inputURL, a dispute with both or neither
// of prefix/suffix).
type ConfigInvalidError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ConfigInvalidError) Error() string {
	msg := "invalid configuration"
	if e.Field != "" {
		msg += " at " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConfigInvalidError) Unwrap() error { return e.Cause }

func (e *ConfigInvalidError) Is(target error) bool { return target == ErrConfigInvalid }

// InputUnreachableError reports a named input file or URL that could not be
// read (missing file, network failure, any response status other than 200).
type InputUnreachableError struct {
	Input string
	Cause error
}

func (e *InputUnreachableError) Error() string {
	msg := fmt.Sprintf("input unreachable: %s", e.Input)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *InputUnreachableError) Unwrap() error { return e.Cause }

func (e *InputUnreachableError) Is(target error) bool { return target == ErrInputUnreachable }

// InputUnparseableError reports an input that was read but failed to parse
// as YAML/JSON, or parsed to something that is not a valid OAS 3.0 document.
type InputUnparseableError struct {
	Input string
	Cause error
}

func (e *InputUnparseableError) Error() string {
	msg := fmt.Sprintf("input unparseable: %s", e.Input)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *InputUnparseableError) Unwrap() error { return e.Cause }

func (e *InputUnparseableError) Is(target error) bool { return target == ErrInputUnparseable }

// PathConflictError reports two inputs declaring the same path after path
// transformation. Path collisions are always fatal, even when the two
// PathItems are structurally identical.
type PathConflictError struct {
	Path       string
	InputIndex int
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("path conflict: %q already declared before input %d", e.Path, e.InputIndex)
}

func (e *PathConflictError) Is(target error) bool { return target == ErrPathConflict }

// DisputeUnresolvedError reports a component that needs a new name (its name
// is taken by a structurally different definition, or alwaysApply forces a
// rename) while the input declared neither a prefix nor a suffix, so the
// Namer has no name left to try.
type DisputeUnresolvedError struct {
	Category   string
	Name       string
	InputIndex int
}

func (e *DisputeUnresolvedError) Error() string {
	return fmt.Sprintf("dispute unresolved: %s %q from input %d has no configured rename policy", e.Category, e.Name, e.InputIndex)
}

func (e *DisputeUnresolvedError) Is(target error) bool { return target == ErrDisputeUnresolved }

// DisputeStillConflictsError reports a component whose prefix/suffix rename
// still collides with an existing name in the merged document.
type DisputeStillConflictsError struct {
	Category  string
	Original  string
	Candidate string
}

func (e *DisputeStillConflictsError) Error() string {
	return fmt.Sprintf("dispute still conflicts: renaming %s %q to %q collides with an existing definition", e.Category, e.Original, e.Candidate)
}

func (e *DisputeStillConflictsError) Is(target error) bool { return target == ErrDisputeStillConflicts }

// DanglingReferenceError reports a $ref that the rename map does not cover
// and whose target does not exist in the referencing input's own
// components.
type DanglingReferenceError struct {
	Category string
	Name     string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference: %s %q has no matching definition", e.Category, e.Name)
}

func (e *DanglingReferenceError) Is(target error) bool { return target == ErrDanglingReference }

// IntegrityFailureError reports a reference that still cannot be resolved
// against the fully merged document during the Output Assembler's final
// integrity pass, after every rewrite has been applied.
type IntegrityFailureError struct {
	Reference string
}

func (e *IntegrityFailureError) Error() string {
	return fmt.Sprintf("integrity failure: %q does not resolve in the merged document", e.Reference)
}

func (e *IntegrityFailureError) Is(target error) bool { return target == ErrIntegrityFailure }

// UnsupportedVersionError reports an input document whose openapi field is
// not a 3.0.x version.
type UnsupportedVersionError struct {
	Input   string
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported openapi version %q in %s: only 3.0.x is supported", e.Version, e.Input)
}

func (e *UnsupportedVersionError) Is(target error) bool { return target == ErrUnsupportedVersion }
