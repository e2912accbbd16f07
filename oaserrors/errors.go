// Package oaserrors provides structured error types for the merge engine's
// fatal-error taxonomy.
//
// Every error the engine can return is fatal: there are no retries and no
// partial writes. Each type implements Error, Unwrap, and Is so callers can
// use errors.Is/errors.As, and ExitCode so the CLI can map any error
// straight to a process exit status without a type switch of its own.
//
// # Usage with errors.Is
//
//	doc, err := merge.Merge(cfg, inputs, nil)
//	if err != nil {
//	    var conflict *oaserrors.PathConflictError
//	    if errors.As(err, &conflict) {
//	        // inspect conflict.Path, conflict.InputIndex
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	ErrConfigInvalid         = errors.New("config invalid")
	ErrInputUnreachable      = errors.New("input unreachable")
	ErrInputUnparseable      = errors.New("input unparseable")
	ErrPathConflict          = errors.New("path conflict")
	ErrDisputeUnresolved     = errors.New("dispute unresolved")
	ErrDisputeStillConflicts = errors.New("dispute still conflicts")
	ErrDanglingReference     = errors.New("dangling reference")
	ErrIntegrityFailure      = errors.New("integrity failure")
	ErrUnsupportedVersion    = errors.New("unsupported version")
)

// exitCoder is implemented by every error type in this package so the CLI
// can map an error to a process exit status uniformly.
type exitCoder interface {
	ExitCode() int
}

// ExitCode returns the process exit status for err: the error's own
// ExitCode() if it implements exitCoder, or 1 for any other error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

// ConfigInvalidError indicates the configuration document failed validation
// before any input was read.
type ConfigInvalidError struct {
	Message string
	Cause   error
}

func (e *ConfigInvalidError) Error() string {
	msg := "config invalid: " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}
func (e *ConfigInvalidError) Unwrap() error { return e.Cause }
func (e *ConfigInvalidError) Is(target error) bool { return target == ErrConfigInvalid }
func (e *ConfigInvalidError) ExitCode() int { return 2 }

// InputUnreachableError indicates an input file or URL could not be read.
type InputUnreachableError struct {
	InputIndex int
	Source     string
	Cause      error
}

func (e *InputUnreachableError) Error() string {
	msg := fmt.Sprintf("input %d unreachable: %s", e.InputIndex, e.Source)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}
func (e *InputUnreachableError) Unwrap() error { return e.Cause }
func (e *InputUnreachableError) Is(target error) bool { return target == ErrInputUnreachable }
func (e *InputUnreachableError) ExitCode() int { return 3 }

// InputUnparseableError indicates an input document could not be parsed as
// YAML/JSON or did not conform to the OAS 3.0 document shape.
type InputUnparseableError struct {
	InputIndex int
	Source     string
	Cause      error
}

func (e *InputUnparseableError) Error() string {
	msg := fmt.Sprintf("input %d unparseable: %s", e.InputIndex, e.Source)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}
func (e *InputUnparseableError) Unwrap() error { return e.Cause }
func (e *InputUnparseableError) Is(target error) bool { return target == ErrInputUnparseable }
func (e *InputUnparseableError) ExitCode() int { return 4 }

// PathConflictError indicates two inputs produced the same transformed path.
type PathConflictError struct {
	Path       string
	InputIndex int
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("path conflict: %q already exists, introduced again by input %d", e.Path, e.InputIndex)
}
func (e *PathConflictError) Unwrap() error { return nil }
func (e *PathConflictError) Is(target error) bool { return target == ErrPathConflict }
func (e *PathConflictError) ExitCode() int { return 5 }

// DisputeUnresolvedError indicates a component name collided and the input
// declared no dispute policy to resolve it.
type DisputeUnresolvedError struct {
	Category   string
	Name       string
	InputIndex int
}

func (e *DisputeUnresolvedError) Error() string {
	return fmt.Sprintf("dispute unresolved: %s %q collides in input %d and no dispute policy is configured", e.Category, e.Name, e.InputIndex)
}
func (e *DisputeUnresolvedError) Unwrap() error { return nil }
func (e *DisputeUnresolvedError) Is(target error) bool { return target == ErrDisputeUnresolved }
func (e *DisputeUnresolvedError) ExitCode() int { return 6 }

// DisputeStillConflictsError indicates applying the dispute policy produced
// a candidate name that itself collides with a non-equal existing definition.
type DisputeStillConflictsError struct {
	Category  string
	Original  string
	Candidate string
}

func (e *DisputeStillConflictsError) Error() string {
	return fmt.Sprintf("dispute still conflicts: %s %q renamed to %q which also collides", e.Category, e.Original, e.Candidate)
}
func (e *DisputeStillConflictsError) Unwrap() error { return nil }
func (e *DisputeStillConflictsError) Is(target error) bool { return target == ErrDisputeStillConflicts }
func (e *DisputeStillConflictsError) ExitCode() int { return 7 }

// DanglingReferenceError indicates a $ref's target does not exist in its
// owning input's components, nor in the rename map.
type DanglingReferenceError struct {
	Category string
	Name     string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference: %s %q has no target", e.Category, e.Name)
}
func (e *DanglingReferenceError) Unwrap() error { return nil }
func (e *DanglingReferenceError) Is(target error) bool { return target == ErrDanglingReference }
func (e *DanglingReferenceError) ExitCode() int { return 8 }

// IntegrityFailureError indicates the final reference-integrity pass found
// a reference in the merged document that does not resolve.
type IntegrityFailureError struct {
	Reference string
}

func (e *IntegrityFailureError) Error() string {
	return fmt.Sprintf("integrity failure: reference %q does not resolve in the merged document", e.Reference)
}
func (e *IntegrityFailureError) Unwrap() error { return nil }
func (e *IntegrityFailureError) Is(target error) bool { return target == ErrIntegrityFailure }
func (e *IntegrityFailureError) ExitCode() int { return 9 }

// UnsupportedVersionError indicates an input (or the configured output
// version) declares an OpenAPI version this engine does not merge.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported version: %q (only openapi 3.0.x is supported)", e.Version)
}
func (e *UnsupportedVersionError) Unwrap() error { return nil }
func (e *UnsupportedVersionError) Is(target error) bool { return target == ErrUnsupportedVersion }
func (e *UnsupportedVersionError) ExitCode() int { return 10 }
