package errors

import (
	stderr "errors"
	"fmt"
)

// EnvironmentError indicates that no usable Java runtime could be resolved
// from the configured hint, JAVA_HOME, or the PATH.
type EnvironmentError struct {
	Hint string
}

// Error is an implementation of the error interface.
func (e *EnvironmentError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("no usable Java runtime found (hint %q)", e.Hint)
	}
	return "no usable Java runtime found"
}

// ToolchainConflictError indicates that a conflicting toolchain marker file is
// present in the workspace. The launch must abort outright; removing the
// marker and restarting is the only way forward.
type ToolchainConflictError struct {
	Marker string
}

// Error is an implementation of the error interface.
func (e *ToolchainConflictError) Error() string {
	return fmt.Sprintf("conflicting toolchain marker %q present in workspace", e.Marker)
}

// IsToolchainConflict reports whether a ToolchainConflictError is part of the
// error chain and returns the marker path if so.
func IsToolchainConflict(e error) (_ string, ok bool) {
	var tc *ToolchainConflictError
	if !stderr.As(e, &tc) {
		return "", false
	}
	return tc.Marker, true
}

// DependencyResolutionError indicates that the resolver subprocess failed to
// produce a classpath for the requested artifact.
type DependencyResolutionError struct {
	Coordinate string
	ExitCode   int
	Output     string
}

// Error is an implementation of the error interface.
func (e *DependencyResolutionError) Error() string {
	return fmt.Sprintf("resolving %q: resolver exited with code %d", e.Coordinate, e.ExitCode)
}

// ProcessStartError indicates that the analyzer process failed to spawn.
type ProcessStartError struct {
	Path string
	Err  error
}

// Error is an implementation of the error interface.
func (e *ProcessStartError) Error() string {
	return fmt.Sprintf("starting %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying spawn error.
func (e *ProcessStartError) Unwrap() error {
	return e.Err
}

// NoActiveSessionError indicates that a command requiring a live analyzer
// session was invoked while none was running.
type NoActiveSessionError struct{}

// Error is an implementation of the error interface.
func (e *NoActiveSessionError) Error() string {
	return "no active analyzer session"
}

// MalformedPayloadError indicates that an extension message carried arguments
// that could not be decoded. The triggering action is skipped; the session
// remains usable.
type MalformedPayloadError struct {
	Command string
	Err     error
}

// Error is an implementation of the error interface.
func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed %q payload: %v", e.Command, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}
