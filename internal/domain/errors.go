package domain

import "fmt"

// InvocationError reports a failed external command with its diagnostics.
type InvocationError struct {
	Argv     []string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *InvocationError) Error() string {
	if len(e.Argv) == 0 {
		return fmt.Sprintf("external command failed: %v", e.Err)
	}
	return fmt.Sprintf("%s failed (exit %d): %v", e.Argv[0], e.ExitCode, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// Diagnostic returns the text the error classifier should inspect.
func (e *InvocationError) Diagnostic() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// ErrorClass tags a classified external failure.
type ErrorClass int

const (
	// ClassGeneric is any failure without a more specific signature.
	ClassGeneric ErrorClass = iota
	// ClassExpiredSession means the profile's session needs a fresh login.
	ClassExpiredSession
	// ClassNotFound means the external tool itself is unavailable.
	ClassNotFound
)

// ClassifiedError is the always-produced verdict of the error classifier.
type ClassifiedError struct {
	Class   ErrorClass
	Profile string // set for ClassExpiredSession
	Message string // raw diagnostic text for display
}
