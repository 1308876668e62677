// Package errors provides structured CLI errors with categories and
// remediation steps. Fatal errors are formatted for the terminal and mapped
// to the process exit code by cmd/pomo.
package errors

import "fmt"

// ErrorCategory classifies a CLI error for display and exit-code mapping.
type ErrorCategory int

const (
	// Argument indicates invalid command-line arguments or flag values
	Argument ErrorCategory = iota
	// Configuration indicates an invalid persisted or supplied setting
	// (malformed pattern token, unknown notifier name)
	Configuration
	// Capability indicates a required OS facility is missing
	// (desktop backend requested but no notification tool available)
	Capability
	// Runtime indicates a failure during timer execution
	Runtime
)

// String returns the human-readable category heading.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Capability:
		return "Capability Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with remediation guidance.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Remediation []string
	Usage       string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewArgumentError creates an Argument category error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewArgumentErrorWithUsage creates an Argument category error with usage text.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewConfigError creates a Configuration category error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewCapabilityError creates a Capability category error.
func NewCapabilityError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Capability, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a Runtime category error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}

// Wrap converts any error into a CLIError with the given category.
// Returns nil if err is nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: err.Error(), Remediation: remediation}
}

// WrapWithMessage wraps an error with an outer message prefix.
// Returns nil if err is nil.
func WrapWithMessage(err error, category ErrorCategory, message string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category: category,
		Message:  fmt.Sprintf("%s: %s", message, err.Error()),
	}
}

// IsCLIError reports whether err is a *CLIError.
func IsCLIError(err error) bool {
	_, ok := err.(*CLIError)
	return ok
}
