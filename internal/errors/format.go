package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders a CLIError with terminal colors.
// Returns an empty string for nil errors.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", red(err.Category.String()), err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\n%s %s\n", dim("Usage:"), err.Usage)
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", yellow("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
	}

	return b.String()
}

// FormatErrorPlain renders a CLIError without colors (for non-TTY output).
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", err.Category.String(), err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\nUsage: %s\n", err.Usage)
	}

	if len(err.Remediation) > 0 {
		b.WriteString("\nTo fix this:\n")
		for _, step := range err.Remediation {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
	}

	return b.String()
}

// PrintError writes a formatted error to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes a formatted error to the given writer.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
