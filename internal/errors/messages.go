package errors

import "fmt"

// MalformedPattern reports an unparseable pattern string.
func MalformedPattern(err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("invalid pattern: %v", err),
		Remediation: []string{
			"Patterns are colon-separated kind,seconds tokens, e.g. p,1500:b,180",
			"Valid kind codes: r (reminder), p (pomodoro), b (break), f (finish), i0-i8 (intro)",
			"Run 'pomo -h' for the default pattern",
		},
	}
}

// UnknownNotifier reports an unrecognized notifier backend name.
func UnknownNotifier(name string) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("unknown notifier %q", name),
		Remediation: []string{
			"Recognized notifiers: echo (console output), libnotify (desktop notifications)",
			"Combine them with a comma: -n echo,libnotify",
		},
	}
}

// DesktopUnavailable reports a missing OS notification facility.
func DesktopUnavailable(detail string) *CLIError {
	return &CLIError{
		Category: Capability,
		Message:  fmt.Sprintf("desktop notifications unavailable: %s", detail),
		Remediation: []string{
			"Install notify-send (libnotify) on Linux, or ensure a display session is running",
			"Or drop the desktop backend: pomo -n echo",
		},
	}
}
