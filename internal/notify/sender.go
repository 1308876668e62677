package notify

import (
	"os/exec"
	"runtime"
)

// Sender is the platform-specific desktop notification transport.
type Sender interface {
	// Send dispatches one desktop notification. iconPath may be empty;
	// displayMillis of 0 requests the platform default duration.
	Send(iconPath, summary, body string, displayMillis int) error

	// Probe reports whether the platform facility is usable.
	// The returned string describes what is missing when it is not.
	Probe() (bool, string)
}

// NewSender creates a sender for the current OS: notify-send on Linux,
// osascript on macOS, PowerShell on Windows. Unsupported platforms get a
// sender whose Probe always fails.
func NewSender() Sender {
	switch runtime.GOOS {
	case "darwin":
		return newDarwinSender()
	case "linux":
		return newLinuxSender()
	case "windows":
		return newWindowsSender()
	default:
		return &unsupportedSender{}
	}
}

// toolAvailable checks if a command-line tool is available in PATH.
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// unsupportedSender fails its probe on platforms without a known
// notification tool.
type unsupportedSender struct{}

func (s *unsupportedSender) Send(_, _, _ string, _ int) error {
	return nil
}

func (s *unsupportedSender) Probe() (bool, string) {
	return false, "no desktop notification support on " + runtime.GOOS
}
