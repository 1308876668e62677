//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// darwinSender implements Sender for macOS using osascript.
// Notification Center controls icon and on-screen duration itself, so both
// are accepted and ignored.
type darwinSender struct{}

// newDarwinSender creates a new macOS notification sender.
func newDarwinSender() Sender {
	return &darwinSender{}
}

// newLinuxSender returns an unsupported sender on darwin.
func newLinuxSender() Sender {
	return &unsupportedSender{}
}

// newWindowsSender returns an unsupported sender on darwin.
func newWindowsSender() Sender {
	return &unsupportedSender{}
}

// Send dispatches a notification via osascript.
func (s *darwinSender) Send(_, summary, body string, _ int) error {
	script := fmt.Sprintf(`display notification "%s" with title "%s"`,
		escapeQuotes(body), escapeQuotes(summary))
	cmd := exec.Command("osascript", "-e", script)
	return cmd.Run()
}

// Probe checks for osascript.
func (s *darwinSender) Probe() (bool, string) {
	if !toolAvailable("osascript") {
		return false, "osascript not found in PATH"
	}
	return true, ""
}

// escapeQuotes escapes double quotes for embedding in an AppleScript string.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
