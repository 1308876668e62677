//go:build linux

package notify

import (
	"os"
	"os/exec"
	"strconv"
)

// linuxSender implements Sender for Linux using notify-send (libnotify).
type linuxSender struct{}

// newLinuxSender creates a new Linux notification sender.
func newLinuxSender() Sender {
	return &linuxSender{}
}

// newDarwinSender returns an unsupported sender on linux.
func newDarwinSender() Sender {
	return &unsupportedSender{}
}

// newWindowsSender returns an unsupported sender on linux.
func newWindowsSender() Sender {
	return &unsupportedSender{}
}

// hasDisplay checks if a display environment is available.
func hasDisplay() bool {
	// Check for X11 display
	if os.Getenv("DISPLAY") != "" {
		return true
	}
	// Check for Wayland display
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return false
}

// Send dispatches a notification via notify-send.
func (s *linuxSender) Send(iconPath, summary, body string, displayMillis int) error {
	args := []string{}
	if iconPath != "" {
		args = append(args, "-i", iconPath)
	}
	if displayMillis > 0 {
		args = append(args, "-t", strconv.Itoa(displayMillis))
	}
	args = append(args, summary, body)

	cmd := exec.Command("notify-send", args...)
	return cmd.Run()
}

// Probe checks for notify-send and a display session.
func (s *linuxSender) Probe() (bool, string) {
	if !toolAvailable("notify-send") {
		return false, "notify-send not found in PATH"
	}
	if !hasDisplay() {
		return false, "no display session (DISPLAY/WAYLAND_DISPLAY unset)"
	}
	return true, ""
}
