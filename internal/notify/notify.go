// Package notify delivers period announcements through one or more
// backends: styled console output and OS desktop notifications. Backends
// are not mutually exclusive; dispatch is sequential and best effort.
package notify

import (
	"strings"

	clierrors "github.com/pomo-sh/pomo/internal/errors"
)

// Backend identifies a notification delivery channel.
type Backend string

const (
	// BackendConsole writes styled messages to standard output
	BackendConsole Backend = "echo"
	// BackendDesktop dispatches OS-level desktop notifications
	BackendDesktop Backend = "libnotify"
)

// ParseBackends maps a comma-separated backend list to Backend values.
// Unknown names are Configuration errors; duplicates collapse.
func ParseBackends(csv string) ([]Backend, error) {
	seen := make(map[Backend]bool)
	var backends []Backend
	for _, name := range strings.Split(csv, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		b := Backend(name)
		switch b {
		case BackendConsole, BackendDesktop:
			if !seen[b] {
				seen[b] = true
				backends = append(backends, b)
			}
		default:
			return nil, clierrors.UnknownNotifier(name)
		}
	}
	return backends, nil
}

// Message is a single notification: an emphasized summary, a body line,
// and an optional desktop display duration. DisplayMillis of 0 means the
// backend's default duration; the console backend ignores it entirely.
type Message struct {
	Summary       string
	Body          string
	DisplayMillis int
}

// Notifier is a single delivery channel.
type Notifier interface {
	// Send delivers the message. Failures are reported but callers treat
	// them as best effort; a failed notification never aborts the timer.
	Send(m Message) error

	// Available reports whether the channel can deliver at all. A non-nil
	// error is fatal at startup, before any timer activity.
	Available() error
}
