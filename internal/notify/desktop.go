package notify

import (
	clierrors "github.com/pomo-sh/pomo/internal/errors"
)

// Desktop dispatches messages through the platform's native notification
// facility, carrying the pomo icon.
type Desktop struct {
	sender   Sender
	iconPath string
}

// NewDesktop creates a desktop notifier for the current platform.
// iconPath may be empty when the icon could not be materialized; the
// notification is then sent without one.
func NewDesktop(iconPath string) *Desktop {
	return &Desktop{sender: NewSender(), iconPath: iconPath}
}

// NewDesktopWithSender creates a desktop notifier with a custom sender
// (for testing).
func NewDesktopWithSender(sender Sender, iconPath string) *Desktop {
	return &Desktop{sender: sender, iconPath: iconPath}
}

// Send dispatches one desktop notification.
func (d *Desktop) Send(m Message) error {
	return d.sender.Send(d.iconPath, m.Summary, m.Body, m.DisplayMillis)
}

// Available probes the OS facility once at startup. A failure here is
// fatal before any timer activity begins.
func (d *Desktop) Available() error {
	ok, detail := d.sender.Probe()
	if !ok {
		return clierrors.DesktopUnavailable(detail)
	}
	return nil
}
