package notify

import (
	"fmt"
	"io"
	"os"
)

// Multi fans a message out to every active backend, one after another,
// synchronously. A failure in one backend is reported to stderr and does
// not block the others: a failed notification never aborts a timer that is
// otherwise progressing.
type Multi struct {
	notifiers []Notifier
	errOut    io.Writer
}

// NewMulti creates a dispatcher over the given notifiers.
func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers, errOut: os.Stderr}
}

// SetErrorWriter redirects dispatch failure logging (for testing).
func (m *Multi) SetErrorWriter(w io.Writer) {
	m.errOut = w
}

// Send delivers the message through every backend.
func (m *Multi) Send(msg Message) error {
	for _, n := range m.notifiers {
		if err := n.Send(msg); err != nil {
			fmt.Fprintf(m.errOut, "pomo: notification failed: %v\n", err)
		}
	}
	return nil
}

// Available succeeds when every backend is usable.
func (m *Multi) Available() error {
	for _, n := range m.notifiers {
		if err := n.Available(); err != nil {
			return err
		}
	}
	return nil
}
