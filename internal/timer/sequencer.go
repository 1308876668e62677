// Package timer implements the period sequencing engine: the message
// catalog, the countdown waiter, and the sequencer that walks a pattern
// announcing and waiting out each period in order.
package timer

import (
	"fmt"
	"io"
	"os"

	"github.com/pomo-sh/pomo/internal/notify"
	"github.com/pomo-sh/pomo/internal/pattern"
)

// BackendNotifier pairs an active backend with its delivery channel.
// Dispatch order follows slice order.
type BackendNotifier struct {
	Backend  notify.Backend
	Notifier notify.Notifier
}

// Sequencer walks a pattern with a single linear cursor. Every period is
// processed unconditionally in order: resolve its message, dispatch it to
// every active backend, wait out its duration. No branching on outcomes.
type Sequencer struct {
	channels []BackendNotifier
	waiter   *Waiter
	dryRun   bool
	errOut   io.Writer
}

// NewSequencer creates a sequencer over the given channels.
func NewSequencer(channels []BackendNotifier, waiter *Waiter, dryRun bool) *Sequencer {
	return &Sequencer{channels: channels, waiter: waiter, dryRun: dryRun, errOut: os.Stderr}
}

// SetErrorWriter redirects dispatch failure logging (for testing).
func (s *Sequencer) SetErrorWriter(w io.Writer) {
	s.errOut = w
}

// ConsoleActive reports whether the console backend is among the active
// channels. The countdown display is a console-only affordance, and the
// restart prompt needs a text channel.
func (s *Sequencer) ConsoleActive() bool {
	for _, ch := range s.channels {
		if ch.Backend == notify.BackendConsole {
			return true
		}
	}
	return false
}

// Run plays the pattern from start to finish. An empty pattern completes
// immediately with zero notifications and zero waits. Running the same
// pattern twice produces identical message sequences; the sequencer holds
// no state across runs.
func (s *Sequencer) Run(p pattern.Pattern) {
	showProgress := s.ConsoleActive()
	for _, period := range p {
		s.announce(period)
		s.waiter.Wait(period.Seconds, s.dryRun, showProgress)
	}
}

// announce resolves and dispatches a period's message per backend. The
// greeting resolves to different text per backend; everything else only
// differs in whether a display duration is attached.
func (s *Sequencer) announce(period pattern.Period) {
	for _, ch := range s.channels {
		s.send(ch, Resolve(period, ch.Backend))
	}
}

// send delivers best effort: a failed notification is logged and the
// timer keeps going.
func (s *Sequencer) send(ch BackendNotifier, m notify.Message) {
	if err := ch.Notifier.Send(m); err != nil {
		fmt.Fprintf(s.errOut, "pomo: %s notification failed: %v\n", ch.Backend, err)
	}
}
