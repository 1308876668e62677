// Package session orchestrates full timer runs: first-use persistence,
// intro-versus-normal pattern selection, and the repeat/restart loop
// around the sequencer.
package session

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/pomo-sh/pomo/internal/notify"
	"github.com/pomo-sh/pomo/internal/pattern"
	"github.com/pomo-sh/pomo/internal/timer"
)

// Options is the effective session configuration, built once at startup by
// merging persisted settings with CLI flags. Read-only during a run; the
// controller tracks the one-shot intro state itself.
type Options struct {
	Repeat    bool
	DryRun    bool
	ShowIntro bool
	Pattern   pattern.Pattern

	// FirstUse is set when no settings file existed at startup. The
	// effective configuration is persisted before the first run.
	FirstUse bool
}

// Controller drives the outer session loop.
type Controller struct {
	seq      *timer.Sequencer
	announce notify.Notifier
	out      io.Writer
	readKey  func() (byte, error)

	// persist saves the effective settings on first use. May be nil.
	persist func() error
}

// NewController creates a controller around the given sequencer.
// announce carries the restart notice between repeat iterations,
// typically a notify.Multi over the same backends the sequencer uses.
// persist is invoked once, before the first run, when Options.FirstUse is
// set; pass nil when persistence is handled elsewhere.
func NewController(seq *timer.Sequencer, announce notify.Notifier, persist func() error) *Controller {
	return &Controller{
		seq:      seq,
		announce: announce,
		out:      os.Stdout,
		readKey:  readSingleKey,
		persist:  persist,
	}
}

// SetOutput redirects prompt output (for testing).
func (c *Controller) SetOutput(w io.Writer) {
	c.out = w
}

// SetKeyReader replaces the keypress reader (for testing).
func (c *Controller) SetKeyReader(f func() (byte, error)) {
	c.readKey = f
}

// Run plays patterns until the session ends. Returns nil on normal
// completion, including a declined restart.
//
// The intro is one-shot: once it has played, every later iteration plays
// the configured pattern. The shell original re-armed the intro flag at
// the end of each loop iteration, which would replay the tour on every
// repeat cycle; that is treated as a latent defect and not reproduced.
func (c *Controller) Run(opts Options) error {
	if opts.FirstUse && c.persist != nil {
		if err := c.persist(); err != nil {
			return err
		}
	}

	showIntro := opts.ShowIntro
	for {
		if showIntro {
			c.seq.Run(pattern.Intro())
			showIntro = false
		} else {
			c.seq.Run(opts.Pattern)
		}

		if opts.Repeat {
			if c.announce != nil {
				_ = c.announce.Send(notify.Message{Summary: "Restarting"})
			}
			continue
		}

		// Without a text channel there is no way to prompt; one full
		// run is the whole session.
		if !c.seq.ConsoleActive() {
			return nil
		}

		if !c.promptRestart() {
			return nil
		}
	}
}

// promptRestart asks for a single keypress, default no. Only an
// affirmative y/Y restarts; any other key, or any read failure, declines.
func (c *Controller) promptRestart() bool {
	fmt.Fprint(c.out, "Start another run? [y/N] ")
	key, err := c.readKey()
	fmt.Fprintln(c.out)
	if err != nil {
		return false
	}
	return key == 'y' || key == 'Y'
}

// readSingleKey reads one keypress from stdin in raw mode.
func readSingleKey() (byte, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		// Not a terminal: fall back to reading a single byte cooked.
		buf := make([]byte, 1)
		if _, rerr := os.Stdin.Read(buf); rerr != nil {
			return 0, rerr
		}
		return buf[0], nil
	}
	defer term.Restore(fd, state)

	buf := make([]byte, 1)
	if _, err := os.Stdin.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}
