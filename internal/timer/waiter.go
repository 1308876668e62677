package timer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// progressThreshold is the shortest wait that gets a live countdown.
// Anything shorter passes silently; redrawing a line for a few seconds is
// more distracting than useful.
const progressThreshold = 30

// Waiter blocks for a period's duration, optionally rendering a live
// countdown. Waits are not cancellable mid-period: they run to completion
// or the process is terminated externally.
type Waiter struct {
	out   io.Writer
	caps  TerminalCapabilities
	sleep func(time.Duration)
}

// NewWaiter creates a waiter writing countdown output to out; pass the
// console backend's writer when one is active, os.Stdout otherwise.
func NewWaiter(out io.Writer, caps TerminalCapabilities) *Waiter {
	if out == nil {
		out = os.Stdout
	}
	return &Waiter{out: out, caps: caps, sleep: time.Sleep}
}

// NewWaiterWithSleep creates a waiter with a custom writer and sleep
// function (for testing).
func NewWaiterWithSleep(out io.Writer, caps TerminalCapabilities, sleep func(time.Duration)) *Waiter {
	return &Waiter{out: out, caps: caps, sleep: sleep}
}

// Wait blocks for seconds.
//
// In dry-run mode the wait collapses to a single one-second placeholder
// regardless of the requested duration, and the skipped wait is reported;
// this lets a full pattern be smoke-tested in a few seconds. Otherwise a
// countdown is rendered when showProgress is set and the wait is long
// enough, and the wait is a plain blocking sleep with no output when not.
func (w *Waiter) Wait(seconds int, dryRun, showProgress bool) {
	if dryRun {
		fmt.Fprintf(w.out, "dry-run: skipping a wait of %s\n", FormatSeconds(seconds))
		w.sleep(time.Second)
		return
	}

	if showProgress && seconds >= progressThreshold {
		w.countdown(seconds)
		return
	}

	w.sleep(time.Duration(seconds) * time.Second)
}

// countdown ticks once per second, overwriting a single terminal line with
// the remaining time. A spinner animates the line on a TTY; without one
// the line is still overwritten via carriage return so logs stay sane.
func (w *Waiter) countdown(seconds int) {
	if w.caps.IsTTY {
		s := spinner.New(spinner.CharSets[spinnerCharSet(w.caps)], 100*time.Millisecond)
		s.Writer = w.out
		s.Suffix = " " + FormatSeconds(seconds) + " remaining"
		s.Start()
		for remaining := seconds; remaining > 0; remaining-- {
			s.Suffix = " " + FormatSeconds(remaining) + " remaining"
			w.sleep(time.Second)
		}
		s.Stop()
		fmt.Fprintln(w.out)
		return
	}

	for remaining := seconds; remaining > 0; remaining-- {
		// Padding clears leftovers when the text shrinks ("10 minutes"
		// down to "59 seconds").
		fmt.Fprintf(w.out, "\r%-24s", FormatSeconds(remaining)+" remaining")
		w.sleep(time.Second)
	}
	fmt.Fprintln(w.out)
}
