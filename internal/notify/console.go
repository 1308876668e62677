package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Console writes styled two-line messages to a terminal: the summary
// emphasized, the body on the following line. It also exposes the unstyled
// Echo rendering the countdown display builds on.
type Console struct {
	out     io.Writer
	summary func(a ...interface{}) string
	dim     func(a ...interface{}) string
}

// NewConsole creates a console notifier writing to stdout.
func NewConsole() *Console {
	return NewConsoleWriter(os.Stdout)
}

// NewConsoleWriter creates a console notifier writing to w (for testing).
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{
		out:     w,
		summary: color.New(color.FgCyan, color.Bold).SprintFunc(),
		dim:     color.New(color.Faint).SprintFunc(),
	}
}

// Send writes the summary emphasized with the body on the next line.
// DisplayMillis is ignored; console output has no on-screen duration.
func (c *Console) Send(m Message) error {
	c.Echof("%s\n", c.summary(m.Summary))
	if m.Body != "" {
		c.Echof("%s\n", m.Body)
	}
	return nil
}

// Available always succeeds; writing to stdout needs no OS facility.
func (c *Console) Available() error {
	return nil
}

// Echo writes a raw line without styling or trailing newline. The countdown
// display uses it with carriage returns to overwrite a single line.
func (c *Console) Echo(s string) {
	fmt.Fprint(c.out, s)
}

// Echof is Echo with formatting.
func (c *Console) Echof(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Writer exposes the underlying writer for the countdown display.
func (c *Console) Writer() io.Writer {
	return c.out
}
