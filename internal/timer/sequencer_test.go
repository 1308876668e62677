package timer

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomo-sh/pomo/internal/notify"
	"github.com/pomo-sh/pomo/internal/pattern"
)

// recorder captures every message a backend receives.
type recorder struct {
	messages []notify.Message
	sendErr  error
}

func (r *recorder) Send(m notify.Message) error {
	r.messages = append(r.messages, m)
	return r.sendErr
}

func (r *recorder) Available() error { return nil }

func newTestSequencer(dryRun bool, channels ...BackendNotifier) (*Sequencer, *bytes.Buffer) {
	var waitOut bytes.Buffer
	waiter := NewWaiterWithSleep(&waitOut, TerminalCapabilities{}, func(time.Duration) {})
	seq := NewSequencer(channels, waiter, dryRun)

	var errOut bytes.Buffer
	seq.SetErrorWriter(&errOut)
	return seq, &errOut
}

func TestRun_EmptyPatternCompletesImmediately(t *testing.T) {
	t.Parallel()

	console := &recorder{}
	seq, _ := newTestSequencer(false, BackendNotifier{Backend: notify.BackendConsole, Notifier: console})

	seq.Run(pattern.Pattern{})

	assert.Empty(t, console.messages, "empty pattern sends zero notifications")
}

func TestRun_AnnouncesEveryPeriodInOrder(t *testing.T) {
	t.Parallel()

	console := &recorder{}
	seq, _ := newTestSequencer(true, BackendNotifier{Backend: notify.BackendConsole, Notifier: console})

	p, err := pattern.Parse("r,60:p,1500:b,180")
	require.NoError(t, err)

	seq.Run(p)

	require.Len(t, console.messages, 3)
	assert.Equal(t, "Get ready", console.messages[0].Summary)
	assert.Equal(t, "Pomodoro", console.messages[1].Summary)
	assert.Equal(t, "Break", console.messages[2].Summary)
}

func TestRun_DispatchesToEveryBackend(t *testing.T) {
	t.Parallel()

	console := &recorder{}
	desktop := &recorder{}
	seq, _ := newTestSequencer(true,
		BackendNotifier{Backend: notify.BackendConsole, Notifier: console},
		BackendNotifier{Backend: notify.BackendDesktop, Notifier: desktop},
	)

	p, err := pattern.Parse("p,1500")
	require.NoError(t, err)
	seq.Run(p)

	require.Len(t, console.messages, 1)
	require.Len(t, desktop.messages, 1)
	assert.Zero(t, console.messages[0].DisplayMillis)
	assert.Equal(t, 5000, desktop.messages[0].DisplayMillis)
}

// TestRun_IdempotentOverImmutablePattern runs the sequencer twice over the
// same pattern and asserts identical message sequences; the sequencer holds
// no state across runs.
func TestRun_IdempotentOverImmutablePattern(t *testing.T) {
	t.Parallel()

	p := pattern.Default()

	console1 := &recorder{}
	seq1, _ := newTestSequencer(true, BackendNotifier{Backend: notify.BackendConsole, Notifier: console1})
	seq1.Run(p)

	console2 := &recorder{}
	seq2, _ := newTestSequencer(true, BackendNotifier{Backend: notify.BackendConsole, Notifier: console2})
	seq2.Run(p)
	seq2.Run(p)

	require.Len(t, console1.messages, 12)
	require.Len(t, console2.messages, 24)
	assert.Equal(t, console1.messages, console2.messages[:12])
	assert.Equal(t, console1.messages, console2.messages[12:])
}

func TestRun_FailedBackendDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	broken := &recorder{sendErr: errors.New("dbus gone")}
	console := &recorder{}
	seq, errOut := newTestSequencer(true,
		BackendNotifier{Backend: notify.BackendDesktop, Notifier: broken},
		BackendNotifier{Backend: notify.BackendConsole, Notifier: console},
	)

	p, err := pattern.Parse("p,1500:b,180")
	require.NoError(t, err)
	seq.Run(p)

	assert.Len(t, broken.messages, 2, "failing backend is still attempted every period")
	assert.Len(t, console.messages, 2, "healthy backend is unaffected")
	assert.Contains(t, errOut.String(), "notification failed")
}

func TestRun_GreetingTextDiffersPerBackend(t *testing.T) {
	t.Parallel()

	console := &recorder{}
	desktop := &recorder{}
	seq, _ := newTestSequencer(true,
		BackendNotifier{Backend: notify.BackendConsole, Notifier: console},
		BackendNotifier{Backend: notify.BackendDesktop, Notifier: desktop},
	)

	seq.Run(pattern.Pattern{{Kind: pattern.KindIntro0, Seconds: 3}})

	require.Len(t, console.messages, 1)
	require.Len(t, desktop.messages, 1)
	assert.NotEqual(t, console.messages[0].Body, desktop.messages[0].Body)
}

func TestConsoleActive(t *testing.T) {
	t.Parallel()

	seqConsole, _ := newTestSequencer(false, BackendNotifier{Backend: notify.BackendConsole, Notifier: &recorder{}})
	assert.True(t, seqConsole.ConsoleActive())

	seqDesktop, _ := newTestSequencer(false, BackendNotifier{Backend: notify.BackendDesktop, Notifier: &recorder{}})
	assert.False(t, seqDesktop.ConsoleActive())

	seqNone, _ := newTestSequencer(false)
	assert.False(t, seqNone.ConsoleActive())
}
