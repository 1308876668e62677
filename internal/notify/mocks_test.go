package notify

// fakeSender records desktop dispatches and simulates probe outcomes.
type fakeSender struct {
	probeOK     bool
	probeDetail string
	sendErr     error

	sent []sentCall
}

type sentCall struct {
	iconPath string
	summary  string
	body     string
	millis   int
}

func (f *fakeSender) Send(iconPath, summary, body string, displayMillis int) error {
	f.sent = append(f.sent, sentCall{iconPath: iconPath, summary: summary, body: body, millis: displayMillis})
	return f.sendErr
}

func (f *fakeSender) Probe() (bool, string) {
	return f.probeOK, f.probeDetail
}

// failingNotifier always fails Send.
type failingNotifier struct {
	err   error
	calls int
}

func (f *failingNotifier) Send(Message) error {
	f.calls++
	return f.err
}

func (f *failingNotifier) Available() error { return nil }

// recordingNotifier captures messages.
type recordingNotifier struct {
	messages []Message
}

func (r *recordingNotifier) Send(m Message) error {
	r.messages = append(r.messages, m)
	return nil
}

func (r *recordingNotifier) Available() error { return nil }
