package timer

import (
	"fmt"

	"github.com/pomo-sh/pomo/internal/notify"
	"github.com/pomo-sh/pomo/internal/pattern"
)

// template is one entry of the message catalog: fixed summary and body
// text for a period kind, plus the desktop display duration for that kind.
// Bodies with wantsDuration substitute the period's duration through
// FormatSeconds.
type template struct {
	summary       string
	body          string
	wantsDuration bool
	displayMillis int
}

// catalog maps every period kind to its message template. KindIntro0 is
// absent: it is the one kind whose text branches on the backend and is
// handled in Resolve.
var catalog = map[pattern.Kind]template{
	pattern.KindReminder: {
		summary:       "Get ready",
		body:          "The next pomodoro starts in %s.",
		wantsDuration: true,
		displayMillis: 3000,
	},
	pattern.KindPomodoro: {
		summary:       "Pomodoro",
		body:          "Focus for %s.",
		wantsDuration: true,
		displayMillis: 5000,
	},
	pattern.KindBreak: {
		summary:       "Break",
		body:          "Step away for %s.",
		wantsDuration: true,
		displayMillis: 5000,
	},
	pattern.KindFinish: {
		summary:       "All done",
		body:          "Take a long break: %s. Well earned.",
		wantsDuration: true,
		displayMillis: 10000,
	},
	pattern.KindIntro1: {
		summary:       "How it works",
		body:          "Work happens in focused pomodoros of 25 minutes each.",
		displayMillis: 8000,
	},
	pattern.KindIntro2: {
		summary:       "Short breaks",
		body:          "After each pomodoro you rest for 3 minutes.",
		displayMillis: 8000,
	},
	pattern.KindIntro3: {
		summary:       "Reminders",
		body:          "A reminder fires shortly before each pomodoro begins.",
		displayMillis: 8000,
	},
	pattern.KindIntro4: {
		summary:       "Finishing up",
		body:          "After four pomodoros you earn a 20 minute break.",
		displayMillis: 8000,
	},
	pattern.KindIntro5: {
		summary:       "Here we go",
		body:          "Your first annotated cycle starts now.",
		displayMillis: 5000,
	},
	pattern.KindIntro6: {
		summary:       "Pomodoro (tour)",
		body:          "Focus for %s. This is a real work period.",
		wantsDuration: true,
		displayMillis: 5000,
	},
	pattern.KindIntro7: {
		summary:       "Break (tour)",
		body:          "Step away for %s. Stretch, hydrate.",
		wantsDuration: true,
		displayMillis: 5000,
	},
	pattern.KindIntro8: {
		summary:       "Tour complete",
		body:          "That was one full cycle. pomo runs the whole pattern from here on.",
		displayMillis: 8000,
	},
}

// intro0DisplayMillis is the desktop display duration for the greeting.
const intro0DisplayMillis = 5000

// Resolve builds the message for a period as seen by one backend.
// The console backend never carries a display duration. The greeting is
// the single kind whose wording differs per backend: the console version
// mentions the -i flag since a terminal user can act on it.
func Resolve(p pattern.Period, backend notify.Backend) notify.Message {
	if p.Kind == pattern.KindIntro0 {
		return resolveGreeting(backend)
	}

	t, ok := catalog[p.Kind]
	if !ok {
		return notify.Message{Summary: "pomo"}
	}

	body := t.body
	if t.wantsDuration {
		body = fmt.Sprintf(t.body, FormatSeconds(p.Seconds))
	}

	m := notify.Message{Summary: t.summary, Body: body}
	if backend == notify.BackendDesktop {
		m.DisplayMillis = t.displayMillis
	}
	return m
}

func resolveGreeting(backend notify.Backend) notify.Message {
	if backend == notify.BackendDesktop {
		return notify.Message{
			Summary:       "Welcome to pomo",
			Body:          "A short tour of the timer is about to start.",
			DisplayMillis: intro0DisplayMillis,
		}
	}
	return notify.Message{
		Summary: "Welcome to pomo",
		Body:    "A short tour of the timer is about to start. You can replay it any time with 'pomo -i'.",
	}
}
