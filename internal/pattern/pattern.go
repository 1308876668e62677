// Package pattern defines the period kinds and the compact pattern
// mini-language that describes one full timer cycle.
//
// A pattern string is a colon-separated list of tokens, each token a kind
// code and a duration in seconds joined by a comma:
//
//	r,60:p,1500:b,180
//
// Kind codes are matched exactly and case-sensitively. Order in the string
// is playback order.
package pattern

import (
	"fmt"
	"strings"
)

// Kind identifies a period type within a pattern.
type Kind int

const (
	// KindReminder announces that a work period is about to start
	KindReminder Kind = iota
	// KindPomodoro is a focused work period
	KindPomodoro
	// KindBreak is a short rest between work periods
	KindBreak
	// KindFinish is the long rest closing a full cycle
	KindFinish
	// KindIntro0 through KindIntro8 are the fixed onboarding steps
	KindIntro0
	KindIntro1
	KindIntro2
	KindIntro3
	KindIntro4
	KindIntro5
	KindIntro6
	KindIntro7
	KindIntro8
)

// kindCodes maps each kind to its pattern mini-language code.
var kindCodes = map[Kind]string{
	KindReminder: "r",
	KindPomodoro: "p",
	KindBreak:    "b",
	KindFinish:   "f",
	KindIntro0:   "i0",
	KindIntro1:   "i1",
	KindIntro2:   "i2",
	KindIntro3:   "i3",
	KindIntro4:   "i4",
	KindIntro5:   "i5",
	KindIntro6:   "i6",
	KindIntro7:   "i7",
	KindIntro8:   "i8",
}

// codeKinds is the reverse of kindCodes, built once at init.
var codeKinds = func() map[string]Kind {
	m := make(map[string]Kind, len(kindCodes))
	for k, c := range kindCodes {
		m[c] = k
	}
	return m
}()

// String returns the mini-language code for the kind.
func (k Kind) String() string {
	if c, ok := kindCodes[k]; ok {
		return c
	}
	return "?"
}

// IsIntro reports whether the kind is one of the onboarding steps.
func (k Kind) IsIntro() bool {
	return k >= KindIntro0 && k <= KindIntro8
}

// Period is one entry of a pattern: a kind and its duration.
// A zero duration is legal; the period's message is still announced.
type Period struct {
	Kind    Kind
	Seconds int
}

// Pattern is an ordered sequence of periods. It is immutable once parsed;
// order fully determines playback order.
type Pattern []Period

// String re-encodes the pattern into the mini-language.
func (p Pattern) String() string {
	tokens := make([]string, len(p))
	for i, period := range p {
		tokens[i] = fmt.Sprintf("%s,%d", period.Kind, period.Seconds)
	}
	return strings.Join(tokens, ":")
}

// MalformedPatternError reports a token that does not match the
// kind,seconds grammar.
type MalformedPatternError struct {
	Token  string
	Reason string
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("malformed pattern token %q: %s", e.Token, e.Reason)
}

// Parse converts a pattern string into an ordered Pattern.
// An empty input yields an empty pattern. Any token violating the grammar
// fails the whole parse with a *MalformedPatternError and no partial result.
func Parse(raw string) (Pattern, error) {
	if raw == "" {
		return Pattern{}, nil
	}

	tokens := strings.Split(raw, ":")
	periods := make(Pattern, 0, len(tokens))
	for _, token := range tokens {
		code, duration, found := strings.Cut(token, ",")
		if !found {
			return nil, &MalformedPatternError{Token: token, Reason: "missing comma separator"}
		}

		kind, ok := codeKinds[code]
		if !ok {
			return nil, &MalformedPatternError{Token: token, Reason: fmt.Sprintf("unknown kind code %q", code)}
		}

		seconds, err := parseSeconds(duration)
		if err != nil {
			return nil, &MalformedPatternError{Token: token, Reason: err.Error()}
		}

		periods = append(periods, Period{Kind: kind, Seconds: seconds})
	}
	return periods, nil
}

// parseSeconds parses a base-10 non-negative integer. strconv.Atoi would
// accept a leading sign, which the grammar does not.
func parseSeconds(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("duration %q is not a non-negative integer", s)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// defaultRaw is the canonical cycle: four pomodoros with short breaks and
// reminders, closed by a long finish break.
const defaultRaw = "r,60:p,1500:b,180:r,15:p,1500:b,180:r,15:p,1500:b,180:r,15:p,1500:f,1200"

// introRaw is the fixed onboarding script: six short explanation steps,
// then one annotated work/break cycle and a wrap-up.
const introRaw = "i0,3:i1,10:i2,10:i3,10:i4,10:i5,3:i6,1500:i7,180:i8,3"

// Default returns the canonical 12-period cycle.
func Default() Pattern {
	p, err := Parse(defaultRaw)
	if err != nil {
		panic("pattern: invalid default pattern: " + err.Error())
	}
	return p
}

// DefaultString returns the canonical cycle in mini-language form,
// as persisted in the settings file.
func DefaultString() string {
	return defaultRaw
}

// Intro returns the fixed onboarding pattern.
func Intro() Pattern {
	p, err := Parse(introRaw)
	if err != nil {
		panic("pattern: invalid intro pattern: " + err.Error())
	}
	return p
}
