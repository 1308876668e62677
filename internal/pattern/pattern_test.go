// Package pattern_test tests the pattern mini-language parser and the
// canonical default and intro patterns.
// Related: internal/pattern/pattern.go
// Tags: pattern, parser, mini-language, periods
package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidTokens(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  string
		want Pattern
	}{
		"single token": {
			raw:  "p,1500",
			want: Pattern{{Kind: KindPomodoro, Seconds: 1500}},
		},
		"ordered sequence": {
			raw: "r,60:p,1500:b,180",
			want: Pattern{
				{Kind: KindReminder, Seconds: 60},
				{Kind: KindPomodoro, Seconds: 1500},
				{Kind: KindBreak, Seconds: 180},
			},
		},
		"intro codes": {
			raw: "i0,3:i8,10",
			want: Pattern{
				{Kind: KindIntro0, Seconds: 3},
				{Kind: KindIntro8, Seconds: 10},
			},
		},
		"zero duration is legal": {
			raw:  "f,0",
			want: Pattern{{Kind: KindFinish, Seconds: 0}},
		},
		"no upper bound on duration": {
			raw:  "p,86400000",
			want: Pattern{{Kind: KindPomodoro, Seconds: 86400000}},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(test.raw)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParse_EmptyInputYieldsEmptyPattern(t *testing.T) {
	t.Parallel()

	got, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestParse_MalformedTokens(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown kind code":          "x,10",
		"missing comma":              "p1500",
		"empty duration":             "p,",
		"negative duration":          "p,-5",
		"non-numeric duration":       "p,abc",
		"uppercase code":             "P,1500",
		"prefix must not match":      "pp,1500",
		"intro code out of range":    "i9,10",
		"bad token mid-sequence":     "r,60:x,10:p,1500",
		"trailing colon empty token": "p,1500:",
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(raw)
			require.Error(t, err)
			assert.Nil(t, got, "malformed input must not produce a partial pattern")

			var malformed *MalformedPatternError
			require.ErrorAs(t, err, &malformed)
		})
	}
}

func TestDefault_TwelveDescriptorsInDocumentedOrder(t *testing.T) {
	t.Parallel()

	p := Default()
	require.Len(t, p, 12)

	wantKinds := []Kind{
		KindReminder, KindPomodoro, KindBreak,
		KindReminder, KindPomodoro, KindBreak,
		KindReminder, KindPomodoro, KindBreak,
		KindReminder, KindPomodoro, KindFinish,
	}
	wantSeconds := []int{60, 1500, 180, 15, 1500, 180, 15, 1500, 180, 15, 1500, 1200}

	for i, period := range p {
		assert.Equal(t, wantKinds[i], period.Kind, "kind at index %d", i)
		assert.Equal(t, wantSeconds[i], period.Seconds, "duration at index %d", i)
	}
}

func TestIntro_ParsesAndEndsWithWrapUp(t *testing.T) {
	t.Parallel()

	p := Intro()
	require.NotEmpty(t, p)
	assert.Equal(t, KindIntro0, p[0].Kind)
	assert.Equal(t, KindIntro8, p[len(p)-1].Kind)
	for _, period := range p {
		assert.True(t, period.Kind.IsIntro())
	}
}

func TestPattern_StringRoundTrip(t *testing.T) {
	t.Parallel()

	raw := "r,60:p,1500:b,180:f,1200:i0,3"
	p, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, p.String())

	again, err := Parse(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "r", KindReminder.String())
	assert.Equal(t, "p", KindPomodoro.String())
	assert.Equal(t, "b", KindBreak.String())
	assert.Equal(t, "f", KindFinish.String())
	assert.Equal(t, "i0", KindIntro0.String())
	assert.Equal(t, "i8", KindIntro8.String())
	assert.Equal(t, "?", Kind(99).String())
}

func TestKind_IsIntro(t *testing.T) {
	t.Parallel()

	assert.False(t, KindPomodoro.IsIntro())
	assert.False(t, KindFinish.IsIntro())
	assert.True(t, KindIntro0.IsIntro())
	assert.True(t, KindIntro4.IsIntro())
	assert.True(t, KindIntro8.IsIntro())
}

func TestDefaultString_MatchesDefault(t *testing.T) {
	t.Parallel()

	p, err := Parse(DefaultString())
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}
