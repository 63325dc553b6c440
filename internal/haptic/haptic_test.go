package haptic

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	patterns [][]time.Duration
	err      error
}

func (r *recorder) Vibrate(p []time.Duration) error {
	r.patterns = append(r.patterns, p)
	return r.err
}

func TestPattern(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		kind Kind
		want []time.Duration
	}{
		{Light, []time.Duration{5 * ms}},
		{Medium, []time.Duration{10 * ms}},
		{Heavy, []time.Duration{20 * ms}},
		{Selection, []time.Duration{3 * ms}},
		{Impact, []time.Duration{15 * ms, 10 * ms, 15 * ms}},
		{Notification, []time.Duration{20 * ms, 50 * ms, 20 * ms}},
		{Kind("other"), []time.Duration{10 * ms}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Pattern(tt.kind), "kind %s", tt.kind)
	}
}

func TestFeedback_OnlyOnMobile(t *testing.T) {
	r := &recorder{}
	mobile := false
	f := New(r, true, func() bool { return mobile })

	f.Tap()
	assert.Empty(t, r.patterns)

	mobile = true
	f.Threshold()
	assert.Equal(t, [][]time.Duration{Pattern(Impact)}, r.patterns)
}

func TestFeedback_DisabledOrMissing(t *testing.T) {
	r := &recorder{}
	New(r, false, nil).DragStart()
	assert.Empty(t, r.patterns)

	New(nil, true, nil).DragStart()

	var nilFeedback *Feedback
	assert.False(t, nilFeedback.Capable())
	nilFeedback.DragEnd()
}

func TestFeedback_SwallowsVibratorErrors(t *testing.T) {
	r := &recorder{err: errors.New("no motor")}
	f := New(r, true, nil)

	assert.NotPanics(t, func() { f.DragEnd() })
	assert.Len(t, r.patterns, 1)
}

func TestTerminal_WritesOneBellPerPulse(t *testing.T) {
	var buf bytes.Buffer
	term := &Terminal{w: &buf}

	assert.NoError(t, term.Vibrate(Pattern(Impact)))
	assert.Equal(t, "\a\a", buf.String())
}

func TestNewTerminal_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "haptic")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	assert.Nil(t, NewTerminal(f))
	assert.Nil(t, NewTerminal(nil))
}
