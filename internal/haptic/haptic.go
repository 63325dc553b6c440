// Package haptic gives tactile feedback for layout gestures on devices that
// can provide it. Absence of a capable device is never an error.
package haptic

import (
	"io"
	"time"

	"github.com/mattn/go-isatty"
)

// Kind is the intent of a feedback pulse.
type Kind string

const (
	Light        Kind = "light"
	Medium       Kind = "medium"
	Heavy        Kind = "heavy"
	Selection    Kind = "selection"
	Impact       Kind = "impact"
	Notification Kind = "notification"
)

// Pattern returns the vibration pattern for a kind: alternating on/off
// durations, starting with "on".
func Pattern(k Kind) []time.Duration {
	ms := func(v ...int) []time.Duration {
		out := make([]time.Duration, len(v))
		for i, n := range v {
			out[i] = time.Duration(n) * time.Millisecond
		}
		return out
	}
	switch k {
	case Light:
		return ms(5)
	case Medium:
		return ms(10)
	case Heavy:
		return ms(20)
	case Selection:
		return ms(3)
	case Impact:
		return ms(15, 10, 15)
	case Notification:
		return ms(20, 50, 20)
	default:
		return ms(10)
	}
}

// Vibrator plays a vibration pattern.
type Vibrator interface {
	Vibrate(pattern []time.Duration) error
}

// Terminal "vibrates" by ringing the terminal bell once per pulse.
type Terminal struct {
	w io.Writer
}

// TTY is a terminal output stream. Hosts that render to the same terminal
// should pass a writer that serializes with their renderer.
type TTY interface {
	io.Writer
	Fd() uintptr
}

// NewTerminal returns a Terminal vibrator writing to f, or nil when f is not
// a terminal. The result can be passed to New as is.
func NewTerminal(f TTY) Vibrator {
	if f == nil {
		return nil
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return &Terminal{w: f}
}

// Vibrate writes one BEL per "on" segment of the pattern.
func (t *Terminal) Vibrate(pattern []time.Duration) error {
	pulses := (len(pattern) + 1) / 2
	buf := make([]byte, pulses)
	for i := range buf {
		buf[i] = '\a'
	}
	_, err := t.w.Write(buf)
	return err
}

// Feedback decides whether a pulse should be played and plays it.
type Feedback struct {
	vibrator Vibrator
	enabled  bool
	mobile   func() bool
}

// New returns a Feedback. A nil vibrator disables feedback. mobile reports
// whether the current device type is a mobile one; feedback is only given
// on mobile devices.
func New(v Vibrator, enabled bool, mobile func() bool) *Feedback {
	return &Feedback{vibrator: v, enabled: enabled, mobile: mobile}
}

// Capable reports whether a pulse would be played right now.
func (f *Feedback) Capable() bool {
	if f == nil || !f.enabled || f.vibrator == nil {
		return false
	}
	return f.mobile == nil || f.mobile()
}

// Trigger plays the pattern for k if the device is capable. Errors from the
// vibrator are swallowed.
func (f *Feedback) Trigger(k Kind) {
	if !f.Capable() {
		return
	}
	_ = f.vibrator.Vibrate(Pattern(k))
}

// Convenience pulses for the gestures of the layout.
func (f *Feedback) Tap()       { f.Trigger(Light) }
func (f *Feedback) DragStart() { f.Trigger(Light) }
func (f *Feedback) DragEnd()   { f.Trigger(Light) }
func (f *Feedback) Threshold() { f.Trigger(Impact) }
