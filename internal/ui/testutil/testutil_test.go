package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/smartpack/internal/keymap"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Packing Checklist", "Packing Checklist"},
		{"styled", "\x1b[1;38;2;59;130;246mSmartPack\x1b[0m", "SmartPack"},
		{"pointer shape", "\x1b]22;col-resize\x07 SmartPack", " SmartPack"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	assert.Equal(t, 9, MeasureWidth("\x1b[1mSmartPack\x1b[0m"))
	assert.Equal(t, 1, MeasureWidth("\x1b[38;5;240m│\x1b[0m"))
	assert.Equal(t, 0, MeasureWidth("\x1b]22;default\x07"))
}

func TestAssertContains(t *testing.T) {
	out := "\x1b[1mTrip Details\x1b[0m"

	assert.Empty(t, AssertContains(out, "Trip Details"))
	assert.NotEmpty(t, AssertContains(out, "Suggestions"))
	assert.Empty(t, AssertNotContains(out, "Suggestions"))
	assert.NotEmpty(t, AssertNotContains(out, "Trip"))
}

func TestKey_RoundTripsEveryBinding(t *testing.T) {
	for _, b := range keymap.Bindings {
		for _, k := range b.Keys {
			assert.Equal(t, k, Key(k).String(), "binding %s", b.Action)
		}
	}
}
