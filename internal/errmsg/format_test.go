//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpLayoutSave,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpLayoutSave,
			err:      errors.New("database is locked"),
			expected: "Failed to save column layout: database is locked",
		},
		{
			name:     "storage open operation",
			op:       OpStorageOpen,
			err:      errors.New("permission denied"),
			expected: "Failed to open layout storage: permission denied",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("toml: expected value"),
			expected: "Failed to load config: toml: expected value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpColumnToggle,
			context:  "Suggestions",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpColumnToggle,
			context:  "Suggestions",
			err:      errors.New("disk full"),
			expected: "Failed to toggle column 'Suggestions': disk full",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpColumnResize,
			context:  "",
			err:      errors.New("disk full"),
			expected: "Failed to resize column: disk full",
		},
		{
			name:     "config path context",
			op:       OpConfigReload,
			context:  "/home/user/.config/smartpack/config.toml",
			err:      errors.New("invalid toml"),
			expected: "Failed to reload config '/home/user/.config/smartpack/config.toml': invalid toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	// Verify that Op constants are non-empty and produce valid messages
	ops := []Op{
		OpLayoutLoad, OpLayoutSave, OpLayoutReset,
		OpColumnToggle, OpColumnResize,
		OpStorageOpen,
		OpConfigLoad, OpConfigReload,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
