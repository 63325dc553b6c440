package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartpack.log")

	logger, err := New("info", path)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("layout saved")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "layout saved", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "smartpack", entry["logger"])
}

func TestNew_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartpack.log")

	logger, err := New("debug", path)
	require.NoError(t, err)

	logger.Debug("frame applied")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "frame applied")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", filepath.Join(t.TempDir(), "x.log"))
	assert.Error(t, err)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	logger, err := New("info", filepath.Join(t.TempDir(), "x.log"))
	require.NoError(t, err)
	assert.Same(t, logger, OrNop(logger))
}
