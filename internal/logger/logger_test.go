package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("info", true, &buf)
	require.NoError(t, err)

	l.Infow("compatibility evaluated", "findings", 3)
	l.Debug("hidden at info level")
	require.NoError(t, l.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "compatibility evaluated", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 3, entry["findings"])
}

func TestSetLevelAndOutput(t *testing.T) {
	var first, second bytes.Buffer
	l, err := New("warn", false, &first)
	require.NoError(t, err)

	l.Info("dropped")
	l.SetLevel(log.LevelTrace)
	l.SetOutput(&second)
	l.Tracef("part %d imported", 7)
	require.NoError(t, l.Sync())

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "part 7 imported")
	assert.Contains(t, second.String(), "DEBUG")
}

func TestUnknownLevel(t *testing.T) {
	_, err := New("loud", false, &bytes.Buffer{})
	assert.Error(t, err)
}
