package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(level)
	l.SetOutput(&buf)
	l.EnableColors(false)
	return l, &buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zerolog.FatalLevel, ParseLevel("fatal"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestLoggerWritesMessageAndCaller(t *testing.T) {
	l, buf := newBufferLogger("info")
	l.Infof("Resizing renderer surface to: (%d, %d)", 640, 480)

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "Resizing renderer surface to: (640, 480)")
	assert.Contains(t, out, "logger_test.go:")
}

func TestLoggerLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger("warn")
	l.Debugf("hidden %s", "debug")
	l.Info("hidden info")
	l.Error("shown error")
	l.Errorf("shown %s", "formatted error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown error")
	assert.Contains(t, out, "shown formatted error")
}

func TestMultiLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hearth.log")
	l, err := NewMultiLogger("info", path)
	require.NoError(t, err)
	l.Info("to file")
	l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestDefaultDiscardsUntilInit(t *testing.T) {
	t.Cleanup(resetDefault)
	resetDefault()

	var buf bytes.Buffer
	Default().SetOutput(&buf)
	Default().Info("before init")
	assert.Empty(t, buf.String())
}

func TestInitOnlyOnce(t *testing.T) {
	t.Cleanup(resetDefault)
	resetDefault()

	require.NoError(t, Init(Options{Level: "debug"}))
	assert.ErrorIs(t, Init(Options{Level: "info"}), ErrAlreadyInitialized)

	var buf bytes.Buffer
	Default().SetOutput(&buf)
	Default().Debugf("after %s", "init")
	assert.Contains(t, buf.String(), "after init")
}

func TestInitWithFileAppliesToEarlierDefault(t *testing.T) {
	t.Cleanup(resetDefault)
	resetDefault()

	held := Default()
	path := filepath.Join(t.TempDir(), "hearth.log")
	require.NoError(t, Init(Options{Level: "info", File: path}))

	held.Info("through the held logger")
	held.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "through the held logger")
}

func TestInitRejectedKeepsFirstFile(t *testing.T) {
	t.Cleanup(resetDefault)
	resetDefault()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	require.NoError(t, Init(Options{Level: "info", File: first}))
	assert.ErrorIs(t, Init(Options{Level: "info", File: filepath.Join(dir, "second.log")}), ErrAlreadyInitialized)

	Default().Info("still first")
	Default().Close()

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "still first")
}
