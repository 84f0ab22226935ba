package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breachpath/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestNew_TextLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := logging.New(logging.Options{Level: "warn"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=1")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breachpath.log")
	var buf bytes.Buffer
	logger, closer, err := logging.New(logging.Options{Level: "debug", File: path}, &buf)
	require.NoError(t, err)

	logger.Debug("solved", "nodes", 42)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "solved", rec["msg"])
	assert.InDelta(t, 42, rec["nodes"], 0)
	assert.Contains(t, buf.String(), "msg=solved")
}

func TestNew_BadInputs(t *testing.T) {
	_, _, err := logging.New(logging.Options{Level: "nope"}, nil)
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)

	_, _, err = logging.New(logging.Options{File: filepath.Join(t.TempDir(), "missing", "x.log")}, nil)
	assert.Error(t, err)
}

func TestHandler_PuzzleAttr(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := logging.New(logging.Options{}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	ctx := logging.WithPuzzle(context.Background(), "sample")
	logger.With("phase", "solve").InfoContext(ctx, "start")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "puzzle=sample")
	assert.Contains(t, line, "phase=solve")

	label, ok := logging.PuzzleFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "sample", label)
}

func TestDiscard(t *testing.T) {
	assert.False(t, logging.Discard().Enabled(context.Background(), slog.LevelError))
}

func TestHandler_WithGroupKeepsPuzzleAttr(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := logging.New(logging.Options{}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	ctx := logging.WithPuzzle(context.Background(), "grouped")
	logger.WithGroup("search").InfoContext(ctx, "done", "nodes", 7)

	out := buf.String()
	assert.Contains(t, out, "search.nodes=7")
	assert.Contains(t, out, "puzzle=grouped")
}
