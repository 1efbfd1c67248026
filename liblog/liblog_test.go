package liblog

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestConsoleDropsOldest(t *testing.T) {
	c := NewConsole(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		c.Append(Line{Text: s})
	}

	assert.Equal(t, []string{"b", "c", "d"}, texts(c.Lines()))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, c.Cap())
}

func TestConsoleClear(t *testing.T) {
	c := NewConsole(2)
	c.Append(Line{Text: "a"})
	rev := c.Revision()
	c.Clear()

	assert.Empty(t, c.Lines())
	assert.Greater(t, c.Revision(), rev)
	c.Append(Line{Text: "b"})
	assert.Equal(t, []string{"b"}, texts(c.Lines()))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		filter string
		line   string
		pass   bool
	}{
		{"", "anything", true},
		{"shader", "[Error] could not compile Shader", true},
		{"shader", "[Info] loaded texture", false},
		{"-debug", "[Debug] noise", false},
		{"-debug", "[Info] signal", true},
		{"texture, shader", "[Info] loaded texture", true},
		{"texture,-error", "[Error] texture missing", false},
		{" , ", "blank terms", true},
	}
	for _, tt := range tests {
		f := NewFilter(tt.filter)
		assert.Equal(t, tt.pass, f.Pass(tt.line), "filter %q on %q", tt.filter, tt.line)
	}
}

func TestFilterReset(t *testing.T) {
	f := NewFilter("abc")
	f.Set("")
	assert.False(t, f.Active())
	assert.True(t, f.Pass("xyz"))
}

func TestLevelNames(t *testing.T) {
	assert.Equal(t, "Error", LevelName(slog.LevelError))
	assert.Equal(t, "Warning", LevelName(slog.LevelWarn))
	assert.Equal(t, "Info", LevelName(slog.LevelInfo))
	assert.Equal(t, "Debug", LevelName(slog.LevelDebug))

	level, err := ParseLevel("Warning")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestHandlerFormatsLines(t *testing.T) {
	console := NewConsole(8)
	term := &bytes.Buffer{}
	logger := slog.New(NewHandler(console, term, slog.LevelInfo)).With("pass", "grid")

	logger.Debug("hidden")
	logger.Error("could not compile", "file", "grid frag")

	lines := console.Lines()
	require.Len(t, lines, 1)
	text := lines[0].Text
	assert.True(t, strings.HasPrefix(text, "[Error] liblog_test.go:TestHandlerFormatsLines():"), text)
	assert.True(t, strings.HasSuffix(text, `could not compile pass=grid file="grid frag"`), text)
	assert.Equal(t, slog.LevelError, lines[0].Level)
	assert.Contains(t, term.String(), "could not compile")
}

func TestHandlerGroups(t *testing.T) {
	console := NewConsole(8)
	logger := slog.New(NewHandler(console, nil, slog.LevelDebug)).WithGroup("camera")

	logger.Info("moved", slog.Group("pos", "x", 1))
	require.Equal(t, 1, console.Len())
	assert.True(t, strings.HasSuffix(console.Lines()[0].Text, "moved camera.pos.x=1"))
}

func TestExport(t *testing.T) {
	c := NewConsole(4)
	c.Append(Line{Text: "one"})
	c.Append(Line{Text: "two"})

	plain := &bytes.Buffer{}
	require.NoError(t, c.Export(plain, false))
	assert.Equal(t, "one\ntwo\n", plain.String())

	packed := &bytes.Buffer{}
	require.NoError(t, c.Export(packed, true))
	unpacked, err := io.ReadAll(lz4.NewReader(packed))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(unpacked))
}

func TestExportFile(t *testing.T) {
	c := NewConsole(4)
	c.Append(Line{Text: "saved"})

	dir := t.TempDir()
	plainPath := filepath.Join(dir, "logs", "viewer.log")
	require.NoError(t, c.ExportFile(plainPath))
	data, err := os.ReadFile(plainPath)
	require.NoError(t, err)
	assert.Equal(t, "saved\n", string(data))

	packedPath := filepath.Join(dir, "viewer.log.lz4")
	require.NoError(t, c.ExportFile(packedPath))
	f, err := os.Open(packedPath)
	require.NoError(t, err)
	defer f.Close()
	unpacked, err := io.ReadAll(lz4.NewReader(f))
	require.NoError(t, err)
	assert.Equal(t, "saved\n", string(unpacked))
}

func TestLevelIndex(t *testing.T) {
	assert.Equal(t, 0, LevelIndex(slog.LevelError))
	assert.Equal(t, 0, LevelIndex(slog.LevelError+4))
	assert.Equal(t, 1, LevelIndex(slog.LevelWarn))
	assert.Equal(t, 2, LevelIndex(slog.LevelInfo+1))
	assert.Equal(t, 3, LevelIndex(slog.LevelDebug-4))
}

func TestHandlerFollowsLevelVar(t *testing.T) {
	console := NewConsole(8)
	level := &slog.LevelVar{}
	logger := slog.New(NewHandler(console, nil, level))

	logger.Debug("hidden")
	level.Set(slog.LevelDebug)
	logger.Debug("shown")

	require.Equal(t, 1, console.Len())
	assert.Contains(t, console.Lines()[0].Text, "shown")
}

func TestExportCompressedEmpty(t *testing.T) {
	packed := &bytes.Buffer{}
	require.NoError(t, NewConsole(4).Export(packed, true))
	assert.NotZero(t, packed.Len(), "an empty console still writes a frame")

	unpacked, err := io.ReadAll(lz4.NewReader(packed))
	require.NoError(t, err)
	assert.Empty(t, unpacked)
}
