package xlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(t *testing.T, buf *bytes.Buffer) LoggerWithLevel {
	t.Helper()
	logger, cleanup, err := New().SetOutput(buf).SetFormat("json").Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })
	return logger
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for line := range strings.Lines(buf.String()) {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestBuilder_Defaults(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := New().SetOutput(&buf).Build()
	require.NoError(t, err)
	defer func() { assert.NoError(t, cleanup()) }()

	assert.Equal(t, LevelInfo, logger.GetLevel())
	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "shown", Input("127.0.0.1:80"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "input=127.0.0.1:80")
}

func TestBuilder_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(t, &buf)

	logger.Warn(context.Background(), "parse failed",
		Input("a:b"), Network("tcp"), Index(3), Count(7), Err(errors.New("boom")))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	m := lines[0]
	assert.Equal(t, "WARN", m["level"])
	assert.Equal(t, "parse failed", m["msg"])
	assert.Equal(t, "a:b", m[KeyInput])
	assert.Equal(t, "tcp", m[KeyNetwork])
	assert.EqualValues(t, 3, m[KeyIndex])
	assert.EqualValues(t, 7, m[KeyCount])
	assert.Equal(t, "boom", m[KeyError])
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	_, _, err := New().
		SetLevelString("loud").
		SetFormat("xml").
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown level "loud"`)

	_, _, err = New().SetFormat("xml").SetLevelString("debug").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)

	_, _, err = New().SetOutput(nil).Build()
	assert.Error(t, err)
}

func TestBuilder_FormatNormalized(t *testing.T) {
	for _, f := range []string{"", "TEXT", " json "} {
		_, _, err := New().SetOutput(&bytes.Buffer{}).SetFormat(f).Build()
		assert.NoError(t, err, "format %q", f)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(t, &buf)
	ctx := context.Background()

	assert.False(t, logger.Enabled(ctx, LevelDebug))
	logger.SetLevel(LevelDebug)
	assert.True(t, logger.Enabled(ctx, LevelDebug))
	assert.Equal(t, LevelDebug, logger.GetLevel())

	child := logger.With(Component("scan"))
	child.Debug(ctx, "line")
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "scan", lines[0][KeyComponent])

	// 派生 logger 与父级共享级别
	logger.SetLevel(LevelError)
	child.Warn(ctx, "dropped")
	assert.Len(t, decodeLines(t, &buf), 1)
}

func TestLogger_WithNoAttrs(t *testing.T) {
	logger := newJSONLogger(t, &bytes.Buffer{})
	assert.Same(t, logger, logger.With())
	assert.Same(t, logger, logger.WithGroup(""))
}

func TestLogger_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(t, &buf)

	logger.WithGroup("spec").Info(context.Background(), "parsed", Network("unix"))
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	group, ok := lines[0]["spec"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "unix", group[KeyNetwork])
}

func TestLogger_ReplaceAttr(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New().
		SetOutput(&buf).
		SetFormat("json").
		SetReplaceAttr(func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == KeyInput {
				return slog.String(KeyInput, "***")
			}
			return a
		}).
		Build()
	require.NoError(t, err)

	logger.Info(context.Background(), "x", Input("secret"))
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "***", lines[0][KeyInput])
}

func TestLogger_AddSource(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).SetFormat("json").SetAddSource(true).Build()
	require.NoError(t, err)

	logger.Info(context.Background(), "src")
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	src, ok := lines[0][slog.SourceKey].(map[string]any)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(src["file"].(string), "xlog_test.go"), src["file"])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLogger_OnError(t *testing.T) {
	var got []error
	logger, _, err := New().
		SetOutput(failingWriter{}).
		SetOnError(func(err error) { got = append(got, err) }).
		Build()
	require.NoError(t, err)

	logger.Info(context.Background(), "a")
	logger.Error(context.Background(), "b")
	require.Len(t, got, 2)
	assert.EqualError(t, got[0], "disk full")

	xl := logger.(*xlogger)
	assert.EqualValues(t, 2, xl.errorCount.Load())
}

func TestLogger_OnErrorPanicRecovered(t *testing.T) {
	logger, _, err := New().
		SetOutput(failingWriter{}).
		SetOnError(func(error) { panic("callback") }).
		Build()
	require.NoError(t, err)

	assert.NotPanics(t, func() { logger.Warn(context.Background(), "x") })
	assert.EqualValues(t, 2, logger.(*xlogger).errorCount.Load())
}

func TestErr_Nil(t *testing.T) {
	assert.True(t, Err(nil).Equal(slog.Attr{}))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" INFO ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"Error", LevelError, false},
		{"trace", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_Text(t *testing.T) {
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "INFO+2", Level(2).String())

	text, err := LevelError.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ERROR", string(text))

	var l Level
	require.NoError(t, l.UnmarshalText([]byte("debug")))
	assert.Equal(t, LevelDebug, l)
	assert.Error(t, l.UnmarshalText([]byte("nope")))
}

func TestRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, cleanup, err := New().
		SetFormat("json").
		SetRotation(path, WithMaxSize(1), WithMaxBackups(2), WithMaxAge(1), WithCompress(false)).
		Build()
	require.NoError(t, err)

	logger.Info(context.Background(), "to file", Count(1))
	require.NoError(t, cleanup())
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
}

func TestRotation_Invalid(t *testing.T) {
	_, _, err := New().SetRotation("").Build()
	require.ErrorIs(t, err, ErrInvalidRotation)

	_, _, err = New().SetRotation("x.log", WithMaxSize(0)).Build()
	require.ErrorIs(t, err, ErrInvalidRotation)

	_, _, err = New().SetRotation("x.log", WithMaxBackups(-1)).Build()
	require.ErrorIs(t, err, ErrInvalidRotation)
}

func TestGlobal(t *testing.T) {
	t.Cleanup(ResetDefault)

	ResetDefault()
	first := Default()
	assert.Same(t, first, Default())

	var buf bytes.Buffer
	logger := newJSONLogger(t, &buf)
	SetDefault(logger)
	SetDefault(nil)
	assert.Same(t, logger, Default())

	logger.SetLevel(LevelDebug)
	ctx := context.Background()
	Debug(ctx, "d")
	Info(ctx, "i")
	Warn(ctx, "w")
	Error(ctx, "e")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)
	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, "ERROR", lines[3]["level"])
}

func TestGlobal_Source(t *testing.T) {
	t.Cleanup(ResetDefault)

	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).SetFormat("json").SetAddSource(true).Build()
	require.NoError(t, err)
	SetDefault(logger)

	Info(context.Background(), "g")
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	src := lines[0][slog.SourceKey].(map[string]any)
	assert.True(t, strings.HasSuffix(src["file"].(string), "xlog_test.go"), src["file"])
}
