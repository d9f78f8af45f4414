package logging

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(level LogLevel, format string) (*SiteLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: level, Format: format, Output: &buf})
	return logger, &buf
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, "text")
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	assert.Empty(t, buf.String())

	logger.Warn(ctx, nil, "warn message")
	logger.Error(ctx, nil, "error message")

	output := buf.String()
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
	assert.NotContains(t, output, "info message")
}

func TestStructuredFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, "text")

	logger.Info(context.Background(), "validated", "files", 7, "invalid", 0)

	output := buf.String()
	assert.Contains(t, output, "files=7")
	assert.Contains(t, output, "invalid=0")
}

func TestWithComponent(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, "text")

	logger.WithComponent("validate").Info(context.Background(), "starting")
	assert.Contains(t, buf.String(), "component=validate")
}

func TestWithFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, "text")

	child := logger.With("run_id", "abc123")
	child.Info(context.Background(), "first")
	child.Info(context.Background(), "second")

	output := buf.String()
	assert.Equal(t, 2, strings.Count(output, "run_id=abc123"))
}

func TestErrorField(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, "text")

	logger.Error(context.Background(), fmt.Errorf("boom"), "operation failed")

	output := buf.String()
	assert.Contains(t, output, "operation failed")
	assert.Contains(t, output, "error=boom")
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, "json")

	logger.Info(context.Background(), "hello", "count", 3)

	output := buf.String()
	assert.Contains(t, output, `"msg":"hello"`)
	assert.Contains(t, output, `"count":3`)
}

func TestOpLogger(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, "text")

	op := logger.StartOperation("content-validation")
	op.End(context.Background())

	output := buf.String()
	assert.Contains(t, output, "operation=content-validation")
	assert.Contains(t, output, "duration_ms=")
}

func TestOpLoggerEndWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, "text")

	op := logger.StartOperation("verify-build")
	op.EndWithError(context.Background(), fmt.Errorf("build optimization failed: 2 error(s)"))

	output := buf.String()
	assert.Contains(t, output, "Operation failed")
	assert.Contains(t, output, "operation=verify-build")
	assert.Contains(t, output, "build optimization failed: 2 error(s)")
	assert.Contains(t, output, "duration_ms=")
}
