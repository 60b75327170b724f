package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureLog sets up the logger to write to a buffer and returns the buffer.
func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	cfg.Writer = &buf
	SetupLogging(cfg)
	return &buf
}

func TestSetupLogging_TimestampDefaultOn(t *testing.T) {
	buf := captureLog(LogConfig{})
	logger.Info("test")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, buf.String(), "default output should start with a timestamp")
}

func TestSetupLogging_TimestampExplicitlyDisabled(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(false)})
	logger.Info("hello")
	out := strings.TrimSpace(buf.String())
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, out, "output should not start with a timestamp")
	assert.Contains(t, out, "hello")
}

func TestSetupLogging_VerboseForcesTimestampsOn(t *testing.T) {
	buf := captureLog(LogConfig{Verbose: true, Timestamps: BoolPtr(false)})
	Debug("verbose-msg")
	out := buf.String()
	assert.Contains(t, out, "verbose-msg", "debug message should appear in verbose mode")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, out, "verbose should force timestamps on")
}

func TestSetupLogging_DebugHiddenByDefault(t *testing.T) {
	buf := captureLog(LogConfig{})
	Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, logger.GetLevel(), "verbose should set debug level")
}

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel(), "default should be info level")
}

func TestWarnIncludesKeyvals(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(false)})
	Warn("module name is not a Swift identifier", "module", "my-module")
	out := buf.String()
	assert.Contains(t, out, "module name is not a Swift identifier")
	assert.Contains(t, out, "my-module")
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
