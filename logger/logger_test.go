package logger_test

import (
	"bytes"
	"log"
	"regexp"
	"testing"

	"github.com/replykit/reply/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	logLevelRegexp = regexp.MustCompile(`\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger_test\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func newTestLogger(w *bytes.Buffer) *log.Logger {
	return log.New(w, "", 0)
}

func TestLoggerLevels(t *testing.T) {
	tcs := []struct {
		name  string
		level logger.LogLevel
		log   func(logger.Logger)
		emits bool
	}{
		{"Debug-At-Info", logger.LogLevelInfo, func(l logger.Logger) { l.Debug("quiet", nil) }, false},
		{"Info-At-Info", logger.LogLevelInfo, func(l logger.Logger) { l.Info("hello", nil) }, true},
		{"Warn-At-Error", logger.LogLevelError, func(l logger.Logger) { l.Warn("quiet", nil) }, false},
		{"Error-At-Error", logger.LogLevelError, func(l logger.Logger) { l.Error("oops", nil) }, true},
		{"Debug-At-Debug", logger.LogLevelDebug, func(l logger.Logger) { l.Debug("loud", nil) }, true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			b := new(bytes.Buffer)
			l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(tc.level))

			tc.log(l)

			if !tc.emits {
				require.Zero(t, b.Len())
				return
			}

			out := b.String()
			assert.Regexp(t, logLevelRegexp, out)
			assert.Regexp(t, fpRegexp, out)
			assert.Regexp(t, msgRegexp, out)
		})
	}
}

func TestLoggerLogContext(t *testing.T) {
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	l.Info("with context", &logger.LogContext{Data: map[string]any{"id": 1}})

	out := b.String()
	assert.Contains(t, out, "log_context:")
	assert.Contains(t, out, `"id":1`)
}

func TestLoggerAddSkip(t *testing.T) {
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	sl, ok := l.(logger.SkipLogger)
	require.True(t, ok)
	require.Equal(t, 0, sl.Skip())
	require.Equal(t, 2, sl.AddSkip(2).Skip())

	// the original is untouched
	require.Equal(t, 0, sl.Skip())
}

func TestNewLogLevel(t *testing.T) {
	tcs := []struct {
		val      string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"sideways", logger.LogLevelUnk},
	}

	for _, tc := range tcs {
		t.Run(tc.val, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.val))
		})
	}
}
