package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", ""} {
		logger, err := NewLogger(level, false)
		require.NoError(t, err, "level %q", level)
		assert.NotNil(t, logger)
	}

	_, err := NewLogger("loud", false)
	assert.Error(t, err)
}

func TestNopLoggerChains(t *testing.T) {
	logger := NewNopLogger().WithFields(Fields{"component": "test"})
	assert.NotPanics(t, func() {
		logger.Debug("debug", Fields{"k": 1})
		logger.Info("info")
		logger.Warn("warn", nil)
		logger.Error("error", Fields{"": "dropped"})
	})
}

func TestZapFields(t *testing.T) {
	fields := zapFields([]Fields{
		{"a": 1, "": "skipped"},
		{"b": "two"},
	})
	assert.Len(t, fields, 2)

	assert.Empty(t, zapFields(nil))
}
