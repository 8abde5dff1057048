package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdoutHandlerFormats(t *testing.T) {
	var dev, prod bytes.Buffer

	slog.New(stdoutHandler(&dev, true)).Info("goal created", "goal_id", "g1")
	slog.New(stdoutHandler(&prod, false)).Info("goal created", "goal_id", "g1")

	assert.Contains(t, dev.String(), "msg=\"goal created\"")
	assert.Contains(t, prod.String(), `"msg":"goal created"`)
	assert.Contains(t, prod.String(), `"goal_id":"g1"`)
}

func TestStdoutHandlerLevels(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, stdoutHandler(&buf, true).Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, stdoutHandler(&buf, false).Enabled(context.Background(), slog.LevelDebug))
}
