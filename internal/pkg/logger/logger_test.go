package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestBootstrapLoggerReportsBeforeInit(t *testing.T) {
	prev := global
	t.Cleanup(func() { Set(prev) })

	var buf bytes.Buffer
	Set(bootstrap(zapcore.AddSync(&buf)))

	Infof(context.Background(), "quiet")
	Error(WithRequestID(context.Background(), "req-1"), errors.New("db.dsn is required"))
	Sync()

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "db.dsn is required")
	assert.Contains(t, out, `"request_id":"req-1"`)
}

func TestDefaultIsNotNop(t *testing.T) {
	assert.True(t, global.Desugar().Core().Enabled(zapcore.ErrorLevel))
	assert.True(t, global.Desugar().Core().Enabled(zapcore.FatalLevel))
	assert.False(t, global.Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestInit_BadLevel(t *testing.T) {
	assert.Error(t, Init(Options{Level: "loud"}))
}
