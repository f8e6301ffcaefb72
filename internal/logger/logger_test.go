package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs(t *testing.T) {
	got := sanitizeKVs([]interface{}{"user", "alice", "POSTGRES_PASSWORD", "hunter2", "dangling"})
	assert.Equal(t, []interface{}{"user", "alice", "POSTGRES_PASSWORD", "[REDACTED]", "dangling"}, got)
}

func TestLoggerRedactsFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := &Logger{SugaredLogger: zap.New(core).Sugar()}

	log.With("service", "glossary").Info("connecting", "minio_secret_key", "abc", "bucket", "terms")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "[REDACTED]", fields["minio_secret_key"])
		assert.Equal(t, "terms", fields["bucket"])
		assert.Equal(t, "glossary", fields["service"])
	}
}
