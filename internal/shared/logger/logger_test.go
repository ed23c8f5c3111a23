package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionalSourceHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		levels     []slog.Level
		wantSource bool
	}{
		{"info skipped", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn annotated", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error annotated", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"debug mode annotates info", slog.LevelInfo, []slog.Level{slog.LevelDebug, slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewConditionalSourceHandler(base, tt.levels...))

			log.Log(context.Background(), tt.level, "issue transitioned", "issue_id", "iss_abc")

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
			assert.Contains(t, buf.String(), "issue_id=iss_abc")
		})
	}
}

func TestConditionalSourceHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).
		With("actor_id", "usr_1").
		WithGroup("request")

	log.Info("support recorded", "path", "/api/v1/issues/iss_abc/support")

	out := buf.String()
	assert.NotContains(t, out, "source=")
	assert.Contains(t, out, "actor_id=usr_1")
	assert.Contains(t, out, "request.path=")
}

func TestConditionalSourceHandler_RespectsBaseLevel(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewConditionalSourceHandler(base, slog.LevelError)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger().Named("test").With("k", "v")
	assert.NotPanics(t, func() {
		log.Infow("ignored", "issue_id", "iss_1")
		log.Errorw("ignored", "error", assert.AnError)
	})
}
