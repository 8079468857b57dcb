package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		level   string
		wantErr bool
	}{
		{name: "slog default", backend: "", level: "info"},
		{name: "slog empty level", backend: "slog", level: ""},
		{name: "zap", backend: "zap", level: "debug"},
		{name: "zap upper-case", backend: "ZAP", level: "warn"},
		{name: "bad slog level", backend: "slog", level: "loud", wantErr: true},
		{name: "bad zap level", backend: "zap", level: "loud", wantErr: true},
		{name: "unknown backend", backend: "logrus", level: "info", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(tt.backend, tt.level, &buf)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			l.Error(context.Background(), "boom", "k", "v")
			assert.Contains(t, buf.String(), "boom")
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("slog", "warn", &buf)
	require.NoError(t, err)

	l.Info(context.Background(), "hidden")
	l.Warn(context.Background(), "visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	ctx := context.Background()
	l.Debug(ctx, "x")
	l.Info(ctx, "x")
	l.Warn(ctx, "x")
	l.With("a", 1).Error(ctx, "x")
}
