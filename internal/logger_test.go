package internal

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, l.Enabled(context.Background(), level), "level %v", level)
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	RasterizeCircle(Circle{Radius: 5})
	assert.Contains(t, buf.String(), "rasterized circle")
	assert.Contains(t, buf.String(), "points=28")

	buf.Reset()
	FillTriangle(Triangle{pt(0, 0), pt(4, 0), pt(0, 4)})
	assert.Contains(t, buf.String(), "filled triangle")
	assert.Contains(t, buf.String(), "spans=5")

	SetLogger(nil)
	buf.Reset()
	RasterizeCircle(Circle{Radius: 5})
	assert.Empty(t, buf.String())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("key", "val")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("group"))
}
