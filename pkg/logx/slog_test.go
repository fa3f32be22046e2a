package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"slcsp/pkg/logx"
)

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		input string
		level slog.Level
	}{
		{input: "debug", level: slog.LevelDebug},
		{input: "INFO", level: slog.LevelInfo},
		{input: "warn", level: slog.LevelWarn},
		{input: "warning", level: slog.LevelWarn},
		{input: "error", level: slog.LevelError},
		{input: "", level: slog.LevelInfo},
		{input: "verbose", level: slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(*testing.T) {
			rq.Equal(tc.level, logx.ParseLevel(tc.input))
		})
	}
}

func TestNew(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := logx.New(&buf, slog.LevelInfo, false)
	log.Debug("hidden")
	log.Info("table built", slog.Int(logx.FieldRows, 3), logx.Error(errors.New("boom")))

	out := buf.String()
	rq.NotContains(out, "hidden")
	rq.Contains(out, "table built")
	rq.Contains(out, "rows=3")
	rq.Contains(out, "boom")
	rq.NotContains(out, "\x1b[")
}
