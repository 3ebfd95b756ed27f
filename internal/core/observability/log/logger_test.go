package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: " INFO ", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "loud", want: LevelInfo, wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if tc.wantErr {
			require.Error(t, err)
		} else {
			require.NoError(t, err)
		}
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewWithCore(core, LevelWarn)

	l.Info("dropped")
	l.Warn("kept", String("name", "a"))
	require.Equal(t, 1, logs.Len())

	l.SetLevel(LevelDebug)
	require.Equal(t, LevelDebug, l.GetLevel())
	l.Debug("now kept")
	require.Equal(t, 2, logs.Len())
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewWithCore(core, LevelDebug).With(String("run", "r1"))

	l.Error("step failed",
		Int("step", 3),
		Float64("value", 1.5),
		Bool("passed", false),
		Duration("took", time.Millisecond),
		Strings("args", []string{"a", "b"}),
		Error(errors.New("boom")),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	require.Equal(t, "r1", ctx["run"])
	require.Equal(t, int64(3), ctx["step"])
	require.Equal(t, 1.5, ctx["value"])
	require.Equal(t, false, ctx["passed"])
	require.Equal(t, "boom", ctx["error"])
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	l.Info("ignored", String("k", "v"))
	require.Equal(t, LevelInfo, l.GetLevel())
}
