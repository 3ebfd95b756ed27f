package scenario

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeusync/easyvector/pkg/vector"
)

func TestEvaluateBasicFile(t *testing.T) {
	doc, err := LoadFile(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	for _, s := range doc.Scenarios {
		res, err := Evaluate(context.Background(), s)
		require.NoError(t, err)
		require.Len(t, res.Steps, len(s.Steps))
		for _, sr := range res.Steps {
			require.True(t, sr.Passed, "%s step %d (%s): %s", s.Name, sr.Index, sr.Op, sr.Reason)
		}
		require.True(t, res.Passed)
	}
}

func TestEvaluateMutationCarriesOver(t *testing.T) {
	s := Scenario{
		Name:    "mutate",
		Vectors: map[string][]float64{"v": {1, 2}, "w": {3, 4}},
		Steps: []Step{
			{Op: OpAddInPlace, Args: []string{"v", "w"}},
			{Op: OpIterate, Args: []string{"v"}, Expect: []any{4, 6}},
			{Op: OpIterate, Args: []string{"w"}, Expect: []any{3, 4}},
		},
	}
	res, err := Evaluate(context.Background(), s)
	require.NoError(t, err)
	require.True(t, res.Passed)
	require.Equal(t, []float64{4, 6}, res.Steps[1].Value)
}

func TestEvaluateFailures(t *testing.T) {
	s := Scenario{
		Name:    "failing",
		Vectors: map[string][]float64{"v": {3, 4}, "z": {0, 0}},
		Steps: []Step{
			{Op: OpMagnitude, Args: []string{"v"}, Expect: 4.0},
			{Op: OpNormalize, Args: []string{"z"}},
			{Op: OpMagnitude, Args: []string{"v"}, ExpectError: CodeZeroVector},
			{Op: OpNormalize, Args: []string{"z"}, Into: "n"},
			{Op: OpMagnitude, Args: []string{"n"}},
			{Op: OpLen, Args: []string{"v"}, Expect: "two"},
		},
	}
	res, err := Evaluate(context.Background(), s)
	require.NoError(t, err)
	require.False(t, res.Passed)

	require.False(t, res.Steps[0].Passed)
	require.Equal(t, 5.0, res.Steps[0].Value)

	require.False(t, res.Steps[1].Passed)
	require.Equal(t, CodeZeroVector, res.Steps[1].Error)

	require.False(t, res.Steps[2].Passed)
	require.Contains(t, res.Steps[2].Reason, CodeZeroVector)

	require.False(t, res.Steps[4].Passed)
	require.Contains(t, res.Steps[4].Reason, "unavailable")

	require.False(t, res.Steps[5].Passed)
}

func TestEvaluateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Evaluate(ctx, Scenario{
		Name:    "canceled",
		Vectors: map[string][]float64{"v": {1, 0}},
		Steps:   []Step{{Op: OpMagnitude, Args: []string{"v"}}},
	})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, res.Passed)
	require.Empty(t, res.Steps)
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("wrap: %w", vector.ErrDimensionMismatch), want: CodeDimensionMismatch},
		{err: vector.ErrIndexOutOfRange, want: CodeIndexOutOfRange},
		{err: vector.ErrZeroVector, want: CodeZeroVector},
		{err: vector.ErrNonFinite, want: CodeNonFinite},
		{err: vector.ErrNilVector, want: CodeNilVector},
		{err: errors.New("other"), want: CodeUnknown},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, ErrorCode(tc.err))
	}
}

func TestMatches(t *testing.T) {
	ok, _ := matches(90, 90.00000000000001)
	require.True(t, ok)
	ok, _ = matches(1.5, 1.6)
	require.False(t, ok)
	ok, _ = matches(2, 2)
	require.True(t, ok)
	ok, _ = matches([]any{1, 2.5}, []float64{1, 2.5})
	require.True(t, ok)
	ok, _ = matches([]any{1}, []float64{1, 2})
	require.False(t, ok)
	ok, _ = matches(true, true)
	require.True(t, ok)
	ok, _ = matches("a", "b")
	require.False(t, ok)
}
