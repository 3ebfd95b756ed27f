package runner

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/easyvector/internal/core/observability/log"
	"github.com/zeusync/easyvector/internal/scenario"
)

const docA = `
scenarios:
  - name: determinant
    vectors: {a: [2, 3], b: [1, 5]}
    steps:
      - {op: determinant, args: [a, b], expect: -7}
  - name: angle
    vectors: {up: [0, 1]}
    steps:
      - {op: angle, args: [up], expect: 90}
`

const docB = `
scenarios:
  - name: wrong
    vectors: {v: [3, 4]}
    steps:
      - {op: magnitude, args: [v], expect: 4}
      - {op: len, args: [v], expect: 2}
`

func load(t *testing.T, src, name string) *scenario.Document {
	t.Helper()
	doc, err := scenario.Load([]byte(src))
	require.NoError(t, err)
	doc.Source = name
	return doc
}

func TestRunKeepsOrder(t *testing.T) {
	r := New(log.NewNop()).WithParallelism(4)
	report, err := r.Run(context.Background(), load(t, docA, "a.yaml"), load(t, docB, "b.yaml"))
	require.NoError(t, err)

	require.NotEmpty(t, report.RunID)
	require.Len(t, report.Documents, 2)
	require.Equal(t, "a.yaml", report.Documents[0].Source)
	require.Len(t, report.Scenarios, 3)

	names := []string{report.Scenarios[0].Name, report.Scenarios[1].Name, report.Scenarios[2].Name}
	require.Equal(t, []string{"determinant", "angle", "wrong"}, names)
	require.Equal(t, "b.yaml", report.Scenarios[2].Source)

	require.Equal(t, 1, report.Failed())
	require.False(t, report.Passed())
	require.InDelta(t, 2.0/3, report.PassRate(), 1e-12)
}

func TestReportPassRateEmpty(t *testing.T) {
	require.Equal(t, 1.0, (&Report{}).PassRate())
}

func TestRunLogsFailures(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := New(log.NewWithCore(core, log.LevelInfo)).WithParallelism(1)

	report, err := r.Run(context.Background(), load(t, docB, "b.yaml"))
	require.NoError(t, err)

	failed := logs.FilterMessage("scenario failed").All()
	require.Len(t, failed, 1)
	ctx := failed[0].ContextMap()
	require.Equal(t, "wrong", ctx["scenario"])
	require.Equal(t, report.RunID, ctx["run_id"])
	require.Equal(t, []any{"magnitude"}, ctx["failed_ops"])

	finished := logs.FilterMessage("run finished").All()
	require.Len(t, finished, 1)
	require.Equal(t, 0.0, finished[0].ContextMap()["pass_rate"])
	require.Zero(t, logs.FilterMessage("scenario passed").Len(), "debug entries filtered at info")
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(log.NewNop()).Run(ctx, load(t, docA, "a.yaml"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestReportWriteYAML(t *testing.T) {
	report, err := New(log.NewNop()).Run(context.Background(), load(t, docA, "a.yaml"))
	require.NoError(t, err)
	require.True(t, report.Passed())

	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, report.RunID, decoded["run_id"])
	require.Len(t, decoded["scenarios"], 2)
}
