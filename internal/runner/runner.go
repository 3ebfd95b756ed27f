package runner

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/easyvector/internal/core/observability/log"
	"github.com/zeusync/easyvector/internal/scenario"
	"github.com/zeusync/easyvector/pkg/concurrent"
	"github.com/zeusync/easyvector/pkg/sequence"
)

// Runner evaluates scenario documents concurrently. Each scenario owns its
// vectors, so scenarios never share state.
type Runner struct {
	logger      log.Log
	parallelism int
}

func New(logger log.Log) *Runner {
	return &Runner{
		logger:      logger,
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithParallelism bounds how many scenarios run at once. n <= 0 means unbounded.
func (r *Runner) WithParallelism(n int) *Runner {
	r.parallelism = n
	return r
}

type job struct {
	index    int
	source   string
	scenario scenario.Scenario
}

// Run evaluates every scenario of docs. The report keeps input order.
func (r *Runner) Run(ctx context.Context, docs ...*scenario.Document) (*Report, error) {
	start := time.Now()
	report := &Report{
		RunID:   uuid.NewString(),
		Started: start,
	}
	logger := r.logger.With(log.String("run_id", report.RunID))

	var jobs []job
	for _, doc := range docs {
		report.Documents = append(report.Documents, DocumentInfo{Source: doc.Source, Digest: doc.Digest})
		for _, s := range doc.Scenarios {
			jobs = append(jobs, job{index: len(jobs), source: doc.Source, scenario: s})
		}
	}
	report.Scenarios = make([]scenario.Result, len(jobs))

	logger.Info("run started",
		log.Int("documents", len(docs)),
		log.Int("scenarios", len(jobs)),
		log.Int("parallelism", r.parallelism),
	)

	err := concurrent.Concurrent(ctx, sequence.From(jobs), r.parallelism, func(ctx context.Context, j job) error {
		res, err := scenario.Evaluate(ctx, j.scenario)
		res.Source = j.source
		report.Scenarios[j.index] = res
		if err != nil {
			return err
		}

		fields := []log.Field{
			log.String("scenario", res.Name),
			log.Int("steps", len(res.Steps)),
			log.Bool("passed", res.Passed),
			log.Duration("duration", res.Duration),
		}
		if res.Passed {
			logger.Debug("scenario passed", fields...)
			return nil
		}
		failed := sequence.Map(
			sequence.From(res.Steps).Filter(func(s scenario.StepResult) bool { return !s.Passed }),
			func(s scenario.StepResult) string { return string(s.Op) },
		).Collect()
		logger.Warn("scenario failed", append(fields, log.Strings("failed_ops", failed))...)
		return nil
	})
	report.Duration = time.Since(start)
	if err != nil {
		logger.Error("run aborted", log.Error(err))
		return report, err
	}

	logger.Info("run finished",
		log.Int("failed", report.Failed()),
		log.Float64("pass_rate", report.PassRate()),
		log.Duration("duration", report.Duration),
	)
	return report, nil
}
