package concurrent

import (
	"context"

	"github.com/zeusync/easyvector/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// Concurrent runs action for each element of the iterator in its own goroutine,
// with at most limit running at once (limit <= 0 means unbounded).
// It waits for all goroutines to finish and returns the first error encountered.
// The context passed to action is canceled after the first error; no new
// elements are started once it is done.
func Concurrent[T any](ctx context.Context, i *sequence.Iterator[T], limit int, action func(context.Context, T) error) error {
	errGroup, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		errGroup.SetLimit(limit)
	}

	next, stop := i.Pull()
	defer stop()

	for {
		if groupCtx.Err() != nil {
			break
		}
		value, valid := next()
		if !valid {
			break
		}

		errGroup.Go(func() error {
			return action(groupCtx, value)
		})
	}

	if err := errGroup.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
