package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// StartupTask is one-time asynchronous work run after the first window
// exists, such as acquiring a GPU device for the window's surface.
type StartupTask func(ctx context.Context) error

func emptyStartup(context.Context) error {
	return nil
}

// BlockOn runs task to completion and returns its error.
func BlockOn(ctx context.Context, task StartupTask) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return task(ctx)
	})
	return g.Wait()
}

// Spawn starts task without waiting for it. done, if non-nil, receives the
// task's result.
func Spawn(ctx context.Context, task StartupTask, done func(error)) {
	go func() {
		err := task(ctx)
		if done != nil {
			done(err)
		}
	}()
}
