// Package scheduler runs per-project jobs with bounded parallelism.
package scheduler

import (
	"context"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Job processes a single project.
type Job func(ctx context.Context, project string) error

// Scheduler fans jobs out over a set of projects.
type Scheduler struct{}

// NewScheduler creates a new Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Run calls job once per project, at most parallelism at a time.
// The first failure cancels the context passed to the remaining jobs and is returned.
func (s *Scheduler) Run(ctx context.Context, projects []string, parallelism int, job Job) error {
	if parallelism < 1 {
		parallelism = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for _, project := range projects {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := job(gctx, project); err != nil {
				return zerr.With(zerr.Wrap(err, "project failed"), "project", project)
			}
			return nil
		})
	}

	return g.Wait()
}
