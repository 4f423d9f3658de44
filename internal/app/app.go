// Package app implements the application layer for deplist.
package app

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"runtime"

	"github.com/samber/lo"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports"
	"go.trai.ch/deplist/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.DependencyReader
	renderer     ports.PageRenderer
	hasher       ports.Hasher
	logger       ports.Logger
	tracer       ports.Tracer
	scheduler    *scheduler.Scheduler
	cwd          string
	parallelism  int
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.DependencyReader,
	renderer ports.PageRenderer,
	hasher ports.Hasher,
	logger ports.Logger,
	tracer ports.Tracer,
	sched *scheduler.Scheduler,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		renderer:     renderer,
		hasher:       hasher,
		logger:       logger,
		tracer:       tracer,
		scheduler:    sched,
		cwd:          ".",
		parallelism:  runtime.NumCPU(),
	}
}

// WithWorkingDir sets the directory the configuration is resolved from.
func (a *App) WithWorkingDir(cwd string) *App {
	a.cwd = cwd
	return a
}

// WithParallelism sets how many projects are processed at once.
func (a *App) WithParallelism(n int) *App {
	a.parallelism = n
	return a
}

// RunOptions configuration for a single command invocation.
type RunOptions struct {
	// ConfigPath is an explicit config file. Empty means the default file, if present.
	ConfigPath string
	// SourceRoot overrides the source root environment variable.
	SourceRoot string
}

func (o RunOptions) overrides() domain.ConfigOverrides {
	return domain.ConfigOverrides{ConfigPath: o.ConfigPath, SourceRoot: o.SourceRoot}
}

// Generate writes the dependency page of every named project, or of the
// configured projects when none are named.
func (a *App) Generate(ctx context.Context, projects []string, opts RunOptions) error {
	cfg, projects, err := a.prepare(projects, opts)
	if err != nil {
		return err
	}

	return a.scheduler.Run(ctx, projects, a.parallelism, func(ctx context.Context, project string) error {
		return a.generate(ctx, cfg.Layout(project))
	})
}

// Check verifies that the page of every named project matches its
// dependency file. It never writes.
func (a *App) Check(ctx context.Context, projects []string, opts RunOptions) error {
	cfg, projects, err := a.prepare(projects, opts)
	if err != nil {
		return err
	}

	return a.scheduler.Run(ctx, projects, a.parallelism, func(ctx context.Context, project string) error {
		return a.check(ctx, cfg.Layout(project))
	})
}

// List returns the entries of a single project. An empty project selects the
// first configured project.
func (a *App) List(ctx context.Context, project string, opts RunOptions) ([]domain.Entry, error) {
	var named []string
	if project != "" {
		named = []string{project}
	}

	cfg, projects, err := a.prepare(named, opts)
	if err != nil {
		return nil, err
	}

	layout := cfg.Layout(projects[0])
	ctx, span := a.tracer.Start(ctx, "list")
	defer span.End()
	span.SetAttribute("project", layout.Project)

	entries, err := a.extract(ctx, layout)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return entries, nil
}

func (a *App) prepare(named []string, opts RunOptions) (*domain.Config, []string, error) {
	cfg, err := a.configLoader.Load(a.cwd, opts.overrides())
	if err != nil {
		return nil, nil, err
	}

	projects := named
	if len(projects) == 0 {
		projects = cfg.Projects
	}
	projects = lo.Uniq(projects)
	if len(projects) == 0 {
		return nil, nil, domain.ErrNoProjects
	}

	for _, project := range projects {
		if err := domain.ValidateProject(project); err != nil {
			return nil, nil, err
		}
	}

	return cfg, projects, nil
}

func (a *App) generate(ctx context.Context, layout domain.Layout) error {
	ctx, span := a.tracer.Start(ctx, "generate")
	defer span.End()
	span.SetAttribute("project", layout.Project)

	entries, err := a.extract(ctx, layout)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := a.render(ctx, layout, entries); err != nil {
		span.RecordError(err)
		return err
	}

	a.logger.Info(fmt.Sprintf("wrote %s (%d entries)", layout.PagePath(), len(entries)))
	return nil
}

func (a *App) check(ctx context.Context, layout domain.Layout) error {
	ctx, span := a.tracer.Start(ctx, "check")
	defer span.End()
	span.SetAttribute("project", layout.Project)

	entries, err := a.extract(ctx, layout)
	if err != nil {
		span.RecordError(err)
		return err
	}

	want := a.hasher.HashBytes(a.renderer.Format(entries))
	got, err := a.hasher.HashFile(layout.PagePath())
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		span.RecordError(err)
		return err
	}

	if err != nil || got != want {
		outdated := zerr.With(domain.ErrPageOutdated, "path", layout.PagePath())
		span.RecordError(outdated)
		return outdated
	}

	span.SetAttribute("up_to_date", true)
	return nil
}

func (a *App) extract(ctx context.Context, layout domain.Layout) ([]domain.Entry, error) {
	ctx, span := a.tracer.Start(ctx, "extract")
	defer span.End()
	span.SetAttribute("path", layout.DependsPath())

	entries, err := a.reader.Extract(ctx, layout.DependsPath())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("entries", len(entries))
	return entries, nil
}

func (a *App) render(ctx context.Context, layout domain.Layout, entries []domain.Entry) error {
	ctx, span := a.tracer.Start(ctx, "render")
	defer span.End()
	span.SetAttribute("path", layout.PagePath())

	if err := a.renderer.Render(ctx, entries, layout.PagePath()); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
