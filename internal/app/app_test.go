package app_test

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deplist/internal/adapters/telemetry"
	"go.trai.ch/deplist/internal/app"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports"
	"go.trai.ch/deplist/internal/core/ports/mocks"
	"go.trai.ch/deplist/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader   *mocks.MockConfigLoader
	reader   *mocks.MockDependencyReader
	renderer *mocks.MockPageRenderer
	hasher   *mocks.MockHasher
	logger   *mocks.MockLogger
}

func setupApp(t *testing.T) (*app.App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := appMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		reader:   mocks.NewMockDependencyReader(ctrl),
		renderer: mocks.NewMockPageRenderer(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	a := app.New(
		m.loader, m.reader, m.renderer, m.hasher, m.logger,
		telemetry.NewNoOpTracer(), scheduler.NewScheduler(),
	).WithParallelism(1)

	return a, m
}

func defaultConfig() *domain.Config {
	return &domain.Config{SourceRoot: "/src", Projects: []string{domain.DefaultProject}}
}

var sampleEntries = []domain.Entry{
	{Name: "foo", Token: "1.2"},
	{Name: "bar", Token: "3.4"},
}

func TestApp_Generate(t *testing.T) {
	a, m := setupApp(t)

	depsPath := filepath.Join("/src", "fhiclcpp", "ups", "product_deps")
	pagePath := filepath.Join("/src", "fhiclcpp", "docs", "depends.rst")

	gomock.InOrder(
		m.loader.EXPECT().Load(".", domain.ConfigOverrides{}).Return(defaultConfig(), nil),
		m.reader.EXPECT().Extract(gomock.Any(), depsPath).Return(sampleEntries, nil),
		m.renderer.EXPECT().Render(gomock.Any(), sampleEntries, pagePath).Return(nil),
		m.logger.EXPECT().Info(gomock.Any()),
	)

	err := a.Generate(context.Background(), nil, app.RunOptions{})
	require.NoError(t, err)
}

func TestApp_Generate_PassesOverrides(t *testing.T) {
	a, m := setupApp(t)
	a.WithWorkingDir("/work")

	opts := app.RunOptions{ConfigPath: "custom.yaml", SourceRoot: "/flag"}
	cfg := &domain.Config{SourceRoot: "/flag", Projects: []string{"cetlib"}}

	m.loader.EXPECT().Load("/work", domain.ConfigOverrides{ConfigPath: "custom.yaml", SourceRoot: "/flag"}).Return(cfg, nil)
	m.reader.EXPECT().Extract(gomock.Any(), cfg.Layout("cetlib").DependsPath()).Return(nil, nil)
	m.renderer.EXPECT().Render(gomock.Any(), gomock.Nil(), cfg.Layout("cetlib").PagePath()).Return(nil)
	m.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, a.Generate(context.Background(), nil, opts))
}

func TestApp_Generate_EnvironmentMissing(t *testing.T) {
	a, m := setupApp(t)

	// Reader and renderer have no expectations: any filesystem access fails the test.
	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrEnvironmentMissing)

	err := a.Generate(context.Background(), nil, app.RunOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrEnvironmentMissing.Error())
}

func TestApp_Generate_ExtractFailureSkipsRender(t *testing.T) {
	a, m := setupApp(t)
	extractErr := errors.New("malformed")

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(defaultConfig(), nil)
	m.reader.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(nil, extractErr)

	err := a.Generate(context.Background(), nil, app.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, extractErr)
}

func TestApp_Generate_RenderFailure(t *testing.T) {
	a, m := setupApp(t)
	renderErr := errors.New("read-only filesystem")

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(defaultConfig(), nil)
	m.reader.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(sampleEntries, nil)
	m.renderer.EXPECT().Render(gomock.Any(), sampleEntries, gomock.Any()).Return(renderErr)

	err := a.Generate(context.Background(), nil, app.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, renderErr)
}

func TestApp_Generate_NamedProjectsAreDeduplicated(t *testing.T) {
	a, m := setupApp(t)
	cfg := defaultConfig()

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(cfg, nil)
	m.reader.EXPECT().Extract(gomock.Any(), cfg.Layout("cetlib").DependsPath()).Return(nil, nil).Times(1)
	m.reader.EXPECT().Extract(gomock.Any(), cfg.Layout("messagefacility").DependsPath()).Return(nil, nil).Times(1)
	m.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.logger.EXPECT().Info(gomock.Any()).Times(2)

	err := a.Generate(context.Background(), []string{"cetlib", "messagefacility", "cetlib"}, app.RunOptions{})
	require.NoError(t, err)
}

func TestApp_Generate_InvalidProject(t *testing.T) {
	a, m := setupApp(t)

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(defaultConfig(), nil)

	err := a.Generate(context.Background(), []string{"../etc"}, app.RunOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidProjectName.Error())
}

func TestApp_Generate_NoProjects(t *testing.T) {
	a, m := setupApp(t)

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(&domain.Config{SourceRoot: "/src"}, nil)

	err := a.Generate(context.Background(), nil, app.RunOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNoProjects.Error())
}

func TestApp_Check(t *testing.T) {
	page := []byte("|depends| depends\n=================\nfoo1.2\nbar3.4\n")
	pagePath := filepath.Join("/src", "fhiclcpp", "docs", "depends.rst")

	tests := []struct {
		name        string
		fileHash    uint64
		fileErr     error
		errContains string
	}{
		{name: "up to date", fileHash: 42},
		{name: "content differs", fileHash: 7, errContains: domain.ErrPageOutdated.Error()},
		{name: "page missing", fileErr: fs.ErrNotExist, errContains: domain.ErrPageOutdated.Error()},
		{name: "page unreadable", fileErr: fs.ErrPermission, errContains: "permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, m := setupApp(t)

			m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(defaultConfig(), nil)
			m.reader.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(sampleEntries, nil)
			m.renderer.EXPECT().Format(sampleEntries).Return(page)
			m.hasher.EXPECT().HashBytes(page).Return(uint64(42))
			m.hasher.EXPECT().HashFile(pagePath).Return(tt.fileHash, tt.fileErr)

			err := a.Check(context.Background(), nil, app.RunOptions{})
			if tt.errContains == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestApp_List(t *testing.T) {
	a, m := setupApp(t)
	cfg := defaultConfig()

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(cfg, nil)
	m.reader.EXPECT().Extract(gomock.Any(), cfg.Layout("cetlib").DependsPath()).Return(sampleEntries, nil)

	entries, err := a.List(context.Background(), "cetlib", app.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, sampleEntries, entries)
}

func TestApp_List_DefaultProject(t *testing.T) {
	a, m := setupApp(t)
	cfg := defaultConfig()

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(cfg, nil)
	m.reader.EXPECT().Extract(gomock.Any(), cfg.Layout(domain.DefaultProject).DependsPath()).Return(nil, errors.New("boom"))

	_, err := a.List(context.Background(), "", app.RunOptions{})
	require.Error(t, err)
}

func TestApp_Generate_RecordsSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	reader := mocks.NewMockDependencyReader(ctrl)
	renderer := mocks.NewMockPageRenderer(ctrl)
	log := mocks.NewMockLogger(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	a := app.New(loader, reader, renderer, mocks.NewMockHasher(ctrl), log, tracer, scheduler.NewScheduler())
	renderErr := errors.New("disk full")

	loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(defaultConfig(), nil)
	reader.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(sampleEntries, nil)
	renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).Return(renderErr)

	for _, name := range []string{"generate", "extract", "render"} {
		tracer.EXPECT().Start(gomock.Any(), name).
			DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
				return ctx, span
			})
	}
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(renderErr).Times(2)
	span.EXPECT().End().Times(3)

	err := a.Generate(context.Background(), nil, app.RunOptions{})
	require.ErrorIs(t, err, renderErr)
}
