package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deplist/cmd/deplist/commands"
	"go.trai.ch/deplist/internal/adapters/telemetry"
	"go.trai.ch/deplist/internal/app"
	"go.trai.ch/deplist/internal/build"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports/mocks"
	"go.trai.ch/deplist/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	loader   *mocks.MockConfigLoader
	reader   *mocks.MockDependencyReader
	renderer *mocks.MockPageRenderer
	hasher   *mocks.MockHasher
	logger   *mocks.MockLogger
}

func setupCLI(t *testing.T) (*commands.CLI, cliMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := cliMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		reader:   mocks.NewMockDependencyReader(ctrl),
		renderer: mocks.NewMockPageRenderer(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	a := app.New(m.loader, m.reader, m.renderer, m.hasher, m.logger, telemetry.NewNoOpTracer(), scheduler.NewScheduler())
	cli := commands.New(a)

	var out bytes.Buffer
	cli.SetOutput(&out)
	return cli, m, &out
}

func TestGenerate_DefaultProject(t *testing.T) {
	cli, m, _ := setupCLI(t)
	cfg := &domain.Config{SourceRoot: "/src", Projects: []string{"fhiclcpp"}}

	m.loader.EXPECT().Load(".", domain.ConfigOverrides{}).Return(cfg, nil).Times(1)
	m.reader.EXPECT().Extract(gomock.Any(), cfg.Layout("fhiclcpp").DependsPath()).Return(nil, nil).Times(1)
	m.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), cfg.Layout("fhiclcpp").PagePath()).Return(nil).Times(1)
	m.logger.EXPECT().Info(gomock.Any()).Times(1)

	cli.SetArgs([]string{"generate"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestGenerate_Flags(t *testing.T) {
	cli, m, _ := setupCLI(t)
	cfg := &domain.Config{SourceRoot: "/flag", Projects: []string{"fhiclcpp"}}

	m.loader.EXPECT().Load(".", domain.ConfigOverrides{ConfigPath: "ci.yaml", SourceRoot: "/flag"}).Return(cfg, nil)
	m.reader.EXPECT().Extract(gomock.Any(), cfg.Layout("cetlib").DependsPath()).Return(nil, nil)
	m.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), cfg.Layout("cetlib").PagePath()).Return(nil)
	m.logger.EXPECT().Info(gomock.Any())

	cli.SetArgs([]string{"-c", "ci.yaml", "--source", "/flag", "generate", "cetlib"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestGenerate_EnvironmentMissing(t *testing.T) {
	cli, m, _ := setupCLI(t)

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, domain.ErrEnvironmentMissing)

	cli.SetArgs([]string{"generate"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrEnvironmentMissing.Error())
}

func TestCheck_UpToDate(t *testing.T) {
	cli, m, out := setupCLI(t)
	cfg := &domain.Config{SourceRoot: "/src", Projects: []string{"fhiclcpp"}}
	page := []byte("|depends| depends\n=================\n")

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(cfg, nil)
	m.reader.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.renderer.EXPECT().Format(gomock.Any()).Return(page)
	m.hasher.EXPECT().HashBytes(page).Return(uint64(1))
	m.hasher.EXPECT().HashFile(cfg.Layout("fhiclcpp").PagePath()).Return(uint64(1), nil)

	cli.SetArgs([]string{"check"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "up to date")
}

func TestList_PrintsEntries(t *testing.T) {
	cli, m, out := setupCLI(t)
	cfg := &domain.Config{SourceRoot: "/src", Projects: []string{"fhiclcpp"}}

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(cfg, nil)
	m.reader.EXPECT().Extract(gomock.Any(), cfg.Layout("cetlib").DependsPath()).Return([]domain.Entry{
		{Name: "foo", Token: "1.2"},
		{Name: "bar", Token: "3.4"},
	}, nil)

	cli.SetArgs([]string{"list", "cetlib"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "foo 1.2\nbar 3.4\n", out.String())
}

func TestList_TooManyArgs(t *testing.T) {
	cli, _, _ := setupCLI(t)

	cli.SetArgs([]string{"list", "a", "b"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	cli, _, out := setupCLI(t)

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "deplist version "+build.Version+"\n", out.String())
}

func TestRoot_Help(t *testing.T) {
	cli, _, out := setupCLI(t)

	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "generate")
}
