package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wesleykendall/footing/cmd/footing/commands"
	"github.com/wesleykendall/footing/internal/adapters/logger"
	"github.com/wesleykendall/footing/internal/adapters/telemetry"
	"github.com/wesleykendall/footing/internal/app"
	"github.com/wesleykendall/footing/internal/build"
	"github.com/wesleykendall/footing/internal/core/domain"
	"github.com/wesleykendall/footing/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type cliHarness struct {
	loader     *mocks.MockConfigLoader
	registries *mocks.MockRegistryOpener
	registry   *mocks.MockRegistry
	settings   *mocks.MockSettingsStore
	cli        *commands.CLI
	out        *bytes.Buffer
}

func newCLI(t *testing.T) *cliHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &cliHarness{
		loader:     mocks.NewMockConfigLoader(ctrl),
		registries: mocks.NewMockRegistryOpener(ctrl),
		registry:   mocks.NewMockRegistry(ctrl),
		settings:   mocks.NewMockSettingsStore(ctrl),
		out:        &bytes.Buffer{},
	}

	a := app.New(
		h.loader,
		nil,
		h.registries,
		mocks.NewMockLockResolver(ctrl),
		mocks.NewMockMaterializer(ctrl),
		h.settings,
		telemetry.NewNoOp(),
		logger.NewWithWriter(io.Discard),
		domain.Layout{Root: t.TempDir()},
	)

	h.cli = commands.New(a)
	h.cli.SetOut(h.out)
	return h
}

func testConfig() *domain.Config {
	return &domain.Config{
		Project: domain.ProjectDef{Key: "myproj"},
		Toolkits: []domain.ToolkitDef{
			{Key: "dev", Manager: "conda", Tools: []string{"python=3.11"}},
			{Key: "ci", Manager: "conda", Tools: []string{"tox"}},
		},
	}
}

func TestInstallCommand_CachedToolkit(t *testing.T) {
	h := newCLI(t)

	h.loader.EXPECT().Load(".").Return(testConfig(), nil)
	h.registries.EXPECT().Open(gomock.Any()).Return(h.registry, nil).Times(2)
	h.registry.EXPECT().Find(gomock.Any()).DoAndReturn(func(build domain.Build) (*domain.Build, error) {
		return &build, nil
	}).Times(2)

	h.cli.SetArgs([]string{"install", "dev"})
	err := h.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestInstallCommand_CwdFlag(t *testing.T) {
	h := newCLI(t)

	h.loader.EXPECT().Load("/elsewhere").Return(nil, errors.New("no config there"))

	h.cli.SetArgs([]string{"install", "dev", "--cwd", "/elsewhere"})
	err := h.cli.Execute(context.Background())
	assert.Error(t, err)
}

func TestLsCommand(t *testing.T) {
	h := newCLI(t)

	h.loader.EXPECT().Load(".").Return(testConfig(), nil)

	h.cli.SetArgs([]string{"ls"})
	err := h.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dev\nci\n", h.out.String())
}

func TestLsCommand_Active(t *testing.T) {
	h := newCLI(t)

	h.loader.EXPECT().Load(".").Return(testConfig(), nil)
	h.settings.EXPECT().ActiveToolkit(gomock.Any()).Return("ci", nil)

	h.cli.SetArgs([]string{"ls", "--active"})
	err := h.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ci\n", h.out.String())
}

func TestUseCommand(t *testing.T) {
	h := newCLI(t)

	h.loader.EXPECT().Load(".").Return(testConfig(), nil)
	h.settings.EXPECT().SetActiveToolkit(gomock.Any(), "dev").Return(nil)

	h.cli.SetArgs([]string{"use", "dev"})
	err := h.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestUseCommand_RequiresArgument(t *testing.T) {
	h := newCLI(t)

	h.cli.SetArgs([]string{"use"})
	err := h.cli.Execute(context.Background())
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	h := newCLI(t)

	h.cli.SetArgs([]string{"version"})
	err := h.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, build.Version+"\n", h.out.String())
}
