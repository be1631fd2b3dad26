package toolkit_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wesleykendall/footing/internal/core/domain"
	"github.com/wesleykendall/footing/internal/engine/toolkit"
)

func newFactory(t *testing.T, dir string, defs ...domain.ToolkitDef) *toolkit.Factory {
	t.Helper()
	cfg := &domain.Config{
		Project:  domain.ProjectDef{Key: "myproj"},
		Toolkits: defs,
	}
	return toolkit.NewFactory(cfg, dir, nil)
}

func TestToolkit_FlattenedToolkits_AncestorsBeforeSelf(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "_root", Manager: "conda", Tools: []string{"python"}},
		domain.ToolkitDef{Key: "_mid", Base: "_root", Manager: "conda", Tools: []string{"git"}},
		domain.ToolkitDef{Key: "dev", Base: "_mid", Manager: "pip", Tools: []string{"black"}},
	)

	tk, err := factory.FromKey("dev")
	require.NoError(t, err)

	chain := tk.FlattenedToolkits()
	require.Len(t, chain, 3)
	assert.Equal(t, "_root", chain[0].Key())
	assert.Equal(t, "_mid", chain[1].Key())
	assert.Equal(t, "dev", chain[2].Key())

	toolsets := tk.FlattenedToolsets()
	require.Len(t, toolsets, 3)
	assert.Equal(t, domain.ManagerConda, toolsets[0].Manager())
	assert.Equal(t, domain.ManagerConda, toolsets[1].Manager())
	assert.Equal(t, domain.ManagerPip, toolsets[2].Manager())
}

func TestToolkit_DefaultPlatforms(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "dev", Manager: "pip", Tools: []string{"black"}},
	)

	tk, err := factory.FromKey("dev")
	require.NoError(t, err)
	assert.Equal(t, []string{"osx-arm64", "osx-64", "linux-64"}, tk.Platforms())
}

func TestToolkit_EnvName(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "default", Manager: "pip", Tools: []string{"black"}},
		domain.ToolkitDef{Key: "ci", Manager: "pip", Tools: []string{"tox"}},
	)

	def, err := factory.FromKey("default")
	require.NoError(t, err)
	assert.Equal(t, "myproj", def.EnvName())
	assert.Equal(t, "toolkit:default", def.URI())

	ci, err := factory.FromKey("ci")
	require.NoError(t, err)
	assert.Equal(t, "myproj-ci", ci.EnvName())
}

func TestToolkit_Ref_StableAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "environment.yml")
	require.NoError(t, os.WriteFile(manifest, []byte("dependencies:\n  - python\n"), 0o600))

	factory := newFactory(t, dir,
		domain.ToolkitDef{Key: "dev", Manager: "conda", File: "environment.yml"},
	)

	tk, err := factory.FromKey("dev")
	require.NoError(t, err)

	first, err := tk.Ref()
	require.NoError(t, err)
	second, err := tk.Ref()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestToolkit_Ref_ChangesWithManifestBytes(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "environment.yml")
	require.NoError(t, os.WriteFile(manifest, []byte("dependencies:\n  - python\n"), 0o600))

	factory := newFactory(t, dir,
		domain.ToolkitDef{Key: "dev", Manager: "conda", File: "environment.yml"},
	)
	tk, err := factory.FromKey("dev")
	require.NoError(t, err)

	before, err := tk.Ref()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(manifest, []byte("dependencies:\n  - python=3.11\n"), 0o600))
	after, err := tk.Ref()
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestToolkit_Ref_ChangesWithAncestorDefinition(t *testing.T) {
	dir := t.TempDir()

	base := domain.ToolkitDef{Key: "_base", Manager: "conda", Tools: []string{"python"}}
	child := domain.ToolkitDef{Key: "dev", Base: "_base", Manager: "pip", Tools: []string{"black"}}

	tk, err := newFactory(t, dir, base, child).FromKey("dev")
	require.NoError(t, err)
	before, err := tk.Ref()
	require.NoError(t, err)

	base.Tools = []string{"python==3.12"}
	tk, err = newFactory(t, dir, base, child).FromKey("dev")
	require.NoError(t, err)
	after, err := tk.Ref()
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestToolkit_DependencySpecs_SynthesizesPipBridge(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "dev", Toolsets: []domain.ToolsetDef{
			{Manager: "conda", Tools: []string{"python"}},
			{Manager: "pip", Tools: []string{"black"}},
		}},
	)

	tk, err := factory.FromKey("dev")
	require.NoError(t, err)

	specs, err := tk.DependencySpecs()
	require.NoError(t, err)
	require.Len(t, specs, 3, "two toolset specs plus the synthesized bridge")

	python := specs[0].Dependencies[0]
	assert.Equal(t, "python", python.Name)
	assert.Equal(t, domain.ManagerConda, python.Manager)

	black := specs[1].Dependencies[0]
	assert.Equal(t, "black", black.Name)
	assert.Equal(t, domain.ManagerPip, black.Manager)

	bridge := specs[2]
	require.Len(t, bridge.Dependencies, 1)
	assert.Equal(t, "pip", bridge.Dependencies[0].Name)
	assert.Equal(t, toolkit.PipBootstrapVersion, bridge.Dependencies[0].Version)
	assert.Equal(t, domain.ManagerConda, bridge.Dependencies[0].Manager)
}

func TestToolkit_DependencySpecs_NoBridgeWithoutPython(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "dev", Manager: "pip", Tools: []string{"black"}},
	)

	tk, err := factory.FromKey("dev")
	require.NoError(t, err)

	specs, err := tk.DependencySpecs()
	require.NoError(t, err)
	assert.Len(t, specs, 1)
}

func TestToolkit_DependencySpecs_NoBridgeWhenPipDeclared(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "dev", Toolsets: []domain.ToolsetDef{
			{Manager: "conda", Tools: []string{"python", "pip==23.0"}},
			{Manager: "pip", Tools: []string{"black"}},
		}},
	)

	tk, err := factory.FromKey("dev")
	require.NoError(t, err)

	specs, err := tk.DependencySpecs()
	require.NoError(t, err)
	assert.Len(t, specs, 2, "an explicit pip suppresses the bridge")
}

func TestToolkit_DependencySpecs_NoBridgeWithoutPipDependencies(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "dev", Manager: "conda", Tools: []string{"python", "numpy"}},
	)

	tk, err := factory.FromKey("dev")
	require.NoError(t, err)

	specs, err := tk.DependencySpecs()
	require.NoError(t, err)
	assert.Len(t, specs, 1, "conda-only toolkits need no bridge")
}

func TestFactory_FromKey_NotFound(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "dev", Manager: "pip", Tools: []string{"black"}},
	)

	_, err := factory.FromKey("missing")
	assert.True(t, errors.Is(err, domain.ErrToolkitNotFound))
}

func TestFactory_BaseCycleDetected(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "a", Base: "b", Manager: "pip", Tools: []string{"black"}},
		domain.ToolkitDef{Key: "b", Base: "a", Manager: "pip", Tools: []string{"tox"}},
	)

	_, err := factory.FromKey("a")
	assert.True(t, errors.Is(err, domain.ErrBaseCycle))
}

func TestFactory_FromDefault_ExplicitDefault(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "ci", Manager: "pip", Tools: []string{"tox"}},
		domain.ToolkitDef{Key: "default", Manager: "pip", Tools: []string{"black"}},
	)

	tk, err := factory.FromDefault()
	require.NoError(t, err)
	require.NotNil(t, tk)
	assert.Equal(t, "default", tk.Key())
}

func TestFactory_FromDefault_SinglePublic(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "_hidden", Manager: "pip", Tools: []string{"tox"}},
		domain.ToolkitDef{Key: "dev", Manager: "pip", Tools: []string{"black"}},
	)

	tk, err := factory.FromDefault()
	require.NoError(t, err)
	require.NotNil(t, tk)
	assert.Equal(t, "dev", tk.Key())
}

func TestFactory_FromDefault_AmbiguousReturnsNil(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "dev", Manager: "pip", Tools: []string{"black"}},
		domain.ToolkitDef{Key: "ci", Manager: "pip", Tools: []string{"tox"}},
	)

	tk, err := factory.FromDefault()
	require.NoError(t, err)
	assert.Nil(t, tk, "ambiguous defaults must never be guessed")
}

func TestFactory_FromDefault_NoneReturnsNil(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "_hidden", Manager: "pip", Tools: []string{"tox"}},
	)

	tk, err := factory.FromDefault()
	require.NoError(t, err)
	assert.Nil(t, tk)
}

func TestFactory_Get(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "dev", Manager: "pip", Tools: []string{"black"}},
	)

	named, err := factory.Get("dev")
	require.NoError(t, err)
	assert.Equal(t, "dev", named.Key())

	fallback, err := factory.Get("")
	require.NoError(t, err)
	require.NotNil(t, fallback)
	assert.Equal(t, "dev", fallback.Key())
}

func TestFactory_List_SkipsPrivateToolkits(t *testing.T) {
	factory := newFactory(t, t.TempDir(),
		domain.ToolkitDef{Key: "_base", Manager: "conda", Tools: []string{"python"}},
		domain.ToolkitDef{Key: "dev", Base: "_base", Manager: "pip", Tools: []string{"black"}},
		domain.ToolkitDef{Key: "ci", Manager: "pip", Tools: []string{"tox"}},
	)

	toolkits, err := factory.List()
	require.NoError(t, err)
	require.Len(t, toolkits, 2)
	assert.Equal(t, "dev", toolkits[0].Key())
	assert.Equal(t, "ci", toolkits[1].Key())
}
