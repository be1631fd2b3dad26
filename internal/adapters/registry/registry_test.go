package registry_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wesleykendall/footing/internal/adapters/registry"
	"github.com/wesleykendall/footing/internal/core/domain"
	"github.com/wesleykendall/footing/internal/core/ports"
)

func openRegistry(t *testing.T) ports.Registry {
	t.Helper()
	r, err := registry.NewOpener().Open(filepath.Join(t.TempDir(), "registry"))
	require.NoError(t, err)
	return r
}

func lockBuild(path string) domain.Build {
	return domain.Build{
		Kind: domain.BuildKindLock,
		Name: "myproj-dev",
		Ref:  "0123456789abcdef",
		Path: path,
	}
}

func writePayload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conda-lock.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPushAndFind_File(t *testing.T) {
	r := openRegistry(t)
	build := lockBuild(writePayload(t, "locked: true\n"))

	require.NoError(t, r.Push(build))

	found, err := r.Find(build)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, build.Kind, found.Kind)
	assert.Equal(t, build.Ref, found.Ref)

	data, err := os.ReadFile(found.Path)
	require.NoError(t, err)
	assert.Equal(t, "locked: true\n", string(data))
}

func TestPushAndFind_DirectoryPayload(t *testing.T) {
	r := openRegistry(t)

	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "bin"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(src, "bin", "python"), []byte("#!stub\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "state.json"), []byte("{}"), 0o600))

	build := domain.Build{Kind: domain.BuildKindEnv, Name: "myproj-dev", Ref: "feedface", Path: src}
	require.NoError(t, r.Push(build))

	found, err := r.Find(build)
	require.NoError(t, err)
	require.NotNil(t, found)

	data, err := os.ReadFile(filepath.Join(found.Path, "bin", "python"))
	require.NoError(t, err)
	assert.Equal(t, "#!stub\n", string(data))
}

func TestFind_AbsentReturnsNil(t *testing.T) {
	r := openRegistry(t)

	found, err := r.Find(lockBuild(""))
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFind_RefMismatchReturnsNil(t *testing.T) {
	r := openRegistry(t)
	build := lockBuild(writePayload(t, "locked: true\n"))
	require.NoError(t, r.Push(build))

	stale := build
	stale.Ref = "cafebabecafebabe"
	found, err := r.Find(stale)
	require.NoError(t, err)
	assert.Nil(t, found, "a different ref is a miss even though kind and name match the stored entry")
}

func TestFind_CorruptedPayload(t *testing.T) {
	r := openRegistry(t)
	build := lockBuild(writePayload(t, "locked: true\n"))
	require.NoError(t, r.Push(build))

	found, err := r.Find(build)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(found.Path, []byte("tampered"), 0o600))

	_, err = r.Find(build)
	assert.True(t, errors.Is(err, registry.ErrArtifactCorrupted))
}

func TestPush_MissingPathFails(t *testing.T) {
	r := openRegistry(t)

	err := r.Push(lockBuild(""))
	assert.True(t, errors.Is(err, domain.ErrArtifactPathMissing))
}

func TestPush_ReplacesExistingEntry(t *testing.T) {
	r := openRegistry(t)

	build := lockBuild(writePayload(t, "first\n"))
	require.NoError(t, r.Push(build))

	build.Path = writePayload(t, "second\n")
	require.NoError(t, r.Push(build))

	found, err := r.Find(build)
	require.NoError(t, err)
	require.NotNil(t, found)
	data, err := os.ReadFile(found.Path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestCopy_PromotesBetweenTiers(t *testing.T) {
	local := openRegistry(t)
	shared := openRegistry(t)

	build := lockBuild(writePayload(t, "locked: true\n"))
	require.NoError(t, local.Push(build))

	require.NoError(t, local.Copy(build, shared))

	found, err := shared.Find(build)
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestCopy_AbsentSourceFails(t *testing.T) {
	local := openRegistry(t)
	shared := openRegistry(t)

	err := local.Copy(lockBuild(""), shared)
	assert.True(t, errors.Is(err, registry.ErrArtifactNotFound))
}
