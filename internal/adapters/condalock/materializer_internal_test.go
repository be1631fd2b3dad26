package condalock

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wesleykendall/footing/internal/core/domain"
)

func TestMaterializer_Install(t *testing.T) {
	layout := domain.Layout{Root: t.TempDir()}
	m := &Materializer{binary: "true", layout: layout}

	prefix, err := m.Install(context.Background(), "/tmp/conda-lock.yml", "myproj-dev")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(layout.EnvsDir(), "myproj-dev"), prefix)
}

func TestMaterializer_Install_BinaryFailure(t *testing.T) {
	m := &Materializer{binary: "false", layout: domain.Layout{Root: t.TempDir()}}

	_, err := m.Install(context.Background(), "/tmp/conda-lock.yml", "myproj-dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conda-lock install failed")
}

func TestResolver_Lock_BinaryFailure(t *testing.T) {
	r := &Resolver{binary: "false"}

	dest := filepath.Join(t.TempDir(), "toolkit:dev.yml")
	err := r.Lock(context.Background(), nil, []string{"linux-64"}, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conda-lock failed")
}

func TestResolver_Lock_MissingArtifactFails(t *testing.T) {
	// The binary exits cleanly but writes nothing, so the missing lockfile
	// must surface as an error.
	r := &Resolver{binary: "true"}

	dest := filepath.Join(t.TempDir(), "toolkit:dev.yml")
	err := r.Lock(context.Background(), nil, []string{"linux-64"}, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "produced no lock artifact")
}
