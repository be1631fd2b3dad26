package condalock

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/wesleykendall/footing/internal/core/domain"
	"go.trai.ch/zerr"
)

// Materializer implements ports.Materializer by installing a lock artifact
// into the environments directory with conda-lock.
type Materializer struct {
	binary string
	layout domain.Layout
}

// NewMaterializer creates a materializer installing under the layout's
// environments directory.
func NewMaterializer(layout domain.Layout) *Materializer {
	return &Materializer{
		binary: defaultBinary,
		layout: layout,
	}
}

// Install materializes the lock into an environment named envName and
// returns the installed prefix.
func (m *Materializer) Install(ctx context.Context, lockPath string, envName string) (string, error) {
	if err := os.MkdirAll(m.layout.EnvsDir(), 0o750); err != nil {
		return "", zerr.Wrap(err, "failed to create environments directory")
	}

	prefix := filepath.Join(m.layout.EnvsDir(), envName)
	cmd := exec.CommandContext(ctx, m.binary, "install", "--prefix", prefix, lockPath) //nolint:gosec // Binary name is fixed
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, "conda-lock install failed"),
			"output", strings.TrimSpace(string(output))),
			"env", envName,
		)
	}
	return prefix, nil
}
