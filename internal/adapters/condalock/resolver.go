// Package condalock adapts the conda-lock CLI as the lock resolver and
// environment materializer. Both run as subprocesses: a child process that
// decides to terminate on a recoverable condition cannot take this process
// down with it.
package condalock

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/wesleykendall/footing/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const defaultBinary = "conda-lock"

// Resolver implements ports.LockResolver by invoking conda-lock against a
// generated environment source file.
type Resolver struct {
	binary string
}

// NewResolver creates a conda-lock resolver using the binary from PATH.
func NewResolver() *Resolver {
	return &Resolver{binary: defaultBinary}
}

// environmentSource is the environment-file rendering of merged specs fed
// to conda-lock.
type environmentSource struct {
	Channels     []string `yaml:"channels"`
	Dependencies []any    `yaml:"dependencies"`
}

// Lock renders the ordered specs into a single environment source, invokes
// conda-lock for every target platform, and leaves the lock at dest.
func (r *Resolver) Lock(ctx context.Context, specs []domain.DependencySpec, platforms []string, dest string) error {
	staging, err := os.MkdirTemp("", "footing-src-")
	if err != nil {
		return zerr.Wrap(err, "failed to create resolver staging directory")
	}
	defer os.RemoveAll(staging) //nolint:errcheck // Best effort cleanup

	srcPath := filepath.Join(staging, "environment.yml")
	if err := writeEnvironmentSource(specs, srcPath); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create lock destination directory")
	}

	args := []string{"lock", "--lockfile", dest, "--strip-auth", "-f", srcPath}
	for _, platform := range platforms {
		args = append(args, "-p", platform)
	}

	cmd := exec.CommandContext(ctx, r.binary, args...) //nolint:gosec // Binary name is fixed
	output, err := cmd.CombinedOutput()
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "conda-lock failed"),
			"output", strings.TrimSpace(string(output))),
			"platforms", strings.Join(platforms, ","),
		)
	}

	if _, err := os.Stat(dest); err != nil {
		return zerr.With(zerr.Wrap(err, "conda-lock produced no lock artifact"), "dest", dest)
	}
	return nil
}

// writeEnvironmentSource flattens the ordered specs into one environment
// file: conda requirements at the top level, pip requirements nested, and
// the union of declared channels in first-seen order.
func writeEnvironmentSource(specs []domain.DependencySpec, path string) error {
	var channels []string
	seenChannels := map[string]bool{}
	addChannel := func(channel string) {
		if channel != "" && !seenChannels[channel] {
			seenChannels[channel] = true
			channels = append(channels, channel)
		}
	}

	var condaDeps []any
	var pipDeps []string
	for _, spec := range specs {
		for _, channel := range spec.Channels {
			addChannel(channel)
		}
		for _, dep := range spec.Dependencies {
			requirement := formatRequirement(dep)
			if dep.Manager == domain.ManagerPip {
				pipDeps = append(pipDeps, requirement)
				continue
			}
			addChannel(dep.Channel)
			condaDeps = append(condaDeps, requirement)
		}
	}

	deps := condaDeps
	if len(pipDeps) > 0 {
		deps = append(deps, map[string][]string{"pip": pipDeps})
	}

	source := environmentSource{
		Channels:     channels,
		Dependencies: deps,
	}
	data, err := yaml.Marshal(source)
	if err != nil {
		return zerr.Wrap(err, "failed to serialize environment source")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return zerr.Wrap(err, "failed to write environment source")
	}
	return nil
}

// formatRequirement renders a dependency back into requirement syntax.
// Versions that already carry an operator are appended verbatim; bare
// versions become exact pins.
func formatRequirement(dep domain.Dependency) string {
	if dep.Version == "" {
		return dep.Name
	}
	if strings.ContainsAny(dep.Version[:1], "=<>!~") {
		return dep.Name + dep.Version
	}
	return dep.Name + "==" + dep.Version
}
