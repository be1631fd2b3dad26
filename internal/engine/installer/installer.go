// Package installer implements the two-tier lookup-or-build protocol that
// turns a toolkit into cached lock and environment artifacts.
package installer

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/wesleykendall/footing/internal/core/domain"
	"github.com/wesleykendall/footing/internal/core/ports"
	"github.com/wesleykendall/footing/internal/engine/toolkit"
	"go.trai.ch/zerr"
)

// Installer orchestrates the build cache. Installs are sequential: each is
// a chain of cache checks and, on miss, a blocking call to the resolver or
// materializer. Concurrent installs of the same ref are not coordinated
// here; the registry's push is last-writer-wins at that boundary.
type Installer struct {
	local        ports.Registry
	shared       ports.Registry
	resolver     ports.LockResolver
	materializer ports.Materializer
	telemetry    ports.Telemetry
	log          ports.Logger
	layout       domain.Layout
}

// New creates an Installer over the two registry tiers and the external
// collaborators.
func New(
	local ports.Registry,
	shared ports.Registry,
	resolver ports.LockResolver,
	materializer ports.Materializer,
	telemetry ports.Telemetry,
	log ports.Logger,
	layout domain.Layout,
) *Installer {
	return &Installer{
		local:        local,
		shared:       shared,
		resolver:     resolver,
		materializer: materializer,
		telemetry:    telemetry,
		log:          log,
		layout:       layout,
	}
}

// Install produces a fully materialized environment for the toolkit,
// consulting both registry tiers before invoking the resolver or
// materializer.
func (i *Installer) Install(ctx context.Context, tk *toolkit.Toolkit) error {
	ref, err := tk.Ref()
	if err != nil {
		return err
	}
	name := tk.EnvName()

	if err := i.ensureLock(ctx, tk, name, ref); err != nil {
		return err
	}
	return i.ensureEnvironment(ctx, tk, name, ref)
}

// Lock resolves and caches the lock artifact without materializing an
// environment.
func (i *Installer) Lock(ctx context.Context, tk *toolkit.Toolkit) error {
	ref, err := tk.Ref()
	if err != nil {
		return err
	}
	return i.ensureLock(ctx, tk, tk.EnvName(), ref)
}

// ensureLock guarantees the lock artifact for (name, ref) is present in the
// shared registry. Lookup order: shared tier, local tier (promote on hit),
// then build.
func (i *Installer) ensureLock(ctx context.Context, tk *toolkit.Toolkit, name, ref string) error {
	build := domain.Build{Kind: domain.BuildKindLock, Name: name, Ref: ref}
	ctx, vtx := i.telemetry.Record(ctx, "lock "+tk.URI())

	err := func() error {
		found, err := i.shared.Find(build)
		if err != nil {
			return err
		}
		if found != nil {
			vtx.Cached()
			return nil
		}

		found, err = i.local.Find(build)
		if err != nil {
			return err
		}
		if found != nil {
			vtx.Log("promoting lock from local registry")
			return i.local.Copy(build, i.shared)
		}

		i.log.Info("resolving lock for " + tk.URI())
		specs, err := tk.DependencySpecs()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(i.layout.LocksDir(), 0o750); err != nil {
			return zerr.Wrap(err, "failed to create locks directory")
		}
		dest := filepath.Join(i.layout.LocksDir(), tk.URI()+".yml")
		if err := i.resolver.Lock(ctx, specs, tk.Platforms(), dest); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve lock"), "toolkit", tk.Key())
		}

		build.Path = dest
		if err := i.local.Push(build); err != nil {
			return err
		}
		return i.shared.Push(build)
	}()

	vtx.Complete(err)
	return err
}

// ensureEnvironment guarantees the materialized environment for (name, ref)
// is present in the local registry. Environments are machine-specific and
// never promoted to the shared tier.
func (i *Installer) ensureEnvironment(ctx context.Context, tk *toolkit.Toolkit, name, ref string) error {
	build := domain.Build{Kind: domain.BuildKindEnv, Name: name, Ref: ref}
	ctx, vtx := i.telemetry.Record(ctx, "materialize "+name)

	err := func() error {
		found, err := i.local.Find(build)
		if err != nil {
			return err
		}
		if found != nil {
			vtx.Cached()
			return nil
		}

		// ensureLock ran first, so the lock must be in the shared tier. Its
		// absence here means the cache protocol itself is broken.
		lock := domain.Build{Kind: domain.BuildKindLock, Name: name, Ref: ref}
		lockFound, err := i.shared.Find(lock)
		if err != nil {
			return err
		}
		if lockFound == nil {
			return zerr.With(zerr.With(domain.ErrLockArtifactMissing, "name", name), "ref", ref)
		}

		i.log.Info("creating environment " + name)
		staging, err := os.MkdirTemp("", "footing-env-")
		if err != nil {
			return zerr.Wrap(err, "failed to create environment staging directory")
		}
		defer os.RemoveAll(staging) //nolint:errcheck // Best effort cleanup

		lockPath := filepath.Join(staging, "conda-lock.yml")
		if err := copyFile(lockFound.Path, lockPath); err != nil {
			return err
		}

		installed, err := i.materializer.Install(ctx, lockPath, name)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to materialize environment"), "env", name)
		}

		build.Path = installed
		return i.local.Push(build)
	}()

	vtx.Complete(err)
	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path comes from the registry
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open lock artifact"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.Create(dst) //nolint:gosec // Path is inside our staging dir
	if err != nil {
		return zerr.Wrap(err, "failed to stage lock artifact")
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, "failed to copy lock artifact")
	}
	return out.Close()
}
