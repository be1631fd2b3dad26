// Package app implements the application layer for footing.
package app

import (
	"context"
	"path/filepath"

	"github.com/wesleykendall/footing/internal/core/domain"
	"github.com/wesleykendall/footing/internal/core/ports"
	"github.com/wesleykendall/footing/internal/engine/installer"
	"github.com/wesleykendall/footing/internal/engine/toolkit"
	"go.trai.ch/zerr"
)

// ErrNoDefaultToolkit is returned when no key was given and the
// configuration has no unambiguous default toolkit.
var ErrNoDefaultToolkit = zerr.New("no unambiguous default toolkit")

// App wires the toolkit engine to its collaborators. Configuration is
// loaded per invocation so commands always see the current project state.
type App struct {
	loader       ports.ConfigLoader
	manifests    ports.ManifestParser
	registries   ports.RegistryOpener
	resolver     ports.LockResolver
	materializer ports.Materializer
	settings     ports.SettingsStore
	telemetry    ports.Telemetry
	log          ports.Logger
	layout       domain.Layout
}

// New creates an App.
func New(
	loader ports.ConfigLoader,
	manifests ports.ManifestParser,
	registries ports.RegistryOpener,
	resolver ports.LockResolver,
	materializer ports.Materializer,
	settings ports.SettingsStore,
	telemetry ports.Telemetry,
	log ports.Logger,
	layout domain.Layout,
) *App {
	return &App{
		loader:       loader,
		manifests:    manifests,
		registries:   registries,
		resolver:     resolver,
		materializer: materializer,
		settings:     settings,
		telemetry:    telemetry,
		log:          log,
		layout:       layout,
	}
}

// project loads the configuration from cwd and builds a toolkit factory
// over it.
func (a *App) project(cwd string) (*toolkit.Factory, *domain.Config, error) {
	cfg, err := a.loader.Load(cwd)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	return toolkit.NewFactory(cfg, cwd, a.manifests), cfg, nil
}

// newInstaller opens both registry tiers and builds the cache orchestrator.
func (a *App) newInstaller(cfg *domain.Config) (*installer.Installer, error) {
	local, err := a.registries.Open(a.layout.LocalRegistryDir())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open local registry")
	}

	sharedRoot := cfg.Registry.Shared
	if sharedRoot == "" {
		sharedRoot = filepath.Join(a.layout.Root, "shared")
	}
	shared, err := a.registries.Open(sharedRoot)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open shared registry")
	}

	return installer.New(local, shared, a.resolver, a.materializer, a.telemetry, a.log, a.layout), nil
}

// get resolves a toolkit by key, or the unambiguous default for an empty
// key.
func (a *App) get(factory *toolkit.Factory, key string) (*toolkit.Toolkit, error) {
	tk, err := factory.Get(key)
	if err != nil {
		return nil, err
	}
	if tk == nil {
		return nil, ErrNoDefaultToolkit
	}
	return tk, nil
}

// Install materializes the named toolkit (or the default) into a cached
// environment.
func (a *App) Install(ctx context.Context, cwd, key string) error {
	factory, cfg, err := a.project(cwd)
	if err != nil {
		return err
	}
	tk, err := a.get(factory, key)
	if err != nil {
		return err
	}
	inst, err := a.newInstaller(cfg)
	if err != nil {
		return err
	}
	return inst.Install(ctx, tk)
}

// Lock resolves and caches the lock artifact for the named toolkit (or the
// default) without materializing an environment.
func (a *App) Lock(ctx context.Context, cwd, key string) error {
	factory, cfg, err := a.project(cwd)
	if err != nil {
		return err
	}
	tk, err := a.get(factory, key)
	if err != nil {
		return err
	}
	inst, err := a.newInstaller(cfg)
	if err != nil {
		return err
	}
	return inst.Lock(ctx, tk)
}

// List returns the publicly-visible toolkits, or, when active is set, at
// most the single toolkit currently selected in session state.
func (a *App) List(ctx context.Context, cwd string, active bool) ([]*toolkit.Toolkit, error) {
	factory, _, err := a.project(cwd)
	if err != nil {
		return nil, err
	}

	if !active {
		return factory.List()
	}

	key, err := a.settings.ActiveToolkit(ctx)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, nil
	}
	tk, err := factory.FromKey(key)
	if err != nil {
		return nil, err
	}
	return []*toolkit.Toolkit{tk}, nil
}

// Use records the named toolkit as the session's active selection. The key
// is validated against the configuration before persisting.
func (a *App) Use(ctx context.Context, cwd, key string) error {
	factory, _, err := a.project(cwd)
	if err != nil {
		return err
	}
	if _, err := factory.FromKey(key); err != nil {
		return err
	}
	return a.settings.SetActiveToolkit(ctx, key)
}
