package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/wesleykendall/footing/internal/adapters/condalock" //nolint:depguard // Wired in app layer
	"github.com/wesleykendall/footing/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/wesleykendall/footing/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/wesleykendall/footing/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"github.com/wesleykendall/footing/internal/adapters/registry"  //nolint:depguard // Wired in app layer
	"github.com/wesleykendall/footing/internal/adapters/settings"  //nolint:depguard // Wired in app layer
	"github.com/wesleykendall/footing/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/wesleykendall/footing/internal/core/domain"
	"github.com/wesleykendall/footing/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			registry.NodeID,
			condalock.ResolverNodeID,
			condalock.MaterializerNodeID,
			settings.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			settings.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	manifests, err := graft.Dep[ports.ManifestParser](ctx)
	if err != nil {
		return nil, err
	}

	registries, err := graft.Dep[ports.RegistryOpener](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.LockResolver](ctx)
	if err != nil {
		return nil, err
	}

	materializer, err := graft.Dep[ports.Materializer](ctx)
	if err != nil {
		return nil, err
	}

	sessionStore, err := graft.Dep[ports.SettingsStore](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, manifests, registries, resolver, materializer, sessionStore, tel, log, domain.DefaultLayout()), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	sessionStore, err := graft.Dep[ports.SettingsStore](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Settings:  sessionStore,
		Telemetry: tel,
	}, nil
}
