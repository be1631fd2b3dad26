// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/wesleykendall/footing/internal/adapters/condalock"
	_ "github.com/wesleykendall/footing/internal/adapters/config"
	_ "github.com/wesleykendall/footing/internal/adapters/logger"
	_ "github.com/wesleykendall/footing/internal/adapters/manifest"
	_ "github.com/wesleykendall/footing/internal/adapters/registry"
	_ "github.com/wesleykendall/footing/internal/adapters/settings"
	_ "github.com/wesleykendall/footing/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/wesleykendall/footing/internal/app"
)
