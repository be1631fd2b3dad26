package app

import "github.com/wesleykendall/footing/internal/core/ports"

// Components bundles the fully-wired application with the collaborators the
// entry point needs direct access to.
type Components struct {
	App       *App
	Logger    ports.Logger
	Settings  ports.SettingsStore
	Telemetry ports.Telemetry
}
