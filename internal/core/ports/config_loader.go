// Package ports defines the core interfaces for the application.
package ports

import "github.com/wesleykendall/footing/internal/core/domain"

// ConfigLoader loads the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	Load(cwd string) (*domain.Config, error)
}
