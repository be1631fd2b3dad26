package ports

import "context"

// SettingsStore persists session state, currently the active toolkit
// selection. Modeled as an explicit store rather than ambient process-wide
// state so callers pass it where they need it.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsStore interface {
	// ActiveToolkit returns the selected toolkit key, or "" when none is
	// selected.
	ActiveToolkit(ctx context.Context) (string, error)

	// SetActiveToolkit records the selection.
	SetActiveToolkit(ctx context.Context, key string) error

	// Close releases the underlying store.
	Close() error
}
