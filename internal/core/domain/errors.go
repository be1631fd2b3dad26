package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedManager is returned when a toolset declares a manager
	// outside the supported set.
	ErrUnsupportedManager = zerr.New("unsupported manager")

	// ErrMissingToolsOrFile is returned when a toolset declares neither a
	// tool list nor a manifest file.
	ErrMissingToolsOrFile = zerr.New("must provide a list of tools or a file for toolset")

	// ErrUnsupportedManifest is returned when a toolset references a
	// manifest filename outside the recognized set.
	ErrUnsupportedManifest = zerr.New("unsupported manifest file")

	// ErrToolkitNotFound is returned when no toolkit with the requested key
	// is declared in the configuration.
	ErrToolkitNotFound = zerr.New("toolkit not found")

	// ErrBaseCycle is returned when toolkit base references form a cycle.
	ErrBaseCycle = zerr.New("toolkit base chain contains a cycle")

	// ErrLockArtifactMissing indicates the lock artifact was absent from the
	// shared registry when materializing an environment. The install
	// protocol guarantees its presence at that point, so this is an
	// internal-consistency failure, not an external tool failure.
	ErrLockArtifactMissing = zerr.New("lock artifact missing from shared registry")

	// ErrArtifactPathMissing is returned when a build descriptor is pushed
	// without a resolved path.
	ErrArtifactPathMissing = zerr.New("build has no resolved path")
)
