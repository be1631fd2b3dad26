package ports

import "github.com/wesleykendall/footing/internal/core/domain"

// Registry is an artifact store tier. Two instances exist at runtime: the
// machine-local tier and the shared team-wide tier.
//
// Push must be idempotent for equal (kind, name, ref) descriptors;
// concurrent writers are resolved last-writer-wins at this boundary.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// Find looks up an artifact matching the descriptor's kind, name, and
	// ref. Returns nil, nil when absent; on a hit the returned build has
	// Path resolved to the stored payload.
	Find(build domain.Build) (*domain.Build, error)

	// Push stores the payload at build.Path under the descriptor's
	// kind, name, and ref.
	Push(build domain.Build) error

	// Copy promotes an artifact from this registry into another tier
	// without rebuilding it.
	Copy(build domain.Build, to Registry) error
}

// RegistryOpener opens a registry tier rooted at a directory. The shared
// tier's root comes from configuration, so tiers are opened per invocation
// rather than wired statically.
type RegistryOpener interface {
	Open(root string) (Registry, error)
}
