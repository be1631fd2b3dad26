package ports

import "github.com/wesleykendall/footing/internal/core/domain"

// ManifestParser parses a dependency-manifest file into a spec.
//
// Parsers must preserve requirement names verbatim; name normalization is
// applied afterwards by the toolset so it stays reproducible regardless of
// the manifest format.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestParser interface {
	// Parse reads the manifest at path, dispatching on its base name.
	Parse(path string) (domain.DependencySpec, error)
}
