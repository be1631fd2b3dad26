// Package manifest parses dependency-manifest files into dependency specs.
package manifest

import (
	"path/filepath"

	"github.com/wesleykendall/footing/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parser implements ports.ManifestParser, dispatching on the manifest's
// base name. Requirement names are preserved verbatim; the toolset applies
// normalization afterwards.
type Parser struct{}

// NewParser creates a manifest parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the manifest at path and returns its dependency spec.
func (p *Parser) Parse(path string) (domain.DependencySpec, error) {
	switch filepath.Base(path) {
	case "pyproject.toml":
		return parsePyproject(path)
	case "environment.yaml", "environment.yml":
		return parseEnvironment(path)
	default:
		return domain.DependencySpec{}, zerr.With(domain.ErrUnsupportedManifest, "file", filepath.Base(path))
	}
}
