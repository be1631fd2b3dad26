// Package toolkit implements toolsets, toolkit composition, and the
// deterministic identity derivation used as the cache key for every
// downstream artifact.
package toolkit

import (
	"path/filepath"

	"github.com/wesleykendall/footing/internal/core/domain"
	"github.com/wesleykendall/footing/internal/core/ports"
	"go.trai.ch/zerr"
)

// recognizedManifests is the closed set of manifest filenames a toolset may
// reference.
var recognizedManifests = map[string]bool{
	"pyproject.toml":   true,
	"environment.yaml": true,
	"environment.yml":  true,
}

// Toolset is one declared unit of dependencies: a manager kind plus either
// an explicit tool list or a manifest file reference. Immutable after
// construction.
type Toolset struct {
	manager   domain.Manager
	tools     []string
	file      string
	dir       string
	manifests ports.ManifestParser
}

// newToolset validates and builds a toolset from its definition record.
// Invalid definitions are configuration errors and are rejected here, never
// deferred to install time.
func newToolset(def domain.ToolsetDef, dir string, manifests ports.ManifestParser) (*Toolset, error) {
	manager := domain.Manager(def.Manager)
	if !manager.Supported() {
		return nil, zerr.With(domain.ErrUnsupportedManager, "manager", def.Manager)
	}

	if len(def.Tools) == 0 && def.File == "" {
		return nil, domain.ErrMissingToolsOrFile
	}

	if def.File != "" && !recognizedManifests[def.File] {
		return nil, zerr.With(domain.ErrUnsupportedManifest, "file", def.File)
	}

	return &Toolset{
		manager:   manager,
		tools:     def.Tools,
		file:      def.File,
		dir:       dir,
		manifests: manifests,
	}, nil
}

// Manager returns the toolset's manager kind.
func (t *Toolset) Manager() domain.Manager {
	return t.manager
}

// File returns the referenced manifest filename, or "" for tool lists.
func (t *Toolset) File() string {
	return t.file
}

// FilePath returns the manifest path resolved against the project directory.
func (t *Toolset) FilePath() string {
	return filepath.Join(t.dir, t.file)
}

// DependencySpec generates the toolset's dependency specification. It is
// pure given the toolset's fields and the current contents of the
// referenced manifest file.
func (t *Toolset) DependencySpec() (domain.DependencySpec, error) {
	var spec domain.DependencySpec

	if t.file != "" {
		parsed, err := t.manifests.Parse(t.FilePath())
		if err != nil {
			return domain.DependencySpec{}, err
		}
		spec = parsed
	} else {
		deps := make([]domain.Dependency, 0, len(t.tools))
		for _, tool := range t.tools {
			deps = append(deps, domain.ParseRequirement(tool, t.manager))
		}
		spec = domain.DependencySpec{Dependencies: deps}
	}

	for i := range spec.Dependencies {
		dep := &spec.Dependencies[i]
		dep.NormalizeName()

		// python and pip are runtime primitives: they must come from the
		// base-environment manager or secondary-manager installs break on
		// bootstrap ordering.
		if dep.Name == "python" || dep.Name == "pip" {
			dep.Manager = domain.ManagerConda
		} else {
			dep.Manager = t.manager
		}

		if len(spec.Channels) == 0 && dep.Manager == domain.ManagerConda && dep.Channel == "" {
			dep.Channel = domain.DefaultCondaChannel
		}
	}

	// Sources are not a concern of this system; never let them escape.
	spec.Sources = []string{}
	return spec, nil
}
