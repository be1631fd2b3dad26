package toolkit

import (
	"slices"
	"strings"

	"github.com/wesleykendall/footing/internal/core/domain"
	"github.com/wesleykendall/footing/internal/core/ports"
	"go.trai.ch/zerr"
)

// privatePrefix marks toolkit keys hidden from listing and default
// resolution.
const privatePrefix = "_"

// Factory constructs toolkits from a loaded configuration. Manifest paths
// resolve against dir, the directory containing the configuration file.
type Factory struct {
	cfg       *domain.Config
	dir       string
	manifests ports.ManifestParser
}

// NewFactory creates a Factory over the given configuration.
func NewFactory(cfg *domain.Config, dir string, manifests ports.ManifestParser) *Factory {
	return &Factory{
		cfg:       cfg,
		dir:       dir,
		manifests: manifests,
	}
}

// FromKey returns the toolkit declared under key, with its full base chain
// resolved.
func (f *Factory) FromKey(key string) (*Toolkit, error) {
	return f.fromKey(key, map[string]bool{})
}

func (f *Factory) fromKey(key string, seen map[string]bool) (*Toolkit, error) {
	if seen[key] {
		return nil, zerr.With(domain.ErrBaseCycle, "key", key)
	}
	seen[key] = true

	for _, def := range f.cfg.Toolkits {
		if def.Key == key {
			return f.fromDef(def, seen)
		}
	}
	return nil, zerr.With(domain.ErrToolkitNotFound, "key", key)
}

func (f *Factory) fromDef(def domain.ToolkitDef, seen map[string]bool) (*Toolkit, error) {
	toolsetDefs := def.Toolsets
	if len(toolsetDefs) == 0 {
		toolsetDefs = []domain.ToolsetDef{def.InlineToolset()}
	}

	toolsets := make([]*Toolset, 0, len(toolsetDefs))
	for _, tsDef := range toolsetDefs {
		ts, err := newToolset(tsDef, f.dir, f.manifests)
		if err != nil {
			return nil, zerr.With(err, "toolkit", def.Key)
		}
		toolsets = append(toolsets, ts)
	}

	var base *Toolkit
	if def.Base != "" {
		resolved, err := f.fromKey(def.Base, seen)
		if err != nil {
			return nil, err
		}
		base = resolved
	}

	platforms := def.Platforms
	if len(platforms) == 0 {
		platforms = slices.Clone(defaultPlatforms)
	}

	return &Toolkit{
		key:       def.Key,
		toolsets:  toolsets,
		base:      base,
		platforms: platforms,
		project:   f.cfg.Project.Key,
		def:       def,
	}, nil
}

// FromDefault resolves the unambiguous default toolkit: the toolkit keyed
// "default" when present, else the single non-private toolkit if exactly
// one exists. Returns nil, nil when no default exists; never a guess.
func (f *Factory) FromDefault() (*Toolkit, error) {
	key := ""
	numPublic := 0
	for _, def := range f.cfg.Toolkits {
		if def.Key == "default" {
			return f.FromKey("default")
		}
		if !strings.HasPrefix(def.Key, privatePrefix) {
			key = def.Key
			numPublic++
		}
	}

	if numPublic != 1 {
		return nil, nil
	}
	return f.FromKey(key)
}

// Get returns the named toolkit, or the unambiguous default when key is
// empty. A nil toolkit with a nil error means no default exists.
func (f *Factory) Get(key string) (*Toolkit, error) {
	if key != "" {
		return f.FromKey(key)
	}
	return f.FromDefault()
}

// List returns all publicly-visible toolkits in declaration order.
func (f *Factory) List() ([]*Toolkit, error) {
	var toolkits []*Toolkit
	for _, def := range f.cfg.Toolkits {
		if strings.HasPrefix(def.Key, privatePrefix) {
			continue
		}
		tk, err := f.FromKey(def.Key)
		if err != nil {
			return nil, err
		}
		toolkits = append(toolkits, tk)
	}
	return toolkits, nil
}
