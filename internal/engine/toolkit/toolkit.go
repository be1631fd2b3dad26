package toolkit

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"slices"

	"github.com/wesleykendall/footing/internal/core/domain"
	"go.trai.ch/zerr"
)

// PipBootstrapVersion is the known-good pip version pinned when the bridge
// dependency is synthesized.
const PipBootstrapVersion = "22.3.1"

// defaultPlatforms is the platform set used when a toolkit declares none.
var defaultPlatforms = []string{"osx-arm64", "osx-64", "linux-64"}

// Toolkit is a named, optionally-inherited composition of toolsets. The
// base chain is an explicit parent reference resolved fully before the
// child is returned, so chains are acyclic by construction.
type Toolkit struct {
	key       string
	toolsets  []*Toolset
	base      *Toolkit
	platforms []string
	project   string
	def       domain.ToolkitDef
}

// Key returns the toolkit's unique name within the configuration.
func (t *Toolkit) Key() string {
	return t.key
}

// Platforms returns the ordered target platform identifiers.
func (t *Toolkit) Platforms() []string {
	return t.platforms
}

// URI returns the toolkit's artifact URI ("toolkit:<key>").
func (t *Toolkit) URI() string {
	return "toolkit:" + t.key
}

// EnvName returns the environment name derived from the project key, with
// the toolkit key appended unless it is the default toolkit.
func (t *Toolkit) EnvName() string {
	name := t.project
	if t.key != "default" {
		name += "-" + t.key
	}
	return name
}

// FlattenedToolkits lists the full inheritance chain in base-to-child
// order: ancestors strictly before self, self exactly once, last.
func (t *Toolkit) FlattenedToolkits() []*Toolkit {
	var chain []*Toolkit
	for tk := t; tk != nil; tk = tk.base {
		chain = append(chain, tk)
	}
	slices.Reverse(chain)
	return chain
}

// FlattenedToolsets concatenates each chain member's own toolsets in
// flattened-toolkit order. The order is semantically significant: it fixes
// both the content hash and the dependency-merge order.
func (t *Toolkit) FlattenedToolsets() []*Toolset {
	var toolsets []*Toolset
	for _, tk := range t.FlattenedToolkits() {
		toolsets = append(toolsets, tk.toolsets...)
	}
	return toolsets
}

// Ref computes the toolkit's deterministic content hash: the canonical
// serialization of every definition in the flattened chain, then the raw
// bytes of every referenced manifest, fed into a single sha256 digest in
// that fixed order.
func (t *Toolkit) Ref() (string, error) {
	h := sha256.New()

	for _, tk := range t.FlattenedToolkits() {
		definition, err := tk.def.Canonical()
		if err != nil {
			return "", err
		}
		_, _ = h.Write(definition)
	}

	for _, ts := range t.FlattenedToolsets() {
		if ts.file == "" {
			continue
		}
		data, err := os.ReadFile(ts.FilePath())
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to read manifest file"), "path", ts.FilePath())
		}
		_, _ = h.Write(data)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// DependencySpecs returns the dependency specs of every flattened toolset,
// in order, without merging them into one object. When the merged set
// contains a python dependency and secondary-manager dependencies but no
// explicit pip, a minimal bridge spec with a pinned pip is appended so the
// package-manager bridge tool is always present when needed.
func (t *Toolkit) DependencySpecs() ([]domain.DependencySpec, error) {
	toolsets := t.FlattenedToolsets()
	specs := make([]domain.DependencySpec, 0, len(toolsets)+1)
	for _, ts := range toolsets {
		spec, err := ts.DependencySpec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	var pythonDep, pipDep *domain.Dependency
	hasPipDependencies := false
	for si := range specs {
		for di := range specs[si].Dependencies {
			dep := &specs[si].Dependencies[di]
			switch dep.Name {
			case "python":
				pythonDep = dep
			case "pip":
				pipDep = dep
			}
			if dep.Manager == domain.ManagerPip {
				hasPipDependencies = true
			}
		}
	}

	if pythonDep != nil && pipDep == nil && hasPipDependencies {
		bridge := *pythonDep
		bridge.Name = "pip"
		bridge.Version = PipBootstrapVersion
		specs = append(specs, domain.DependencySpec{
			Dependencies: []domain.Dependency{bridge},
			Sources:      []string{},
		})
	}

	return specs, nil
}
