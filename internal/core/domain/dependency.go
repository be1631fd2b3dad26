// Package domain holds the core data model for toolkits, dependencies,
// and build artifacts.
package domain

import "strings"

// Manager identifies a package-manager kind.
type Manager string

const (
	// ManagerConda is the base-environment manager. Runtime primitives
	// (python, pip) always resolve through it.
	ManagerConda Manager = "conda"

	// ManagerPip is the secondary manager for Python packages.
	ManagerPip Manager = "pip"
)

// Supported reports whether the manager is one of the recognized kinds.
func (m Manager) Supported() bool {
	return m == ManagerConda || m == ManagerPip
}

// DefaultCondaChannel is assigned to conda dependencies that have no
// channel when the spec declares no channel list of its own.
const DefaultCondaChannel = "conda-forge"

// Dependency is one package requirement after toolset post-processing.
type Dependency struct {
	// Name is the package name, lowercased and trimmed.
	Name string

	// Manager is the manager kind the dependency resolves through.
	Manager Manager

	// Version is an optional constraint or pin (e.g. "==2.0", "22.3.1").
	Version string

	// Channel is an optional source qualifier; only meaningful for conda.
	Channel string
}

// NormalizeName lowercases and trims the dependency name in place.
// Parsing preserves names verbatim so this step is the single authority
// on name normalization.
func (d *Dependency) NormalizeName() {
	d.Name = strings.ToLower(strings.TrimSpace(d.Name))
}

// DependencySpec is an ordered set of dependencies from one source
// (a toolset's tool list or a manifest file).
type DependencySpec struct {
	Dependencies []Dependency
	Channels     []string

	// Sources is cleared before a spec leaves the toolset boundary;
	// it exists only for wire compatibility with resolver inputs.
	Sources []string
}
