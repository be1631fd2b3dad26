package domain

import (
	"os"
	"path/filepath"
)

// Layout resolves the persisted state directories under a single root
// (by default ~/.footing).
type Layout struct {
	Root string
}

// DefaultLayout returns the layout rooted at ~/.footing, falling back to a
// relative directory when the home directory cannot be determined.
func DefaultLayout() Layout {
	home, err := os.UserHomeDir()
	if err != nil {
		return Layout{Root: ".footing"}
	}
	return Layout{Root: filepath.Join(home, ".footing")}
}

// LocksDir is where built lock artifacts are staged, named by toolkit URI.
func (l Layout) LocksDir() string {
	return filepath.Join(l.Root, "locks")
}

// EnvsDir is where materialized environments are installed, named by
// environment name.
func (l Layout) EnvsDir() string {
	return filepath.Join(l.Root, "envs")
}

// LocalRegistryDir is the root of the machine-local registry tier.
func (l Layout) LocalRegistryDir() string {
	return filepath.Join(l.Root, "registry")
}

// SettingsPath is the session settings database.
func (l Layout) SettingsPath() string {
	return filepath.Join(l.Root, "settings.db")
}
