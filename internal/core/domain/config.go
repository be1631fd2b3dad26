package domain

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Config is the project-wide configuration, consumed read-only.
type Config struct {
	Project  ProjectDef   `yaml:"project"`
	Toolkits []ToolkitDef `yaml:"toolkits"`
	Registry RegistryDef  `yaml:"registry"`
}

// ProjectDef identifies the project owning the configuration.
type ProjectDef struct {
	Key string `yaml:"key"`
}

// RegistryDef locates the registry tiers.
type RegistryDef struct {
	// Shared is the root of the team-wide registry tier.
	Shared string `yaml:"shared"`
}

// ToolsetDef is the raw definition record for one toolset.
type ToolsetDef struct {
	Manager string   `yaml:"manager,omitempty"`
	Tools   []string `yaml:"tools,omitempty"`
	File    string   `yaml:"file,omitempty"`
}

// ToolkitDef is the raw definition record for one toolkit. It is retained
// verbatim on the constructed toolkit because its canonical serialization
// feeds the content hash.
type ToolkitDef struct {
	Key       string       `yaml:"key"`
	Base      string       `yaml:"base,omitempty"`
	Platforms []string     `yaml:"platforms,omitempty"`
	Toolsets  []ToolsetDef `yaml:"toolsets,omitempty"`

	// Inline toolset fields: a toolkit declared without a toolsets list is
	// itself a single toolset definition.
	Manager string   `yaml:"manager,omitempty"`
	Tools   []string `yaml:"tools,omitempty"`
	File    string   `yaml:"file,omitempty"`
}

// Canonical returns a deterministic serialization of the definition record.
// Field order is fixed by the struct, so equal definitions always produce
// equal bytes.
func (d ToolkitDef) Canonical() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to serialize toolkit definition")
	}
	return data, nil
}

// InlineToolset extracts the inline toolset definition from a toolkit
// declared without an explicit toolsets list.
func (d ToolkitDef) InlineToolset() ToolsetDef {
	return ToolsetDef{
		Manager: d.Manager,
		Tools:   d.Tools,
		File:    d.File,
	}
}
