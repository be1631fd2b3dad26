package manifest

import (
	"os"

	"github.com/wesleykendall/footing/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// environmentFile mirrors the conda environment manifest format. The
// dependencies list mixes plain requirement strings with a nested
// {pip: [...]} mapping, so entries decode as raw nodes.
type environmentFile struct {
	Channels     []string    `yaml:"channels"`
	Dependencies []yaml.Node `yaml:"dependencies"`
}

// parseEnvironment reads an environment.yml/.yaml manifest.
func parseEnvironment(path string) (domain.DependencySpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is validated by the toolset
	if err != nil {
		return domain.DependencySpec{}, zerr.With(zerr.Wrap(err, "failed to read environment manifest"), "path", path)
	}

	var file environmentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.DependencySpec{}, zerr.With(zerr.Wrap(err, "failed to parse environment manifest"), "path", path)
	}

	var deps []domain.Dependency
	for i := range file.Dependencies {
		node := &file.Dependencies[i]
		switch node.Kind {
		case yaml.ScalarNode:
			var requirement string
			if err := node.Decode(&requirement); err != nil {
				return domain.DependencySpec{}, zerr.Wrap(err, "failed to decode dependency entry")
			}
			deps = append(deps, domain.ParseRequirement(requirement, domain.ManagerConda))
		case yaml.MappingNode:
			var sections map[string][]string
			if err := node.Decode(&sections); err != nil {
				return domain.DependencySpec{}, zerr.Wrap(err, "failed to decode dependency section")
			}
			for _, requirement := range sections["pip"] {
				deps = append(deps, domain.ParseRequirement(requirement, domain.ManagerPip))
			}
		default:
			return domain.DependencySpec{}, zerr.With(zerr.New("unexpected dependency entry"), "path", path)
		}
	}

	return domain.DependencySpec{
		Dependencies: deps,
		Channels:     file.Channels,
	}, nil
}
