package manifest

import (
	"github.com/BurntSushi/toml"
	"github.com/wesleykendall/footing/internal/core/domain"
	"go.trai.ch/zerr"
)

// pyprojectFile is the subset of PEP 621 metadata the parser consumes.
type pyprojectFile struct {
	Project struct {
		RequiresPython string   `toml:"requires-python"`
		Dependencies   []string `toml:"dependencies"`
	} `toml:"project"`
}

// parsePyproject reads [project] dependencies from a pyproject.toml.
// Requirements parse as pip dependencies; the python requirement (when
// requires-python is set) is emitted first so a runtime is always part of
// the spec. Toolset post-processing may still reassign managers.
func parsePyproject(path string) (domain.DependencySpec, error) {
	var file pyprojectFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return domain.DependencySpec{}, zerr.With(zerr.Wrap(err, "failed to parse pyproject manifest"), "path", path)
	}

	var deps []domain.Dependency
	if file.Project.RequiresPython != "" {
		deps = append(deps, domain.Dependency{
			Name:    "python",
			Manager: domain.ManagerConda,
			Version: file.Project.RequiresPython,
		})
	}
	for _, requirement := range file.Project.Dependencies {
		deps = append(deps, domain.ParseRequirement(requirement, domain.ManagerPip))
	}

	return domain.DependencySpec{Dependencies: deps}, nil
}
