package domain

import "strings"

// versionOps are the requirement-string comparison operators, longest first
// so that "==" is not split as "=".
var versionOps = []string{"===", "==", ">=", "<=", "!=", "~=", ">", "<", "="}

// ParseRequirement splits a pip-style requirement string (e.g.
// "Requests==2.0", "python>=3.10", "black") into a Dependency assigned to
// the given manager. The name is kept verbatim; normalization happens later
// in toolset post-processing. Extras markers ("name[extra]") are dropped
// from the name.
func ParseRequirement(requirement string, manager Manager) Dependency {
	name := strings.TrimSpace(requirement)
	version := ""

	opIdx := -1
	opLen := 0
	for _, op := range versionOps {
		if i := strings.Index(name, op); i >= 0 && (opIdx < 0 || i < opIdx) {
			opIdx = i
			opLen = len(op)
		}
	}
	if opIdx >= 0 {
		version = strings.TrimSpace(name[opIdx:])
		name = strings.TrimSpace(name[:opIdx])
		// A bare "=" pin is written back as an exact version.
		if opLen == 1 && strings.HasPrefix(version, "=") {
			version = "==" + strings.TrimSpace(version[1:])
		}
	}

	if i := strings.Index(name, "["); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}

	return Dependency{
		Name:    name,
		Manager: manager,
		Version: version,
	}
}
