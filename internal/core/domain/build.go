package domain

// BuildKind distinguishes the artifact kinds the cache protocol manages.
type BuildKind string

const (
	// BuildKindLock is a resolved, pinned dependency graph.
	BuildKindLock BuildKind = "conda-lock"

	// BuildKindEnv is a materialized environment built from a lock.
	BuildKindEnv BuildKind = "toolkit"
)

// Build is a transient artifact descriptor used to query and push the
// registry tiers. It does not own storage; Path is filled in once the
// artifact is resolved to a concrete location.
type Build struct {
	Kind BuildKind
	Name string
	Ref  string
	Path string
}
