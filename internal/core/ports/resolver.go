package ports

import (
	"context"

	"github.com/wesleykendall/footing/internal/core/domain"
)

// LockResolver produces a lock artifact from a merged dependency
// specification. It is an opaque collaborator: for equal inputs it is
// expected to produce functionally equivalent locks.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type LockResolver interface {
	// Lock resolves the ordered specs against the target platforms and
	// writes the lock artifact to dest.
	Lock(ctx context.Context, specs []domain.DependencySpec, platforms []string, dest string) error
}

// Materializer installs a runnable environment from a lock artifact.
type Materializer interface {
	// Install materializes the lock at lockPath into an environment named
	// envName and returns the installed path.
	Install(ctx context.Context, lockPath string, envName string) (string, error)
}
