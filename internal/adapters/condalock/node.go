package condalock

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/wesleykendall/footing/internal/core/domain"
	"github.com/wesleykendall/footing/internal/core/ports"
)

const (
	ResolverNodeID     graft.ID = "adapter.condalock.resolver"
	MaterializerNodeID graft.ID = "adapter.condalock.materializer"
)

func init() {
	graft.Register(graft.Node[ports.LockResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LockResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.Materializer]{
		ID:        MaterializerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Materializer, error) {
			return NewMaterializer(domain.DefaultLayout()), nil
		},
	})
}
