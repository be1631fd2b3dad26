package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/wesleykendall/footing/internal/core/ports"
)

const NodeID graft.ID = "adapter.registry_opener"

func init() {
	graft.Register(graft.Node[ports.RegistryOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RegistryOpener, error) {
			return NewOpener(), nil
		},
	})
}
