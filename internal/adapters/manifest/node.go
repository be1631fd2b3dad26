package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/wesleykendall/footing/internal/core/ports"
)

const NodeID graft.ID = "adapter.manifest_parser"

func init() {
	graft.Register(graft.Node[ports.ManifestParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ManifestParser, error) {
			return NewParser(), nil
		},
	})
}
