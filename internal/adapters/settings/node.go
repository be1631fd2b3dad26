package settings

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/wesleykendall/footing/internal/core/domain"
	"github.com/wesleykendall/footing/internal/core/ports"
)

const NodeID graft.ID = "adapter.settings_store"

func init() {
	graft.Register(graft.Node[ports.SettingsStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SettingsStore, error) {
			store, err := NewStore(domain.DefaultLayout().SettingsPath())
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
