package sourcestate

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recomp/internal/core/ports"
)

// NodeID is the unique identifier for the source state store Graft node.
const NodeID graft.ID = "adapter.source_state_store"

func init() {
	graft.Register(graft.Node[ports.SourceStateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceStateStore, error) {
			return NewStore(), nil
		},
	})
}
