package mirror

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recomp/internal/core/ports"
)

// NodeID is the unique identifier for the filesystem mirror Graft node.
const NodeID graft.ID = "adapter.mirror"

func init() {
	graft.Register(graft.Node[ports.FileSystemMirror]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystemMirror, error) {
			return New(), nil
		},
	})
}
