package classpath

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recomp/internal/adapters/fs"
	"go.trai.ch/recomp/internal/core/ports"
	"go.trai.ch/recomp/internal/engine/fingerprint"
)

// NodeID is the unique identifier for the classpath snapshot provider Graft node.
const NodeID graft.ID = "adapter.classpath"

func init() {
	graft.Register(graft.Node[ports.ClasspathSnapshotProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.SnapshotterNodeID},
		Run: func(ctx context.Context) (ports.ClasspathSnapshotProvider, error) {
			snapshotter, err := graft.Dep[ports.Snapshotter](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(snapshotter, fingerprint.NewFingerprinter()), nil
		},
	})
}
