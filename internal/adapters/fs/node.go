package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recomp/internal/adapters/mirror"
	"go.trai.ch/recomp/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the unique identifier for the content hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// SnapshotterNodeID is the unique identifier for the snapshotter Graft node.
	SnapshotterNodeID graft.ID = "adapter.fs.snapshotter"
)

func init() {
	// Walker Node (Concrete implementation needed by Snapshotter)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ContentHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ContentHasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Snapshotter]{
		ID:        SnapshotterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{mirror.NodeID, HasherNodeID, WalkerNodeID},
		Run: func(ctx context.Context) (ports.Snapshotter, error) {
			m, err := graft.Dep[ports.FileSystemMirror](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.ContentHasher](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewSnapshotter(m, hasher, walker), nil
		},
	})
}
