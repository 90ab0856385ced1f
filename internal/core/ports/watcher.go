package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of a filesystem event.
type WatchOp uint8

const (
	// OpCreate is emitted when a path is created.
	OpCreate WatchOp = iota
	// OpWrite is emitted when a file is written.
	OpWrite
	// OpRemove is emitted when a path is removed.
	OpRemove
	// OpRename is emitted when a path is renamed away.
	OpRename
)

// WatchEvent is a single filesystem change.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher reports filesystem changes below a set of roots.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given roots recursively.
	Start(ctx context.Context, roots ...string) error
	// Stop stops the watcher and releases its resources.
	Stop() error
	// Events returns the events observed since Start. The sequence ends after Stop or when
	// the context passed to Start is done.
	Events() iter.Seq[WatchEvent]
}
