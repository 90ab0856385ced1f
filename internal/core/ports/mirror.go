package ports

import "go.trai.ch/recomp/internal/core/domain"

// FileSystemMirror caches filesystem snapshots by absolute path for the duration of a build.
//
// Implementations must be safe for concurrent use. Lookups never compute a value: a miss is
// reported and the caller decides whether to snapshot and Put. Two callers racing a miss for
// the same path may both Put; the last write wins. The mirror never invalidates entries on
// its own, callers overwrite or Evict when they know an entry is stale.
//
//go:generate go run go.uber.org/mock/mockgen -source=mirror.go -destination=mocks/mock_mirror.go -package=mocks
type FileSystemMirror interface {
	// GetFile returns the structural snapshot of a single entry.
	GetFile(absolutePath string) (domain.PhysicalSnapshot, bool)
	// PutFile stores the snapshot under its own absolute path.
	PutFile(file domain.PhysicalSnapshot)

	// GetContent returns the content snapshot of a file.
	GetContent(absolutePath string) (domain.FileContentSnapshot, bool)
	// PutContent stores the content snapshot of a file.
	PutContent(absolutePath string, content domain.FileContentSnapshot)

	// GetDirectoryTree returns the snapshot of a whole directory tree.
	GetDirectoryTree(absolutePath string) (domain.FileSystemSnapshot, bool)
	// PutDirectory stores the snapshot of a whole directory tree.
	PutDirectory(absolutePath string, tree domain.FileSystemSnapshot)

	// Evict drops every cached value for absolutePath.
	Evict(absolutePath string)
	// EvictUnder drops every cached value at or below the directory dir, and every
	// directory tree that contains dir.
	EvictUnder(dir string)
	// Len returns the number of cached values across all kinds.
	Len() int
}
