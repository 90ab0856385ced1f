package ports

import (
	"context"

	"go.trai.ch/recomp/internal/core/domain"
)

// ContentHasher computes content hashes of files on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshotter.go -destination=mocks/mock_snapshotter.go -package=mocks
type ContentHasher interface {
	// HashFile returns the hash of the file's bytes.
	HashFile(path string) (domain.HashCode, error)
}

// Snapshotter produces filesystem snapshots, serving them from a FileSystemMirror when possible.
type Snapshotter interface {
	// SnapshotFile returns the structural snapshot of a single path.
	// A path that does not exist yields a MissingFileSnapshot, not an error.
	SnapshotFile(path string) (domain.PhysicalSnapshot, error)

	// Content returns the content snapshot of a regular file.
	Content(path string) (domain.FileContentSnapshot, error)

	// SnapshotDirectoryTree returns the snapshot of the tree rooted at path. Entries whose
	// name matches one of the ignore globs are left out. Trees are cached by path only, so a
	// path must always be snapshotted with the same ignores.
	SnapshotDirectoryTree(path string, ignores []string) (domain.FileSystemSnapshot, error)

	// SnapshotAll snapshots several trees concurrently and returns them in argument order.
	SnapshotAll(ctx context.Context, paths []string, ignores []string) ([]domain.FileSystemSnapshot, error)
}
