package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var _ ports.Snapshotter = (*Snapshotter)(nil)

// Snapshotter reads snapshots from disk and caches them in a FileSystemMirror.
// Concurrent misses for the same path are coalesced, so each path is read at most once
// until it is evicted from the mirror.
type Snapshotter struct {
	mirror ports.FileSystemMirror
	hasher ports.ContentHasher
	walker *Walker

	flight singleflight.Group
}

// NewSnapshotter creates a new Snapshotter.
func NewSnapshotter(mirror ports.FileSystemMirror, hasher ports.ContentHasher, walker *Walker) *Snapshotter {
	return &Snapshotter{
		mirror: mirror,
		hasher: hasher,
		walker: walker,
	}
}

// SnapshotFile returns the structural snapshot of path. Directories are snapshotted with
// their whole tree.
func (s *Snapshotter) SnapshotFile(path string) (domain.PhysicalSnapshot, error) {
	path = filepath.Clean(path)
	if cached, ok := s.mirror.GetFile(path); ok {
		return cached, nil
	}

	v, err, _ := s.flight.Do("file:"+path, func() (any, error) {
		snapshot, err := s.snapshotEntry(path, nil)
		if err != nil {
			return nil, err
		}
		s.mirror.PutFile(snapshot)
		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(domain.PhysicalSnapshot), nil
}

// Content returns the content snapshot of the regular file at path.
func (s *Snapshotter) Content(path string) (domain.FileContentSnapshot, error) {
	path = filepath.Clean(path)
	if cached, ok := s.mirror.GetContent(path); ok {
		return cached, nil
	}

	v, err, _ := s.flight.Do("content:"+path, func() (any, error) {
		hash, err := s.hasher.HashFile(path)
		if err != nil {
			return nil, err
		}
		content := domain.NewFileContentSnapshot(hash)
		s.mirror.PutContent(path, content)
		return content, nil
	})
	if err != nil {
		return domain.FileContentSnapshot{}, err
	}
	return v.(domain.FileContentSnapshot), nil
}

// SnapshotDirectoryTree returns the tree rooted at path. A missing root yields a
// MissingFileSnapshot and a regular file yields its RegularFileSnapshot.
func (s *Snapshotter) SnapshotDirectoryTree(path string, ignores []string) (domain.FileSystemSnapshot, error) {
	path = filepath.Clean(path)
	if cached, ok := s.mirror.GetDirectoryTree(path); ok {
		return cached, nil
	}

	v, err, _ := s.flight.Do("tree:"+path, func() (any, error) {
		tree, err := s.snapshotEntry(path, ignores)
		if err != nil {
			return nil, err
		}
		s.mirror.PutDirectory(path, tree)
		return tree, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(domain.FileSystemSnapshot), nil
}

// SnapshotAll snapshots the trees rooted at paths concurrently.
func (s *Snapshotter) SnapshotAll(ctx context.Context, paths, ignores []string) ([]domain.FileSystemSnapshot, error) {
	results := make([]domain.FileSystemSnapshot, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tree, err := s.SnapshotDirectoryTree(path, ignores)
			if err != nil {
				return err
			}
			results[i] = tree
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Snapshotter) snapshotEntry(path string, ignores []string) (domain.PhysicalSnapshot, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.NewMissingFileSnapshot(path), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}

	if !info.IsDir() {
		content, err := s.Content(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotFailed.Error()), "path", path)
		}
		file := domain.NewRegularFileSnapshot(path, content.ContentHash())
		s.mirror.PutFile(file)
		return file, nil
	}

	entries, err := s.walker.ReadDir(path, ignores)
	if err != nil {
		return nil, err
	}
	children := make([]domain.PhysicalSnapshot, 0, len(entries))
	for _, entry := range entries {
		child, err := s.snapshotEntry(entry.Path, ignores)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return domain.NewDirectorySnapshot(path, children), nil
}
