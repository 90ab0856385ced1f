// Package mirror implements an in-memory cache of filesystem snapshots.
package mirror

import (
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports"
)

var _ ports.FileSystemMirror = (*Mirror)(nil)

// Mirror implements ports.FileSystemMirror with three path-keyed maps guarded by one RWMutex.
type Mirror struct {
	mu       sync.RWMutex
	files    map[string]domain.PhysicalSnapshot
	contents map[string]domain.FileContentSnapshot
	trees    map[string]domain.FileSystemSnapshot
}

// New creates an empty Mirror.
func New() *Mirror {
	return &Mirror{
		files:    make(map[string]domain.PhysicalSnapshot),
		contents: make(map[string]domain.FileContentSnapshot),
		trees:    make(map[string]domain.FileSystemSnapshot),
	}
}

// GetFile returns the cached structural snapshot for absolutePath.
func (m *Mirror) GetFile(absolutePath string) (domain.PhysicalSnapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.files[absolutePath]
	return s, ok
}

// PutFile caches file under its absolute path.
func (m *Mirror) PutFile(file domain.PhysicalSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[file.AbsolutePath()] = file
}

// GetContent returns the cached content snapshot for absolutePath.
func (m *Mirror) GetContent(absolutePath string) (domain.FileContentSnapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.contents[absolutePath]
	return s, ok
}

// PutContent caches the content snapshot for absolutePath.
func (m *Mirror) PutContent(absolutePath string, content domain.FileContentSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents[absolutePath] = content
}

// GetDirectoryTree returns the cached tree rooted at absolutePath.
func (m *Mirror) GetDirectoryTree(absolutePath string) (domain.FileSystemSnapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.trees[absolutePath]
	return s, ok
}

// PutDirectory caches the tree rooted at absolutePath.
func (m *Mirror) PutDirectory(absolutePath string, tree domain.FileSystemSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trees[absolutePath] = tree
}

// Evict drops every cached value for absolutePath.
func (m *Mirror) Evict(absolutePath string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, absolutePath)
	delete(m.contents, absolutePath)
	delete(m.trees, absolutePath)
}

// EvictUnder drops every value cached at or below dir, and every tree whose root contains dir.
func (m *Mirror) EvictUnder(dir string) {
	dir = filepath.Clean(dir)

	m.mu.Lock()
	defer m.mu.Unlock()

	for path := range m.files {
		if within(path, dir) {
			delete(m.files, path)
		}
	}
	for path := range m.contents {
		if within(path, dir) {
			delete(m.contents, path)
		}
	}
	for path := range m.trees {
		if within(path, dir) || within(dir, path) {
			delete(m.trees, path)
		}
	}
}

// Len returns the number of cached values across all kinds.
func (m *Mirror) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.files) + len(m.contents) + len(m.trees)
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	if path == dir {
		return true
	}
	if dir == string(filepath.Separator) {
		return strings.HasPrefix(path, dir)
	}
	return strings.HasPrefix(path, dir+string(filepath.Separator))
}
