// Package fs provides file system adapters for walking, hashing and snapshotting files.
package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

// alwaysSkipped are directories that never contain sources.
var alwaysSkipped = map[string]bool{
	".git": true,
	".jj":  true,
}

// Walker reads directory trees from disk.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Entry is one directory entry as seen by the walker.
type Entry struct {
	Path  string
	IsDir bool
}

// ReadDir lists the entries of dir sorted by name, skipping .git, .jj and entries whose name
// matches one of the ignore globs. Symbolic links to files are followed. Links to directories
// are skipped so that link cycles cannot recurse, and so are dangling links.
func (w *Walker) ReadDir(dir string, ignores []string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDirectoryReadFailed.Error()), "path", dir)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		if w.shouldSkip(d.Name(), d.IsDir(), ignores) {
			continue
		}
		if d.Type()&os.ModeSymlink != 0 && !linksToFile(filepath.Join(dir, d.Name())) {
			continue
		}
		entries = append(entries, Entry{Path: filepath.Join(dir, d.Name()), IsDir: d.IsDir()})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return entries, nil
}

func linksToFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (w *Walker) shouldSkip(name string, isDir bool, ignores []string) bool {
	if isDir && alwaysSkipped[name] {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
