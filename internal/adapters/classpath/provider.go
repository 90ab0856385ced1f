// Package classpath fingerprints compile classpaths.
package classpath

import (
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports"
	"go.trai.ch/recomp/internal/engine/fingerprint"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ClasspathSnapshotProvider = (*Provider)(nil)

// Provider implements ports.ClasspathSnapshotProvider on top of a Snapshotter.
// Archives and other files are fingerprinted by content only, directories by their
// root-relative layout. Results are memoized per classpath until Reset.
type Provider struct {
	snapshotter   ports.Snapshotter
	fingerprinter *fingerprint.Fingerprinter

	mu    sync.Mutex
	cache map[string]*domain.ClasspathSnapshot
}

// NewProvider creates a new Provider.
func NewProvider(snapshotter ports.Snapshotter, fingerprinter *fingerprint.Fingerprinter) *Provider {
	return &Provider{
		snapshotter:   snapshotter,
		fingerprinter: fingerprinter,
		cache:         make(map[string]*domain.ClasspathSnapshot),
	}
}

// ClasspathSnapshot returns the snapshot of classpath. Entries are kept in classpath order
// and a missing entry is fingerprinted as missing rather than failing.
func (p *Provider) ClasspathSnapshot(classpath []string) (*domain.ClasspathSnapshot, error) {
	key := strings.Join(classpath, "\x00")

	p.mu.Lock()
	cached, ok := p.cache[key]
	p.mu.Unlock()
	if ok {
		return cached, nil
	}

	entries := make([]domain.ClasspathEntrySnapshot, len(classpath))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range classpath {
		g.Go(func() error {
			hash, err := p.entryHash(path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrClasspathSnapshotFailed.Error()), "entry", path)
			}
			entries[i] = domain.ClasspathEntrySnapshot{Path: path, Hash: hash}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	h := fingerprint.NewHasher()
	h.PutInt(len(entries))
	for _, e := range entries {
		h.PutHash(e.Hash)
	}
	snapshot := &domain.ClasspathSnapshot{Entries: entries, Hash: h.Hash()}

	p.mu.Lock()
	p.cache[key] = snapshot
	p.mu.Unlock()
	return snapshot, nil
}

// Reset drops all memoized snapshots.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.cache)
}

func (p *Provider) entryHash(path string) (domain.HashCode, error) {
	tree, err := p.snapshotter.SnapshotDirectoryTree(path, nil)
	if err != nil {
		return 0, err
	}

	strategy := fingerprint.IgnoredPath
	if root, ok := tree.(domain.PhysicalSnapshot); ok && root.Type() == domain.FileTypeDirectory {
		strategy = fingerprint.RelativePath
	}
	return p.fingerprinter.Fingerprint(strategy, tree).Hash(), nil
}
