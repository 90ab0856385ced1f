package fingerprint

import (
	"slices"

	"go.trai.ch/recomp/internal/core/domain"
)

// CollectionFingerprint is the normalized form of one or more snapshot trees.
type CollectionFingerprint struct {
	strategy Strategy
	entries  []NormalizedFileSnapshot // visit order
}

// Strategy returns the strategy the fingerprint was built with.
func (c *CollectionFingerprint) Strategy() Strategy { return c.strategy }

// Entries returns the fingerprints in visit order.
func (c *CollectionFingerprint) Entries() []NormalizedFileSnapshot {
	return slices.Clone(c.entries)
}

// Len returns the number of fingerprints.
func (c *CollectionFingerprint) Len() int { return len(c.entries) }

// Hash folds the fingerprints into a single cache key. Strategies that drop the
// directory structure hash their entries in sorted order.
func (c *CollectionFingerprint) Hash() domain.HashCode {
	h := NewHasher()
	c.AppendToHasher(h)
	return h.Hash()
}

// AppendToHasher folds the collection into h.
func (c *CollectionFingerprint) AppendToHasher(h *Hasher) {
	entries := c.entries
	if !c.strategy.orderSensitive() {
		entries = slices.Clone(entries)
		slices.SortStableFunc(entries, NormalizedFileSnapshot.Compare)
	}

	h.PutString(c.strategy.String())
	h.PutInt(len(entries))
	for _, e := range entries {
		e.AppendToHasher(h)
	}
}

// Fingerprinter turns snapshot trees into collection fingerprints.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Fingerprint normalizes every entry of the given trees with strategy.
// An absolute path reached more than once is only recorded the first time.
func (f *Fingerprinter) Fingerprint(strategy Strategy, roots ...domain.FileSystemSnapshot) *CollectionFingerprint {
	v := &collectingVisitor{
		strategy: strategy,
		seen:     make(map[string]struct{}),
	}
	for _, root := range roots {
		root.Accept(v)
	}
	return &CollectionFingerprint{strategy: strategy, entries: v.entries}
}

type collectingVisitor struct {
	strategy Strategy
	tracker  domain.RelativePathTracker
	seen     map[string]struct{}
	entries  []NormalizedFileSnapshot
}

func (v *collectingVisitor) PreVisitDirectory(d *domain.DirectorySnapshot) bool {
	v.record(d)
	v.tracker.Enter(d.Name())
	return true
}

func (v *collectingVisitor) Visit(f domain.PhysicalSnapshot) {
	v.record(f)
}

func (v *collectingVisitor) PostVisitDirectory() {
	v.tracker.Leave()
}

func (v *collectingVisitor) record(entry domain.PhysicalSnapshot) {
	if _, dup := v.seen[entry.AbsolutePath()]; dup {
		return
	}
	v.seen[entry.AbsolutePath()] = struct{}{}

	if fp := v.strategy.normalize(entry, v.tracker.IsRoot(), v.tracker.Relative(entry.Name())); fp != nil {
		v.entries = append(v.entries, fp)
	}
}
