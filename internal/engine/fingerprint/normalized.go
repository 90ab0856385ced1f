package fingerprint

import (
	"cmp"
	"fmt"

	"go.trai.ch/recomp/internal/core/domain"
)

// NormalizedFileSnapshot is a filesystem entry reduced to what a normalization strategy
// considers relevant. Implementations are *IgnoredPathFingerprint and *PathFingerprint.
type NormalizedFileSnapshot interface {
	// NormalizedPath returns the path as seen by the strategy. It may be empty.
	NormalizedPath() string
	// NormalizedContentHash returns the content hash, or a fixed signature for
	// directories and missing files.
	NormalizedContentHash() domain.HashCode
	// Type returns the kind of entry.
	Type() domain.FileType
	// Compare orders fingerprints for deterministic hashing.
	Compare(other NormalizedFileSnapshot) int
	// AppendToHasher folds the fingerprint into a cache key.
	AppendToHasher(h *Hasher)
	// Equal reports whether both fingerprints describe the same normalized entry.
	Equal(other NormalizedFileSnapshot) bool
	fmt.Stringer

	isNormalizedFileSnapshot()
}

var (
	_ NormalizedFileSnapshot = (*IgnoredPathFingerprint)(nil)
	_ NormalizedFileSnapshot = (*PathFingerprint)(nil)
)

var (
	ignoredDirectory = &IgnoredPathFingerprint{fileType: domain.FileTypeDirectory, hash: domain.DirectorySignature}
	ignoredMissing   = &IgnoredPathFingerprint{fileType: domain.FileTypeMissing, hash: domain.MissingSignature}
)

// IgnoredPathFingerprint identifies an entry by its content alone.
// Directories and missing files are each represented by a single shared instance.
type IgnoredPathFingerprint struct {
	fileType domain.FileType
	hash     domain.HashCode
}

// NewIgnoredPathFingerprint returns the path-ignoring fingerprint of an entry.
// contentHash is only used for regular files. An unknown file type panics.
func NewIgnoredPathFingerprint(fileType domain.FileType, contentHash domain.HashCode) *IgnoredPathFingerprint {
	switch fileType {
	case domain.FileTypeDirectory:
		return ignoredDirectory
	case domain.FileTypeMissing:
		return ignoredMissing
	case domain.FileTypeRegularFile:
		return &IgnoredPathFingerprint{fileType: domain.FileTypeRegularFile, hash: contentHash}
	default:
		panic(fmt.Sprintf("fingerprint: unhandled file type %d", fileType))
	}
}

// NormalizedPath always returns the empty string.
func (f *IgnoredPathFingerprint) NormalizedPath() string { return "" }

// NormalizedContentHash returns the content hash.
func (f *IgnoredPathFingerprint) NormalizedContentHash() domain.HashCode { return f.hash }

// Type returns the kind of entry.
func (f *IgnoredPathFingerprint) Type() domain.FileType { return f.fileType }

// Compare orders path-ignoring fingerprints by content hash. Any other kind of
// fingerprint compares as greater, in this direction only: the other kind's Compare
// does not necessarily return the opposite sign.
func (f *IgnoredPathFingerprint) Compare(other NormalizedFileSnapshot) int {
	o, ok := other.(*IgnoredPathFingerprint)
	if !ok {
		return -1
	}
	return f.hash.Compare(o.hash)
}

// AppendToHasher appends the content hash only.
func (f *IgnoredPathFingerprint) AppendToHasher(h *Hasher) {
	h.PutHash(f.hash)
}

// Equal reports whether other is a path-ignoring fingerprint with the same content hash.
func (f *IgnoredPathFingerprint) Equal(other NormalizedFileSnapshot) bool {
	o, ok := other.(*IgnoredPathFingerprint)
	return ok && f.hash == o.hash
}

func (f *IgnoredPathFingerprint) String() string {
	return "IGNORED / " + describeContent(f.fileType, f.hash)
}

func (f *IgnoredPathFingerprint) isNormalizedFileSnapshot() {}

// PathFingerprint identifies an entry by a normalized path and its content.
type PathFingerprint struct {
	path     string
	fileType domain.FileType
	hash     domain.HashCode
}

// NewPathFingerprint creates a fingerprint from a normalized path and a snapshot's type and hash.
func NewPathFingerprint(path string, fileType domain.FileType, contentHash domain.HashCode) *PathFingerprint {
	return &PathFingerprint{path: path, fileType: fileType, hash: contentHash}
}

// NormalizedPath returns the normalized path.
func (f *PathFingerprint) NormalizedPath() string { return f.path }

// NormalizedContentHash returns the content hash.
func (f *PathFingerprint) NormalizedContentHash() domain.HashCode { return f.hash }

// Type returns the kind of entry.
func (f *PathFingerprint) Type() domain.FileType { return f.fileType }

// Compare orders by normalized path, then by content hash.
func (f *PathFingerprint) Compare(other NormalizedFileSnapshot) int {
	if c := cmp.Compare(f.path, other.NormalizedPath()); c != 0 {
		return c
	}
	return f.hash.Compare(other.NormalizedContentHash())
}

// AppendToHasher appends the normalized path and the content hash.
func (f *PathFingerprint) AppendToHasher(h *Hasher) {
	h.PutString(f.path)
	h.PutHash(f.hash)
}

// Equal reports whether other is a path fingerprint with the same path and content hash.
func (f *PathFingerprint) Equal(other NormalizedFileSnapshot) bool {
	o, ok := other.(*PathFingerprint)
	return ok && f.path == o.path && f.hash == o.hash
}

func (f *PathFingerprint) String() string {
	return f.path + " / " + describeContent(f.fileType, f.hash)
}

func (f *PathFingerprint) isNormalizedFileSnapshot() {}

func describeContent(fileType domain.FileType, hash domain.HashCode) string {
	switch fileType {
	case domain.FileTypeDirectory:
		return "DIR"
	case domain.FileTypeMissing:
		return "MISSING"
	default:
		return hash.String()
	}
}
