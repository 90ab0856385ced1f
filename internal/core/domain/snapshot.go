package domain

import (
	"path/filepath"
	"slices"
)

// FileContentSnapshot is the content-only view of a single file: its hash, without path or type.
type FileContentSnapshot struct {
	hash HashCode
}

// NewFileContentSnapshot creates a FileContentSnapshot for the given content hash.
func NewFileContentSnapshot(hash HashCode) FileContentSnapshot {
	return FileContentSnapshot{hash: hash}
}

// ContentHash returns the hash of the file's bytes.
func (s FileContentSnapshot) ContentHash() HashCode {
	return s.hash
}

// FileSystemSnapshot is anything that can be traversed with a PhysicalSnapshotVisitor.
// A directory tree stored in the mirror is a FileSystemSnapshot.
type FileSystemSnapshot interface {
	Accept(visitor PhysicalSnapshotVisitor)
}

// PhysicalSnapshot is the structural snapshot of one filesystem entry.
// The set of implementations is closed: *RegularFileSnapshot, *DirectorySnapshot and
// *MissingFileSnapshot.
type PhysicalSnapshot interface {
	FileSystemSnapshot

	// AbsolutePath returns the absolute path of the entry.
	AbsolutePath() string
	// Name returns the last element of the path.
	Name() string
	// Type returns the kind of entry.
	Type() FileType
	// ContentHash returns the content hash for files and a fixed signature otherwise.
	ContentHash() HashCode

	isPhysicalSnapshot()
}

var (
	_ PhysicalSnapshot = (*RegularFileSnapshot)(nil)
	_ PhysicalSnapshot = (*DirectorySnapshot)(nil)
	_ PhysicalSnapshot = (*MissingFileSnapshot)(nil)
)

// RegularFileSnapshot is a regular file with a content hash.
type RegularFileSnapshot struct {
	path string
	name string
	hash HashCode
}

// NewRegularFileSnapshot creates a snapshot of a regular file.
func NewRegularFileSnapshot(path string, hash HashCode) *RegularFileSnapshot {
	return &RegularFileSnapshot{path: path, name: filepath.Base(path), hash: hash}
}

// AbsolutePath returns the absolute path of the file.
func (f *RegularFileSnapshot) AbsolutePath() string { return f.path }

// Name returns the file name.
func (f *RegularFileSnapshot) Name() string { return f.name }

// Type returns FileTypeRegularFile.
func (f *RegularFileSnapshot) Type() FileType { return FileTypeRegularFile }

// ContentHash returns the hash of the file's bytes.
func (f *RegularFileSnapshot) ContentHash() HashCode { return f.hash }

// Accept visits the file.
func (f *RegularFileSnapshot) Accept(visitor PhysicalSnapshotVisitor) {
	visitor.Visit(f)
}

func (f *RegularFileSnapshot) isPhysicalSnapshot() {}

// DirectorySnapshot is a directory together with a complete, ordered enumeration of its
// immediate children. Children are owned by the directory and never shared.
type DirectorySnapshot struct {
	path     string
	name     string
	children []PhysicalSnapshot
}

// NewDirectorySnapshot creates a snapshot of a directory.
// The children slice is copied; callers keep ownership of their slice.
func NewDirectorySnapshot(path string, children []PhysicalSnapshot) *DirectorySnapshot {
	return &DirectorySnapshot{
		path:     path,
		name:     filepath.Base(path),
		children: slices.Clone(children),
	}
}

// AbsolutePath returns the absolute path of the directory.
func (d *DirectorySnapshot) AbsolutePath() string { return d.path }

// Name returns the directory name.
func (d *DirectorySnapshot) Name() string { return d.name }

// Type returns FileTypeDirectory.
func (d *DirectorySnapshot) Type() FileType { return FileTypeDirectory }

// ContentHash returns DirectorySignature.
func (d *DirectorySnapshot) ContentHash() HashCode { return DirectorySignature }

// Children returns a copy of the directory's immediate entries in snapshot order.
func (d *DirectorySnapshot) Children() []PhysicalSnapshot {
	return slices.Clone(d.children)
}

// Accept walks the directory depth-first. PostVisitDirectory is called even when
// PreVisitDirectory prunes the subtree.
func (d *DirectorySnapshot) Accept(visitor PhysicalSnapshotVisitor) {
	if visitor.PreVisitDirectory(d) {
		for _, child := range d.children {
			child.Accept(visitor)
		}
	}
	visitor.PostVisitDirectory()
}

func (d *DirectorySnapshot) isPhysicalSnapshot() {}

// MissingFileSnapshot marks a path that did not exist.
type MissingFileSnapshot struct {
	path string
	name string
}

// NewMissingFileSnapshot creates a snapshot for a path that does not exist.
func NewMissingFileSnapshot(path string) *MissingFileSnapshot {
	return &MissingFileSnapshot{path: path, name: filepath.Base(path)}
}

// AbsolutePath returns the absolute path that was looked up.
func (m *MissingFileSnapshot) AbsolutePath() string { return m.path }

// Name returns the last element of the path.
func (m *MissingFileSnapshot) Name() string { return m.name }

// Type returns FileTypeMissing.
func (m *MissingFileSnapshot) Type() FileType { return FileTypeMissing }

// ContentHash returns MissingSignature.
func (m *MissingFileSnapshot) ContentHash() HashCode { return MissingSignature }

// Accept visits the missing entry.
func (m *MissingFileSnapshot) Accept(visitor PhysicalSnapshotVisitor) {
	visitor.Visit(m)
}

func (m *MissingFileSnapshot) isPhysicalSnapshot() {}

// EmptySnapshot is a FileSystemSnapshot with nothing in it.
var EmptySnapshot FileSystemSnapshot = emptySnapshot{}

type emptySnapshot struct{}

func (emptySnapshot) Accept(PhysicalSnapshotVisitor) {}
