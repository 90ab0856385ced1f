package domain

// ChangeType describes how an input file changed since the previous build.
type ChangeType uint8

const (
	// ChangeAdded means the file did not exist in the previous build.
	ChangeAdded ChangeType = iota
	// ChangeModified means the file's content changed.
	ChangeModified
	// ChangeRemoved means the file existed in the previous build and is gone now.
	ChangeRemoved
)

// String returns the string representation of the ChangeType.
func (c ChangeType) String() string {
	switch c {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// InputFileDetails describes one changed input file.
type InputFileDetails struct {
	Path   string
	Change ChangeType
}

// IsAdded reports whether the file was added.
func (d InputFileDetails) IsAdded() bool { return d.Change == ChangeAdded }

// IsModified reports whether the file was modified.
func (d InputFileDetails) IsModified() bool { return d.Change == ChangeModified }

// IsRemoved reports whether the file was removed.
func (d InputFileDetails) IsRemoved() bool { return d.Change == ChangeRemoved }
