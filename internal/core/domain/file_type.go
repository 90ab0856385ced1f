package domain

// FileType classifies a filesystem entry at snapshot time.
type FileType uint8

const (
	// FileTypeRegularFile is a regular file with content.
	FileTypeRegularFile FileType = iota
	// FileTypeDirectory is a directory.
	FileTypeDirectory
	// FileTypeMissing marks a path that did not exist when it was observed.
	FileTypeMissing
)

// String returns the string representation of the FileType.
func (t FileType) String() string {
	switch t {
	case FileTypeRegularFile:
		return "RegularFile"
	case FileTypeDirectory:
		return "Directory"
	case FileTypeMissing:
		return "Missing"
	default:
		return "Unknown"
	}
}
