package fingerprint

import "go.trai.ch/recomp/internal/core/domain"

// Strategy selects which parts of an entry's location survive normalization.
type Strategy uint8

const (
	// IgnoredPath keeps content only.
	IgnoredPath Strategy = iota
	// AbsolutePath keeps the absolute path.
	AbsolutePath
	// RelativePath keeps the path relative to the root being fingerprinted.
	RelativePath
	// NameOnly keeps the file name.
	NameOnly
)

// String returns the string representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case IgnoredPath:
		return "IGNORED_PATH"
	case AbsolutePath:
		return "ABSOLUTE_PATH"
	case RelativePath:
		return "RELATIVE_PATH"
	case NameOnly:
		return "NAME_ONLY"
	default:
		return "UNKNOWN"
	}
}

// orderSensitive reports whether the visit order is part of the fingerprint.
// Strategies that drop the directory structure sort their entries instead.
func (s Strategy) orderSensitive() bool {
	return s == AbsolutePath || s == RelativePath
}

// normalize returns the fingerprint of entry, or nil when the strategy drops it.
// root reports whether entry is the root of the visited tree and relative is its
// root-relative path.
func (s Strategy) normalize(entry domain.PhysicalSnapshot, root bool, relative string) NormalizedFileSnapshot {
	switch s {
	case IgnoredPath:
		if entry.Type() == domain.FileTypeDirectory {
			return nil
		}
		return NewIgnoredPathFingerprint(entry.Type(), entry.ContentHash())
	case AbsolutePath:
		return NewPathFingerprint(entry.AbsolutePath(), entry.Type(), entry.ContentHash())
	case RelativePath:
		if root && entry.Type() == domain.FileTypeDirectory {
			return NewIgnoredPathFingerprint(domain.FileTypeDirectory, 0)
		}
		return NewPathFingerprint(relative, entry.Type(), entry.ContentHash())
	case NameOnly:
		if root && entry.Type() == domain.FileTypeDirectory {
			return NewIgnoredPathFingerprint(domain.FileTypeDirectory, 0)
		}
		return NewPathFingerprint(entry.Name(), entry.Type(), entry.ContentHash())
	default:
		panic("fingerprint: unhandled strategy " + s.String())
	}
}
