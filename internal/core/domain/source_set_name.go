package domain

import (
	"regexp"
	"unique"

	"go.trai.ch/zerr"
)

var validSourceSetName = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// SourceSetName is the interned name of a source set. Names key persisted state files,
// so they are restricted to alphanumerics, hyphens and underscores.
type SourceSetName struct {
	h unique.Handle[string]
}

// ParseSourceSetName validates and interns name.
func ParseSourceSetName(name string) (SourceSetName, error) {
	if !validSourceSetName.MatchString(name) {
		return SourceSetName{}, zerr.With(ErrInvalidSourceSetName, "source_set", name)
	}
	return SourceSetName{h: unique.Make(name)}, nil
}

// MustSourceSetName is like ParseSourceSetName but panics on an invalid name.
func MustSourceSetName(name string) SourceSetName {
	n, err := ParseSourceSetName(name)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the name. The zero value is the empty string.
func (n SourceSetName) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// IsZero reports whether n was never assigned.
func (n SourceSetName) IsZero() bool {
	var zero unique.Handle[string]
	return n.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (n SourceSetName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects invalid names.
func (n *SourceSetName) UnmarshalText(text []byte) error {
	parsed, err := ParseSourceSetName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
