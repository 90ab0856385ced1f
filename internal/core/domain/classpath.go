package domain

// ClasspathEntrySnapshot is the content fingerprint of one classpath entry.
type ClasspathEntrySnapshot struct {
	Path string
	Hash HashCode
}

// ClasspathSnapshot is the fingerprint of a whole classpath, in classpath order.
type ClasspathSnapshot struct {
	Entries []ClasspathEntrySnapshot
	Hash    HashCode
}

// EntryHash returns the hash of the entry at path, if it is on the classpath.
func (s *ClasspathSnapshot) EntryHash(path string) (HashCode, bool) {
	for _, e := range s.Entries {
		if e.Path == path {
			return e.Hash, true
		}
	}
	return 0, false
}
