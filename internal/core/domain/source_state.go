package domain

import (
	"maps"
	"slices"
)

// SourceState is what one planning run remembers about a source set for the next one.
type SourceState struct {
	// Sources maps the absolute path of every source file to its content hash.
	Sources map[string]HashCode `json:"sources"`
	// ClasspathHash is the fingerprint of the compile classpath.
	ClasspathHash HashCode `json:"classpath_hash"`
	// ProcessorPathHash is the fingerprint of the annotation processor path.
	ProcessorPathHash HashCode `json:"processor_path_hash"`
}

// SourcePaths returns the recorded source paths, sorted.
func (s *SourceState) SourcePaths() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.Sources))
}
