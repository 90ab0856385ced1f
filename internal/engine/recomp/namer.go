package recomp

import (
	"path/filepath"
	"strings"
)

// ClassNamer maps a source file to the name of the top-level class it declares.
type ClassNamer interface {
	// ClassName returns the class name for path, or false if path is not a source file.
	ClassName(path string) (string, bool)
}

// SourceRootClassNamer derives class names from a file's location below a source root:
// <root>/com/example/Main.java declares com.example.Main.
type SourceRootClassNamer struct {
	roots     []string
	extension string
}

// NewSourceRootClassNamer creates a SourceRootClassNamer for .java files below roots.
func NewSourceRootClassNamer(roots ...string) *SourceRootClassNamer {
	cleaned := make([]string, len(roots))
	for i, root := range roots {
		cleaned[i] = filepath.Clean(root)
	}
	return &SourceRootClassNamer{roots: cleaned, extension: ".java"}
}

// ClassName implements ClassNamer. With nested source roots the innermost one wins.
func (n *SourceRootClassNamer) ClassName(path string) (string, bool) {
	if filepath.Ext(path) != n.extension {
		return "", false
	}

	var best string
	for _, root := range n.roots {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || rel == ".." {
			continue
		}
		if best == "" || len(rel) < len(best) {
			best = rel
		}
	}
	if best == "" {
		return "", false
	}

	return strings.ReplaceAll(strings.TrimSuffix(best, n.extension), string(filepath.Separator), "."), true
}
