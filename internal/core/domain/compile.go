package domain

import "slices"

// CompileSpec is the part of a compile task's specification that change detection needs.
type CompileSpec struct {
	SourceRoots    []string
	Classpath      []string
	ProcessorPath  []string
	SourceSetName  string
	IgnorePatterns []string
}

// CompileClasspath returns the compile classpath in declaration order.
func (s *CompileSpec) CompileClasspath() []string {
	return slices.Clone(s.Classpath)
}

// AnnotationProcessorPath returns the annotation processor path in declaration order.
func (s *CompileSpec) AnnotationProcessorPath() []string {
	return slices.Clone(s.ProcessorPath)
}
