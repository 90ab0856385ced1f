// Package recomp decides what has to be recompiled after a set of source changes.
package recomp

import (
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports"
)

// CurrentCompilation bundles the inputs of one compilation that recompilation planning
// needs. It owns no planning logic.
type CurrentCompilation struct {
	inputs   ports.IncrementalInputs
	spec     ports.CompileSpec
	provider ports.ClasspathSnapshotProvider
}

// NewCurrentCompilation creates a new CurrentCompilation.
func NewCurrentCompilation(
	inputs ports.IncrementalInputs,
	spec ports.CompileSpec,
	provider ports.ClasspathSnapshotProvider,
) *CurrentCompilation {
	return &CurrentCompilation{
		inputs:   inputs,
		spec:     spec,
		provider: provider,
	}
}

// ClasspathSnapshot returns the snapshot of the compile classpath. Caching is left to
// the provider.
func (c *CurrentCompilation) ClasspathSnapshot() (*domain.ClasspathSnapshot, error) {
	return c.provider.ClasspathSnapshot(c.spec.CompileClasspath())
}

// AnnotationProcessorPath returns the annotation processor path of the compile spec.
func (c *CurrentCompilation) AnnotationProcessorPath() []string {
	return c.spec.AnnotationProcessorPath()
}

// AnnotationProcessorPathSnapshot returns the snapshot of the annotation processor path.
func (c *CurrentCompilation) AnnotationProcessorPathSnapshot() (*domain.ClasspathSnapshot, error) {
	return c.provider.ClasspathSnapshot(c.spec.AnnotationProcessorPath())
}

// VisitChanges calls action for every added or modified input, then for every removed one.
func (c *CurrentCompilation) VisitChanges(action func(domain.InputFileDetails)) {
	c.inputs.OutOfDate(action)
	c.inputs.Removed(action)
}
