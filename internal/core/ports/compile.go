package ports

import "go.trai.ch/recomp/internal/core/domain"

// CompileSpec exposes the parts of a compile task's specification that the compilation
// delta needs.
//
//go:generate go run go.uber.org/mock/mockgen -source=compile.go -destination=mocks/mock_compile.go -package=mocks
type CompileSpec interface {
	// CompileClasspath returns the compile classpath in declaration order.
	CompileClasspath() []string
	// AnnotationProcessorPath returns the annotation processor path in declaration order.
	AnnotationProcessorPath() []string
}

// IncrementalInputs reports how the declared file inputs of a task changed since the
// previous execution. Callbacks are invoked synchronously on the calling goroutine.
type IncrementalInputs interface {
	// OutOfDate invokes action for every added or modified input.
	OutOfDate(action func(domain.InputFileDetails))
	// Removed invokes action for every removed input.
	Removed(action func(domain.InputFileDetails))
}

// ClasspathSnapshotProvider computes the snapshot of a classpath.
// Caching, if any, is up to the implementation.
type ClasspathSnapshotProvider interface {
	ClasspathSnapshot(classpath []string) (*domain.ClasspathSnapshot, error)
}
