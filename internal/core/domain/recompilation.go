package domain

// RecompilationSpec is the outcome of planning: either a set of classes to recompile or a
// full rebuild with its cause.
type RecompilationSpec struct {
	// Classes holds the classes to recompile, sorted. Empty when FullRebuildCause is set.
	Classes []string `json:"classes"`
	// SourcePaths holds the changed source files that triggered recompilation, sorted.
	SourcePaths []string `json:"source_paths"`
	// ConstantsTouched holds the constant IDs referenced by the changed classes, sorted.
	ConstantsTouched []int32 `json:"constants_touched"`
	// FullRebuildCause is non-empty when everything must be recompiled.
	FullRebuildCause string `json:"full_rebuild_cause,omitempty"`
}

// IsFullRebuild reports whether everything must be recompiled.
func (s *RecompilationSpec) IsFullRebuild() bool {
	return s.FullRebuildCause != ""
}
