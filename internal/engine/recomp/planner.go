package recomp

import (
	"fmt"
	"maps"
	"slices"

	"go.trai.ch/recomp/internal/core/domain"
)

// Full rebuild causes reported by the Planner.
const (
	CauseNoAnalysis         = "no previous class set analysis"
	CauseNoSourceState      = "no previous source state"
	CauseClasspathChanged   = "compile classpath changed"
	CauseProcessorsChanged  = "annotation processor path changed"
	CauseUnspecified        = "full rebuild requested"
	causeDependencyToAllFmt = "%s has a dependency to all classes"
)

// Planner turns source changes into a RecompilationSpec using the class set analysis of
// the previous compilation.
type Planner struct {
	namer ClassNamer
}

// NewPlanner creates a new Planner.
func NewPlanner(namer ClassNamer) *Planner {
	return &Planner{namer: namer}
}

// Plan computes what has to be recompiled. previous is the state recorded by the last
// run and may be nil. A full rebuild is planned when there is nothing to compare against,
// when the classpath or annotation processor path changed, and when a changed class
// reaches a DependencyToAll.
func (p *Planner) Plan(
	compilation *CurrentCompilation,
	analysis *domain.ClassSetAnalysisData,
	previous *domain.SourceState,
) (*domain.RecompilationSpec, error) {
	if analysis == nil {
		return fullRebuild(CauseNoAnalysis), nil
	}
	if previous == nil {
		return fullRebuild(CauseNoSourceState), nil
	}
	if cause, ok := analysis.FullRebuildCause(); ok {
		return fullRebuild(cause), nil
	}

	classpath, err := compilation.ClasspathSnapshot()
	if err != nil {
		return nil, err
	}
	if classpath.Hash != previous.ClasspathHash {
		return fullRebuild(CauseClasspathChanged), nil
	}

	processors, err := compilation.AnnotationProcessorPathSnapshot()
	if err != nil {
		return nil, err
	}
	if processors.Hash != previous.ProcessorPathHash {
		return fullRebuild(CauseProcessorsChanged), nil
	}

	var (
		changed     []string
		sourcePaths []string
	)
	compilation.VisitChanges(func(details domain.InputFileDetails) {
		className, ok := p.namer.ClassName(details.Path)
		if !ok {
			return
		}
		changed = append(changed, className)
		sourcePaths = append(sourcePaths, details.Path)
	})

	classes, cause, full := collectDependents(analysis, changed)
	if full {
		return fullRebuild(cause), nil
	}

	constants := domain.NewIntSet()
	for _, className := range changed {
		constants = constants.Union(analysis.Constants(className))
	}

	slices.Sort(sourcePaths)
	return &domain.RecompilationSpec{
		Classes:          classes,
		SourcePaths:      slices.Compact(sourcePaths),
		ConstantsTouched: constants.Values(),
	}, nil
}

// collectDependents walks dependents and subclasses transitively from the changed classes.
// It stops at the first DependencyToAll and reports its cause.
func collectDependents(analysis *domain.ClassSetAnalysisData, changed []string) (classes []string, cause string, full bool) {
	seen := make(map[string]struct{}, len(changed))
	queue := slices.Clone(changed)
	for len(queue) > 0 {
		className := queue[0]
		queue = queue[1:]
		if _, ok := seen[className]; ok {
			continue
		}
		seen[className] = struct{}{}

		switch set := analysis.Dependents(className).(type) {
		case domain.DependencyToAll:
			if c, ok := set.Cause(); ok && c != "" {
				return nil, c, true
			}
			return nil, fmt.Sprintf(causeDependencyToAllFmt, className), true
		case domain.ExactDependents:
			queue = append(queue, set.Classes()...)
		}
		queue = append(queue, analysis.Children(className)...)
	}
	return slices.Sorted(maps.Keys(seen)), "", false
}

func fullRebuild(cause string) *domain.RecompilationSpec {
	if cause == "" {
		cause = CauseUnspecified
	}
	return &domain.RecompilationSpec{FullRebuildCause: cause}
}
