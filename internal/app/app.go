// Package app implements the application layer for recomp.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/recomp/internal/adapters/inputs"  //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports"
	"go.trai.ch/recomp/internal/engine/recomp"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	mirror       ports.FileSystemMirror
	snapshotter  ports.Snapshotter
	classpath    ports.ClasspathSnapshotProvider
	analyses     ports.AnalysisStore
	states       ports.SourceStateStore
	telemetry    ports.Telemetry
	watcher      ports.Watcher
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	mirror ports.FileSystemMirror,
	snapshotter ports.Snapshotter,
	classpath ports.ClasspathSnapshotProvider,
	analyses ports.AnalysisStore,
	states ports.SourceStateStore,
	telemetry ports.Telemetry,
	w ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		mirror:       mirror,
		snapshotter:  snapshotter,
		classpath:    classpath,
		analyses:     analyses,
		states:       states,
		telemetry:    telemetry,
		watcher:      w,
	}
}

// PlanOptions configures the Plan method.
type PlanOptions struct {
	// DryRun leaves the recorded source state untouched.
	DryRun bool
}

// Plan decides what has to be recompiled in a source set since the previous run and,
// unless DryRun is set, records the current source state for the next run.
func (a *App) Plan(ctx context.Context, cwd, sourceSet string, opts PlanOptions) (*domain.RecompilationSpec, error) {
	project, set, err := a.loadSourceSet(ctx, cwd, sourceSet)
	if err != nil {
		return nil, err
	}

	var current map[string]domain.HashCode
	err = a.step(ctx, "snapshot sources", func(ctx context.Context, v ports.Vertex) error {
		trees, err := a.snapshotter.SnapshotAll(ctx, set.Spec.SourceRoots, set.Spec.IgnorePatterns)
		if err != nil {
			return err
		}
		current = sourceHashes(trees)
		v.Log(domain.LogLevelInfo, fmt.Sprintf("%d source files", len(current)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	var (
		analysis *domain.ClassSetAnalysisData
		previous *domain.SourceState
	)
	err = a.step(ctx, "load state", func(_ context.Context, _ ports.Vertex) error {
		var err error
		if analysis, err = a.loadAnalysis(project.StateDir(), sourceSet); err != nil {
			return err
		}
		previous, err = a.states.Load(project.StateDir(), sourceSet)
		return err
	})
	if err != nil {
		return nil, err
	}

	compilation := recomp.NewCurrentCompilation(
		inputs.NewTracker(previousSources(previous), current),
		&set.Spec,
		a.classpath,
	)

	var spec *domain.RecompilationSpec
	err = a.step(ctx, "plan", func(_ context.Context, _ ports.Vertex) error {
		var err error
		spec, err = recomp.NewPlanner(recomp.NewSourceRootClassNamer(set.Spec.SourceRoots...)).
			Plan(compilation, analysis, previous)
		return err
	})
	if err != nil {
		return nil, errors.Join(domain.ErrPlanFailed, err)
	}

	a.logSummary(sourceSet, spec)

	if opts.DryRun {
		return spec, nil
	}

	err = a.step(ctx, "save state", func(_ context.Context, _ ports.Vertex) error {
		state, err := newSourceState(compilation, current)
		if err != nil {
			return err
		}
		return a.states.Save(project.StateDir(), sourceSet, state)
	})
	if err != nil {
		return nil, err
	}

	return spec, nil
}

// RecordOptions configures the RecordAnalysis method.
type RecordOptions struct {
	// Full replaces the stored analysis instead of merging into it.
	Full bool
	// Recompiled lists recompiled or deleted classes that left no trace in the delta.
	// Classes the delta lists as dependents, children or constant holders are added.
	Recompiled []string
}

// RecordAnalysis stores the analysis produced by a compilation of sourceSet. An incremental
// delta is merged into the stored analysis.
func (a *App) RecordAnalysis(
	ctx context.Context,
	cwd, sourceSet string,
	delta *domain.ClassSetAnalysisData,
	opts RecordOptions,
) error {
	project, _, err := a.loadSourceSet(ctx, cwd, sourceSet)
	if err != nil {
		return err
	}

	return a.step(ctx, "record analysis", func(_ context.Context, _ ports.Vertex) error {
		result := delta
		if !opts.Full {
			previous, err := a.loadAnalysis(project.StateDir(), sourceSet)
			if err != nil {
				return err
			}
			stale := slices.Concat(delta.ReferencingClasses(), opts.Recompiled)
			result = domain.MergeAnalysis(previous, delta, stale)
		}

		if err := a.analyses.Save(project.StateDir(), sourceSet, result); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("[%s] %s: recorded analysis (%d classes)",
			domain.OperationTask, sourceSet, len(result.ClassNames())))
		return nil
	})
}

// Watch plans once and then again after every batch of filesystem changes below the
// source roots and classpath of sourceSet. It returns when ctx is done.
func (a *App) Watch(ctx context.Context, cwd, sourceSet string, opts PlanOptions) error {
	_, set, err := a.loadSourceSet(ctx, cwd, sourceSet)
	if err != nil {
		return err
	}

	roots := slices.Concat(set.Spec.SourceRoots, set.Spec.Classpath, set.Spec.ProcessorPath)
	if err := a.watcher.Start(ctx, roots...); err != nil {
		return errors.Join(domain.ErrWatcherStartFailed, err)
	}
	defer func() { _ = a.watcher.Stop() }()

	var mu sync.Mutex
	replan := func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		if _, err := a.Plan(ctx, cwd, sourceSet, opts); err != nil {
			a.logger.Error(err)
		}
	}

	replan()

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		a.invalidate(paths)
		replan()
	})
	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}
	debouncer.Flush()

	mu.Lock()
	defer mu.Unlock()
	return nil
}

// invalidate drops every cached snapshot that can contain one of paths.
func (a *App) invalidate(paths []string) {
	for _, path := range paths {
		a.mirror.EvictUnder(path)
		for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
			a.mirror.Evict(dir)
			if dir == filepath.Dir(dir) {
				break
			}
		}
	}
	if r, ok := a.classpath.(interface{ Reset() }); ok {
		r.Reset()
	}
}

func (a *App) loadSourceSet(ctx context.Context, cwd, name string) (*domain.Project, *domain.SourceSet, error) {
	var (
		project *domain.Project
		set     *domain.SourceSet
	)
	err := a.step(ctx, "load configuration", func(_ context.Context, _ ports.Vertex) error {
		var err error
		project, err = a.configLoader.Load(cwd)
		if err != nil {
			return zerr.Wrap(err, "failed to load configuration")
		}
		var ok bool
		if set, ok = project.SourceSet(name); !ok {
			return zerr.With(domain.ErrSourceSetNotFound, "source_set", name)
		}
		return nil
	})
	return project, set, err
}

// loadAnalysis discards a stored analysis that cannot be decoded.
func (a *App) loadAnalysis(stateDir, sourceSet string) (*domain.ClassSetAnalysisData, error) {
	analysis, err := a.analyses.Load(stateDir, sourceSet)
	if errors.Is(err, domain.ErrAnalysisDecodeFailed) {
		a.logger.Warn(fmt.Sprintf("discarding unreadable analysis of %s: %v", sourceSet, err))
		return nil, nil
	}
	return analysis, err
}

func (a *App) step(ctx context.Context, name string, fn func(context.Context, ports.Vertex) error) error {
	ctx, v := a.telemetry.Record(ctx, name)
	err := fn(ctx, v)
	v.Complete(err)
	return err
}

func (a *App) logSummary(sourceSet string, spec *domain.RecompilationSpec) {
	prefix := fmt.Sprintf("[%s] %s: ", domain.OperationTask, sourceSet)
	switch {
	case spec.IsFullRebuild():
		a.logger.Warn(prefix + "full recompilation is required because " + spec.FullRebuildCause)
	case len(spec.Classes) == 0:
		a.logger.Info(prefix + "up to date")
	default:
		a.logger.Info(fmt.Sprintf("%s%d classes to recompile after %d source changes",
			prefix, len(spec.Classes), len(spec.SourcePaths)))
	}
}

func newSourceState(compilation *recomp.CurrentCompilation, sources map[string]domain.HashCode) (*domain.SourceState, error) {
	classpath, err := compilation.ClasspathSnapshot()
	if err != nil {
		return nil, err
	}
	processors, err := compilation.AnnotationProcessorPathSnapshot()
	if err != nil {
		return nil, err
	}
	return &domain.SourceState{
		Sources:           sources,
		ClasspathHash:     classpath.Hash,
		ProcessorPathHash: processors.Hash,
	}, nil
}

func previousSources(state *domain.SourceState) map[string]domain.HashCode {
	if state == nil {
		return nil
	}
	return state.Sources
}
