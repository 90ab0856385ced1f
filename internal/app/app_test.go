package app_test

import (
	"context"
	"errors"
	"iter"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recomp/internal/app"
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports"
	"go.trai.ch/recomp/internal/core/ports/mocks"
	"go.trai.ch/recomp/internal/engine/recomp"
	"go.uber.org/mock/gomock"
)

const (
	projectRoot = "/proj"
	stateDir    = "/proj/.recomp"
	sourceRoot  = "/proj/src"
	libraryJar  = "/proj/libs/a.jar"
	fileA       = "/proj/src/com/A.java"
	fileB       = "/proj/src/com/B.java"
)

type fixture struct {
	loader      *mocks.MockConfigLoader
	logger      *mocks.MockLogger
	mirror      *mocks.MockFileSystemMirror
	snapshotter *mocks.MockSnapshotter
	classpath   *mocks.MockClasspathSnapshotProvider
	analyses    *mocks.MockAnalysisStore
	states      *mocks.MockSourceStateStore
	watcher     *mocks.MockWatcher
	app         *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:      mocks.NewMockConfigLoader(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
		mirror:      mocks.NewMockFileSystemMirror(ctrl),
		snapshotter: mocks.NewMockSnapshotter(ctrl),
		classpath:   mocks.NewMockClasspathSnapshotProvider(ctrl),
		analyses:    mocks.NewMockAnalysisStore(ctrl),
		states:      mocks.NewMockSourceStateStore(ctrl),
		watcher:     mocks.NewMockWatcher(ctrl),
	}

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()

	f.app = app.New(f.loader, f.logger, f.mirror, f.snapshotter, f.classpath, f.analyses, f.states, telemetry, f.watcher)
	return f
}

func testProject() *domain.Project {
	p := domain.NewProject(projectRoot, stateDir)
	p.AddSourceSet(&domain.SourceSet{
		Name: domain.MustSourceSetName("main"),
		Spec: domain.CompileSpec{
			SourceRoots:   []string{sourceRoot},
			Classpath:     []string{libraryJar},
			SourceSetName: "main",
		},
	})
	return p
}

func sourceTree(hashA, hashB domain.HashCode) []domain.FileSystemSnapshot {
	return []domain.FileSystemSnapshot{
		domain.NewDirectorySnapshot(sourceRoot, []domain.PhysicalSnapshot{
			domain.NewDirectorySnapshot("/proj/src/com", []domain.PhysicalSnapshot{
				domain.NewRegularFileSnapshot(fileA, hashA),
				domain.NewRegularFileSnapshot(fileB, hashB),
			}),
		}),
	}
}

// expectEnvironment wires config, sources and classpath. The classpath hashes to 10 and
// the empty processor path to 20.
func (f *fixture) expectEnvironment(hashA, hashB domain.HashCode) {
	f.loader.EXPECT().Load(projectRoot).Return(testProject(), nil).AnyTimes()
	f.snapshotter.EXPECT().SnapshotAll(gomock.Any(), []string{sourceRoot}, gomock.Any()).
		Return(sourceTree(hashA, hashB), nil).AnyTimes()
	f.classpath.EXPECT().ClasspathSnapshot(gomock.Any()).
		DoAndReturn(func(classpath []string) (*domain.ClasspathSnapshot, error) {
			if len(classpath) == 0 {
				return &domain.ClasspathSnapshot{Hash: 20}, nil
			}
			return &domain.ClasspathSnapshot{Hash: 10}, nil
		}).AnyTimes()
}

func TestApp_Plan_Incremental(t *testing.T) {
	f := newFixture(t)
	f.expectEnvironment(1, 2)

	analysis := domain.NewAnalysisBuilder().
		AddDependents("com.B", "com.C").
		AddConstants("com.B", 7).
		Build()
	f.analyses.EXPECT().Load(stateDir, "main").Return(analysis, nil)
	f.states.EXPECT().Load(stateDir, "main").Return(&domain.SourceState{
		Sources:           map[string]domain.HashCode{fileA: 1, fileB: 99},
		ClasspathHash:     10,
		ProcessorPathHash: 20,
	}, nil)
	f.logger.EXPECT().Info("[TASK] main: 2 classes to recompile after 1 source changes")
	f.states.EXPECT().Save(stateDir, "main", &domain.SourceState{
		Sources:           map[string]domain.HashCode{fileA: 1, fileB: 2},
		ClasspathHash:     10,
		ProcessorPathHash: 20,
	}).Return(nil)

	spec, err := f.app.Plan(t.Context(), projectRoot, "main", app.PlanOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"com.B", "com.C"}, spec.Classes)
	assert.Equal(t, []string{fileB}, spec.SourcePaths)
	assert.Equal(t, []int32{7}, spec.ConstantsTouched)
}

func TestApp_Plan_UpToDate(t *testing.T) {
	f := newFixture(t)
	f.expectEnvironment(1, 2)

	f.analyses.EXPECT().Load(stateDir, "main").Return(domain.NewAnalysisBuilder().Build(), nil)
	f.states.EXPECT().Load(stateDir, "main").Return(&domain.SourceState{
		Sources:           map[string]domain.HashCode{fileA: 1, fileB: 2},
		ClasspathHash:     10,
		ProcessorPathHash: 20,
	}, nil)
	f.logger.EXPECT().Info("[TASK] main: up to date")

	spec, err := f.app.Plan(t.Context(), projectRoot, "main", app.PlanOptions{DryRun: true})

	require.NoError(t, err)
	assert.False(t, spec.IsFullRebuild())
	assert.Empty(t, spec.Classes)
}

func TestApp_Plan_FirstRun(t *testing.T) {
	f := newFixture(t)
	f.expectEnvironment(1, 2)

	f.analyses.EXPECT().Load(stateDir, "main").Return(nil, nil)
	f.states.EXPECT().Load(stateDir, "main").Return(nil, nil)
	f.logger.EXPECT().Warn("[TASK] main: full recompilation is required because " + recomp.CauseNoAnalysis)
	f.states.EXPECT().Save(stateDir, "main", gomock.Any()).Return(nil)

	spec, err := f.app.Plan(t.Context(), projectRoot, "main", app.PlanOptions{})

	require.NoError(t, err)
	assert.Equal(t, recomp.CauseNoAnalysis, spec.FullRebuildCause)
}

func TestApp_Plan_DiscardsCorruptAnalysis(t *testing.T) {
	f := newFixture(t)
	f.expectEnvironment(1, 2)

	f.analyses.EXPECT().Load(stateDir, "main").
		Return(nil, errors.Join(domain.ErrAnalysisDecodeFailed, errors.New("unexpected EOF")))
	f.states.EXPECT().Load(stateDir, "main").Return(&domain.SourceState{}, nil)
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	spec, err := f.app.Plan(t.Context(), projectRoot, "main", app.PlanOptions{DryRun: true})

	require.NoError(t, err)
	assert.Equal(t, recomp.CauseNoAnalysis, spec.FullRebuildCause)
}

func TestApp_Plan_Errors(t *testing.T) {
	t.Run("unknown source set", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(projectRoot).Return(testProject(), nil)

		_, err := f.app.Plan(t.Context(), projectRoot, "test", app.PlanOptions{})

		require.ErrorContains(t, err, domain.ErrSourceSetNotFound.Error())
	})

	t.Run("config failure", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(projectRoot).Return(nil, domain.ErrConfigNotFound)

		_, err := f.app.Plan(t.Context(), projectRoot, "main", app.PlanOptions{})

		require.ErrorContains(t, err, "failed to load configuration")
	})

	t.Run("snapshot failure", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(projectRoot).Return(testProject(), nil)
		f.snapshotter.EXPECT().SnapshotAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrSnapshotFailed)

		_, err := f.app.Plan(t.Context(), projectRoot, "main", app.PlanOptions{})

		require.ErrorIs(t, err, domain.ErrSnapshotFailed)
	})

	t.Run("classpath failure", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(projectRoot).Return(testProject(), nil)
		f.snapshotter.EXPECT().SnapshotAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(sourceTree(1, 2), nil)
		f.analyses.EXPECT().Load(stateDir, "main").Return(domain.NewAnalysisBuilder().Build(), nil)
		f.states.EXPECT().Load(stateDir, "main").Return(&domain.SourceState{}, nil)
		f.classpath.EXPECT().ClasspathSnapshot(gomock.Any()).Return(nil, domain.ErrClasspathSnapshotFailed)

		_, err := f.app.Plan(t.Context(), projectRoot, "main", app.PlanOptions{})

		require.ErrorIs(t, err, domain.ErrPlanFailed)
		require.ErrorIs(t, err, domain.ErrClasspathSnapshotFailed)
	})
}

func TestApp_RecordAnalysis(t *testing.T) {
	previous := domain.NewAnalysisBuilder().
		AddDependents("com.A", "com.B").
		AddDependents("com.B", "com.C").
		Build()
	delta := domain.NewAnalysisBuilder().
		AddDependents("com.B", "com.D").
		Build()

	t.Run("merges into the stored analysis", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(projectRoot).Return(testProject(), nil)
		f.analyses.EXPECT().Load(stateDir, "main").Return(previous, nil)
		f.logger.EXPECT().Info(gomock.Any())

		var saved *domain.ClassSetAnalysisData
		f.analyses.EXPECT().Save(stateDir, "main", gomock.Any()).
			DoAndReturn(func(_, _ string, a *domain.ClassSetAnalysisData) error {
				saved = a
				return nil
			})

		err := f.app.RecordAnalysis(t.Context(), projectRoot, "main", delta, app.RecordOptions{Recompiled: []string{"com.A"}})

		require.NoError(t, err)
		require.NotNil(t, saved)
		// com.C was not recompiled and still references com.B.
		assert.True(t, saved.Dependents("com.B").Equal(domain.NewExactDependents("com.C", "com.D")))
		assert.True(t, saved.Dependents("com.A").Equal(domain.NewExactDependents("com.B")))
	})

	t.Run("referenced classes keep the edges of classes that were not recompiled", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(projectRoot).Return(testProject(), nil)
		f.analyses.EXPECT().Load(stateDir, "main").Return(domain.NewAnalysisBuilder().
			AddDependents("com.C", "com.A").
			Build(), nil)
		f.logger.EXPECT().Info(gomock.Any())

		var saved *domain.ClassSetAnalysisData
		f.analyses.EXPECT().Save(stateDir, "main", gomock.Any()).
			DoAndReturn(func(_, _ string, a *domain.ClassSetAnalysisData) error {
				saved = a
				return nil
			})

		// Recompiling com.B found that it references com.A.
		recompiledB := domain.NewAnalysisBuilder().AddDependents("com.A", "com.B").Build()
		err := f.app.RecordAnalysis(t.Context(), projectRoot, "main", recompiledB,
			app.RecordOptions{Recompiled: []string{"com.B"}})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.True(t, saved.Dependents("com.C").Equal(domain.NewExactDependents("com.A")))
		assert.True(t, saved.Dependents("com.A").Equal(domain.NewExactDependents("com.B")))
	})

	t.Run("classes found in the delta are stale without being listed", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(projectRoot).Return(testProject(), nil)
		f.analyses.EXPECT().Load(stateDir, "main").Return(domain.NewAnalysisBuilder().
			AddDependents("com.Old", "com.D").
			Build(), nil)
		f.logger.EXPECT().Info(gomock.Any())

		var saved *domain.ClassSetAnalysisData
		f.analyses.EXPECT().Save(stateDir, "main", gomock.Any()).
			DoAndReturn(func(_, _ string, a *domain.ClassSetAnalysisData) error {
				saved = a
				return nil
			})

		// com.D was recompiled and no longer references com.Old.
		err := f.app.RecordAnalysis(t.Context(), projectRoot, "main", delta, app.RecordOptions{})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.True(t, saved.Dependents("com.Old").Equal(domain.EmptyDependents()))
		assert.True(t, saved.Dependents("com.B").Equal(domain.NewExactDependents("com.D")))
	})

	t.Run("full replaces the stored analysis", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(projectRoot).Return(testProject(), nil)
		f.analyses.EXPECT().Save(stateDir, "main", delta).Return(nil)
		f.logger.EXPECT().Info("[TASK] main: recorded analysis (1 classes)")

		err := f.app.RecordAnalysis(t.Context(), projectRoot, "main", delta, app.RecordOptions{Full: true})

		require.NoError(t, err)
	})
}

func TestApp_Watch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(projectRoot).Return(testProject(), nil).AnyTimes()
		f.classpath.EXPECT().ClasspathSnapshot(gomock.Any()).Return(&domain.ClasspathSnapshot{}, nil).AnyTimes()
		f.analyses.EXPECT().Load(stateDir, "main").Return(domain.NewAnalysisBuilder().Build(), nil).Times(2)
		f.states.EXPECT().Save(stateDir, "main", gomock.Any()).Return(nil).Times(2)

		// The first plan sees both files unchanged, the second one sees A changed.
		gomock.InOrder(
			f.snapshotter.EXPECT().SnapshotAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(sourceTree(1, 2), nil),
			f.snapshotter.EXPECT().SnapshotAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(sourceTree(3, 2), nil),
		)
		gomock.InOrder(
			f.states.EXPECT().Load(stateDir, "main").Return(&domain.SourceState{
				Sources: map[string]domain.HashCode{fileA: 1, fileB: 2},
			}, nil),
			f.states.EXPECT().Load(stateDir, "main").Return(&domain.SourceState{
				Sources: map[string]domain.HashCode{fileA: 1, fileB: 2},
			}, nil),
		)
		gomock.InOrder(
			f.logger.EXPECT().Info("[TASK] main: up to date"),
			f.logger.EXPECT().Info("[TASK] main: 1 classes to recompile after 1 source changes"),
		)

		f.watcher.EXPECT().Start(gomock.Any(), sourceRoot, libraryJar).Return(nil)
		f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
			yield(ports.WatchEvent{Path: fileA, Operation: ports.OpWrite})
		}))
		f.watcher.EXPECT().Stop().Return(nil)

		f.mirror.EXPECT().EvictUnder(fileA)
		for _, dir := range []string{"/proj/src/com", sourceRoot, projectRoot, "/"} {
			f.mirror.EXPECT().Evict(dir)
		}

		require.NoError(t, f.app.Watch(t.Context(), projectRoot, "main", app.PlanOptions{}))
	})
}

func TestApp_Watch_StartFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(projectRoot).Return(testProject(), nil)
	f.watcher.EXPECT().Start(gomock.Any(), gomock.Any()).Return(errors.New("too many open files"))

	err := f.app.Watch(t.Context(), projectRoot, "main", app.PlanOptions{})

	require.ErrorIs(t, err, domain.ErrWatcherStartFailed)
}
