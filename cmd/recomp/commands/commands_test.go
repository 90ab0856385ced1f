package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recomp/cmd/recomp/commands"
	"go.trai.ch/recomp/internal/app"
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports"
	"go.trai.ch/recomp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader      *mocks.MockConfigLoader
	logger      *mocks.MockLogger
	snapshotter *mocks.MockSnapshotter
	classpath   *mocks.MockClasspathSnapshotProvider
	analyses    *mocks.MockAnalysisStore
	states      *mocks.MockSourceStateStore
	cli         *commands.CLI
	out         *bytes.Buffer
}

func newHarness(t *testing.T, args ...string) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader:      mocks.NewMockConfigLoader(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
		snapshotter: mocks.NewMockSnapshotter(ctrl),
		classpath:   mocks.NewMockClasspathSnapshotProvider(ctrl),
		analyses:    mocks.NewMockAnalysisStore(ctrl),
		states:      mocks.NewMockSourceStateStore(ctrl),
		out:         &bytes.Buffer{},
	}

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()

	a := app.New(h.loader, h.logger, mocks.NewMockFileSystemMirror(ctrl), h.snapshotter, h.classpath,
		h.analyses, h.states, telemetry, mocks.NewMockWatcher(ctrl))

	h.cli = commands.New(a, h.logger)
	h.cli.SetOutput(h.out)
	h.cli.SetArgs(args)
	return h
}

func project() *domain.Project {
	p := domain.NewProject("/proj", "/proj/.recomp")
	p.AddSourceSet(&domain.SourceSet{
		Name: domain.MustSourceSetName("main"),
		Spec: domain.CompileSpec{SourceRoots: []string{"/proj/src"}, SourceSetName: "main"},
	})
	return p
}

func TestPlan_FirstRunPrintsFullRebuild(t *testing.T) {
	h := newHarness(t, "plan", "main", "--config", "/proj", "--dry-run")

	h.loader.EXPECT().Load("/proj").Return(project(), nil)
	h.snapshotter.EXPECT().SnapshotAll(gomock.Any(), []string{"/proj/src"}, gomock.Any()).
		Return([]domain.FileSystemSnapshot{domain.NewMissingFileSnapshot("/proj/src")}, nil)
	h.analyses.EXPECT().Load("/proj/.recomp", "main").Return(nil, nil)
	h.states.EXPECT().Load("/proj/.recomp", "main").Return(nil, nil)
	h.logger.EXPECT().Warn(gomock.Any())

	require.NoError(t, h.cli.Execute(t.Context()))
	assert.Equal(t, "full rebuild: no previous class set analysis\n", h.out.String())
}

func TestPlan_JSON(t *testing.T) {
	h := newHarness(t, "plan", "main", "-c", "/proj", "--json", "-n")

	h.loader.EXPECT().Load("/proj").Return(project(), nil)
	h.snapshotter.EXPECT().SnapshotAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.FileSystemSnapshot{domain.NewDirectorySnapshot("/proj/src", nil)}, nil)
	h.analyses.EXPECT().Load("/proj/.recomp", "main").Return(domain.NewAnalysisBuilder().Build(), nil)
	h.states.EXPECT().Load("/proj/.recomp", "main").Return(&domain.SourceState{}, nil)
	h.classpath.EXPECT().ClasspathSnapshot(gomock.Any()).Return(&domain.ClasspathSnapshot{}, nil).Times(2)
	h.logger.EXPECT().Info("[TASK] main: up to date")

	require.NoError(t, h.cli.Execute(t.Context()))
	var spec domain.RecompilationSpec
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &spec))
	assert.Empty(t, spec.Classes)
	assert.False(t, spec.IsFullRebuild())
	assert.Contains(t, h.out.String(), `"classes"`)
	assert.NotContains(t, h.out.String(), "full_rebuild_cause")
}

func TestPlan_RequiresSourceSet(t *testing.T) {
	h := newHarness(t, "plan")

	require.Error(t, h.cli.Execute(t.Context()))
}

func TestPlan_HelpMentionsRecordedState(t *testing.T) {
	h := newHarness(t, "plan", "--help")

	require.NoError(t, h.cli.Execute(t.Context()))
	assert.Contains(t, h.out.String(), "Planning records the current source state")
	assert.Contains(t, h.out.String(), "Use --dry-run to plan without recording")
}

func TestAnalysis_ShowAndDiff(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "from.yaml")
	to := filepath.Join(dir, "to.yaml")
	require.NoError(t, os.WriteFile(from, []byte("children:\n  com.A: [com.B]\n"), 0o600))
	require.NoError(t, os.WriteFile(to, []byte("children:\n  com.A: [com.C]\n"), 0o600))

	show := newHarness(t, "analysis", "show", from)
	require.NoError(t, show.cli.Execute(t.Context()))
	assert.Equal(t, "dependents:\nconstants:\nchildren:\n  com.A -> [com.B]\n", show.out.String())

	diff := newHarness(t, "analysis", "diff", from, to)
	require.NoError(t, diff.cli.Execute(t.Context()))
	assert.Contains(t, diff.out.String(), "-  com.A -> [com.B]\n+  com.A -> [com.C]\n")
}

func TestAnalysis_ConvertAndRecord(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "delta.yaml")
	bin := filepath.Join(dir, "delta.bin")
	require.NoError(t, os.WriteFile(in, []byte("dependents:\n  com.A:\n    classes: [com.B]\n"), 0o600))

	convert := newHarness(t, "analysis", "convert", in, bin)
	require.NoError(t, convert.cli.Execute(t.Context()))
	assert.FileExists(t, bin)

	record := newHarness(t, "analysis", "record", "main", bin, "-c", "/proj", "--full")
	record.loader.EXPECT().Load("/proj").Return(project(), nil)
	record.analyses.EXPECT().Save("/proj/.recomp", "main", gomock.Any()).
		DoAndReturn(func(_, _ string, a *domain.ClassSetAnalysisData) error {
			assert.True(t, a.Dependents("com.A").Equal(domain.NewExactDependents("com.B")))
			return nil
		})
	record.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, record.cli.Execute(t.Context()))
}

func TestVersion(t *testing.T) {
	h := newHarness(t, "version")

	require.NoError(t, h.cli.Execute(t.Context()))
	assert.Equal(t, "recomp version dev\n", h.out.String())
}
