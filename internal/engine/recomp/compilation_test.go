package recomp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports/mocks"
	"go.trai.ch/recomp/internal/engine/recomp"
	"go.uber.org/mock/gomock"
)

func TestCurrentCompilation_VisitChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	inputs := mocks.NewMockIncrementalInputs(ctrl)
	spec := mocks.NewMockCompileSpec(ctrl)
	provider := mocks.NewMockClasspathSnapshotProvider(ctrl)

	gomock.InOrder(
		inputs.EXPECT().OutOfDate(gomock.Any()).Do(func(action func(domain.InputFileDetails)) {
			action(domain.InputFileDetails{Path: "/src/B.java", Change: domain.ChangeModified})
			action(domain.InputFileDetails{Path: "/src/A.java", Change: domain.ChangeAdded})
		}),
		inputs.EXPECT().Removed(gomock.Any()).Do(func(action func(domain.InputFileDetails)) {
			action(domain.InputFileDetails{Path: "/src/C.java", Change: domain.ChangeRemoved})
		}),
	)

	compilation := recomp.NewCurrentCompilation(inputs, spec, provider)

	var visited []string
	compilation.VisitChanges(func(d domain.InputFileDetails) {
		visited = append(visited, d.Change.String()+" "+d.Path)
	})

	assert.Equal(t, []string{
		"modified /src/B.java",
		"added /src/A.java",
		"removed /src/C.java",
	}, visited)
}

func TestCurrentCompilation_ClasspathSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	spec := mocks.NewMockCompileSpec(ctrl)
	provider := mocks.NewMockClasspathSnapshotProvider(ctrl)

	classpath := []string{"/libs/a.jar", "/libs/b.jar"}
	snapshot := &domain.ClasspathSnapshot{Hash: domain.HashString("cp")}

	spec.EXPECT().CompileClasspath().Return(classpath).Times(2)
	provider.EXPECT().ClasspathSnapshot(classpath).Return(snapshot, nil).Times(2)

	compilation := recomp.NewCurrentCompilation(mocks.NewMockIncrementalInputs(ctrl), spec, provider)

	for range 2 {
		got, err := compilation.ClasspathSnapshot()
		require.NoError(t, err)
		assert.Same(t, snapshot, got)
	}
}

func TestCurrentCompilation_AnnotationProcessorPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	spec := mocks.NewMockCompileSpec(ctrl)
	provider := mocks.NewMockClasspathSnapshotProvider(ctrl)

	processors := []string{"/libs/processor.jar"}
	spec.EXPECT().AnnotationProcessorPath().Return(processors).Times(2)
	provider.EXPECT().ClasspathSnapshot(processors).Return(&domain.ClasspathSnapshot{Hash: 7}, nil)

	compilation := recomp.NewCurrentCompilation(mocks.NewMockIncrementalInputs(ctrl), spec, provider)

	assert.Equal(t, processors, compilation.AnnotationProcessorPath())
	snapshot, err := compilation.AnnotationProcessorPathSnapshot()
	require.NoError(t, err)
	assert.Equal(t, domain.HashCode(7), snapshot.Hash)
}
