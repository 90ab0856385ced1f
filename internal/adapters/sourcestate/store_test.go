package sourcestate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recomp/internal/adapters/sourcestate"
	"go.trai.ch/recomp/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	stateDir := t.TempDir()
	store := sourcestate.NewStore()

	state := &domain.SourceState{
		Sources: map[string]domain.HashCode{
			"/project/src/A.java": domain.HashString("class A {}"),
		},
		ClasspathHash:     domain.HashString("classpath"),
		ProcessorPathHash: domain.HashString("processors"),
	}
	require.NoError(t, store.Save(stateDir, "main", state))

	got, err := store.Load(stateDir, "main")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state, got)
}

func TestStore_Missing(t *testing.T) {
	got, err := sourcestate.NewStore().Load(t.TempDir(), "main")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Nil(t, got.SourcePaths())
}

func TestStore_Corrupt(t *testing.T) {
	stateDir := t.TempDir()
	dir := filepath.Join(stateDir, domain.SourceStateDirName)
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.json"), []byte("{not json"), domain.FilePerm))

	_, err := sourcestate.NewStore().Load(stateDir, "main")
	assert.Error(t, err)
}

func TestStore_SaveUnwritableDir(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "state")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), domain.FilePerm))

	err := sourcestate.NewStore().Save(blocker, "main", &domain.SourceState{})
	assert.Error(t, err)
}
