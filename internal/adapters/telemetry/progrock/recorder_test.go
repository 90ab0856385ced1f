package progrock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recomp/internal/adapters/telemetry/progrock"
	"go.trai.ch/recomp/internal/core/domain"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, progrock.New())
}

func TestRecorder_RecordsSteps(t *testing.T) {
	recorder := progrock.New()

	ctx, snapshot := recorder.Record(t.Context(), "snapshot sources")
	require.NotNil(t, ctx)

	_, err := snapshot.Stdout().Write([]byte("12 files\n"))
	require.NoError(t, err)
	snapshot.Log(domain.LogLevelInfo, "tree hashed")
	snapshot.Complete(nil)

	_, load := recorder.Record(ctx, "load analysis")
	load.Cached()

	_, plan := recorder.Record(ctx, "plan")
	plan.Log(domain.LogLevelWarn, "full recompilation is required")
	_, err = plan.Stderr().Write([]byte("boom\n"))
	require.NoError(t, err)
	plan.Complete(errors.New("boom"))

	require.NoError(t, recorder.Close())
}
