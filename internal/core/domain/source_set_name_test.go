package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recomp/internal/core/domain"
)

func TestParseSourceSetName(t *testing.T) {
	for _, valid := range []string{"main", "test-fixtures", "integration_test", "v2"} {
		name, err := domain.ParseSourceSetName(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, valid, name.String())
		assert.False(t, name.IsZero())
	}

	for _, invalid := range []string{"", "../main", "main test", "a/b", "main.json"} {
		_, err := domain.ParseSourceSetName(invalid)
		require.ErrorContains(t, err, domain.ErrInvalidSourceSetName.Error(), invalid)
	}
}

func TestSourceSetName_Interned(t *testing.T) {
	first := domain.MustSourceSetName("main")
	second := domain.MustSourceSetName("main")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, domain.MustSourceSetName("test"))
	assert.True(t, domain.SourceSetName{}.IsZero())
	assert.Empty(t, domain.SourceSetName{}.String())
	assert.Panics(t, func() { domain.MustSourceSetName("no/slashes") })
}

func TestSourceSetName_JSON(t *testing.T) {
	type state struct {
		SourceSet domain.SourceSetName `json:"source_set"`
	}

	data, err := json.Marshal(state{SourceSet: domain.MustSourceSetName("main")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"source_set":"main"}`, string(data))

	var decoded state
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, domain.MustSourceSetName("main"), decoded.SourceSet)

	err = json.Unmarshal([]byte(`{"source_set":"../escape"}`), &decoded)
	require.ErrorContains(t, err, domain.ErrInvalidSourceSetName.Error())
}

func TestProject_SourceSets(t *testing.T) {
	project := domain.NewProject("/proj", "/proj/.recomp")
	project.AddSourceSet(&domain.SourceSet{Name: domain.MustSourceSetName("test")})
	project.AddSourceSet(&domain.SourceSet{Name: domain.MustSourceSetName("main")})

	set, ok := project.SourceSet("main")
	require.True(t, ok)
	assert.Equal(t, "main", set.Name.String())

	_, ok = project.SourceSet("../main")
	assert.False(t, ok)

	assert.Equal(t, []string{"main", "test"}, project.SourceSetNames())
	assert.Equal(t, "/proj", project.Root())
	assert.Equal(t, "/proj/.recomp", project.StateDir())
}
