package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/recomp/internal/build"
)

func TestString(t *testing.T) {
	version, commit := build.Version, build.Commit
	t.Cleanup(func() { build.Version, build.Commit = version, commit })

	build.Version, build.Commit = "1.2.0", ""
	assert.Equal(t, "1.2.0", build.String())

	build.Commit = "0123456789abcdef0123"
	assert.Equal(t, "1.2.0 (0123456789ab)", build.String())
}
