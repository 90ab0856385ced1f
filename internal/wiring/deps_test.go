package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies checks that every node uses the dependencies it declares.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers a dependency ID from the package of the type passed to
	// Dep[T]. All adapters are resolved through the shared ports package, so every
	// dependency would be reported as "ports".
	t.Skip("graft infers dependency IDs from the ports package name")
	graft.AssertDepsValid(t, "../../internal")
}
