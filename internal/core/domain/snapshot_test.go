package domain_test

import (
	"fmt"
	"path"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recomp/internal/core/domain"
)

// recordingVisitor logs every callback and prunes directories selected by prune.
type recordingVisitor struct {
	events []string
	prune  func(*domain.DirectorySnapshot) bool
}

func (v *recordingVisitor) PreVisitDirectory(d *domain.DirectorySnapshot) bool {
	descend := v.prune == nil || !v.prune(d)
	v.events = append(v.events, fmt.Sprintf("pre:%s:%t", d.AbsolutePath(), descend))
	return descend
}

func (v *recordingVisitor) Visit(f domain.PhysicalSnapshot) {
	v.events = append(v.events, "visit:"+f.AbsolutePath())
}

func (v *recordingVisitor) PostVisitDirectory() {
	v.events = append(v.events, "post")
}

// balanced reports whether events form a correctly nested sequence in which nothing
// happens between a pruned directory's pre and post events.
func balanced(events []string) bool {
	depth := 0
	afterPrune := false
	for _, e := range events {
		if afterPrune && e != "post" {
			return false
		}
		afterPrune = false
		switch {
		case e == "post":
			depth--
			if depth < 0 {
				return false
			}
		case len(e) > 4 && e[:4] == "pre:":
			depth++
			afterPrune = e[len(e)-6:] == ":false"
		}
	}
	return depth == 0
}

func TestDirectorySnapshot_Accept_Order(t *testing.T) {
	tree := domain.NewDirectorySnapshot("/root", []domain.PhysicalSnapshot{
		domain.NewRegularFileSnapshot("/root/a.txt", domain.HashString("a")),
		domain.NewDirectorySnapshot("/root/sub", []domain.PhysicalSnapshot{
			domain.NewRegularFileSnapshot("/root/sub/b.txt", domain.HashString("b")),
		}),
		domain.NewMissingFileSnapshot("/root/gone"),
	})

	v := &recordingVisitor{}
	tree.Accept(v)

	assert.Equal(t, []string{
		"pre:/root:true",
		"visit:/root/a.txt",
		"pre:/root/sub:true",
		"visit:/root/sub/b.txt",
		"post",
		"visit:/root/gone",
		"post",
	}, v.events)
}

func TestDirectorySnapshot_Accept_EmptyDirectory(t *testing.T) {
	v := &recordingVisitor{}
	domain.NewDirectorySnapshot("/empty", nil).Accept(v)

	assert.Equal(t, []string{"pre:/empty:true", "post"}, v.events)
}

func TestDirectorySnapshot_Accept_PrunedSubtree(t *testing.T) {
	tree := domain.NewDirectorySnapshot("/root", []domain.PhysicalSnapshot{
		domain.NewDirectorySnapshot("/root/skip", []domain.PhysicalSnapshot{
			domain.NewRegularFileSnapshot("/root/skip/hidden.txt", domain.HashString("h")),
			domain.NewDirectorySnapshot("/root/skip/deeper", nil),
		}),
		domain.NewRegularFileSnapshot("/root/kept.txt", domain.HashString("k")),
	})

	v := &recordingVisitor{prune: func(d *domain.DirectorySnapshot) bool { return d.Name() == "skip" }}
	tree.Accept(v)

	assert.Equal(t, []string{
		"pre:/root:true",
		"pre:/root/skip:false",
		"post",
		"visit:/root/kept.txt",
		"post",
	}, v.events)
}

func TestFileSnapshots_Accept(t *testing.T) {
	v := &recordingVisitor{}
	domain.NewRegularFileSnapshot("/a", domain.HashString("a")).Accept(v)
	domain.NewMissingFileSnapshot("/b").Accept(v)
	domain.EmptySnapshot.Accept(v)

	assert.Equal(t, []string{"visit:/a", "visit:/b"}, v.events)
}

func TestPhysicalSnapshot_Accessors(t *testing.T) {
	file := domain.NewRegularFileSnapshot("/src/Foo.java", domain.HashString("class Foo {}"))
	assert.Equal(t, "Foo.java", file.Name())
	assert.Equal(t, domain.FileTypeRegularFile, file.Type())
	assert.Equal(t, domain.HashString("class Foo {}"), file.ContentHash())

	dir := domain.NewDirectorySnapshot("/src", []domain.PhysicalSnapshot{file})
	assert.Equal(t, "src", dir.Name())
	assert.Equal(t, domain.FileTypeDirectory, dir.Type())
	assert.Equal(t, domain.DirectorySignature, dir.ContentHash())
	require.Len(t, dir.Children(), 1)

	missing := domain.NewMissingFileSnapshot("/src/Gone.java")
	assert.Equal(t, domain.FileTypeMissing, missing.Type())
	assert.Equal(t, domain.MissingSignature, missing.ContentHash())
	assert.NotEqual(t, domain.DirectorySignature, domain.MissingSignature)
}

func TestDirectorySnapshot_OwnsChildren(t *testing.T) {
	children := []domain.PhysicalSnapshot{domain.NewMissingFileSnapshot("/d/x")}
	dir := domain.NewDirectorySnapshot("/d", children)

	children[0] = domain.NewMissingFileSnapshot("/d/y")
	got := dir.Children()
	got[0] = nil

	assert.Equal(t, "/d/x", dir.Children()[0].AbsolutePath())
}

// buildTree consumes shape to produce a tree. Each value picks the kind of the next node:
// 0 regular file, 1 missing file, anything else a directory with value-2 children.
func buildTree(dir string, shape []int, pos *int, depth int) domain.PhysicalSnapshot {
	kind := 0
	if *pos < len(shape) {
		kind = shape[*pos]
		*pos++
	}
	name := path.Join(dir, fmt.Sprintf("n%d", *pos))
	switch {
	case kind == 0 || depth > 6:
		return domain.NewRegularFileSnapshot(name, domain.HashString(name))
	case kind == 1:
		return domain.NewMissingFileSnapshot(name)
	default:
		children := make([]domain.PhysicalSnapshot, 0, kind-2)
		for range kind - 2 {
			children = append(children, buildTree(name, shape, pos, depth+1))
		}
		return domain.NewDirectorySnapshot(name, children)
	}
}

func TestAccept_BalancedProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("every pre-visit is closed by exactly one post-visit", prop.ForAll(
		func(shape []int, pruneEvery int) bool {
			pos := 0
			root := domain.NewDirectorySnapshot("/r", []domain.PhysicalSnapshot{buildTree("/r", shape, &pos, 0)})

			seen := 0
			v := &recordingVisitor{prune: func(*domain.DirectorySnapshot) bool {
				seen++
				return pruneEvery > 0 && seen%pruneEvery == 0
			}}
			root.Accept(v)

			return balanced(v.events)
		},
		gen.SliceOf(gen.IntRange(0, 5)),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}

func TestRelativePathTracker(t *testing.T) {
	var tracker domain.RelativePathTracker
	assert.True(t, tracker.IsRoot())

	tracker.Enter("root")
	assert.False(t, tracker.IsRoot())
	assert.Equal(t, "a.txt", tracker.Relative("a.txt"))

	tracker.Enter("pkg")
	tracker.Enter("sub")
	assert.Equal(t, "pkg/sub/B.java", tracker.Relative("B.java"))

	tracker.Leave()
	tracker.Leave()
	tracker.Leave()
	assert.True(t, tracker.IsRoot())
}
