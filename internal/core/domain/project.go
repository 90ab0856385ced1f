package domain

import (
	"maps"
	"slices"
)

// SourceSet is a named group of sources compiled together against one classpath.
type SourceSet struct {
	Name SourceSetName
	Spec CompileSpec
}

// Project is the loaded recomp configuration.
type Project struct {
	root       string
	stateDir   string
	sourceSets map[SourceSetName]*SourceSet
}

// NewProject creates an empty Project rooted at root, persisting state under stateDir.
func NewProject(root, stateDir string) *Project {
	return &Project{
		root:       root,
		stateDir:   stateDir,
		sourceSets: make(map[SourceSetName]*SourceSet),
	}
}

// Root returns the absolute project root.
func (p *Project) Root() string { return p.root }

// StateDir returns the absolute directory holding persisted analysis and source state.
func (p *Project) StateDir() string { return p.stateDir }

// AddSourceSet registers a source set, replacing any previous one with the same name.
func (p *Project) AddSourceSet(s *SourceSet) {
	p.sourceSets[s.Name] = s
}

// SourceSet returns the source set with the given name.
func (p *Project) SourceSet(name string) (*SourceSet, bool) {
	key, err := ParseSourceSetName(name)
	if err != nil {
		return nil, false
	}
	s, ok := p.sourceSets[key]
	return s, ok
}

// SourceSetNames returns the names of all source sets, sorted.
func (p *Project) SourceSetNames() []string {
	names := make([]string, 0, len(p.sourceSets))
	for name := range maps.Keys(p.sourceSets) {
		names = append(names, name.String())
	}
	slices.Sort(names)
	return names
}
