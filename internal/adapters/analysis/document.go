package analysis

import (
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Document is the human-authored YAML form of class set analysis data.
type Document struct {
	Dependents       map[string]DependentsDTO `yaml:"dependents,omitempty"`
	Constants        map[string][]int32       `yaml:"constants,omitempty"`
	Children         map[string][]string      `yaml:"children,omitempty"`
	FullRebuildCause *string                  `yaml:"fullRebuildCause,omitempty"`
}

// DependentsDTO is one dependents entry. All marks a dependency to every class.
type DependentsDTO struct {
	Classes []string `yaml:"classes,omitempty"`
	All     bool     `yaml:"all,omitempty"`
	Cause   *string  `yaml:"cause,omitempty"`
}

// ParseYAML builds analysis data from its YAML form.
func ParseYAML(data []byte) (*domain.ClassSetAnalysisData, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrAnalysisDecodeFailed.Error())
	}
	return doc.Build()
}

// Build converts the document into analysis data.
func (d *Document) Build() (*domain.ClassSetAnalysisData, error) {
	b := domain.NewAnalysisBuilder()
	for name, dto := range d.Dependents {
		switch {
		case dto.All && len(dto.Classes) > 0:
			return nil, zerr.With(domain.ErrAmbiguousDependents, "class", name)
		case dto.All && dto.Cause != nil:
			b.SetDependents(name, domain.DependentsToAll(*dto.Cause))
		case dto.All:
			b.SetDependents(name, domain.DependentsToAllWithoutCause())
		default:
			b.SetDependents(name, domain.NewExactDependents(dto.Classes...))
		}
	}
	for name, ids := range d.Constants {
		b.SetConstants(name, domain.NewIntSet(ids...))
	}
	for parent, children := range d.Children {
		b.AddChildren(parent, children...)
	}
	if d.FullRebuildCause != nil {
		b.SetFullRebuildCause(*d.FullRebuildCause)
	}
	return b.Build(), nil
}

// NewDocument converts analysis data into its YAML form.
func NewDocument(a *domain.ClassSetAnalysisData) *Document {
	doc := &Document{
		Dependents: make(map[string]DependentsDTO, a.DependentsLen()),
		Constants:  make(map[string][]int32, a.ConstantsLen()),
		Children:   make(map[string][]string, a.ChildrenLen()),
	}
	for name, set := range a.DependentsEntries() {
		switch s := set.(type) {
		case domain.DependencyToAll:
			dto := DependentsDTO{All: true}
			if cause, ok := s.Cause(); ok {
				dto.Cause = &cause
			}
			doc.Dependents[name] = dto
		case domain.ExactDependents:
			doc.Dependents[name] = DependentsDTO{Classes: s.Classes()}
		}
	}
	for name, ids := range a.ConstantsEntries() {
		doc.Constants[name] = ids.Values()
	}
	for parent, children := range a.ChildrenEntries() {
		doc.Children[parent] = children
	}
	if cause, ok := a.FullRebuildCause(); ok {
		doc.FullRebuildCause = &cause
	}
	return doc
}

// MarshalYAML renders analysis data as YAML.
func MarshalYAML(a *domain.ClassSetAnalysisData) ([]byte, error) {
	data, err := yaml.Marshal(NewDocument(a))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAnalysisEncodeFailed.Error())
	}
	return data, nil
}
