package ports

import "go.trai.ch/recomp/internal/core/domain"

// AnalysisStore persists the class set analysis of each source set between builds.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type AnalysisStore interface {
	// Load returns the stored analysis for a source set under stateDir.
	// Returns nil, nil if nothing was stored yet.
	Load(stateDir, sourceSet string) (*domain.ClassSetAnalysisData, error)

	// Save stores the analysis for a source set, replacing any previous one.
	Save(stateDir, sourceSet string, analysis *domain.ClassSetAnalysisData) error
}

// SourceStateStore persists the source state of each source set between builds.
type SourceStateStore interface {
	// Load returns the stored state for a source set under stateDir.
	// Returns nil, nil if nothing was stored yet.
	Load(stateDir, sourceSet string) (*domain.SourceState, error)

	// Save stores the state for a source set.
	Save(stateDir, sourceSet string, state *domain.SourceState) error
}
