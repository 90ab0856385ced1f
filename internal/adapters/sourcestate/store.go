// Package sourcestate persists the source state of a source set between planning runs.
package sourcestate

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.SourceStateStore using one JSON file per source set.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load retrieves the state recorded for sourceSet.
func (s *Store) Load(stateDir, sourceSet string) (*domain.SourceState, error) {
	filename := s.filename(stateDir, sourceSet)
	//nolint:gosec // Path is built from the configured state dir and a validated source set name
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var state domain.SourceState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}
	return &state, nil
}

// Save records the state of sourceSet.
func (s *Store) Save(stateDir, sourceSet string, state *domain.SourceState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(stateDir, sourceSet)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	//nolint:gosec // Path is built from the configured state dir and a validated source set name
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	return nil
}

func (s *Store) filename(stateDir, sourceSet string) string {
	return filepath.Join(domain.DefaultSourceStatePath(stateDir), sourceSet+".json")
}
