package analysis

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.AnalysisStore with one encoded file per source set.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and decodes the analysis of sourceSet. A file that fails to decode is
// reported with domain.ErrAnalysisDecodeFailed so callers can discard it.
func (s *Store) Load(stateDir, sourceSet string) (*domain.ClassSetAnalysisData, error) {
	path := s.path(stateDir, sourceSet)

	//nolint:gosec // Path is built from the configured state dir and a validated source set name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	a, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return a, nil
}

// Save encodes the analysis and replaces the file of sourceSet atomically.
func (s *Store) Save(stateDir, sourceSet string, a *domain.ClassSetAnalysisData) error {
	var buf bytes.Buffer
	if err := Encode(&buf, a); err != nil {
		return err
	}
	return writeAtomic(s.path(stateDir, sourceSet), buf.Bytes())
}

func (s *Store) path(stateDir, sourceSet string) string {
	return filepath.Join(domain.DefaultAnalysisPath(stateDir), sourceSet+domain.AnalysisFileExt)
}

// writeAtomic writes data to a temporary file next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}
