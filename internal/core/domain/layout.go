package domain

import "path/filepath"

const (
	// StateDirName is the default name of the directory holding persisted state.
	StateDirName = ".recomp"

	// AnalysisDirName is the directory under the state dir holding encoded class set analyses.
	AnalysisDirName = "analysis"

	// SourceStateDirName is the directory under the state dir holding previous source snapshots.
	SourceStateDirName = "sources"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "recomp.yaml"

	// AnalysisFileExt is the extension of encoded class set analysis files.
	AnalysisFileExt = ".bin"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultAnalysisPath returns the directory for encoded analyses under stateDir.
func DefaultAnalysisPath(stateDir string) string {
	return filepath.Join(stateDir, AnalysisDirName)
}

// DefaultSourceStatePath returns the directory for source snapshots under stateDir.
func DefaultSourceStatePath(stateDir string) string {
	return filepath.Join(stateDir, SourceStateDirName)
}
