package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no recomp.yaml is found in the working directory or its parents.
	ErrConfigNotFound = zerr.New("could not find recomp.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrSourceSetNotFound is returned when a requested source set is not declared in the config.
	ErrSourceSetNotFound = zerr.New("source set not found")

	// ErrInvalidSourceSetName is returned when a source set name contains invalid characters.
	ErrInvalidSourceSetName = zerr.New("source set name can only contain alphanumeric characters, hyphens and underscores")

	// ErrNoSourceRoots is returned when a source set declares no source roots.
	ErrNoSourceRoots = zerr.New("source set declares no sources")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrDirectoryReadFailed is returned when listing a directory fails.
	ErrDirectoryReadFailed = zerr.New("failed to read directory")

	// ErrSnapshotFailed is returned when a path cannot be snapshotted.
	ErrSnapshotFailed = zerr.New("failed to snapshot path")

	// ErrClasspathSnapshotFailed is returned when a classpath entry cannot be snapshotted.
	ErrClasspathSnapshotFailed = zerr.New("failed to snapshot classpath")

	// ErrAnalysisEncodeFailed is returned when class set analysis data cannot be encoded.
	ErrAnalysisEncodeFailed = zerr.New("failed to encode class set analysis")

	// ErrAnalysisDecodeFailed is returned when class set analysis data cannot be decoded.
	ErrAnalysisDecodeFailed = zerr.New("failed to decode class set analysis")

	// ErrUnknownClassNameID is returned when a class name reference points at an id that was never defined.
	ErrUnknownClassNameID = zerr.New("unknown class name id")

	// ErrUnexpectedClassNameID is returned when a class name definition does not carry the next sequential id.
	ErrUnexpectedClassNameID = zerr.New("unexpected class name id")

	// ErrDuplicateClassName is returned when a class name is a key twice within one section.
	ErrDuplicateClassName = zerr.New("duplicate class name in section")

	// ErrUnknownDependentsTag is returned when a dependents entry has an unknown tag byte.
	ErrUnknownDependentsTag = zerr.New("unknown dependents set tag")

	// ErrAmbiguousDependents is returned when a dependents entry is both a dependency to all
	// classes and a list of classes.
	ErrAmbiguousDependents = zerr.New("dependents entry sets both all and classes")

	// ErrVarintOverflow is returned when a variable-length integer does not fit its target type.
	ErrVarintOverflow = zerr.New("varint overflows target type")

	// ErrNegativeLength is returned when a length or count would be negative.
	ErrNegativeLength = zerr.New("negative length")

	// ErrInvalidNullMarker is returned when a nullable string does not start with 0 or 1.
	ErrInvalidNullMarker = zerr.New("invalid nullable string marker")

	// ErrTrailingData is returned when a decoded stream has bytes after the last section.
	ErrTrailingData = zerr.New("unexpected trailing data")

	// ErrStoreCreateFailed is returned when a state directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create state directory")

	// ErrStoreReadFailed is returned when persisted state cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read persisted state")

	// ErrStoreWriteFailed is returned when persisted state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write persisted state")

	// ErrStoreMarshalFailed is returned when persisted state cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal persisted state")

	// ErrStoreUnmarshalFailed is returned when persisted state cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal persisted state")

	// ErrWatcherStartFailed is returned when the filesystem watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start filesystem watcher")

	// ErrPlanFailed is returned when recompilation planning fails.
	ErrPlanFailed = zerr.New("failed to plan recompilation")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")
)
