// Package config provides the configuration loader for recomp.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/recomp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration schema version this loader understands.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration for cwd. cwd may also be the path of a configuration
// file, in which case no discovery happens.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var recompfile Recompfile
	if err := readAndUnmarshalYAML(configPath, &recompfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if recompfile.Version != "" && recompfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", domain.ConfigFileName, recompfile.Version, SupportedVersion))
	}

	root := resolvePath(filepath.Dir(configPath), recompfile.Root)
	stateDir := recompfile.StateDir
	if stateDir == "" {
		stateDir = domain.StateDirName
	}

	project := domain.NewProject(root, resolvePath(root, stateDir))
	for name, dto := range recompfile.SourceSets {
		sourceSet, err := buildSourceSet(root, name, dto)
		if err != nil {
			return nil, zerr.With(err, "path", configPath)
		}
		project.AddSourceSet(sourceSet)
	}
	return project, nil
}

func findConfiguration(cwd string) (string, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "cwd", cwd)
	}

	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return abs, nil
	}

	currentDir := abs
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func buildSourceSet(root, name string, dto SourceSetDTO) (*domain.SourceSet, error) {
	setName, err := domain.ParseSourceSetName(name)
	if err != nil {
		return nil, err
	}
	if len(dto.Sources) == 0 {
		return nil, zerr.With(domain.ErrNoSourceRoots, "source_set", name)
	}

	return &domain.SourceSet{
		Name: setName,
		Spec: domain.CompileSpec{
			SourceRoots:    resolvePaths(root, dto.Sources),
			Classpath:      resolvePaths(root, dto.Classpath),
			ProcessorPath:  resolvePaths(root, dto.AnnotationProcessorPath),
			SourceSetName:  name,
			IgnorePatterns: dto.Ignores,
		},
	}, nil
}

func resolvePaths(base string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	resolved := make([]string, len(paths))
	for i, p := range paths {
		resolved[i] = resolvePath(base, p)
	}
	return resolved
}

func resolvePath(base, path string) string {
	if path == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or given explicitly by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
