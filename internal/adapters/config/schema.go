package config

// Recompfile represents the structure of the recomp.yaml configuration file.
type Recompfile struct {
	Version    string                  `yaml:"version"`
	Root       string                  `yaml:"root"`
	StateDir   string                  `yaml:"stateDir"`
	SourceSets map[string]SourceSetDTO `yaml:"sourceSets"`
}

// SourceSetDTO represents a source set definition in the configuration.
type SourceSetDTO struct {
	Sources                 []string `yaml:"sources"`
	Classpath               []string `yaml:"classpath"`
	AnnotationProcessorPath []string `yaml:"annotationProcessorPath"`
	Ignores                 []string `yaml:"ignores"`
}
