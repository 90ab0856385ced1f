// Package detector inspects the terminal environment to pick how logs are rendered.
package detector

import (
	"os"

	"golang.org/x/term"
)

// ColorMode represents how log output is colored.
type ColorMode int

const (
	// ModeAuto defers to DetectEnvironment.
	ModeAuto ColorMode = iota
	// ModeColor writes ANSI colors.
	ModeColor
	// ModePlain writes plain text.
	ModePlain
)

// String returns the flag value of the mode.
func (m ColorMode) String() string {
	switch m {
	case ModeColor:
		return "always"
	case ModePlain:
		return "never"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended color mode for output written to f.
// Plain text is chosen when f is not a terminal, when running in CI, or when NO_COLOR is set.
func DetectEnvironment(f *os.File) ColorMode {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}

	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	return ModeColor
}

// ResolveMode applies the --color flag to the detected mode.
// userFlag should be one of "auto", "always", "never", or empty.
func ResolveMode(autoDetected ColorMode, userFlag string) ColorMode {
	switch userFlag {
	case "always":
		return ModeColor
	case "never":
		return ModePlain
	default:
		return autoDetected
	}
}
