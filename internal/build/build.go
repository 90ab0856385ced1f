// Package build holds build-time information set through linker flags.
package build

// Version is the application version.
var Version = "dev"

// Commit is the VCS revision the binary was built from. Empty for local builds.
var Commit = ""

// String returns the version, followed by the short commit when known.
func String() string {
	if Commit == "" {
		return Version
	}
	short := Commit
	if len(short) > 12 {
		short = short[:12]
	}
	return Version + " (" + short + ")"
}
