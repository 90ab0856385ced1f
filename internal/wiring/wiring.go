// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/recomp/internal/adapters/analysis"
	_ "go.trai.ch/recomp/internal/adapters/classpath"
	_ "go.trai.ch/recomp/internal/adapters/config"
	_ "go.trai.ch/recomp/internal/adapters/fs"
	_ "go.trai.ch/recomp/internal/adapters/logger"
	_ "go.trai.ch/recomp/internal/adapters/mirror"
	_ "go.trai.ch/recomp/internal/adapters/sourcestate"
	_ "go.trai.ch/recomp/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/recomp/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/recomp/internal/app"
)
