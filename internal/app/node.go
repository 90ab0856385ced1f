package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recomp/internal/adapters/analysis"           //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/classpath"          //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/mirror"             //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/sourcestate"        //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			mirror.NodeID,
			fs.SnapshotterNodeID,
			classpath.NodeID,
			analysis.NodeID,
			sourcestate.NodeID,
			progrock.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log, Telemetry: telemetry}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	m, err := graft.Dep[ports.FileSystemMirror](ctx)
	if err != nil {
		return nil, err
	}
	snapshotter, err := graft.Dep[ports.Snapshotter](ctx)
	if err != nil {
		return nil, err
	}
	provider, err := graft.Dep[ports.ClasspathSnapshotProvider](ctx)
	if err != nil {
		return nil, err
	}
	analyses, err := graft.Dep[ports.AnalysisStore](ctx)
	if err != nil {
		return nil, err
	}
	states, err := graft.Dep[ports.SourceStateStore](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, m, snapshotter, provider, analyses, states, telemetry, w), nil
}
