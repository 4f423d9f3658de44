package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deplist/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/deplist/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/deplist/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/deplist/internal/adapters/productdeps" //nolint:depguard // Wired in app layer
	"go.trai.ch/deplist/internal/adapters/rst"         //nolint:depguard // Wired in app layer
	"go.trai.ch/deplist/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/deplist/internal/core/ports"
	"go.trai.ch/deplist/internal/engine/scheduler"
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
			productdeps.NodeID,
			rst.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			scheduler.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.DependencyReader](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.PageRenderer](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, reader, renderer, hasher, log, tracer, sched), nil
}
