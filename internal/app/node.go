package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.actr.dev/actr/internal/adapters/config"
	"go.actr.dev/actr/internal/adapters/logger"
	"go.actr.dev/actr/internal/adapters/signaling"
	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports"
	"go.actr.dev/actr/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components
	// Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components aggregates everything the CLI needs after the container has
// been built.
type Components struct {
	App    *App
	Logger ports.Logger
	Config ports.ConfigManager
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			signaling.NodeID,
			pipeline.ValidationNodeID,
			pipeline.InstallNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

// dep pulls one component from the container, mapping a missing
// registration onto the domain error so callers see container misuse for
// what it is.
func dep[T any](ctx context.Context) (T, error) {
	v, err := graft.Dep[T](ctx)
	if err != nil {
		return v, missingComponent(err)
	}
	return v, nil
}

// missingComponent wraps a container resolution failure so errors.Is
// reaches the sentinel.
func missingComponent(cause error) error {
	return zerr.Wrap(domain.ErrComponentNotRegistered, cause.Error())
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := dep[ports.ConfigManager](ctx)
	if err != nil {
		return nil, err
	}
	discovery, err := dep[ports.ServiceDiscovery](ctx)
	if err != nil {
		return nil, err
	}
	validation, err := dep[*pipeline.Validation](ctx)
	if err != nil {
		return nil, err
	}
	install, err := dep[*pipeline.Install](ctx)
	if err != nil {
		return nil, err
	}
	log, err := dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(cfg, discovery, validation, install, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := dep[ports.ConfigManager](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{App: application, Logger: log, Config: cfg}, nil
}
