package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.actr.dev/actr/internal/adapters/cache"
	"go.actr.dev/actr/internal/adapters/config"
	"go.actr.dev/actr/internal/adapters/fingerprint"
	"go.actr.dev/actr/internal/adapters/logger"
	"go.actr.dev/actr/internal/adapters/netcheck"
	"go.actr.dev/actr/internal/adapters/signaling"
	"go.actr.dev/actr/internal/core/ports"
	"go.actr.dev/actr/internal/engine/resolve"
)

// Node IDs for the pipeline Graft nodes.
const (
	ValidationNodeID graft.ID = "engine.validation_pipeline"
	InstallNodeID    graft.ID = "engine.install_pipeline"
)

func init() {
	graft.Register(graft.Node[*Validation]{
		ID:        ValidationNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolve.NodeID,
			signaling.NodeID,
			netcheck.NodeID,
			fingerprint.NodeID,
			logger.NodeID,
		},
		Run: runValidationNode,
	})

	graft.Register(graft.Node[*Install]{
		ID:        InstallNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ValidationNodeID,
			cache.NodeID,
			config.NodeID,
			config.LockNodeID,
			logger.NodeID,
		},
		Run: runInstallNode,
	})
}

func runValidationNode(ctx context.Context) (*Validation, error) {
	cfg, err := graft.Dep[ports.ConfigManager](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[ports.DependencyResolver](ctx)
	if err != nil {
		return nil, err
	}
	discovery, err := graft.Dep[ports.ServiceDiscovery](ctx)
	if err != nil {
		return nil, err
	}
	network, err := graft.Dep[ports.NetworkValidator](ctx)
	if err != nil {
		return nil, err
	}
	fp, err := graft.Dep[ports.FingerprintValidator](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return NewValidation(cfg, resolver, discovery, network, fp, log), nil
}

func runInstallNode(ctx context.Context) (*Install, error) {
	validation, err := graft.Dep[*Validation](ctx)
	if err != nil {
		return nil, err
	}
	protoCache, err := graft.Dep[ports.ProtoCache](ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := graft.Dep[ports.ConfigManager](ctx)
	if err != nil {
		return nil, err
	}
	lock, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return NewInstall(validation, protoCache, cfg, lock, log), nil
}
