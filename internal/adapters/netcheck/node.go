package netcheck

import (
	"context"

	"github.com/grindlemire/graft"
	"go.actr.dev/actr/internal/adapters/logger"
	"go.actr.dev/actr/internal/core/ports"
)

// NodeID is the unique identifier for the network validator Graft node.
const NodeID graft.ID = "adapter.network_validator"

func init() {
	graft.Register(graft.Node[ports.NetworkValidator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.NetworkValidator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewValidator(log), nil
		},
	})
}
