package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.actr.dev/actr/internal/adapters/config"
	"go.actr.dev/actr/internal/adapters/fingerprint"
	"go.actr.dev/actr/internal/core/ports"
)

// NodeID is the unique identifier for the proto cache Graft node.
const NodeID graft.ID = "adapter.proto_cache"

func init() {
	graft.Register(graft.Node[ports.ProtoCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fingerprint.NodeID},
		Run: func(ctx context.Context) (ports.ProtoCache, error) {
			fp, err := graft.Dep[ports.FingerprintValidator](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(config.ProjectDir(), fp), nil
		},
	})
}
