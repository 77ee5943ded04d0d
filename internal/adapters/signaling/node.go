package signaling

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.actr.dev/actr/internal/adapters/config"
	"go.actr.dev/actr/internal/adapters/logger"
	"go.actr.dev/actr/internal/core/ports"
)

// NodeID is the unique identifier for the signaling client Graft node.
const NodeID graft.ID = "adapter.service_discovery"

// ServerEnv overrides the signaling server address from the manifest.
const ServerEnv = "ACTR_SIGNALING_SERVER"

// DefaultServerAddr is used when neither the manifest nor the environment
// names a signaling endpoint.
const DefaultServerAddr = "127.0.0.1:7411"

func init() {
	graft.Register(graft.Node[ports.ServiceDiscovery]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.ServiceDiscovery, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfgMgr, err := graft.Dep[ports.ConfigManager](ctx)
			if err != nil {
				return nil, err
			}

			cfg := Config{ServerAddr: DefaultServerAddr, ActorType: "actr-cli"}
			if manifest, err := cfgMgr.Load(); err == nil {
				if manifest.Signaling.Server != "" {
					cfg.ServerAddr = manifest.Signaling.Server
				}
				cfg.Realm = manifest.Signaling.Realm
				if manifest.Package.Name != "" {
					cfg.ActorType = "actr-cli/" + manifest.Package.Name
				}
			}
			if addr := os.Getenv(ServerEnv); addr != "" {
				cfg.ServerAddr = addr
			}

			return NewClient(cfg, log), nil
		},
	})
}
