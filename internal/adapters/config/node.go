package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.actr.dev/actr/internal/adapters/logger"
	"go.actr.dev/actr/internal/core/ports"
)

// NodeID is the unique identifier for the config manager Graft node.
const NodeID graft.ID = "adapter.config_manager"

// LockNodeID is the unique identifier for the lock store Graft node.
const LockNodeID graft.ID = "adapter.lock_store"

// ProjectDirEnv overrides the project directory used by the config manager
// and the proto cache. It defaults to the working directory.
const ProjectDirEnv = "ACTR_PROJECT_DIR"

func init() {
	graft.Register(graft.Node[ports.ConfigManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigManager, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(ProjectDir(), log), nil
		},
	})

	graft.Register(graft.Node[ports.LockStore]{
		ID:        LockNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockStore, error) {
			return NewLockStore(ProjectDir()), nil
		},
	})
}

// ProjectDir resolves the project root for this invocation.
func ProjectDir() string {
	if dir := os.Getenv(ProjectDirEnv); dir != "" {
		return dir
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
