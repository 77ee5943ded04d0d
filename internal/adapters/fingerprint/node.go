package fingerprint

import (
	"context"

	"github.com/grindlemire/graft"
	"go.actr.dev/actr/internal/core/ports"
)

// NodeID is the unique identifier for the fingerprint validator Graft node.
const NodeID graft.ID = "adapter.fingerprint_validator"

func init() {
	graft.Register(graft.Node[ports.FingerprintValidator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FingerprintValidator, error) {
			return NewValidator(), nil
		},
	})
}
