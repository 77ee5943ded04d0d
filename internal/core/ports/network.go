package ports

import (
	"context"
	"time"

	"go.actr.dev/actr/internal/core/domain"
)

// NetworkValidator empirically confirms that a discovered service address
// is reachable, using TCP connect as the reachability proxy. Probe
// failures are statuses, never errors.
//
//go:generate go run go.uber.org/mock/mockgen -source=network.go -destination=mocks/mock_network.go -package=mocks
type NetworkValidator interface {
	// CheckConnectivity probes one host:port address within the timeout.
	CheckConnectivity(ctx context.Context, address string, timeout time.Duration) domain.ConnectivityStatus

	// TestLatency takes three samples 100ms apart and reports min/max/avg.
	// It fails only if all samples fail.
	TestLatency(ctx context.Context, address string, timeout time.Duration) domain.LatencyReport

	// BatchCheck runs sequential per-name connectivity checks.
	BatchCheck(ctx context.Context, addresses map[string]string, timeout time.Duration) map[string]domain.ConnectivityStatus
}
