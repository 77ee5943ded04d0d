package ports

import (
	"context"

	"go.actr.dev/actr/internal/core/domain"
)

// ServiceDiscovery is the signaling-protocol client: it connects, registers
// an identity, and issues discovery and service-spec queries over one
// persistent duplex connection.
//
//go:generate go run go.uber.org/mock/mockgen -source=discovery.go -destination=mocks/mock_discovery.go -package=mocks
type ServiceDiscovery interface {
	// DiscoverServices lists advertised services, applying the filter
	// client-side.
	DiscoverServices(ctx context.Context, filter *domain.ServiceFilter) ([]domain.ServiceInfo, error)

	// GetServiceDetails re-discovers the service and fetches its proto
	// spec. Spec-fetch failures degrade to an empty proto list with a
	// logged warning rather than failing the whole call.
	GetServiceDetails(ctx context.Context, name string) (*domain.ServiceDetails, error)

	// CheckServiceAvailability is a presence check via discovery; there is
	// no dedicated wire message.
	CheckServiceAvailability(ctx context.Context, name string) (domain.AvailabilityStatus, error)

	// GetServiceProto runs a dedicated spec request/response cycle.
	GetServiceProto(ctx context.Context, name string) ([]domain.ProtoFile, error)

	// Close drops the connection if one is established.
	Close() error
}
