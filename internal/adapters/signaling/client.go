// Package signaling implements the signaling-protocol service-discovery
// client.
package signaling

import (
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"go.actr.dev/actr/internal/adapters/signaling/wire"
	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ServiceDiscovery = (*Client)(nil)

// Config holds the client's connection parameters.
type Config struct {
	// ServerAddr is the signaling endpoint, host:port.
	ServerAddr string

	// ActorType is the identity registered with the server.
	ActorType string

	// Realm is the numeric namespace scoping actor identities.
	Realm uint32

	// DialTimeout bounds connection establishment.
	DialTimeout time.Duration

	// RequestTimeout bounds the wait for a matching response on one
	// request/response cycle.
	RequestTimeout time.Duration
}

// Defaults for unset config fields.
const (
	DefaultDialTimeout    = 5 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

// connState is the client's connection lifecycle.
type connState uint8

const (
	stateDisconnected connState = iota
	stateConnected
)

// session is the registered connection handle: the socket plus the
// identity issued at registration.
type session struct {
	conn       net.Conn
	actrID     string
	credential string
}

// Client talks to one signaling server over a persistent duplex
// connection. The connection is a single shared resource guarded by a
// mutex: each request holds the lock for the full round trip, so at most
// one request is ever in flight per client instance. Response matching by
// type relies on that invariant.
type Client struct {
	cfg Config
	log ports.Logger

	mu    sync.Mutex
	state connState
	sess  session
}

// NewClient creates a signaling client. No connection is opened until the
// first call.
func NewClient(cfg Config, log ports.Logger) *Client {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = DefaultDialTimeout
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	return &Client{cfg: cfg, log: log}
}

// ensureConnected establishes and registers the connection if the client
// is disconnected. The caller must hold c.mu.
func (c *Client) ensureConnected(ctx context.Context) error {
	if c.state == stateConnected {
		return nil
	}

	dialer := net.Dialer{Timeout: c.cfg.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.cfg.ServerAddr)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrNetwork, err.Error()), "addr", c.cfg.ServerAddr)
	}

	env := wire.NewEnvelope()
	env.PeerToServer = &wire.PeerToServer{
		Register: &wire.Register{ActorType: c.cfg.ActorType, Realm: c.cfg.Realm},
	}

	resp, err := c.exchange(conn, env)
	if err != nil {
		_ = conn.Close()
		return err
	}
	reg := resp.ServerToActr.RegisterResponse
	if reg == nil {
		_ = conn.Close()
		return zerr.Wrap(wire.ErrUnexpectedResponse, "registration failed")
	}

	c.sess = session{conn: conn, actrID: reg.ActrID, credential: reg.Credential}
	c.state = stateConnected
	c.log.Info("registered with signaling server as " + reg.ActrID)
	return nil
}

// dropSession closes the socket and resets the state to disconnected so
// the next call reconnects from scratch. The caller must hold c.mu.
func (c *Client) dropSession() {
	if c.state == stateConnected {
		_ = c.sess.conn.Close()
	}
	c.sess = session{}
	c.state = stateDisconnected
}

// exchange writes one envelope on conn and reads until an envelope that is
// not a keepalive arrives, within the request timeout. Server-to-actor
// errors and envelope-level errors come back as Go errors.
func (c *Client) exchange(conn net.Conn, env wire.Envelope) (wire.Envelope, error) {
	deadline := time.Now().Add(c.cfg.RequestTimeout)
	if err := conn.SetDeadline(deadline); err != nil {
		return wire.Envelope{}, zerr.Wrap(domain.ErrNetwork, err.Error())
	}

	if err := wire.WriteEnvelope(conn, env); err != nil {
		return wire.Envelope{}, zerr.Wrap(domain.ErrNetwork, err.Error())
	}

	for {
		resp, err := wire.ReadEnvelope(conn)
		if err != nil {
			return wire.Envelope{}, zerr.Wrap(domain.ErrNetwork, err.Error())
		}
		if resp.EnvelopeError != nil {
			return wire.Envelope{}, zerr.With(domain.ErrNetwork,
				"envelope_error", resp.EnvelopeError.Message)
		}
		if resp.ServerToActr == nil {
			// Not addressed to us; with one request in flight this frame
			// can only be noise.
			continue
		}
		if srvErr := resp.ServerToActr.Error; srvErr != nil {
			return wire.Envelope{}, srvErr
		}
		return resp, nil
	}
}

// request runs one authenticated actor-to-server round trip, reconnecting
// first if needed. Any transport or decode error invalidates the session.
func (c *Client) request(ctx context.Context, payload wire.ActrToServer) (wire.Envelope, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureConnected(ctx); err != nil {
		c.dropSession()
		return wire.Envelope{}, err
	}

	env := wire.NewEnvelope()
	payload.Source = c.sess.actrID
	payload.Credential = c.sess.credential
	env.ActrToServer = &payload

	resp, err := c.exchange(c.sess.conn, env)
	if err != nil {
		c.dropSession()
		return wire.Envelope{}, err
	}
	return resp, nil
}

// DiscoverServices lists advertised services, applying the filter
// client-side.
func (c *Client) DiscoverServices(ctx context.Context, filter *domain.ServiceFilter) ([]domain.ServiceInfo, error) {
	resp, err := c.request(ctx, wire.ActrToServer{
		Discovery: &wire.DiscoveryRequest{},
	})
	if err != nil {
		return nil, err
	}
	disco := resp.ServerToActr.DiscoveryResponse
	if disco == nil {
		return nil, zerr.Wrap(wire.ErrUnexpectedResponse, "discovery failed")
	}

	services := make([]domain.ServiceInfo, 0, len(disco.Entries))
	for _, entry := range disco.Entries {
		qualified := domain.QualifiedName(entry.Manufacturer, entry.Name)
		version := entryVersion(entry.Tags)
		if !filter.Matches(entry.Name, qualified, version, entry.Tags) {
			continue
		}
		services = append(services, domain.ServiceInfo{
			Name:         entry.Name,
			Manufacturer: entry.Manufacturer,
			Version:      version,
			Description:  entry.Description,
			URI:          domain.URIScheme + entry.Name + "/",
			Endpoint:     entry.Endpoint,
			Fingerprint:  domain.ParseFingerprint(entry.Fingerprint),
			Methods:      entry.Methods,
		})
	}
	return services, nil
}

// entryVersion selects the advertised version from an entry's tags: the
// "latest" tag if present, else the first tag, else "unknown".
func entryVersion(tags []string) string {
	for _, tag := range tags {
		if tag == "latest" {
			return tag
		}
	}
	if len(tags) > 0 {
		return tags[0]
	}
	return "unknown"
}

// GetServiceDetails re-discovers the service, locates the matching entry,
// and fetches its proto spec. Spec-fetch failures degrade to an empty
// proto list with a logged warning.
func (c *Client) GetServiceDetails(ctx context.Context, name string) (*domain.ServiceDetails, error) {
	services, err := c.DiscoverServices(ctx, nil)
	if err != nil {
		return nil, err
	}

	var info *domain.ServiceInfo
	for i := range services {
		if matchesServiceName(&services[i], name) {
			info = &services[i]
			break
		}
	}
	if info == nil {
		return nil, zerr.With(domain.ErrServiceNotFound, "service", name)
	}

	details := &domain.ServiceDetails{Info: *info}
	files, err := c.GetServiceProto(ctx, info.Name)
	if err != nil {
		c.log.Warn("failed to fetch proto spec for " + info.Name + ": " + err.Error())
		return details, nil
	}
	details.ProtoFiles = files
	return details, nil
}

// matchesServiceName accepts the exact short name or the entry's own
// qualified "manufacturer:name" form.
func matchesServiceName(info *domain.ServiceInfo, name string) bool {
	if info.Name == name {
		return true
	}
	if strings.Contains(name, ":") {
		return domain.QualifiedName(info.Manufacturer, info.Name) == name
	}
	return false
}

// CheckServiceAvailability is a presence check via discovery.
func (c *Client) CheckServiceAvailability(ctx context.Context, name string) (domain.AvailabilityStatus, error) {
	services, err := c.DiscoverServices(ctx, nil)
	if err != nil {
		return domain.AvailabilityStatus{}, err
	}
	for i := range services {
		if matchesServiceName(&services[i], name) {
			return domain.AvailabilityStatus{Available: true, Detail: "advertised by signaling server"}, nil
		}
	}
	return domain.AvailabilityStatus{
		Available: false,
		Detail:    "service " + name + " is not advertised",
	}, nil
}

// GetServiceProto runs a dedicated spec request/response cycle.
func (c *Client) GetServiceProto(ctx context.Context, name string) ([]domain.ProtoFile, error) {
	resp, err := c.request(ctx, wire.ActrToServer{
		GetServiceSpec: &wire.ServiceSpecRequest{Service: name},
	})
	if err != nil {
		return nil, err
	}
	spec := resp.ServerToActr.GetServiceSpecResponse
	if spec == nil {
		return nil, zerr.Wrap(wire.ErrUnexpectedResponse, "service spec fetch failed")
	}

	files := make([]domain.ProtoFile, 0, len(spec.Files))
	for _, f := range spec.Files {
		files = append(files, domain.ProtoFile{Name: f.Name, Content: f.Content})
	}
	return files, nil
}

// Close drops the connection if one is established.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropSession()
	return nil
}
