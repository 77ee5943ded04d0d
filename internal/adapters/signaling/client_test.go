package signaling_test

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.actr.dev/actr/internal/adapters/signaling"
	"go.actr.dev/actr/internal/adapters/signaling/wire"
	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// fakeServer is an in-process signaling server speaking the real wire
// format over a loopback listener.
type fakeServer struct {
	ln net.Listener

	mu            sync.Mutex
	registrations int
	credential    string
	entries       []wire.TypeEntry
	specs         map[string][]wire.SpecFile
	dropNext      bool
	failNext      *wire.ServerError
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeServer{
		ln:         ln,
		credential: "test-credential",
		specs:      make(map[string][]wire.SpecFile),
	}
	t.Cleanup(func() { _ = ln.Close() })
	go s.serve()
	return s
}

func (s *fakeServer) addr() string {
	return s.ln.Addr().String()
}

func (s *fakeServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *fakeServer) handle(conn net.Conn) {
	defer conn.Close()
	for {
		env, err := wire.ReadEnvelope(conn)
		if err != nil {
			return
		}

		reply := wire.NewReply(env.ID)
		switch {
		case env.PeerToServer != nil && env.PeerToServer.Register != nil:
			s.mu.Lock()
			s.registrations++
			s.mu.Unlock()
			reply.ServerToActr = &wire.ServerToActr{
				RegisterResponse: &wire.RegisterResponse{
					ActrID:     "actr-test-1",
					Credential: s.credential,
				},
			}

		case env.ActrToServer != nil:
			s.mu.Lock()
			drop := s.dropNext
			s.dropNext = false
			fail := s.failNext
			s.failNext = nil
			s.mu.Unlock()

			if drop {
				return
			}
			if fail != nil {
				reply.ServerToActr = &wire.ServerToActr{Error: fail}
				break
			}
			if env.ActrToServer.Credential != s.credential {
				reply.ServerToActr = &wire.ServerToActr{
					Error: &wire.ServerError{Code: 401, Message: "bad credential"},
				}
				break
			}
			switch {
			case env.ActrToServer.Discovery != nil:
				s.mu.Lock()
				entries := s.entries
				s.mu.Unlock()
				reply.ServerToActr = &wire.ServerToActr{
					DiscoveryResponse: &wire.DiscoveryResponse{Entries: entries},
				}
			case env.ActrToServer.GetServiceSpec != nil:
				s.mu.Lock()
				files := s.specs[env.ActrToServer.GetServiceSpec.Service]
				s.mu.Unlock()
				reply.ServerToActr = &wire.ServerToActr{
					GetServiceSpecResponse: &wire.ServiceSpecResponse{Files: files},
				}
			default:
				reply.ServerToActr = &wire.ServerToActr{
					Error: &wire.ServerError{Code: 400, Message: "unknown request"},
				}
			}

		default:
			reply.EnvelopeError = &wire.EnvelopeError{Code: 400, Message: "unknown flow"}
		}

		if err := wire.WriteEnvelope(conn, reply); err != nil {
			return
		}
	}
}

func (s *fakeServer) registrationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registrations
}

func (s *fakeServer) setEntries(entries []wire.TypeEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
}

func (s *fakeServer) setSpec(service string, files []wire.SpecFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specs[service] = files
}

func newClient(t *testing.T, addr string) *signaling.Client {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	c := signaling.NewClient(signaling.Config{
		ServerAddr:     addr,
		ActorType:      "actr-cli/test",
		Realm:          1,
		DialTimeout:    time.Second,
		RequestTimeout: 2 * time.Second,
	}, log)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_DiscoverServices(t *testing.T) {
	srv := newFakeServer(t)
	srv.setEntries([]wire.TypeEntry{
		{
			Name:        "user-service",
			ActrType:    "actr+user-service",
			Tags:        []string{"latest", "stable"},
			Endpoint:    "10.0.0.1:9000",
			Fingerprint: "xxh64:abc123",
			Methods:     []string{"Get", "List"},
		},
		{
			Name:     "media-service",
			ActrType: "actr+media-service",
			Tags:     []string{"0.4.0"},
		},
	})

	client := newClient(t, srv.addr())

	services, err := client.DiscoverServices(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, services, 2)

	assert.Equal(t, "user-service", services[0].Name)
	assert.Equal(t, "latest", services[0].Version)
	assert.Equal(t, "actr://user-service/", services[0].URI)
	assert.Equal(t, "10.0.0.1:9000", services[0].Endpoint)
	assert.Equal(t, domain.Fingerprint{Algorithm: "xxh64", Value: "abc123"}, services[0].Fingerprint)

	// Version falls back to the first tag when "latest" is absent.
	assert.Equal(t, "0.4.0", services[1].Version)

	// The connection registers once and is reused.
	_, err = client.DiscoverServices(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, srv.registrationCount())
}

func TestClient_DiscoverServices_Filter(t *testing.T) {
	srv := newFakeServer(t)
	srv.setEntries([]wire.TypeEntry{
		{Name: "user-service", Tags: []string{"latest"}},
		{Name: "media-service", Tags: []string{"latest"}},
	})

	client := newClient(t, srv.addr())

	services, err := client.DiscoverServices(context.Background(), &domain.ServiceFilter{
		NamePattern: "user-*",
	})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "user-service", services[0].Name)
}

func TestClient_GetServiceDetails(t *testing.T) {
	srv := newFakeServer(t)
	srv.setEntries([]wire.TypeEntry{{Name: "user-service", Tags: []string{"latest"}}})
	srv.setSpec("user-service", []wire.SpecFile{
		{Name: "user.proto", Content: "service UserService {}"},
	})

	client := newClient(t, srv.addr())

	details, err := client.GetServiceDetails(context.Background(), "user-service")
	require.NoError(t, err)
	assert.Equal(t, "user-service", details.Info.Name)
	require.Len(t, details.ProtoFiles, 1)
	assert.Equal(t, "user.proto", details.ProtoFiles[0].Name)
	assert.Equal(t, "service UserService {}", details.ProtoFiles[0].Content)
}

func TestClient_GetServiceDetails_NotFound(t *testing.T) {
	srv := newFakeServer(t)
	client := newClient(t, srv.addr())

	_, err := client.GetServiceDetails(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestClient_CheckServiceAvailability(t *testing.T) {
	srv := newFakeServer(t)
	srv.setEntries([]wire.TypeEntry{{Name: "user-service"}})

	client := newClient(t, srv.addr())

	status, err := client.CheckServiceAvailability(context.Background(), "user-service")
	require.NoError(t, err)
	assert.True(t, status.Available)

	status, err = client.CheckServiceAvailability(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, status.Available)
	assert.Contains(t, status.Detail, "missing")
}

func TestClient_QualifiedNameLookup(t *testing.T) {
	srv := newFakeServer(t)
	srv.setEntries([]wire.TypeEntry{
		{Name: "user-service"},
		{Name: "media-service", Manufacturer: "acme"},
	})

	client := newClient(t, srv.addr())
	ctx := context.Background()

	t.Run("matches the entry's own qualified name", func(t *testing.T) {
		status, err := client.CheckServiceAvailability(ctx, "actr:user-service")
		require.NoError(t, err)
		assert.True(t, status.Available)

		status, err = client.CheckServiceAvailability(ctx, "acme:media-service")
		require.NoError(t, err)
		assert.True(t, status.Available)
	})

	t.Run("unrelated qualified name matches nothing", func(t *testing.T) {
		status, err := client.CheckServiceAvailability(ctx, "acme:billing-service")
		require.NoError(t, err)
		assert.False(t, status.Available)

		_, err = client.GetServiceDetails(ctx, "acme:billing-service")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrServiceNotFound)
	})

	t.Run("manufacturer must agree", func(t *testing.T) {
		status, err := client.CheckServiceAvailability(ctx, "acme:user-service")
		require.NoError(t, err)
		assert.False(t, status.Available)

		status, err = client.CheckServiceAvailability(ctx, "actr:media-service")
		require.NoError(t, err)
		assert.False(t, status.Available)
	})
}

func TestClient_ReconnectsAfterDroppedSession(t *testing.T) {
	srv := newFakeServer(t)
	srv.setEntries([]wire.TypeEntry{{Name: "user-service"}})

	client := newClient(t, srv.addr())

	_, err := client.DiscoverServices(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, srv.registrationCount())

	// The server kills the connection mid-request; the client surfaces the
	// failure and re-registers on the next call.
	srv.mu.Lock()
	srv.dropNext = true
	srv.mu.Unlock()

	_, err = client.DiscoverServices(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetwork)

	_, err = client.DiscoverServices(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, srv.registrationCount())
}

func TestClient_ServerErrorSurfaces(t *testing.T) {
	srv := newFakeServer(t)
	client := newClient(t, srv.addr())

	srv.mu.Lock()
	srv.failNext = &wire.ServerError{Code: 500, Message: "discovery backend down"}
	srv.mu.Unlock()

	_, err := client.DiscoverServices(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discovery backend down")
}

func TestClient_DialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	client := newClient(t, addr)

	_, err = client.DiscoverServices(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
