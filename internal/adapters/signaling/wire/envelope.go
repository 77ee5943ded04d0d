package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// EnvelopeVersion is the current envelope schema version.
const EnvelopeVersion uint32 = 1

var (
	ErrUnknownFlow        = errors.New("wire: envelope carries no known flow")
	ErrEnvelopeVersion    = errors.New("wire: unsupported envelope version")
	ErrUnexpectedResponse = errors.New("wire: unexpected response type")
)

// Envelope is the versioned wrapper around every signaling message. Exactly
// one flow field is populated.
type Envelope struct {
	Version   uint32     `json:"v"`
	ID        uuid.UUID  `json:"id"`
	ReplyFor  *uuid.UUID `json:"reply_for,omitempty"`
	Timestamp int64      `json:"ts"`

	PeerToServer  *PeerToServer  `json:"peer_to_server,omitempty"`
	ActrToServer  *ActrToServer  `json:"actr_to_server,omitempty"`
	ServerToActr  *ServerToActr  `json:"server_to_actr,omitempty"`
	EnvelopeError *EnvelopeError `json:"envelope_error,omitempty"`
}

// PeerToServer carries the pre-registration flow.
type PeerToServer struct {
	Register *Register `json:"register,omitempty"`
}

// ActrToServer carries requests from a registered actor. The credential
// issued at registration must be attached to every request.
type ActrToServer struct {
	Source     string `json:"source"`
	Credential string `json:"credential"`

	Discovery      *DiscoveryRequest   `json:"discovery,omitempty"`
	GetServiceSpec *ServiceSpecRequest `json:"get_service_spec,omitempty"`
}

// ServerToActr carries responses from the server.
type ServerToActr struct {
	RegisterResponse       *RegisterResponse    `json:"register_response,omitempty"`
	DiscoveryResponse      *DiscoveryResponse   `json:"discovery_response,omitempty"`
	GetServiceSpecResponse *ServiceSpecResponse `json:"get_service_spec_response,omitempty"`
	Error                  *ServerError         `json:"error,omitempty"`
}

// EnvelopeError is an envelope-level protocol failure.
type EnvelopeError struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
}

// Register exchanges an actor type and realm for an identity.
type Register struct {
	ActorType string `json:"actor_type"`
	Realm     uint32 `json:"realm"`
}

// RegisterResponse carries the issued identity and credential.
type RegisterResponse struct {
	ActrID     string `json:"actr_id"`
	Credential string `json:"credential"`
}

// DiscoveryRequest asks for advertised service types.
type DiscoveryRequest struct {
	Manufacturer string `json:"manufacturer,omitempty"`
	Limit        uint32 `json:"limit,omitempty"`
}

// TypeEntry is one advertised service type.
type TypeEntry struct {
	Name         string   `json:"name"`
	ActrType     string   `json:"actr_type"`
	Tags         []string `json:"tags,omitempty"`
	Endpoint     string   `json:"endpoint,omitempty"`
	Description  string   `json:"description,omitempty"`
	Fingerprint  string   `json:"fingerprint,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Methods      []string `json:"methods,omitempty"`
}

// DiscoveryResponse lists advertised service types.
type DiscoveryResponse struct {
	Entries []TypeEntry `json:"entries"`
}

// ServiceSpecRequest asks for one service's embedded proto files.
type ServiceSpecRequest struct {
	Service string `json:"service"`
}

// SpecFile is one embedded proto file.
type SpecFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ServiceSpecResponse carries a service's proto files.
type ServiceSpecResponse struct {
	Files []SpecFile `json:"files"`
}

// ServerError is an application-level failure for one request.
type ServerError struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("wire: server error %d: %s", e.Code, e.Message)
}

// NewEnvelope allocates an envelope with a fresh ID and current timestamp.
func NewEnvelope() Envelope {
	return Envelope{
		Version:   EnvelopeVersion,
		ID:        uuid.New(),
		Timestamp: time.Now().UnixMilli(),
	}
}

// NewReply allocates a response envelope correlated to the given request.
func NewReply(requestID uuid.UUID) Envelope {
	env := NewEnvelope()
	env.ReplyFor = &requestID
	return env
}

// Validate checks version and flow exclusivity.
func (e *Envelope) Validate() error {
	if e.Version != EnvelopeVersion {
		return fmt.Errorf("%w: %d", ErrEnvelopeVersion, e.Version)
	}
	flows := 0
	if e.PeerToServer != nil {
		flows++
	}
	if e.ActrToServer != nil {
		flows++
	}
	if e.ServerToActr != nil {
		flows++
	}
	if e.EnvelopeError != nil {
		flows++
	}
	if flows != 1 {
		return ErrUnknownFlow
	}
	return nil
}

// WriteEnvelope frames and writes one envelope.
func WriteEnvelope(w io.Writer, env Envelope) error {
	if err := env.Validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return WriteFrame(w, Frame{Type: TypeEnvelope, Payload: payload})
}

// ReadEnvelope reads frames until an envelope arrives, silently skipping
// keepalive frames, and decodes it.
func ReadEnvelope(r io.Reader) (Envelope, error) {
	for {
		f, err := ReadFrame(r)
		if err != nil {
			return Envelope{}, err
		}
		if f.Type == TypeKeepalive {
			continue
		}

		var env Envelope
		if err := json.Unmarshal(f.Payload, &env); err != nil {
			return Envelope{}, fmt.Errorf("wire: decode envelope: %w", err)
		}
		if err := env.Validate(); err != nil {
			return Envelope{}, err
		}
		return env, nil
	}
}

// WriteKeepalive writes an empty keepalive frame.
func WriteKeepalive(w io.Writer) error {
	return WriteFrame(w, Frame{Type: TypeKeepalive})
}
