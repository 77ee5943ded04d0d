// Package wire implements the signaling wire format: length-prefixed binary
// frames carrying versioned JSON envelopes.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// FrameHeaderLen is the fixed frame header size in bytes.
const FrameHeaderLen = 12

// Magic identifies a signaling frame.
const Magic uint32 = 0x41435452 // "ACTR"

// FrameVersion is the current frame format version.
const FrameVersion uint16 = 1

// Frame types.
const (
	TypeEnvelope  uint16 = 1
	TypeKeepalive uint16 = 2
)

// MaxPayloadBytes constrains frame decode memory use.
const MaxPayloadBytes = 8 * 1024 * 1024

var (
	ErrBadMagic        = errors.New("wire: bad frame magic")
	ErrShortHeader     = errors.New("wire: short frame header")
	ErrPayloadTooLarge = errors.New("wire: payload too large")
)

// Frame is one complete wire message.
type Frame struct {
	Version uint16
	Type    uint16
	Payload []byte
}

// WriteFrame writes one frame to w.
func WriteFrame(w io.Writer, f Frame) error {
	if len(f.Payload) > MaxPayloadBytes {
		return ErrPayloadTooLarge
	}
	if f.Version == 0 {
		f.Version = FrameVersion
	}

	buf := make([]byte, FrameHeaderLen+len(f.Payload))
	binary.BigEndian.PutUint32(buf[0:4], Magic)
	binary.BigEndian.PutUint16(buf[4:6], f.Version)
	binary.BigEndian.PutUint16(buf[6:8], f.Type)
	binary.BigEndian.PutUint32(buf[8:12], uint32(len(f.Payload)))
	copy(buf[FrameHeaderLen:], f.Payload)

	_, err := w.Write(buf)
	return err
}

// ReadFrame reads one complete frame from r.
func ReadFrame(r io.Reader) (Frame, error) {
	var header [FrameHeaderLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Frame{}, ErrShortHeader
		}
		return Frame{}, err
	}

	if magic := binary.BigEndian.Uint32(header[0:4]); magic != Magic {
		return Frame{}, fmt.Errorf("%w: 0x%08x", ErrBadMagic, magic)
	}

	f := Frame{
		Version: binary.BigEndian.Uint16(header[4:6]),
		Type:    binary.BigEndian.Uint16(header[6:8]),
	}
	payloadLen := binary.BigEndian.Uint32(header[8:12])
	if payloadLen > MaxPayloadBytes {
		return Frame{}, ErrPayloadTooLarge
	}

	f.Payload = make([]byte, payloadLen)
	if payloadLen > 0 {
		if _, err := io.ReadFull(r, f.Payload); err != nil {
			return Frame{}, err
		}
	}
	return f, nil
}
