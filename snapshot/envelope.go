package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hupe1980/pointgen/codec"
)

var (
	// ErrCorrupt is returned when an envelope cannot be parsed.
	ErrCorrupt = errors.New("snapshot: corrupt envelope")
	// ErrUnsupportedVersion is returned for envelopes written by a newer format.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported format version")
	// ErrUnsupportedCompression is returned for an unknown compression byte.
	ErrUnsupportedCompression = errors.New("snapshot: unsupported compression")
	// ErrUnknownCodec is returned when the envelope names an unregistered codec.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")
)

const (
	magic         = "PGSN"
	formatVersion = 1
	// magic + version + compression + codec name length
	fixedHeaderSize = 4 + 1 + 1 + 1
	sizesSize       = 8
)

// EncodeOptions configures Encode.
type EncodeOptions struct {
	Codec       codec.Codec
	Compression Compression
}

// Encode serializes a snapshot into an envelope.
func Encode(s *Snapshot, opts EncodeOptions) ([]byte, error) {
	c := opts.Codec
	if c == nil {
		c = codec.Default
	}

	name := c.Name()
	if len(name) > 255 {
		return nil, fmt.Errorf("codec name %q too long", name)
	}

	payload, err := c.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	compressed, err := compress(payload, opts.Compression)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}

	body := payload
	stored := uint32(0) // 0 = raw
	compression := opts.Compression
	if compressed != nil {
		body = compressed
		stored = uint32(len(compressed))
	} else {
		compression = CompressionNone
	}

	out := make([]byte, 0, fixedHeaderSize+len(name)+sizesSize+len(body))
	out = append(out, magic...)
	out = append(out, formatVersion, byte(compression), byte(len(name)))
	out = append(out, name...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	out = binary.LittleEndian.AppendUint32(out, stored)
	out = append(out, body...)
	return out, nil
}

// Header describes an envelope without decoding its payload.
type Header struct {
	Version          uint8
	Compression      Compression
	Codec            string
	UncompressedSize uint32
	StoredSize       uint32
}

// ReadHeader parses the envelope header and returns the remaining body.
func ReadHeader(data []byte) (Header, []byte, error) {
	var h Header

	if len(data) < fixedHeaderSize || string(data[:4]) != magic {
		return h, nil, ErrCorrupt
	}

	h.Version = data[4]
	if h.Version != formatVersion {
		return h, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	h.Compression = Compression(data[5])

	nameLen := int(data[6])
	rest := data[fixedHeaderSize:]
	if len(rest) < nameLen+sizesSize {
		return h, nil, ErrCorrupt
	}
	h.Codec = string(rest[:nameLen])
	rest = rest[nameLen:]

	h.UncompressedSize = binary.LittleEndian.Uint32(rest[0:])
	h.StoredSize = binary.LittleEndian.Uint32(rest[4:])
	rest = rest[sizesSize:]

	want := h.UncompressedSize
	if h.StoredSize != 0 {
		want = h.StoredSize
		if !plausibleSize(h.Compression, h.StoredSize, h.UncompressedSize) {
			return h, nil, fmt.Errorf("%w: implausible size %d for %d stored bytes", ErrCorrupt, h.UncompressedSize, h.StoredSize)
		}
	}
	if uint32(len(rest)) != want {
		return h, nil, ErrCorrupt
	}

	return h, rest, nil
}

// Decode parses an envelope produced by Encode.
func Decode(data []byte) (*Snapshot, error) {
	h, body, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	c, ok := codec.ByName(h.Codec)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, h.Codec)
	}

	payload := body
	if h.StoredSize != 0 {
		payload, err = decompress(body, h.Compression, int(h.UncompressedSize))
		if err != nil {
			return nil, fmt.Errorf("decompress snapshot: %w", err)
		}
	}

	var s Snapshot
	if err := c.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &s, nil
}
