package snapshot

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the payload compression algorithm.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio).
	CompressionZSTD Compression = 2
)

// String returns the lowercase algorithm name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression parses "none", "lz4" or "zstd". The empty string means none.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return CompressionNone, fmt.Errorf("unknown compression %q", s)
	}
}

// maxRatio is the compressed/raw size above which the payload is stored raw.
const maxRatio = 0.9

const (
	// MaxPayloadSize bounds the decoded payload of a single snapshot.
	MaxPayloadSize = 1 << 30
	// an LZ4 block expands at most ~255x its stored size
	lz4MaxExpansion = 255
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxPayloadSize))
	return dec
}

// compress returns the compressed payload, or nil when the payload should be
// stored raw (no compression requested, incompressible, or ratio too poor).
func compress(data []byte, c Compression) ([]byte, error) {
	if c == CompressionNone || len(data) == 0 {
		return nil, nil
	}

	var out []byte
	switch c {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		out = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		out = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCompression, c)
	}

	if len(out) == 0 || float64(len(out)) > float64(len(data))*maxRatio {
		return nil, nil
	}
	return out, nil
}

// plausibleSize reports whether a stored body of the given length can decode
// to size bytes with compression c.
func plausibleSize(c Compression, stored, size uint32) bool {
	if size > MaxPayloadSize {
		return false
	}
	switch c {
	case CompressionLZ4:
		return uint64(size) <= uint64(stored)*lz4MaxExpansion+16
	default:
		return true
	}
}

func decompress(data []byte, c Compression, size int) ([]byte, error) {
	switch c {
	case CompressionLZ4:
		result := make([]byte, size)
		n, err := lz4.UncompressBlock(data, result)
		if err != nil {
			return nil, err
		}
		if n != size {
			return nil, errors.New("decompressed size mismatch")
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)

		decoded, err := dec.DecodeAll(data, make([]byte, 0, min(size, 4*len(data))))
		if err != nil {
			return nil, err
		}
		if len(decoded) != size {
			return nil, errors.New("decompressed size mismatch")
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCompression, c)
	}
}
