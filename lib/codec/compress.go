// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how an encoded segment sequence is
// compressed. Compressed output is a standard zstd or LZ4 frame, so
// [Decompress] detects the algorithm from the frame magic and other
// tools can read it.
type Compression uint8

const (
	// CompressionNone is a plain CBOR sequence.
	CompressionNone Compression = iota

	// CompressionLZ4 is an LZ4 frame. Fast, modest ratio.
	CompressionLZ4

	// CompressionZstd is a zstd frame at the default level. Segment
	// text is highly repetitive and compresses well with zstd.
	CompressionZstd
)

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// String returns the name of the compression: none, lz4, or zstd.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCompression parses a compression name.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none", "":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want none, lz4, or zstd)", name)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (c Compression) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Compression) UnmarshalText(data []byte) error {
	parsed, err := ParseCompression(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// zstdEncoder and zstdDecoder are reused across calls. Both are safe
// for concurrent use with EncodeAll/DecodeAll.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("codec: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("codec: zstd decoder initialization failed: " + err.Error())
	}
}

// Compress compresses data with the given algorithm. CompressionNone
// returns data unchanged.
func Compress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		return zstdEncoder.EncodeAll(data, nil), nil

	case CompressionLZ4:
		var buffer bytes.Buffer
		writer := lz4.NewWriter(&buffer)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buffer.Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported compression %s", compression)
	}
}

// DetectCompression reports the compression of data from its frame
// magic. A CBOR segment record begins with a map header, which never
// matches either magic.
func DetectCompression(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Decompress detects the compression of data and returns the
// decompressed bytes along with the detected algorithm.
func Decompress(data []byte) ([]byte, Compression, error) {
	compression := DetectCompression(data)
	switch compression {
	case CompressionZstd:
		result, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, compression, fmt.Errorf("zstd decompress: %w", err)
		}
		return result, compression, nil

	case CompressionLZ4:
		result, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, compression, fmt.Errorf("lz4 decompress: %w", err)
		}
		return result, compression, nil

	default:
		return data, CompressionNone, nil
	}
}
