package compress

import (
	"fmt"

	"github.com/arloliu/serbench/format"
)

// Zstandard level limits, matching the reference zstd command line levels.
const (
	MinZstdLevel = 1
	MaxZstdLevel = 22
)

// ZstdCompressor compresses data with Zstandard.
//
// The pure Go backend maps the numeric level onto the nearest
// klauspost/compress encoder level; building with the gozstd tag (and cgo)
// switches to the reference C implementation, which honors every level.
type ZstdCompressor struct {
	level   int
	backend *zstdBackend
}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor.
//
// Parameters:
//   - level: 1 (fastest) to 22 (best compression)
//
// Panics if level is out of range.
//
// Example:
//
//	compressor := NewZstdCompressor(19)
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor(level int) ZstdCompressor {
	if level < MinZstdLevel || level > MaxZstdLevel {
		panic(fmt.Sprintf("zstd: compression level %d out of range [%d, %d]", level, MinZstdLevel, MaxZstdLevel))
	}

	return ZstdCompressor{
		level:   level,
		backend: newZstdBackend(level),
	}
}

// Level returns the configured compression level.
func (c ZstdCompressor) Level() int {
	return c.level
}

// Type returns format.CompressionZstd.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}

// Clone returns a new Zstd compressor with the same level and its own encoder state.
func (c ZstdCompressor) Clone() Codec {
	return NewZstdCompressor(c.level)
}

// Compress compresses the input data using Zstandard.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return c.backend.compress(data), nil
}

// Decompress decompresses Zstd-compressed data.
//
// Corrupted data or data not produced by Zstd is reported as an error.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := c.backend.decompress(data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
