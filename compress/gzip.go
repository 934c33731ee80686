package compress

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/serbench/format"
)

// GzipCompressor compresses data into a gzip member (RFC 1952).
//
// Create it with NewGzipCompressor; the zero value is not usable.
type GzipCompressor struct {
	level   int
	writers *sync.Pool
}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a gzip compressor with the given level.
//
// Parameters:
//   - level: 0 (no compression) to 9 (best compression)
//
// Panics if level is out of range.
func NewGzipCompressor(level int) GzipCompressor {
	checkFlateLevel("gzip", level)

	return GzipCompressor{
		level:   level,
		writers: newWriterPool("gzip", level, gzip.NewWriterLevel),
	}
}

// Level returns the configured compression level.
func (c GzipCompressor) Level() int {
	return c.level
}

// Type returns format.CompressionGzip.
func (c GzipCompressor) Type() format.CompressionType {
	return format.CompressionGzip
}

// Clone returns a new gzip compressor with the same level and its own writer pool.
func (c GzipCompressor) Clone() Codec {
	return NewGzipCompressor(c.level)
}

// Compress compresses the input data using gzip.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	return compressStream("gzip", c.writers, data)
}

// Decompress decompresses a gzip stream.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return readStream("gzip", zr)
}
