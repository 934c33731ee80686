package compress

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zlib"

	"github.com/arloliu/serbench/format"
)

// ZlibCompressor compresses data into a zlib stream (RFC 1950).
//
// Create it with NewZlibCompressor; the zero value is not usable.
type ZlibCompressor struct {
	level   int
	writers *sync.Pool
}

var _ Codec = (*ZlibCompressor)(nil)

// NewZlibCompressor creates a zlib compressor with the given level (0-9).
//
// Panics if level is out of range.
func NewZlibCompressor(level int) ZlibCompressor {
	checkFlateLevel("zlib", level)

	return ZlibCompressor{
		level:   level,
		writers: newWriterPool("zlib", level, zlib.NewWriterLevel),
	}
}

// Level returns the configured compression level.
func (c ZlibCompressor) Level() int {
	return c.level
}

// Type returns format.CompressionZlib.
func (c ZlibCompressor) Type() format.CompressionType {
	return format.CompressionZlib
}

// Clone returns a new zlib compressor with the same level and its own writer pool.
func (c ZlibCompressor) Clone() Codec {
	return NewZlibCompressor(c.level)
}

// Compress compresses the input data using zlib.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	return compressStream("zlib", c.writers, data)
}

// Decompress decompresses a zlib stream and verifies its Adler-32 checksum.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}

	return readStream("zlib", zr)
}
