package compress

import (
	"bytes"
	"sync"

	"github.com/klauspost/compress/flate"

	"github.com/arloliu/serbench/format"
)

// DeflateCompressor produces a raw DEFLATE stream (RFC 1951) with no
// container header or checksum.
//
// Create it with NewDeflateCompressor; the zero value is not usable.
type DeflateCompressor struct {
	level   int
	writers *sync.Pool
}

var _ Codec = (*DeflateCompressor)(nil)

// NewDeflateCompressor creates a raw DEFLATE compressor with the given level (0-9).
//
// Panics if level is out of range.
func NewDeflateCompressor(level int) DeflateCompressor {
	checkFlateLevel("deflate", level)

	return DeflateCompressor{
		level:   level,
		writers: newWriterPool("deflate", level, flate.NewWriter),
	}
}

// Level returns the configured compression level.
func (c DeflateCompressor) Level() int {
	return c.level
}

// Type returns format.CompressionDeflate.
func (c DeflateCompressor) Type() format.CompressionType {
	return format.CompressionDeflate
}

// Clone returns a new DEFLATE compressor with the same level and its own writer pool.
func (c DeflateCompressor) Clone() Codec {
	return NewDeflateCompressor(c.level)
}

// Compress compresses the input data using raw DEFLATE.
func (c DeflateCompressor) Compress(data []byte) ([]byte, error) {
	return compressStream("deflate", c.writers, data)
}

// Decompress decompresses a raw DEFLATE stream.
//
// A stream without a final block is reported as io.ErrUnexpectedEOF.
func (c DeflateCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return readStream("deflate", flate.NewReader(bytes.NewReader(data)))
}
