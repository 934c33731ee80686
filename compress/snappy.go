package compress

import (
	"fmt"

	"github.com/golang/snappy"

	"github.com/arloliu/serbench/format"
)

// SnappyCompressor compresses data with the Snappy block format.
//
// The block format stores the decoded length as a varint prefix; there is no
// framing or checksum.
type SnappyCompressor struct{}

var _ Codec = (*SnappyCompressor)(nil)

// NewSnappyCompressor creates a new Snappy block compressor.
func NewSnappyCompressor() SnappyCompressor {
	return SnappyCompressor{}
}

// Type returns format.CompressionSnappy.
func (c SnappyCompressor) Type() format.CompressionType {
	return format.CompressionSnappy
}

// Clone returns a copy of the codec.
func (c SnappyCompressor) Clone() Codec {
	return c
}

// Compress compresses the input data using Snappy.
func (c SnappyCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return snappy.Encode(nil, data), nil
}

// Decompress decompresses a Snappy block.
func (c SnappyCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("snappy decompression failed: %w", err)
	}

	return out, nil
}
