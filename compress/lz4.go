package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/serbench/format"
	"github.com/arloliu/serbench/internal/pool"
)

// lz4Levels maps the public 0-9 level to the library's compression levels.
// Level 0 is the fast (non-HC) compressor.
var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Fast,
	lz4.Level1,
	lz4.Level2,
	lz4.Level3,
	lz4.Level4,
	lz4.Level5,
	lz4.Level6,
	lz4.Level7,
	lz4.Level8,
	lz4.Level9,
}

// LZ4Compressor compresses data into an LZ4 frame.
//
// The frame format carries its own magic number, block sizes and content
// checksum, so decompression needs no out-of-band length.
type LZ4Compressor struct {
	level int
}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 frame compressor.
//
// Parameters:
//   - level: 0 (fast) to 9 (highest HC level)
//
// Panics if level is out of range.
func NewLZ4Compressor(level int) LZ4Compressor {
	if level < 0 || level >= len(lz4Levels) {
		panic(fmt.Sprintf("lz4: compression level %d out of range [0, %d]", level, len(lz4Levels)-1))
	}

	return LZ4Compressor{level: level}
}

// Level returns the configured compression level.
func (c LZ4Compressor) Level() int {
	return c.level
}

// Type returns format.CompressionLZ4.
func (c LZ4Compressor) Type() format.CompressionType {
	return format.CompressionLZ4
}

// Clone returns a copy of the codec.
func (c LZ4Compressor) Clone() Codec {
	return c
}

// Compress compresses the input data into a single LZ4 frame.
//
// Returns:
//   - []byte: Compressed frame (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(buf)

	zw := lz4.NewWriter(buf)
	err := zw.Apply(
		lz4.CompressionLevelOption(lz4Levels[c.level]),
		lz4.BlockSizeOption(lz4.Block64Kb),
	)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return buf.Clone(), nil
}

// Decompress reads an LZ4 frame until its end mark.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return out, nil
}
