package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/andybalholm/brotli"

	"github.com/arloliu/serbench/format"
	"github.com/arloliu/serbench/internal/pool"
)

// Brotli parameter limits.
const (
	MinBrotliQuality = 1
	MaxBrotliQuality = 11
	MinBrotliWindow  = 10
	MaxBrotliWindow  = 24
)

// BrotliCompressor compresses data with Brotli (RFC 7932) in generic mode.
//
// Quality trades speed for ratio; the window is the base-2 logarithm of the
// sliding window size. Small repetitive payloads compress best at
// quality 11.
//
// Create it with NewBrotliCompressor; the zero value is not usable.
type BrotliCompressor struct {
	quality    int
	lgwin      int
	bufferSize int
	writers    *sync.Pool
}

var _ Codec = (*BrotliCompressor)(nil)

// NewBrotliCompressor creates a Brotli compressor.
//
// Parameters:
//   - quality: 1 (fastest) to 11 (best compression)
//   - lgwin: window size exponent, 10 to 24
//   - bufferSize: size of the copy buffer used while decompressing, must be positive
//
// Panics if any parameter is out of range.
func NewBrotliCompressor(quality, lgwin, bufferSize int) BrotliCompressor {
	if quality < MinBrotliQuality || quality > MaxBrotliQuality {
		panic(fmt.Sprintf("brotli: quality %d out of range [%d, %d]", quality, MinBrotliQuality, MaxBrotliQuality))
	}
	if lgwin < MinBrotliWindow || lgwin > MaxBrotliWindow {
		panic(fmt.Sprintf("brotli: window %d out of range [%d, %d]", lgwin, MinBrotliWindow, MaxBrotliWindow))
	}
	if bufferSize <= 0 {
		panic(fmt.Sprintf("brotli: buffer size %d must be positive", bufferSize))
	}

	opts := brotli.WriterOptions{Quality: quality, LGWin: lgwin}

	return BrotliCompressor{
		quality:    quality,
		lgwin:      lgwin,
		bufferSize: bufferSize,
		writers: &sync.Pool{
			New: func() any {
				return brotli.NewWriterOptions(io.Discard, opts)
			},
		},
	}
}

// Quality returns the configured quality.
func (c BrotliCompressor) Quality() int {
	return c.quality
}

// Window returns the configured window size exponent.
func (c BrotliCompressor) Window() int {
	return c.lgwin
}

// Type returns format.CompressionBrotli.
func (c BrotliCompressor) Type() format.CompressionType {
	return format.CompressionBrotli
}

// Clone returns a new Brotli compressor with the same parameters and its own writer pool.
func (c BrotliCompressor) Clone() Codec {
	return NewBrotliCompressor(c.quality, c.lgwin, c.bufferSize)
}

// Compress compresses the input data using Brotli.
func (c BrotliCompressor) Compress(data []byte) ([]byte, error) {
	return compressStream("brotli", c.writers, data)
}

// Decompress decompresses a Brotli stream, copying through a bufferSize buffer.
func (c BrotliCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(buf)

	br := brotli.NewReader(bytes.NewReader(data))
	if _, err := io.CopyBuffer(buf, br, make([]byte, c.bufferSize)); err != nil {
		return nil, fmt.Errorf("brotli decompression failed: %w", err)
	}

	return buf.Clone(), nil
}
