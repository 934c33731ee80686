package compress

import (
	"fmt"

	"github.com/arloliu/serbench/format"
)

// Compressor compresses a serialized payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Example:
//
//	codec := NewGzipCompressor(9)
//	original, err := codec.Decompress(compressedPayload)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must have been produced by the same algorithm. Corrupted or
	// foreign data is reported as an error wrapping the library's error.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
//
// Codecs are immutable once constructed and safe for concurrent use.
// Clone returns an independent codec with identical configuration, so a
// configured codec can be reused across benchmark passes without sharing
// pooled encoder state.
type Codec interface {
	Compressor
	Decompressor

	// Type returns the compression algorithm implemented by the codec.
	Type() format.CompressionType

	// Clone returns a new codec with the same configuration.
	Clone() Codec
}

// CompressionStats provides detailed information about a compression round trip.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
// Values greater than 1.0 indicate compression overhead, which is common
// for the small payloads this tool measures.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
//
// Negative values mean the compressed payload grew.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Default parameters used by CreateCodec and DefaultCodecs.
const (
	DefaultBrotliQuality    = 11
	DefaultBrotliWindow     = 22
	DefaultBrotliBufferSize = 4096
	DefaultFlateLevel       = 9
	DefaultLZ4Level         = 9
	DefaultZstdLevel        = 19
)

// CreateCodec is a factory function that creates a Codec with the benchmark
// default parameters for the specified compression type.
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionBrotli:
		return NewBrotliCompressor(DefaultBrotliQuality, DefaultBrotliWindow, DefaultBrotliBufferSize), nil
	case format.CompressionGzip:
		return NewGzipCompressor(DefaultFlateLevel), nil
	case format.CompressionDeflate:
		return NewDeflateCompressor(DefaultFlateLevel), nil
	case format.CompressionZlib:
		return NewZlibCompressor(DefaultFlateLevel), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(DefaultLZ4Level), nil
	case format.CompressionSnappy:
		return NewSnappyCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(DefaultZstdLevel), nil
	default:
		return nil, fmt.Errorf("invalid compression: %s", compressionType)
	}
}

// defaultCodecOrder lists the compression algorithms measured by default,
// in report insertion order.
var defaultCodecOrder = []format.CompressionType{
	format.CompressionBrotli,
	format.CompressionGzip,
	format.CompressionDeflate,
	format.CompressionZlib,
	format.CompressionLZ4,
	format.CompressionSnappy,
	format.CompressionS2,
	format.CompressionZstd,
}

// DefaultCodecs returns a fresh codec for every measured compression algorithm.
func DefaultCodecs() []Codec {
	codecs := make([]Codec, 0, len(defaultCodecOrder))
	for _, t := range defaultCodecOrder {
		codec, err := CreateCodec(t)
		if err != nil {
			// defaultCodecOrder only holds known types
			panic(err)
		}
		codecs = append(codecs, codec)
	}

	return codecs
}
