// Package compress provides the compression codecs measured by the benchmark.
//
// Every codec compresses a complete serialized payload in memory and is
// reversible: Decompress(Compress(p)) == p for any payload p.
//
// # Architecture
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	    Type() format.CompressionType
//	    Clone() Codec
//	}
//
// # Supported Algorithms
//
// **Brotli** (format.CompressionBrotli)
//
//	codec := compress.NewBrotliCompressor(11, 22, 4096)
//
// Quality 1-11, window exponent 10-24. Best ratio on short, repetitive
// payloads; the slowest encoder of the set.
//
// **DEFLATE family** (format.CompressionGzip, CompressionZlib, CompressionDeflate)
//
//	gz := compress.NewGzipCompressor(9)
//	zl := compress.NewZlibCompressor(9)
//	fl := compress.NewDeflateCompressor(9)
//
// The three share the same compressed representation and differ only in
// framing: raw DEFLATE has none, zlib adds a 2 byte header and an Adler-32
// trailer, gzip adds a 10 byte header and a CRC-32 plus size trailer. Levels
// are 0 (stored) to 9 (best).
//
// **LZ4** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor(9)
//
// Frame format. Level 0 selects the fast compressor; 1-9 select the high
// compression variants.
//
// **Snappy** (format.CompressionSnappy) and **S2** (format.CompressionS2)
//
//	sn := compress.NewSnappyCompressor()
//	s2 := compress.NewS2Compressor()
//
// Block formats without parameters. S2 is a Snappy extension with better
// ratios; its decoder also reads Snappy blocks.
//
// **Zstandard** (format.CompressionZstd)
//
//	codec := compress.NewZstdCompressor(19)
//
// Levels 1-22. The default build uses the pure Go encoder; build with
// -tags gozstd (cgo required) to use the reference C library.
//
// **NoOp** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//
// Returns its input unchanged. It produces the uncompressed rows of a report.
//
// # Parameter Validation
//
// Constructors validate their parameters and panic when a value is out of
// range. Parameters are fixed in code by the benchmark, so an invalid value
// is a programming error rather than a runtime condition:
//
//	compress.NewGzipCompressor(10) // panics: gzip: compression level 10 out of range [0, 9]
//
// # Factory
//
// CreateCodec builds a codec with the benchmark defaults for a compression
// type, and DefaultCodecs returns one codec per measured algorithm:
//
//	for _, codec := range compress.DefaultCodecs() {
//	    compressed, err := codec.Compress(payload)
//	    ...
//	}
//
// # Empty Data
//
// All codecs except NoOp return (nil, nil) for empty input on both
// Compress and Decompress. NoOp returns the input slice as-is.
//
// # Thread Safety
//
// Codecs are immutable after construction. Streaming encoders are kept in a
// per-codec sync.Pool, so a codec can be used from multiple goroutines.
// Clone gives a codec with the same parameters and its own pools.
package compress
