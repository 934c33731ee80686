package compress

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/serbench/format"
)

// getAllCodecs returns all available codec implementations for testing
func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp":    NewNoOpCompressor(),
		"Brotli":  NewBrotliCompressor(DefaultBrotliQuality, DefaultBrotliWindow, DefaultBrotliBufferSize),
		"Gzip":    NewGzipCompressor(DefaultFlateLevel),
		"Zlib":    NewZlibCompressor(DefaultFlateLevel),
		"Deflate": NewDeflateCompressor(DefaultFlateLevel),
		"LZ4":     NewLZ4Compressor(DefaultLZ4Level),
		"Snappy":  NewSnappyCompressor(),
		"S2":      NewS2Compressor(),
		"Zstd":    NewZstdCompressor(DefaultZstdLevel),
	}
}

// Test CompressionStats calculation methods
func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name            string
		stats           CompressionStats
		expectedRatio   float64
		expectedSavings float64
	}{
		{
			name: "good compression",
			stats: CompressionStats{
				Algorithm:      format.CompressionBrotli,
				OriginalSize:   1000,
				CompressedSize: 300,
			},
			expectedRatio:   0.3,
			expectedSavings: 70.0,
		},
		{
			name: "no compression benefit",
			stats: CompressionStats{
				Algorithm:      format.CompressionNone,
				OriginalSize:   500,
				CompressedSize: 500,
			},
			expectedRatio:   1.0,
			expectedSavings: 0.0,
		},
		{
			name: "compression overhead",
			stats: CompressionStats{
				Algorithm:      format.CompressionGzip,
				OriginalSize:   100,
				CompressedSize: 120,
			},
			expectedRatio:   1.2,
			expectedSavings: -20.0,
		},
		{
			name: "zero original size",
			stats: CompressionStats{
				Algorithm:      format.CompressionLZ4,
				OriginalSize:   0,
				CompressedSize: 100,
			},
			expectedRatio:   0.0,
			expectedSavings: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratio := tt.stats.CompressionRatio()
			require.InDelta(t, tt.expectedRatio, ratio, 0.001)

			savings := tt.stats.SpaceSavings()
			require.InDelta(t, tt.expectedSavings, savings, 0.001)
		})
	}
}

func TestNoOpCompressor_EmptyData(t *testing.T) {
	compressor := NewNoOpCompressor()

	compressed, err := compressor.Compress(nil)
	require.NoError(t, err)
	require.Nil(t, compressed)

	empty := []byte{}
	compressed, err = compressor.Compress(empty)
	require.NoError(t, err)
	require.Equal(t, empty, compressed)

	decompressed, err := compressor.Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, decompressed)
}

func TestNoOpCompressor_NoCopy(t *testing.T) {
	compressor := NewNoOpCompressor()
	data := []byte("hello world")

	compressed, err := compressor.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0]) // same slice, no copy

	decompressed, err := compressor.Decompress(compressed)
	require.NoError(t, err)
	require.Same(t, &compressed[0], &decompressed[0])
}

// TestAllCodecs_EmptyData tests that all codecs handle empty data correctly
func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed, "Compressing nil should return nil")

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed, "Decompressing nil should return nil")

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)

			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed, "Decompressing empty should return empty")
		})
	}
}

// TestAllCodecs_RoundTrip tests compression and decompression round-trip for all codecs
func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{
			name: "small_text",
			data: []byte("Hello, World!"),
		},
		{
			name: "repeated_pattern",
			data: bytes.Repeat([]byte("ABCD"), 100),
		},
		{
			name: "binary_data",
			data: []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC},
		},
		{
			name: "json_record",
			data: []byte(`{"long_field_a":"String A","long_field_b":"String B","long_field_c":"String C","long_field_x":1,"long_field_y":1,"long_field_z":18446744073709551615}`),
		},
		{
			name: "large_zeros",
			data: make([]byte, 64*1024),
		},
		{
			name: "large_pattern",
			data: generateTestData(200 * 1024),
		},
	}

	for name, codec := range getAllCodecs() {
		for _, tc := range testCases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				compressed, err := codec.Compress(tc.data)
				require.NoError(t, err)
				require.NotEmpty(t, compressed)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, tc.data, decompressed)
			})
		}
	}
}

func TestAllCodecs_CompressibleDataShrinks(t *testing.T) {
	data := bytes.Repeat([]byte("long_field_a String A "), 64)

	for name, codec := range getAllCodecs() {
		if codec.Type() == format.CompressionNone {
			continue
		}

		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(data))
		})
	}
}

// TestAllCodecs_TruncatedData checks that a cut-off stream never decodes
// back to the original payload.
func TestAllCodecs_TruncatedData(t *testing.T) {
	data := generateTestData(16 * 1024)

	for name, codec := range getAllCodecs() {
		if codec.Type() == format.CompressionNone {
			continue
		}

		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed[:len(compressed)/2])
			if err != nil {
				require.Contains(t, err.Error(), codec.Type().String())
				return
			}
			require.NotEqual(t, data, decompressed)
		})
	}
}

// TestFramedCodecs_ForeignData checks codecs whose format starts with a magic
// number or checksummed header.
func TestFramedCodecs_ForeignData(t *testing.T) {
	codecs := map[string]Codec{
		"Gzip": NewGzipCompressor(DefaultFlateLevel),
		"Zlib": NewZlibCompressor(DefaultFlateLevel),
		"LZ4":  NewLZ4Compressor(DefaultLZ4Level),
		"Zstd": NewZstdCompressor(DefaultZstdLevel),
	}

	invalid := [][]byte{
		[]byte("this is not compressed data"),
		{0xFF, 0xFF, 0xFF, 0xFF},
	}

	for name, codec := range codecs {
		for i, data := range invalid {
			t.Run(fmt.Sprintf("%s/%d", name, i), func(t *testing.T) {
				_, err := codec.Decompress(data)
				require.Error(t, err)
			})
		}
	}
}

func TestCodecs_Type(t *testing.T) {
	expected := map[string]format.CompressionType{
		"NoOp":    format.CompressionNone,
		"Brotli":  format.CompressionBrotli,
		"Gzip":    format.CompressionGzip,
		"Zlib":    format.CompressionZlib,
		"Deflate": format.CompressionDeflate,
		"LZ4":     format.CompressionLZ4,
		"Snappy":  format.CompressionSnappy,
		"S2":      format.CompressionS2,
		"Zstd":    format.CompressionZstd,
	}

	for name, codec := range getAllCodecs() {
		require.Equal(t, expected[name], codec.Type(), name)
	}
}

func TestCodecs_Clone(t *testing.T) {
	data := bytes.Repeat([]byte("clone me "), 50)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			cloned := codec.Clone()
			require.Equal(t, codec.Type(), cloned.Type())

			a, err := codec.Compress(data)
			require.NoError(t, err)
			b, err := cloned.Compress(data)
			require.NoError(t, err)
			require.Equal(t, a, b, "clone must produce identical output")

			// Cross decode: the clone reads what the original wrote
			decompressed, err := cloned.Decompress(a)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestCodecs_ClonePreservesParameters(t *testing.T) {
	brotli, ok := NewBrotliCompressor(5, 16, 1024).Clone().(BrotliCompressor)
	require.True(t, ok)
	require.Equal(t, 5, brotli.Quality())
	require.Equal(t, 16, brotli.Window())

	gz, ok := NewGzipCompressor(3).Clone().(GzipCompressor)
	require.True(t, ok)
	require.Equal(t, 3, gz.Level())

	zl, ok := NewZlibCompressor(4).Clone().(ZlibCompressor)
	require.True(t, ok)
	require.Equal(t, 4, zl.Level())

	fl, ok := NewDeflateCompressor(0).Clone().(DeflateCompressor)
	require.True(t, ok)
	require.Equal(t, 0, fl.Level())

	lz, ok := NewLZ4Compressor(0).Clone().(LZ4Compressor)
	require.True(t, ok)
	require.Equal(t, 0, lz.Level())

	zs, ok := NewZstdCompressor(3).Clone().(ZstdCompressor)
	require.True(t, ok)
	require.Equal(t, 3, zs.Level())
}

func TestConstructors_PanicOnInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"brotli quality low", func() { NewBrotliCompressor(0, 22, 4096) }},
		{"brotli quality high", func() { NewBrotliCompressor(12, 22, 4096) }},
		{"brotli window low", func() { NewBrotliCompressor(11, 9, 4096) }},
		{"brotli window high", func() { NewBrotliCompressor(11, 25, 4096) }},
		{"brotli buffer zero", func() { NewBrotliCompressor(11, 22, 0) }},
		{"gzip level negative", func() { NewGzipCompressor(-1) }},
		{"gzip level high", func() { NewGzipCompressor(10) }},
		{"zlib level high", func() { NewZlibCompressor(10) }},
		{"deflate level negative", func() { NewDeflateCompressor(-1) }},
		{"lz4 level negative", func() { NewLZ4Compressor(-1) }},
		{"lz4 level high", func() { NewLZ4Compressor(10) }},
		{"zstd level zero", func() { NewZstdCompressor(0) }},
		{"zstd level high", func() { NewZstdCompressor(23) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, tt.fn)
		})
	}
}

func TestConstructors_AcceptBoundaryParameters(t *testing.T) {
	require.NotPanics(t, func() { NewBrotliCompressor(MinBrotliQuality, MinBrotliWindow, 1) })
	require.NotPanics(t, func() { NewBrotliCompressor(MaxBrotliQuality, MaxBrotliWindow, 1) })
	require.NotPanics(t, func() { NewGzipCompressor(0) })
	require.NotPanics(t, func() { NewZlibCompressor(9) })
	require.NotPanics(t, func() { NewDeflateCompressor(9) })
	require.NotPanics(t, func() { NewLZ4Compressor(0) })
	require.NotPanics(t, func() { NewLZ4Compressor(9) })
	require.NotPanics(t, func() { NewZstdCompressor(MinZstdLevel) })
	require.NotPanics(t, func() { NewZstdCompressor(MaxZstdLevel) })
}

func TestFlateLevels_RoundTrip(t *testing.T) {
	data := generateTestData(8 * 1024)

	for level := minFlateLevel; level <= maxFlateLevel; level++ {
		for _, codec := range []Codec{NewGzipCompressor(level), NewZlibCompressor(level), NewDeflateCompressor(level)} {
			t.Run(fmt.Sprintf("%s/level_%d", codec.Type(), level), func(t *testing.T) {
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, data, decompressed)
			})
		}
	}
}

func TestLZ4Levels_RoundTrip(t *testing.T) {
	data := generateTestData(8 * 1024)

	for level := range len(lz4Levels) {
		t.Run(fmt.Sprintf("level_%d", level), func(t *testing.T) {
			codec := NewLZ4Compressor(level)
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestDeflateFraming(t *testing.T) {
	data := bytes.Repeat([]byte("framing "), 32)

	raw, err := NewDeflateCompressor(9).Compress(data)
	require.NoError(t, err)
	zl, err := NewZlibCompressor(9).Compress(data)
	require.NoError(t, err)
	gz, err := NewGzipCompressor(9).Compress(data)
	require.NoError(t, err)

	// zlib: 2 byte header + 4 byte Adler-32; gzip: 10 byte header + 8 byte trailer
	require.Equal(t, len(raw)+6, len(zl))
	require.Equal(t, len(raw)+18, len(gz))
	require.Equal(t, []byte{0x1f, 0x8b}, gz[:2])
}

func TestCreateCodec(t *testing.T) {
	for _, cType := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionBrotli,
		format.CompressionGzip,
		format.CompressionZlib,
		format.CompressionDeflate,
		format.CompressionLZ4,
		format.CompressionSnappy,
		format.CompressionS2,
		format.CompressionZstd,
	} {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := CreateCodec(cType)
			require.NoError(t, err)
			require.Equal(t, cType, codec.Type())
		})
	}

	_, err := CreateCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestDefaultCodecs(t *testing.T) {
	codecs := DefaultCodecs()
	require.Len(t, codecs, len(defaultCodecOrder))

	for i, codec := range codecs {
		require.Equal(t, defaultCodecOrder[i], codec.Type())
		require.NotEqual(t, format.CompressionNone, codec.Type())
	}

	brotli, ok := codecs[0].(BrotliCompressor)
	require.True(t, ok)
	require.Equal(t, DefaultBrotliQuality, brotli.Quality())
	require.Equal(t, DefaultBrotliWindow, brotli.Window())
}

func TestAllCodecs_ConcurrentUse(t *testing.T) {
	data := generateTestData(4 * 1024)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			errs := make(chan error, 16)

			for range 16 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range 20 {
						compressed, err := codec.Compress(data)
						if err != nil {
							errs <- err
							return
						}
						decompressed, err := codec.Decompress(compressed)
						if err != nil {
							errs <- err
							return
						}
						if !bytes.Equal(data, decompressed) {
							errs <- fmt.Errorf("round trip mismatch")
							return
						}
					}
				}()
			}

			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}
		})
	}
}

// generateTestData creates mildly compressible data of the given size.
func generateTestData(size int) []byte {
	data := make([]byte, size)
	pattern := []byte("serbench payload with field String A and value 18446744073709551615 ")
	for i := range data {
		data[i] = pattern[i%len(pattern)] ^ byte(i/len(pattern)%7)
	}

	return data
}
