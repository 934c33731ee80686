package bench

import (
	"cmp"
	"slices"

	"github.com/arloliu/serbench/compress"
	"github.com/arloliu/serbench/format"
)

// Result is one measured (format, compression) combination.
type Result struct {
	// Method is the row label: "<format>" or "<format>(<algorithm>)".
	Method string
	// Format is the serialization format.
	Format format.SerializationType
	// Compression is the compression algorithm, format.CompressionNone when uncompressed.
	Compression format.CompressionType
	// Bytes is the size of the measured payload.
	Bytes int
	// Reduction is the size reduction against the JSON baseline, in whole percent.
	Reduction int
	// Stats holds sizes and timings of the round trip.
	Stats compress.CompressionStats
	// Digest is the xxHash64 of the measured payload.
	Digest uint64
}

// Report is the outcome of a benchmark run.
type Report struct {
	// Baseline is the JSON encoded size of the record.
	Baseline int
	// Results are sorted by reduction, largest first.
	Results []Result
}

// Reduction returns the size reduction of size against baseline as a whole
// percentage, truncated toward zero. Sizes larger than the baseline give a
// negative reduction. A zero baseline gives 0.
func Reduction(baseline, size int) int {
	if baseline == 0 {
		return 0
	}

	// Go integer division truncates toward zero
	return (baseline - size) * 100 / baseline
}

// SortResults orders results by reduction, largest first. Rows with equal
// reduction keep their relative order.
func SortResults(results []Result) {
	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(b.Reduction, a.Reduction)
	})
}

// Label builds the row label for a format and compression.
func Label(f format.SerializationType, c format.CompressionType) string {
	if c == format.CompressionNone {
		return f.String()
	}

	return f.String() + "(" + c.String() + ")"
}
