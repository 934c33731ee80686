package bench

import (
	"fmt"
	"reflect"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/serbench/compress"
	"github.com/arloliu/serbench/encoding"
	"github.com/arloliu/serbench/internal/hash"
	"github.com/arloliu/serbench/internal/options"
)

// Runner measures a record across serialization formats and codecs.
//
// A Runner is not safe for concurrent use.
type Runner struct {
	log      logrus.FieldLogger
	config   *Config
	baseline encoding.Serializer
}

// NewRunner creates a Runner. Without options it measures sample.New()
// with every default format and codec.
func NewRunner(log logrus.FieldLogger, opts ...Option) (*Runner, error) {
	config := defaultConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, fmt.Errorf("invalid benchmark option: %w", err)
	}

	return &Runner{
		log:      log.WithField("component", "bench"),
		config:   config,
		baseline: encoding.NewJSONSerializer(),
	}, nil
}

// Run measures the JSON baseline and every (format, compression) pair and
// returns the sorted report.
//
// Any codec or serializer error aborts the run. A decoded record that
// differs from the original panics.
func (r *Runner) Run() (*Report, error) {
	noop := compress.NewNoOpCompressor()

	base, err := r.measure(r.baseline, noop, 0)
	if err != nil {
		return nil, err
	}

	baseline := base.Bytes

	codecs := make([]compress.Codec, 0, len(r.config.codecs)+1)
	codecs = append(codecs, noop)
	codecs = append(codecs, r.config.codecs...)

	results := make([]Result, 0, 1+len(r.config.serializers)*len(codecs))
	results = append(results, base)

	r.log.WithFields(logrus.Fields{
		"baseline": baseline,
		"formats":  len(r.config.serializers),
		"codecs":   len(r.config.codecs),
	}).Info("Starting benchmark")

	for _, s := range r.config.serializers {
		for _, codec := range codecs {
			res, err := r.measure(s, codec.Clone(), baseline)
			if err != nil {
				return nil, err
			}
			results = append(results, res)
		}
	}

	SortResults(results)

	return &Report{Baseline: baseline, Results: results}, nil
}

// measure runs one encode, compress, decompress, decode cycle.
func (r *Runner) measure(s encoding.Serializer, codec compress.Codec, baseline int) (Result, error) {
	label := Label(s.Type(), codec.Type())

	encoded, err := s.Marshal(r.config.record)
	if err != nil {
		return Result{}, fmt.Errorf("%s: encode: %w", label, err)
	}

	stats := compress.CompressionStats{
		Algorithm:    codec.Type(),
		OriginalSize: int64(len(encoded)),
	}

	start := time.Now()
	payload, err := codec.Compress(encoded)
	if err != nil {
		return Result{}, fmt.Errorf("%s: compress: %w", label, err)
	}
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	stats.CompressedSize = int64(len(payload))

	start = time.Now()
	decompressed, err := codec.Decompress(payload)
	if err != nil {
		return Result{}, fmt.Errorf("%s: decompress: %w", label, err)
	}
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()

	decoded := reflect.New(reflect.TypeOf(r.config.record))
	if err := s.Unmarshal(decompressed, decoded.Interface()); err != nil {
		return Result{}, fmt.Errorf("%s: decode: %w", label, err)
	}

	if got := decoded.Elem().Interface(); got != r.config.record {
		panic(fmt.Sprintf("%s: round trip mismatch: got %+v, want %+v", label, got, r.config.record))
	}

	res := Result{
		Method:      label,
		Format:      s.Type(),
		Compression: codec.Type(),
		Bytes:       len(payload),
		Reduction:   Reduction(baseline, len(payload)),
		Stats:       stats,
		Digest:      hash.Digest(payload),
	}

	r.log.WithFields(logrus.Fields{
		"method":    res.Method,
		"bytes":     res.Bytes,
		"reduction": res.Reduction,
	}).Debug("Measured")

	return res, nil
}
