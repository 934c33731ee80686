package bench

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/arloliu/serbench/compress"
	"github.com/arloliu/serbench/encoding"
	"github.com/arloliu/serbench/format"
	"github.com/arloliu/serbench/internal/options"
	"github.com/arloliu/serbench/sample"
)

// Config holds the benchmark configuration assembled from options.
type Config struct {
	record      any
	serializers []encoding.Serializer
	codecs      []compress.Codec
}

// Option configures a Runner.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		record:      sample.New(),
		serializers: encoding.DefaultSerializers(),
		codecs:      compress.DefaultCodecs(),
	}
}

// WithRecord sets the record to encode.
//
// The record must be a comparable non-pointer value, so that the decoded
// copy can be checked with ==. Interface-typed fields are rejected because
// their dynamic values may not be comparable. It must be encodable by JSON
// and by every configured format.
func WithRecord(record any) Option {
	return options.New(func(c *Config) error {
		if record == nil {
			return errors.New("record must not be nil")
		}

		t := reflect.TypeOf(record)
		if t.Kind() == reflect.Pointer {
			return fmt.Errorf("record must be a value, got pointer type %s", t)
		}
		if !t.Comparable() {
			return fmt.Errorf("record type %s is not comparable", t)
		}
		if hasInterfaceField(t) {
			return fmt.Errorf("record type %s has interface-typed fields", t)
		}

		c.record = record

		return nil
	})
}

// hasInterfaceField reports whether t holds an interface value anywhere in
// its struct fields or array elements.
func hasInterfaceField(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return hasInterfaceField(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasInterfaceField(t.Field(i).Type) {
				return true
			}
		}
	}

	return false
}

// WithFormats selects the measured serialization formats, in report order.
// JSON is always measured as the baseline and may not be listed.
func WithFormats(formats ...format.SerializationType) Option {
	return options.New(func(c *Config) error {
		serializers := make([]encoding.Serializer, 0, len(formats))
		for _, f := range formats {
			if f == format.SerializationJSON {
				return errors.New("json is the baseline format and is always measured")
			}

			s, err := encoding.CreateSerializer(f)
			if err != nil {
				return err
			}
			serializers = append(serializers, s)
		}

		return c.setSerializers(serializers)
	})
}

// WithSerializers sets the measured serializers directly.
func WithSerializers(serializers ...encoding.Serializer) Option {
	return options.New(func(c *Config) error {
		return c.setSerializers(serializers)
	})
}

// WithCompressions selects the codecs by compression type, each built
// with the benchmark default parameters. The uncompressed row is always
// measured, so format.CompressionNone may not be listed.
func WithCompressions(compressions ...format.CompressionType) Option {
	return options.New(func(c *Config) error {
		codecs := make([]compress.Codec, 0, len(compressions))
		for _, ct := range compressions {
			if ct == format.CompressionNone {
				return errors.New("the uncompressed row is always measured")
			}

			codec, err := compress.CreateCodec(ct)
			if err != nil {
				return err
			}
			codecs = append(codecs, codec)
		}

		c.codecs = codecs

		return nil
	})
}

// WithCodecs sets the codecs directly, for non-default parameters.
// An empty list measures uncompressed rows only.
func WithCodecs(codecs ...compress.Codec) Option {
	return options.New(func(c *Config) error {
		for i, codec := range codecs {
			if codec == nil {
				return fmt.Errorf("codec %d is nil", i)
			}
		}

		c.codecs = codecs

		return nil
	})
}

func (c *Config) setSerializers(serializers []encoding.Serializer) error {
	if len(serializers) == 0 {
		return errors.New("at least one format is required")
	}

	for i, s := range serializers {
		if s == nil {
			return fmt.Errorf("serializer %d is nil", i)
		}
	}

	c.serializers = serializers

	return nil
}
