package format

import (
	"fmt"
	"strings"
)

type (
	CompressionType   uint8
	SerializationType uint8
)

const (
	CompressionNone    CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd    CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2      CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4     CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
	CompressionBrotli  CompressionType = 0x5 // CompressionBrotli represents Brotli compression.
	CompressionGzip    CompressionType = 0x6 // CompressionGzip represents gzip compression.
	CompressionZlib    CompressionType = 0x7 // CompressionZlib represents zlib compression.
	CompressionDeflate CompressionType = 0x8 // CompressionDeflate represents raw DEFLATE compression.
	CompressionSnappy  CompressionType = 0x9 // CompressionSnappy represents Snappy block compression.

	SerializationJSON     SerializationType = 0x1 // SerializationJSON represents JSON text encoding.
	SerializationBorsh    SerializationType = 0x2 // SerializationBorsh represents the Borsh binary schema encoding.
	SerializationCBOR     SerializationType = 0x3 // SerializationCBOR represents CBOR encoding.
	SerializationMsgPack  SerializationType = 0x4 // SerializationMsgPack represents MessagePack encoding.
	SerializationProtobuf SerializationType = 0x5 // SerializationProtobuf represents protobuf wire encoding.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	case CompressionBrotli:
		return "brotli"
	case CompressionGzip:
		return "gzip"
	case CompressionZlib:
		return "zlib"
	case CompressionDeflate:
		return "deflate"
	case CompressionSnappy:
		return "snappy"
	default:
		return "unknown"
	}
}

func (s SerializationType) String() string {
	switch s {
	case SerializationJSON:
		return "json"
	case SerializationBorsh:
		return "borsh"
	case SerializationCBOR:
		return "cbor"
	case SerializationMsgPack:
		return "msgpack"
	case SerializationProtobuf:
		return "protobuf"
	default:
		return "unknown"
	}
}

// ParseCompressionType parses a compression name as printed by CompressionType.String.
// Matching is case-insensitive; "snap" is accepted as an alias of "snappy".
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	case "brotli":
		return CompressionBrotli, nil
	case "gzip":
		return CompressionGzip, nil
	case "zlib":
		return CompressionZlib, nil
	case "deflate":
		return CompressionDeflate, nil
	case "snappy", "snap":
		return CompressionSnappy, nil
	default:
		return 0, fmt.Errorf("unknown compression type: %q", s)
	}
}

// ParseSerializationType parses a serialization name as printed by SerializationType.String.
func ParseSerializationType(s string) (SerializationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return SerializationJSON, nil
	case "borsh":
		return SerializationBorsh, nil
	case "cbor":
		return SerializationCBOR, nil
	case "msgpack":
		return SerializationMsgPack, nil
	case "protobuf", "proto":
		return SerializationProtobuf, nil
	default:
		return 0, fmt.Errorf("unknown serialization type: %q", s)
	}
}
