//go:build !gozstd || !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse.
// Decoders are level independent, so a single pool is shared by all codecs.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// zstdBackend holds the encoders for one compression level.
type zstdBackend struct {
	encoders sync.Pool
}

func newZstdBackend(level int) *zstdBackend {
	encLevel := zstd.EncoderLevelFromZstd(level)

	return &zstdBackend{
		encoders: sync.Pool{
			New: func() any {
				encoder, err := zstd.NewWriter(nil,
					zstd.WithEncoderLevel(encLevel),
					zstd.WithEncoderCRC(false),
				)
				if err != nil {
					panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
				}

				return encoder
			},
		},
	}
}

func (b *zstdBackend) compress(data []byte) []byte {
	encoder, _ := b.encoders.Get().(*zstd.Encoder)
	defer b.encoders.Put(encoder)

	// EncodeAll is stateless, so pooled encoders can be shared safely
	return encoder.EncodeAll(data, nil)
}

func (b *zstdBackend) decompress(data []byte) ([]byte, error) {
	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	return decoder.DecodeAll(data, nil)
}
