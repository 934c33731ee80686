//go:build gozstd && cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// zstdBackend calls the reference C library through gozstd.
type zstdBackend struct {
	level int
}

func newZstdBackend(level int) *zstdBackend {
	return &zstdBackend{level: level}
}

func (b *zstdBackend) compress(data []byte) []byte {
	return gozstd.CompressLevel(nil, data, b.level)
}

func (b *zstdBackend) decompress(data []byte) ([]byte, error) {
	return gozstd.Decompress(nil, data)
}
