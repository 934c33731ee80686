package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/arloliu/serbench/internal/pool"
)

// Valid level range shared by the DEFLATE family (gzip, zlib, raw DEFLATE).
const (
	minFlateLevel = 0 // no compression, stored blocks only
	maxFlateLevel = 9 // best compression
)

// resettableWriter is a streaming compressor that can be retargeted and reused.
type resettableWriter interface {
	io.WriteCloser
	Reset(w io.Writer)
}

func checkFlateLevel(name string, level int) {
	if level < minFlateLevel || level > maxFlateLevel {
		panic(fmt.Sprintf("%s: compression level %d out of range [%d, %d]", name, level, minFlateLevel, maxFlateLevel))
	}
}

// compressStream compresses data through a pooled streaming writer into a
// pooled scratch buffer, then copies the result out so the caller owns it.
func compressStream(name string, writers *sync.Pool, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(buf)

	zw, _ := writers.Get().(resettableWriter)
	defer func() {
		zw.Reset(io.Discard)
		writers.Put(zw)
	}()

	zw.Reset(buf)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("%s compression failed: %w", name, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%s compression failed: %w", name, err)
	}

	return buf.Clone(), nil
}

// readStream drains r until the compressed stream signals end-of-data.
func readStream(name string, r io.ReadCloser) ([]byte, error) {
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", name, err)
	}

	return out, nil
}

// newWriterPool returns a pool of writers built by newFn at a fixed level.
// newFn is only called with a level already checked by checkFlateLevel, so
// a construction error means a broken library invariant.
func newWriterPool[W resettableWriter](name string, level int, newFn func(io.Writer, int) (W, error)) *sync.Pool {
	return &sync.Pool{
		New: func() any {
			w, err := newFn(io.Discard, level)
			if err != nil {
				panic(fmt.Sprintf("failed to create %s writer for pool: %v", name, err))
			}

			return w
		},
	}
}
