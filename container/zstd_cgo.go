//go:build cgo

package container

import (
	"io"

	"github.com/valyala/gozstd"
)

// openZstd decompresses a zstd-wrapped stream via gozstd's cgo binding to
// the reference libzstd. Mirrors the cgo/pure split the rest of this
// module's dependency stack inherited from its teacher's compress package:
// prefer the cgo-accelerated backend when cgo is available, fall back to
// the pure-Go klauspost decoder otherwise (zstd_pure.go).
func openZstd(r io.Reader) (io.Reader, error) {
	return gozstd.NewReader(r), nil
}
