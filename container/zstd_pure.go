//go:build !cgo

package container

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// openZstd decompresses a zstd-wrapped stream with the pure-Go klauspost
// decoder, used whenever cgo is unavailable (see zstd_cgo.go).
func openZstd(r io.Reader) (io.Reader, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zr.IOReadCloser(), nil
}
