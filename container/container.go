// Package container transparently unwraps common compressed containers
// (gzip, Zstandard, LZ4) around a FIT envelope, so callers can feed
// .fit.gz/.fit.zst/.fit.lz4 exports directly to the decoder.
package container

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"

	"github.com/pierrec/lz4/v4"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Open peeks at the first bytes of r and, if they match a recognized
// container magic, wraps r with the matching decompressor. If no magic
// matches (including the common case of a bare FIT stream starting with a
// plausible header length byte), r is returned unwrapped, buffered only
// enough to have performed the peek.
func Open(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	peeked, err := br.Peek(4)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		// A read error (not a short stream, which reports io.EOF and falls
		// through to the switch): return the stream unwrapped and let the
		// header decoder report the real error.
		return br, nil
	}

	switch {
	case bytes.HasPrefix(peeked, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return gz, nil
	case bytes.HasPrefix(peeked, zstdMagic):
		return openZstd(br)
	case bytes.HasPrefix(peeked, lz4Magic):
		return lz4.NewReader(br), nil
	default:
		return br, nil
	}
}
