// Package reader implements the streaming byte reader the decoder reads
// the FIT envelope through: exact-N-byte reads, endian-aware scalar decodes,
// a running byte count, and a CRC-16 tap fed every byte consumed.
package reader

import (
	"bufio"
	"io"
	"math"

	"github.com/fitkit/fit/crc"
	"github.com/fitkit/fit/endian"
	"github.com/fitkit/fit/errs"
)

// Reader wraps an io.Reader, tracking the total bytes consumed and folding
// every consumed byte into a running CRC-16 accumulator (§4.5). Scalar
// reads take an explicit endian.EndianEngine since a FIT stream's
// multi-byte record fields use the endianness declared by the governing
// definition, which can change mid-stream.
type Reader struct {
	r        *bufio.Reader
	crc      *crc.CRC16
	consumed int64
	scratch  [8]byte
}

// New wraps r for FIT envelope reading.
func New(r io.Reader) *Reader {
	return &Reader{
		r:   bufio.NewReader(r),
		crc: crc.New(),
	}
}

// Consumed returns the total number of bytes read so far.
func (rd *Reader) Consumed() int64 {
	return rd.consumed
}

// CRC returns the running CRC-16 accumulated over all bytes read so far via
// ReadExact (and the scalar helpers, which are built on it). Callers that
// need to exclude specific bytes (header CRC, trailer CRC) must read those
// bytes with ReadExactNoCRC instead.
func (rd *Reader) CRC() uint16 {
	return rd.crc.Value()
}

// ReadExact reads exactly len(buf) bytes into buf, folding them into the
// running CRC, and returns errs.ErrUnexpectedEOF (via io.ReadFull's
// io.ErrUnexpectedEOF/io.EOF) wrapped as a sentinel on a short read.
func (rd *Reader) ReadExact(buf []byte) error {
	n, err := io.ReadFull(rd.r, buf)
	rd.consumed += int64(n)
	if err != nil {
		return errs.ErrUnexpectedEOF
	}
	rd.crc.Write(buf)
	return nil
}

// ReadExactNoCRC reads exactly len(buf) bytes without folding them into the
// running CRC. Used for the header CRC and trailer CRC fields themselves,
// which the CRC computation excludes (§4.5).
func (rd *Reader) ReadExactNoCRC(buf []byte) error {
	n, err := io.ReadFull(rd.r, buf)
	rd.consumed += int64(n)
	if err != nil {
		return errs.ErrUnexpectedEOF
	}
	return nil
}

// Peek returns the next n bytes without advancing the reader or affecting
// the running CRC or byte count.
func (rd *Reader) Peek(n int) ([]byte, error) {
	b, err := rd.r.Peek(n)
	if err != nil {
		return nil, errs.ErrUnexpectedEOF
	}
	return b, nil
}

// ReadUint8 reads one byte as an unsigned 8-bit integer.
func (rd *Reader) ReadUint8() (uint8, error) {
	buf := rd.scratch[:1]
	if err := rd.ReadExact(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadInt8 reads one byte as a signed 8-bit integer.
func (rd *Reader) ReadInt8() (int8, error) {
	v, err := rd.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a 2-byte unsigned integer using the given engine.
func (rd *Reader) ReadUint16(engine endian.EndianEngine) (uint16, error) {
	buf := rd.scratch[:2]
	if err := rd.ReadExact(buf); err != nil {
		return 0, err
	}
	return engine.Uint16(buf), nil
}

// ReadInt16 reads a 2-byte signed integer using the given engine.
func (rd *Reader) ReadInt16(engine endian.EndianEngine) (int16, error) {
	v, err := rd.ReadUint16(engine)
	return int16(v), err
}

// ReadUint32 reads a 4-byte unsigned integer using the given engine.
func (rd *Reader) ReadUint32(engine endian.EndianEngine) (uint32, error) {
	buf := rd.scratch[:4]
	if err := rd.ReadExact(buf); err != nil {
		return 0, err
	}
	return engine.Uint32(buf), nil
}

// ReadInt32 reads a 4-byte signed integer using the given engine.
func (rd *Reader) ReadInt32(engine endian.EndianEngine) (int32, error) {
	v, err := rd.ReadUint32(engine)
	return int32(v), err
}

// ReadUint64 reads an 8-byte unsigned integer using the given engine.
func (rd *Reader) ReadUint64(engine endian.EndianEngine) (uint64, error) {
	buf := rd.scratch[:8]
	if err := rd.ReadExact(buf); err != nil {
		return 0, err
	}
	return engine.Uint64(buf), nil
}

// ReadInt64 reads an 8-byte signed integer using the given engine.
func (rd *Reader) ReadInt64(engine endian.EndianEngine) (int64, error) {
	v, err := rd.ReadUint64(engine)
	return int64(v), err
}

// ReadFloat32 reads a 4-byte IEEE-754 float using the given engine.
func (rd *Reader) ReadFloat32(engine endian.EndianEngine) (float32, error) {
	v, err := rd.ReadUint32(engine)
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an 8-byte IEEE-754 float using the given engine.
func (rd *Reader) ReadFloat64(engine endian.EndianEngine) (float64, error) {
	v, err := rd.ReadUint64(engine)
	return math.Float64frombits(v), err
}

// ReadString reads exactly n bytes and returns the text truncated at the
// first NUL byte, per §4.1's "read null-terminated string of declared max
// length" contract.
func (rd *Reader) ReadString(n int) (string, error) {
	buf := make([]byte, n)
	if err := rd.ReadExact(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i]), nil
		}
	}
	return string(buf), nil
}

// ReadBytes reads exactly n raw bytes, returning a copy independent of any
// internal scratch buffer.
func (rd *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := rd.ReadExact(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadBytesNoCRC reads exactly n raw bytes without folding them into the
// running CRC (see ReadExactNoCRC).
func (rd *Reader) ReadBytesNoCRC(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := rd.ReadExactNoCRC(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
