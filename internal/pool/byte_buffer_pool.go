package pool

import (
	"io"
	"sync"
)

// Default sizes for the two scratch-buffer pools the record decoder uses:
// one per in-flight record payload, one per individual variable-length field
// (string or array) within that record.
const (
	RecordBufferDefaultSize  = 1024      // 1KiB, larger than almost any single record payload
	RecordBufferMaxThreshold = 1024 * 64 // 64KiB
	FieldBufferDefaultSize   = 256
	FieldBufferMaxThreshold  = 1024 * 16 // 16KiB
)

// ByteBuffer is a growable byte slice wrapper designed for pooling: Reset
// keeps the underlying array so repeated decode calls don't reallocate.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// SetLength sets the length of the buffer to n, growing the backing array if needed.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 {
		panic("SetLength: negative length")
	}
	bb.Grow(n - bb.Len())
	bb.B = bb.B[:n]
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer already has sufficient capacity, Grow does nothing.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if requiredBytes <= 0 {
		return
	}

	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := requiredBytes
	if cap(bb.B) > 0 {
		growBy = max(growBy, cap(bb.B))
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers, discarding buffers that grew
// past maxThreshold instead of retaining them indefinitely.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	recordDefaultPool = NewByteBufferPool(RecordBufferDefaultSize, RecordBufferMaxThreshold)
	fieldDefaultPool  = NewByteBufferPool(FieldBufferDefaultSize, FieldBufferMaxThreshold)
)

// GetRecordBuffer retrieves a ByteBuffer sized for a whole record payload.
func GetRecordBuffer() *ByteBuffer {
	return recordDefaultPool.Get()
}

// PutRecordBuffer returns a record-scratch ByteBuffer to its pool.
func PutRecordBuffer(bb *ByteBuffer) {
	recordDefaultPool.Put(bb)
}

// GetFieldBuffer retrieves a ByteBuffer sized for a single field's variable-length payload.
func GetFieldBuffer() *ByteBuffer {
	return fieldDefaultPool.Get()
}

// PutFieldBuffer returns a field-scratch ByteBuffer to its pool.
func PutFieldBuffer(bb *ByteBuffer) {
	fieldDefaultPool.Put(bb)
}
