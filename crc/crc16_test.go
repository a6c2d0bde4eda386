package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCRC16_EmptyInputIsZero(t *testing.T) {
	require.Equal(t, uint16(0), Checksum(nil))
}

func TestCRC16_IncrementalMatchesBulk(t *testing.T) {
	data := []byte{0x0E, 0x10, 0xD9, 0x07, 0x00, 0x00, 0x00, 0x8C, 0x04, 0x00, 0x00, 0x2E, 0x46, 0x49, 0x54}

	bulk := Checksum(data)

	c := New()
	for _, b := range data {
		c.Write([]byte{b})
	}
	require.Equal(t, bulk, c.Value())
}

func TestCRC16_ResetClearsState(t *testing.T) {
	c := New()
	c.Write([]byte{0x01, 0x02, 0x03})
	require.NotEqual(t, uint16(0), c.Value())

	c.Reset()
	require.Equal(t, uint16(0), c.Value())
}

func TestCRC16_DifferentBytesDifferentChecksum(t *testing.T) {
	a := Checksum([]byte{0x01, 0x02, 0x03})
	b := Checksum([]byte{0x01, 0x02, 0x04})
	require.NotEqual(t, a, b)
}
