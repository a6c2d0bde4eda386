// Package header decodes and validates the FIT file header: the 12- or
// 14-byte structure that opens every envelope.
package header

import (
	"github.com/fitkit/fit/crc"
	"github.com/fitkit/fit/endian"
	"github.com/fitkit/fit/errs"
	"github.com/fitkit/fit/reader"
)

// Signature is the fixed 4-byte ASCII marker every FIT file header carries.
const Signature = ".FIT"

// Header is the decoded file header (§3 "File header").
type Header struct {
	// Size is the header's own byte length as declared by its first byte:
	// 12 (no header CRC) or 14 (trailing u16 header CRC).
	Size uint8
	// ProtocolVersion and ProfileVersion are the FIT protocol/profile
	// version numbers declared by the producing device.
	ProtocolVersion uint8
	ProfileVersion  uint16
	// DataLength is the byte length of the data section that follows the
	// header, excluding the header itself and the 2-byte trailer CRC.
	DataLength uint32
	// HeaderCRC is the CRC-16 over the first 12 header bytes, present only
	// when Size is 14. A value of 0 means "unset" and is not validated.
	HeaderCRC    uint16
	HasHeaderCRC bool
}

// Decode reads and validates the file header from rd. multi-byte header
// fields are always little-endian (§6), independent of any later
// definition's declared architecture.
func Decode(rd *reader.Reader) (*Header, error) {
	sizeByte, err := rd.ReadUint8()
	if err != nil {
		return nil, errs.New(err, rd.Consumed(), "reading header size")
	}

	if sizeByte != 12 && sizeByte != 14 {
		return nil, errs.New(errs.ErrMalformedDefinition, rd.Consumed(), "header size must be 12 or 14")
	}

	h := &Header{Size: sizeByte}

	h.ProtocolVersion, err = rd.ReadUint8()
	if err != nil {
		return nil, errs.New(err, rd.Consumed(), "reading protocol version")
	}

	h.ProfileVersion, err = rd.ReadUint16(endian.GetLittleEndianEngine())
	if err != nil {
		return nil, errs.New(err, rd.Consumed(), "reading profile version")
	}

	h.DataLength, err = rd.ReadUint32(endian.GetLittleEndianEngine())
	if err != nil {
		return nil, errs.New(err, rd.Consumed(), "reading data length")
	}

	sig, err := rd.ReadBytes(4)
	if err != nil {
		return nil, errs.New(err, rd.Consumed(), "reading signature")
	}
	if string(sig) != Signature {
		return nil, errs.New(errs.ErrBadSignature, rd.Consumed(), string(sig))
	}

	if sizeByte == 14 {
		h.HasHeaderCRC = true

		crcBytes, err := rd.ReadBytesNoCRC(2)
		if err != nil {
			return nil, errs.New(err, rd.Consumed(), "reading header CRC")
		}
		h.HeaderCRC = endian.GetLittleEndianEngine().Uint16(crcBytes)

		if h.HeaderCRC != 0 {
			computed := crc.Checksum([]byte{
				sizeByte, h.ProtocolVersion,
				byte(h.ProfileVersion), byte(h.ProfileVersion >> 8),
				byte(h.DataLength), byte(h.DataLength >> 8), byte(h.DataLength >> 16), byte(h.DataLength >> 24),
				sig[0], sig[1], sig[2], sig[3],
			})
			if computed != h.HeaderCRC {
				return nil, errs.New(errs.ErrBadHeaderCRC, rd.Consumed(), "")
			}
		}
	}

	return h, nil
}
