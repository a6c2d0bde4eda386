package views

import "github.com/fitkit/fit/types"

// GlobalMessageNumberFileID is the file_id message's global message number.
const GlobalMessageNumberFileID = 0

const (
	fileIDDefNumType         = 0
	fileIDDefNumManufacturer = 1
	fileIDDefNumProduct      = 2
	fileIDDefNumSerialNumber = 3
	fileIDDefNumTimeCreated  = 4
)

// FileID is the curated projection of a file_id message: the file's type,
// originating device, and creation time.
type FileID struct {
	Type         *uint64
	Manufacturer *uint64
	Product      *uint64
	SerialNumber *uint64
	TimeCreated  *uint64
}

// FileIDFromFields projects msg's fields into a FileID. Fields the message
// doesn't carry, or that decode as their base type's invalid sentinel, are
// left nil.
func FileIDFromFields(msg types.DecodedMessage) FileID {
	return FileID{
		Type:         optUint(msg, fileIDDefNumType),
		Manufacturer: optUint(msg, fileIDDefNumManufacturer),
		Product:      optUint(msg, fileIDDefNumProduct),
		SerialNumber: optUint(msg, fileIDDefNumSerialNumber),
		TimeCreated:  optUint(msg, fileIDDefNumTimeCreated),
	}
}
