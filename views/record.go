package views

import "github.com/fitkit/fit/types"

// GlobalMessageNumberRecord is the record message's global message number.
const GlobalMessageNumberRecord = 20

const (
	recordDefNumPositionLat  = 0
	recordDefNumPositionLong = 1
	recordDefNumAltitude     = 2
	recordDefNumHeartRate    = 3
	recordDefNumCadence      = 4
	recordDefNumDistance     = 5
	recordDefNumSpeed        = 6
	recordDefNumPower        = 7
	recordDefNumTemperature  = 13
)

// Record is the curated projection of a record message: one sample point
// from an activity, at most one per second. PositionLat/PositionLong are
// raw semicircle counts; convert with Semicircles.
type Record struct {
	PositionLat  *int64
	PositionLong *int64
	Altitude     *uint64
	HeartRate    *uint64
	Cadence      *uint64
	Distance     *uint64
	Speed        *uint64
	Power        *uint64
	Temperature  *int64
}

// RecordFromFields projects msg's fields into a Record.
func RecordFromFields(msg types.DecodedMessage) Record {
	return Record{
		PositionLat:  optSint(msg, recordDefNumPositionLat),
		PositionLong: optSint(msg, recordDefNumPositionLong),
		Altitude:     optUint(msg, recordDefNumAltitude),
		HeartRate:    optUint(msg, recordDefNumHeartRate),
		Cadence:      optUint(msg, recordDefNumCadence),
		Distance:     optUint(msg, recordDefNumDistance),
		Speed:        optUint(msg, recordDefNumSpeed),
		Power:        optUint(msg, recordDefNumPower),
		Temperature:  optSint(msg, recordDefNumTemperature),
	}
}
