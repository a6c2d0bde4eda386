package views

import "github.com/fitkit/fit/types"

// GlobalMessageNumberLength is the length message's global message number.
const GlobalMessageNumberLength = 101

const (
	lengthDefNumTotalStrokes = 5
	lengthDefNumSwimStroke   = 7
	lengthDefNumLengthType   = 12
)

// Length is the curated projection of a length message: one pool length
// within a swimming session.
type Length struct {
	SwimStroke   *uint64
	LengthType   *uint64
	TotalStrokes *uint64
}

// LengthFromFields projects msg's fields into a Length.
func LengthFromFields(msg types.DecodedMessage) Length {
	return Length{
		SwimStroke:   optUint(msg, lengthDefNumSwimStroke),
		LengthType:   optUint(msg, lengthDefNumLengthType),
		TotalStrokes: optUint(msg, lengthDefNumTotalStrokes),
	}
}
