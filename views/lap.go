package views

import "github.com/fitkit/fit/types"

// GlobalMessageNumberLap is the lap message's global message number.
const GlobalMessageNumberLap = 19

const (
	lapDefNumStartTime        = 2
	lapDefNumTotalElapsedTime = 7
	lapDefNumTotalTimerTime   = 8
	lapDefNumTotalDistance    = 9
	lapDefNumAvgHeartRate     = 15
	lapDefNumMaxHeartRate     = 16
	lapDefNumAvgPower         = 19
	lapDefNumMaxPower         = 20
)

// Lap is the curated projection of a lap message: one segment of a session
// marked by the user or device.
type Lap struct {
	StartTime        *uint64
	TotalElapsedTime *uint64
	TotalTimerTime   *uint64
	TotalDistance    *uint64
	AvgHeartRate     *uint64
	MaxHeartRate     *uint64
	AvgPower         *uint64
	MaxPower         *uint64
}

// LapFromFields projects msg's fields into a Lap.
func LapFromFields(msg types.DecodedMessage) Lap {
	return Lap{
		StartTime:        optUint(msg, lapDefNumStartTime),
		TotalElapsedTime: optUint(msg, lapDefNumTotalElapsedTime),
		TotalTimerTime:   optUint(msg, lapDefNumTotalTimerTime),
		TotalDistance:    optUint(msg, lapDefNumTotalDistance),
		AvgHeartRate:     optUint(msg, lapDefNumAvgHeartRate),
		MaxHeartRate:     optUint(msg, lapDefNumMaxHeartRate),
		AvgPower:         optUint(msg, lapDefNumAvgPower),
		MaxPower:         optUint(msg, lapDefNumMaxPower),
	}
}
