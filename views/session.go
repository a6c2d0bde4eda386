package views

import "github.com/fitkit/fit/types"

// GlobalMessageNumberSession is the session message's global message number.
const GlobalMessageNumberSession = 18

const (
	sessionDefNumStartTime        = 2
	sessionDefNumSport            = 5
	sessionDefNumSubSport         = 6
	sessionDefNumTotalElapsedTime = 7
	sessionDefNumTotalTimerTime   = 8
	sessionDefNumTotalDistance    = 9
	sessionDefNumTotalCalories    = 11
	sessionDefNumAvgHeartRate     = 16
	sessionDefNumMaxHeartRate     = 17
	sessionDefNumAvgPower         = 20
	sessionDefNumMaxPower         = 21
)

// Session is the curated projection of a session message: the summary of
// one sport activity.
type Session struct {
	Sport            *uint64
	SubSport         *uint64
	StartTime        *uint64
	TotalElapsedTime *uint64
	TotalTimerTime   *uint64
	TotalDistance    *uint64
	TotalCalories    *uint64
	AvgHeartRate     *uint64
	MaxHeartRate     *uint64
	AvgPower         *uint64
	MaxPower         *uint64
}

// SessionFromFields projects msg's fields into a Session.
func SessionFromFields(msg types.DecodedMessage) Session {
	return Session{
		Sport:            optUint(msg, sessionDefNumSport),
		SubSport:         optUint(msg, sessionDefNumSubSport),
		StartTime:        optUint(msg, sessionDefNumStartTime),
		TotalElapsedTime: optUint(msg, sessionDefNumTotalElapsedTime),
		TotalTimerTime:   optUint(msg, sessionDefNumTotalTimerTime),
		TotalDistance:    optUint(msg, sessionDefNumTotalDistance),
		TotalCalories:    optUint(msg, sessionDefNumTotalCalories),
		AvgHeartRate:     optUint(msg, sessionDefNumAvgHeartRate),
		MaxHeartRate:     optUint(msg, sessionDefNumMaxHeartRate),
		AvgPower:         optUint(msg, sessionDefNumAvgPower),
		MaxPower:         optUint(msg, sessionDefNumMaxPower),
	}
}
