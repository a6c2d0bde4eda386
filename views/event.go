package views

import "github.com/fitkit/fit/types"

// GlobalMessageNumberEvent is the event message's global message number.
const GlobalMessageNumberEvent = 21

const (
	eventDefNumEvent     = 0
	eventDefNumEventType = 1
	eventDefNumData      = 3
)

// Event is the curated projection of an event message: a discrete
// occurrence (timer start/stop, lap marker, alert) rather than a sampled
// value.
type Event struct {
	Event     *uint64
	EventType *uint64
	Data      *uint64
}

// EventFromFields projects msg's fields into an Event.
func EventFromFields(msg types.DecodedMessage) Event {
	return Event{
		Event:     optUint(msg, eventDefNumEvent),
		EventType: optUint(msg, eventDefNumEventType),
		Data:      optUint(msg, eventDefNumData),
	}
}
