// Package sink defines the contract the decoder uses to deliver each
// fully-decoded data message.
package sink

import "github.com/fitkit/fit/types"

// Sink receives one decoded data record at a time, in stream order. Deliver
// must not retain fields beyond the call unless it clones them. Returning a
// non-nil error aborts the decode: no further Deliver calls are made and no
// CRC verification is attempted (§5).
type Sink interface {
	Deliver(msg types.DecodedMessage, userContext any) error
}

// Func adapts a plain function to the Sink interface.
type Func func(msg types.DecodedMessage, userContext any) error

// Deliver calls f.
func (f Func) Deliver(msg types.DecodedMessage, userContext any) error {
	return f(msg, userContext)
}
