// Package views provides hand-curated, typed projections over
// types.DecodedMessage for the global messages most consumers care about:
// record, session, lap, length, event, device_info, and file_id. Each view
// looks up each recognized definition number in a message's Fields and
// assigns it into a named optional slot, leaving everything else for a
// caller to read directly off the message.
package views

// Semicircles converts a FIT position value (latitude or longitude,
// stored as a signed 32-bit semicircle count) into decimal degrees.
func Semicircles(v int32) float64 {
	const semicirclesPerDegree = (1 << 31) / 180.0
	return float64(v) / semicirclesPerDegree
}
