package views

import "github.com/fitkit/fit/types"

// optUint returns a pointer to the field's unsigned value, or nil if the
// definition number is absent from msg or decoded as the base type's
// invalid-value sentinel (§4.4).
func optUint(msg types.DecodedMessage, definitionNumber uint8) *uint64 {
	fv, ok := msg.Field(definitionNumber)
	if !ok || fv.Kind != types.KindUint {
		return nil
	}
	if fv.Uint() == fv.BaseType.InvalidUint() {
		return nil
	}
	v := fv.Uint()
	return &v
}

// optSint returns a pointer to the field's signed value, or nil if the
// definition number is absent from msg or decoded as the base type's
// invalid-value sentinel.
func optSint(msg types.DecodedMessage, definitionNumber uint8) *int64 {
	fv, ok := msg.Field(definitionNumber)
	if !ok || fv.Kind != types.KindSint {
		return nil
	}
	if fv.Sint() == fv.BaseType.InvalidSint() {
		return nil
	}
	v := fv.Sint()
	return &v
}

// optString returns the field's string value, or "" if the definition
// number is absent from msg.
func optString(msg types.DecodedMessage, definitionNumber uint8) string {
	fv, ok := msg.Field(definitionNumber)
	if !ok || fv.Kind != types.KindString {
		return ""
	}
	return fv.String()
}
