// Package devfield implements the developer field registry: the mapping
// from (developer_data_index, field_definition_number) to a base type,
// populated at decode time from field_description messages (global message
// number 206) rather than fixed by the built-in profile.
package devfield

import "github.com/fitkit/fit/types"

// GlobalMessageNumberFieldDescription is the profile's global message
// number for the field_description message that declares a developer
// field's shape.
const GlobalMessageNumberFieldDescription uint16 = 206

// Field description definition numbers this registry cares about; the
// message may carry others (units, field name, …) that are not needed to
// resolve a developer field's base type.
const (
	FieldDescDeveloperDataIndex uint8 = 0
	FieldDescFieldDefinitionNum uint8 = 1
	FieldDescFitBaseTypeID      uint8 = 2
)

type key struct {
	developerDataIndex uint8
	fieldDefinitionNum uint8
}

// Registry tracks developer field descriptions declared mid-stream.
// Descriptions are additive for the lifetime of a decode: the FIT format
// declares them once per developer data index before first use.
type Registry struct {
	entries  map[key]types.BaseType
	fallback types.BaseType
}

// NewRegistry creates an empty registry. fallback is the base type assumed
// for a developer field whose field_description was never seen (Open
// Question (b): defaulting to byte preserves data without loss).
func NewRegistry(fallback types.BaseType) *Registry {
	return &Registry{
		entries:  make(map[key]types.BaseType),
		fallback: fallback,
	}
}

// Declare records the base type for a (developerDataIndex,
// fieldDefinitionNumber) pair, as extracted from a decoded
// field_description message.
func (r *Registry) Declare(developerDataIndex, fieldDefinitionNumber uint8, baseType types.BaseType) {
	r.entries[key{developerDataIndex, fieldDefinitionNumber}] = baseType
}

// Resolve returns the base type for a developer field, falling back to the
// registry's configured fallback when no matching field_description has
// been observed.
func (r *Registry) Resolve(developerDataIndex, fieldDefinitionNumber uint8) types.BaseType {
	if bt, ok := r.entries[key{developerDataIndex, fieldDefinitionNumber}]; ok {
		return bt
	}
	return r.fallback
}

// ObserveFieldDescription extracts and records the base type declared by a
// decoded field_description message's fields. It is a no-op if the message
// doesn't carry the three definition numbers this registry needs.
func (r *Registry) ObserveFieldDescription(fields []types.FieldValue) {
	var devIndex, fieldDefNum uint8
	var baseType types.BaseType
	var haveDevIndex, haveFieldDefNum, haveBaseType bool

	for _, f := range fields {
		switch f.DefinitionNumber {
		case FieldDescDeveloperDataIndex:
			devIndex = uint8(f.Uint())
			haveDevIndex = true
		case FieldDescFieldDefinitionNum:
			fieldDefNum = uint8(f.Uint())
			haveFieldDefNum = true
		case FieldDescFitBaseTypeID:
			baseType = types.ParseBaseType(uint8(f.Uint()))
			haveBaseType = true
		}
	}

	if haveDevIndex && haveFieldDefNum && haveBaseType {
		r.Declare(devIndex, fieldDefNum, baseType)
	}
}
