// Package definition implements the 16-slot local definition table that a
// FIT stream's definition records populate and data records reference.
package definition

import (
	"github.com/fitkit/fit/endian"
	"github.com/fitkit/fit/internal/fingerprint"
	"github.com/fitkit/fit/types"
)

// NumSlots is the fixed number of local message type slots (§3: "Exactly
// 16 slots (0..15) exist").
const NumSlots = 16

// FieldDescriptor is one field entry within a definition: its profile
// definition number, its declared size in bytes (which may exceed the base
// type's natural width, indicating an array), and its base type.
type FieldDescriptor struct {
	DefinitionNumber uint8
	SizeBytes        uint8
	BaseType         types.BaseType
}

// DevFieldDescriptor is one developer field entry within a definition: its
// developer-assigned definition number, declared size, and the developer
// data index used to resolve its actual base type via the developer field
// registry.
type DevFieldDescriptor struct {
	DefinitionNumber   uint8
	SizeBytes          uint8
	DeveloperDataIndex uint8
}

// Definition is a local message type's bound schema (§3 "Local definition
// entry"): the global message number it names, the byte order its data
// records use, and the ordered field lists.
type Definition struct {
	GlobalMessageNumber uint16
	Engine              endian.EndianEngine
	Fields              []FieldDescriptor
	DevFields           []DevFieldDescriptor
}

// PayloadSize returns the expected data-record payload length implied by
// this definition: the sum of every field's SizeBytes (§3 invariant 2).
func (d *Definition) PayloadSize() int {
	total := 0
	for _, f := range d.Fields {
		total += int(f.SizeBytes)
	}
	for _, f := range d.DevFields {
		total += int(f.SizeBytes)
	}
	return total
}

// Table is the fixed 16-entry local definition table. A fixed array indexed
// by local type, each entry optional, is sufficient and faster than a hash
// map since local message type is always in 0..15.
type Table struct {
	slots   [NumSlots]*Definition
	tracker *fingerprint.Tracker
}

// NewTable creates an empty definition table for a fresh decode.
func NewTable() *Table {
	return &Table{tracker: fingerprint.NewTracker()}
}

// Set installs def in slot localType, overwriting whatever was previously
// there (§3: "any slot may be redefined at any point; redefinition fully
// replaces the prior entry"). signature is the xxHash64 of the definition
// record's raw bytes, used only to classify whether this is a true
// redefinition; it does not affect decoding.
func (t *Table) Set(localType uint8, def *Definition, signature uint64) (redefined bool) {
	redefined = t.tracker.Observe(localType, signature)
	t.slots[localType] = def
	return redefined
}

// Get returns the definition bound to localType, or false if that slot has
// never been defined (§3 invariant 1).
func (t *Table) Get(localType uint8) (*Definition, bool) {
	if localType >= NumSlots {
		return nil, false
	}
	def := t.slots[localType]
	return def, def != nil
}

// RedefinitionCount returns the number of true schema redefinitions
// observed so far across all slots.
func (t *Table) RedefinitionCount() int {
	return t.tracker.RedefinitionCount()
}
