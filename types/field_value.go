package types

// ValueKind discriminates which variant of FieldValue is populated.
type ValueKind uint8

const (
	KindUnset ValueKind = iota
	KindUint
	KindSint
	KindFloat
	KindString
	KindBytes
	KindArrayUint
	KindArraySint
	KindArrayFloat
)

// FieldValue is a decoded field's value plus the metadata needed to
// interpret it: which definition entry produced it, its wire base type, and
// whether it came from the developer field registry rather than the
// built-in profile. Exactly one of the scalar/slice payloads below is
// meaningful, selected by Kind; this is a sum type rather than a struct with
// one populated slot per variant, so a caller can never observe an
// impossible combination (e.g. a Kind of KindUint with ArrayFloat also set).
type FieldValue struct {
	strVal   string
	uintArr  []uint64
	sintArr  []int64
	floatArr []float64
	bytesVal []byte

	uintVal  uint64
	sintVal  int64
	floatVal float64

	DefinitionNumber uint8
	BaseType         BaseType
	Kind             ValueKind
	IsDeveloperField bool
}

// Unset reports whether the field carries no decoded value.
func (v FieldValue) Unset() bool { return v.Kind == KindUnset }

// Uint returns the decoded value for KindUint; the zero value otherwise.
func (v FieldValue) Uint() uint64 { return v.uintVal }

// Sint returns the decoded value for KindSint; the zero value otherwise.
func (v FieldValue) Sint() int64 { return v.sintVal }

// Float returns the decoded value for KindFloat; the zero value otherwise.
func (v FieldValue) Float() float64 { return v.floatVal }

// String returns the decoded value for KindString; empty otherwise.
func (v FieldValue) String() string { return v.strVal }

// Bytes returns the decoded value for KindBytes; nil otherwise.
func (v FieldValue) Bytes() []byte { return v.bytesVal }

// ArrayUint returns the decoded elements for KindArrayUint; nil otherwise.
func (v FieldValue) ArrayUint() []uint64 { return v.uintArr }

// ArraySint returns the decoded elements for KindArraySint; nil otherwise.
func (v FieldValue) ArraySint() []int64 { return v.sintArr }

// ArrayFloat returns the decoded elements for KindArrayFloat; nil otherwise.
func (v FieldValue) ArrayFloat() []float64 { return v.floatArr }

// NewUintValue constructs a scalar unsigned field value.
func NewUintValue(definitionNumber uint8, baseType BaseType, val uint64, isDevField bool) FieldValue {
	return FieldValue{
		DefinitionNumber: definitionNumber,
		BaseType:         baseType,
		Kind:             KindUint,
		IsDeveloperField: isDevField,
		uintVal:          val,
	}
}

// NewSintValue constructs a scalar signed field value.
func NewSintValue(definitionNumber uint8, baseType BaseType, val int64, isDevField bool) FieldValue {
	return FieldValue{
		DefinitionNumber: definitionNumber,
		BaseType:         baseType,
		Kind:             KindSint,
		IsDeveloperField: isDevField,
		sintVal:          val,
	}
}

// NewFloatValue constructs a scalar floating-point field value.
func NewFloatValue(definitionNumber uint8, baseType BaseType, val float64, isDevField bool) FieldValue {
	return FieldValue{
		DefinitionNumber: definitionNumber,
		BaseType:         baseType,
		Kind:             KindFloat,
		IsDeveloperField: isDevField,
		floatVal:         val,
	}
}

// NewStringValue constructs a string field value, already truncated at the
// first NUL by the caller.
func NewStringValue(definitionNumber uint8, val string, isDevField bool) FieldValue {
	return FieldValue{
		DefinitionNumber: definitionNumber,
		BaseType:         BaseTypeString,
		Kind:             KindString,
		IsDeveloperField: isDevField,
		strVal:           val,
	}
}

// NewBytesValue constructs a raw byte-run field value (base type byte, a
// single element).
func NewBytesValue(definitionNumber uint8, baseType BaseType, val []byte, isDevField bool) FieldValue {
	return FieldValue{
		DefinitionNumber: definitionNumber,
		BaseType:         baseType,
		Kind:             KindBytes,
		IsDeveloperField: isDevField,
		bytesVal:         val,
	}
}

// NewArrayUintValue constructs an array-of-unsigned field value.
func NewArrayUintValue(definitionNumber uint8, baseType BaseType, val []uint64, isDevField bool) FieldValue {
	return FieldValue{
		DefinitionNumber: definitionNumber,
		BaseType:         baseType,
		Kind:             KindArrayUint,
		IsDeveloperField: isDevField,
		uintArr:          val,
	}
}

// NewArraySintValue constructs an array-of-signed field value.
func NewArraySintValue(definitionNumber uint8, baseType BaseType, val []int64, isDevField bool) FieldValue {
	return FieldValue{
		DefinitionNumber: definitionNumber,
		BaseType:         baseType,
		Kind:             KindArraySint,
		IsDeveloperField: isDevField,
		sintArr:          val,
	}
}

// NewArrayFloatValue constructs an array-of-float field value.
func NewArrayFloatValue(definitionNumber uint8, baseType BaseType, val []float64, isDevField bool) FieldValue {
	return FieldValue{
		DefinitionNumber: definitionNumber,
		BaseType:         baseType,
		Kind:             KindArrayFloat,
		IsDeveloperField: isDevField,
		floatArr:         val,
	}
}
