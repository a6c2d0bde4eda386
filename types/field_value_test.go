package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldValue_ScalarVariants(t *testing.T) {
	t.Run("uint", func(t *testing.T) {
		v := NewUintValue(7, BaseTypeUint32, 0xFFFFFFFF, false)
		require.Equal(t, KindUint, v.Kind)
		require.Equal(t, uint64(0xFFFFFFFF), v.Uint())
		require.False(t, v.Unset())
		require.False(t, v.IsDeveloperField)
	})

	t.Run("sint", func(t *testing.T) {
		v := NewSintValue(3, BaseTypeSint16, -42, false)
		require.Equal(t, KindSint, v.Kind)
		require.Equal(t, int64(-42), v.Sint())
	})

	t.Run("float", func(t *testing.T) {
		v := NewFloatValue(5, BaseTypeFloat32, 3.5, false)
		require.Equal(t, KindFloat, v.Kind)
		require.InDelta(t, 3.5, v.Float(), 0.0001)
	})

	t.Run("string truncated by caller", func(t *testing.T) {
		v := NewStringValue(9, "Garmin", false)
		require.Equal(t, KindString, v.Kind)
		require.Equal(t, "Garmin", v.String())
	})

	t.Run("bytes", func(t *testing.T) {
		v := NewBytesValue(10, BaseTypeByte, []byte{1, 2, 3}, false)
		require.Equal(t, KindBytes, v.Kind)
		require.Equal(t, []byte{1, 2, 3}, v.Bytes())
	})
}

func TestFieldValue_ArrayVariants(t *testing.T) {
	t.Run("array uint", func(t *testing.T) {
		v := NewArrayUintValue(1, BaseTypeUint16, []uint64{1, 2, 3}, false)
		require.Equal(t, KindArrayUint, v.Kind)
		require.Equal(t, []uint64{1, 2, 3}, v.ArrayUint())
	})

	t.Run("array sint", func(t *testing.T) {
		v := NewArraySintValue(2, BaseTypeSint8, []int64{-1, 0, 1}, false)
		require.Equal(t, KindArraySint, v.Kind)
		require.Equal(t, []int64{-1, 0, 1}, v.ArraySint())
	})

	t.Run("array float", func(t *testing.T) {
		v := NewArrayFloatValue(4, BaseTypeFloat64, []float64{1.1, 2.2}, false)
		require.Equal(t, KindArrayFloat, v.Kind)
		require.Equal(t, []float64{1.1, 2.2}, v.ArrayFloat())
	})
}

func TestFieldValue_Unset(t *testing.T) {
	var v FieldValue
	require.True(t, v.Unset())
	require.Equal(t, KindUnset, v.Kind)
}

func TestFieldValue_DeveloperFieldFlag(t *testing.T) {
	v := NewUintValue(0, BaseTypeByte, 1, true)
	require.True(t, v.IsDeveloperField)
}

func TestDecodedMessage_Field(t *testing.T) {
	msg := DecodedMessage{
		Fields: []FieldValue{
			NewUintValue(253, BaseTypeUint32, 1000, false),
			NewFloatValue(7, BaseTypeFloat32, 12.5, false),
		},
	}

	ts, ok := msg.Field(DefinitionNumberTimestamp)
	require.True(t, ok)
	require.Equal(t, uint64(1000), ts.Uint())

	_, ok = msg.Field(99)
	require.False(t, ok)
}
