package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBaseType(t *testing.T) {
	t.Run("strips endian-sensitive bit", func(t *testing.T) {
		require.Equal(t, BaseTypeUint16, ParseBaseType(0x84))
		require.Equal(t, BaseTypeUint16, ParseBaseType(0x84&^0x80))
	})

	t.Run("low-width types round-trip", func(t *testing.T) {
		require.Equal(t, BaseTypeUint8, ParseBaseType(0x02))
		require.Equal(t, BaseTypeString, ParseBaseType(0x07))
		require.Equal(t, BaseTypeByte, ParseBaseType(0x0D))
	})
}

func TestBaseType_Width(t *testing.T) {
	cases := []struct {
		bt    BaseType
		width int
	}{
		{BaseTypeEnum, 1},
		{BaseTypeUint8, 1},
		{BaseTypeByte, 1},
		{BaseTypeSint16, 2},
		{BaseTypeUint16, 2},
		{BaseTypeSint32, 4},
		{BaseTypeUint32, 4},
		{BaseTypeFloat32, 4},
		{BaseTypeFloat64, 8},
		{BaseTypeSint64, 8},
		{BaseTypeUint64, 8},
		{BaseTypeUint64z, 8},
	}

	for _, c := range cases {
		require.Equal(t, c.width, c.bt.Width(), c.bt.String())
	}

	require.Equal(t, 0, BaseType(0x1F).Width(), "unrecognized type id has no width")
}

func TestBaseType_Known(t *testing.T) {
	require.True(t, BaseTypeUint32.Known())
	require.False(t, BaseType(0x1F).Known())
}

func TestBaseType_InvalidUint(t *testing.T) {
	require.Equal(t, uint64(0xFF), BaseTypeUint8.InvalidUint())
	require.Equal(t, uint64(0x00), BaseTypeUint8z.InvalidUint())
	require.Equal(t, uint64(0xFFFFFFFF), BaseTypeUint32.InvalidUint())
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), BaseTypeUint64.InvalidUint())
}

func TestBaseType_InvalidSint(t *testing.T) {
	require.Equal(t, int64(0x7F), BaseTypeSint8.InvalidSint())
	require.Equal(t, int64(0x7FFFFFFF), BaseTypeSint32.InvalidSint())
}

func TestBaseType_InvalidFloat(t *testing.T) {
	require.True(t, math.IsNaN(BaseTypeFloat32.InvalidFloat()))
	require.True(t, math.IsNaN(BaseTypeFloat64.InvalidFloat()))
}

func TestBaseType_IsSignedIsFloat(t *testing.T) {
	require.True(t, BaseTypeSint32.IsSigned())
	require.False(t, BaseTypeUint32.IsSigned())
	require.True(t, BaseTypeFloat64.IsFloat())
	require.False(t, BaseTypeUint64.IsFloat())
}
