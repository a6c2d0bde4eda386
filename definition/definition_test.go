package definition

import (
	"testing"

	"github.com/fitkit/fit/endian"
	"github.com/fitkit/fit/types"
	"github.com/stretchr/testify/require"
)

func TestTable_SetAndGet(t *testing.T) {
	table := NewTable()

	_, ok := table.Get(3)
	require.False(t, ok)

	def := &Definition{
		GlobalMessageNumber: 20,
		Engine:              endian.GetLittleEndianEngine(),
		Fields: []FieldDescriptor{
			{DefinitionNumber: 253, SizeBytes: 4, BaseType: types.BaseTypeUint32},
		},
	}
	table.Set(3, def, 0xABCD)

	got, ok := table.Get(3)
	require.True(t, ok)
	require.Same(t, def, got)
}

func TestTable_RedefinitionDetection(t *testing.T) {
	table := NewTable()

	defA := &Definition{GlobalMessageNumber: 20}
	redefined := table.Set(0, defA, 111)
	require.False(t, redefined, "first definition of a slot is never a redefinition")

	redefinedSame := table.Set(0, defA, 111)
	require.False(t, redefinedSame, "identical signature re-send is not a redefinition")

	defB := &Definition{GlobalMessageNumber: 21}
	redefinedDiff := table.Set(0, defB, 222)
	require.True(t, redefinedDiff)

	require.Equal(t, 1, table.RedefinitionCount())
}

func TestTable_GetOutOfRange(t *testing.T) {
	table := NewTable()
	_, ok := table.Get(16)
	require.False(t, ok)
}

func TestDefinition_PayloadSize(t *testing.T) {
	def := &Definition{
		Fields: []FieldDescriptor{
			{SizeBytes: 4},
			{SizeBytes: 2},
		},
		DevFields: []DevFieldDescriptor{
			{SizeBytes: 1},
		},
	}
	require.Equal(t, 7, def.PayloadSize())
}
