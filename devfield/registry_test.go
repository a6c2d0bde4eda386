package devfield

import (
	"testing"

	"github.com/fitkit/fit/types"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ResolveFallback(t *testing.T) {
	r := NewRegistry(types.BaseTypeByte)
	require.Equal(t, types.BaseTypeByte, r.Resolve(0, 5))
}

func TestRegistry_DeclareAndResolve(t *testing.T) {
	r := NewRegistry(types.BaseTypeByte)
	r.Declare(0, 5, types.BaseTypeFloat32)

	require.Equal(t, types.BaseTypeFloat32, r.Resolve(0, 5))
	require.Equal(t, types.BaseTypeByte, r.Resolve(0, 6), "unrelated field stays on fallback")
	require.Equal(t, types.BaseTypeByte, r.Resolve(1, 5), "different dev index stays on fallback")
}

func TestRegistry_ObserveFieldDescription(t *testing.T) {
	r := NewRegistry(types.BaseTypeByte)

	fields := []types.FieldValue{
		types.NewUintValue(FieldDescDeveloperDataIndex, types.BaseTypeUint8, 2, false),
		types.NewUintValue(FieldDescFieldDefinitionNum, types.BaseTypeUint8, 7, false),
		types.NewUintValue(FieldDescFitBaseTypeID, types.BaseTypeUint8, uint64(types.BaseTypeUint16), false),
	}

	r.ObserveFieldDescription(fields)

	require.Equal(t, types.BaseTypeUint16, r.Resolve(2, 7))
}

func TestRegistry_ObserveFieldDescription_IncompleteIsNoOp(t *testing.T) {
	r := NewRegistry(types.BaseTypeByte)

	fields := []types.FieldValue{
		types.NewUintValue(FieldDescDeveloperDataIndex, types.BaseTypeUint8, 2, false),
	}
	r.ObserveFieldDescription(fields)

	require.Equal(t, types.BaseTypeByte, r.Resolve(2, 7))
}
