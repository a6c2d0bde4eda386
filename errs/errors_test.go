package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeError_Unwrap(t *testing.T) {
	de := New(ErrBadTrailerCRC, 128, "")
	require.True(t, errors.Is(de, ErrBadTrailerCRC))
	require.False(t, errors.Is(de, ErrBadSignature))
}

func TestDecodeError_Error(t *testing.T) {
	de := New(ErrUnexpectedEOF, 10, "")
	require.Contains(t, de.Error(), "offset 10")

	de2 := New(ErrMalformedDefinition, 20, "architecture byte 5")
	require.Contains(t, de2.Error(), "architecture byte 5")
}
