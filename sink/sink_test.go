package sink

import (
	"errors"
	"testing"

	"github.com/fitkit/fit/types"
	"github.com/stretchr/testify/require"
)

func TestFunc_Deliver(t *testing.T) {
	var got types.DecodedMessage
	var gotCtx any

	var s Sink = Func(func(msg types.DecodedMessage, userContext any) error {
		got = msg
		gotCtx = userContext
		return nil
	})

	msg := types.DecodedMessage{GlobalMessageNumber: 20}
	require.NoError(t, s.Deliver(msg, "ctx"))
	require.Equal(t, uint16(20), got.GlobalMessageNumber)
	require.Equal(t, "ctx", gotCtx)
}

func TestFunc_Deliver_PropagatesAbort(t *testing.T) {
	abort := errors.New("stop")
	var s Sink = Func(func(msg types.DecodedMessage, userContext any) error {
		return abort
	})

	err := s.Deliver(types.DecodedMessage{}, nil)
	require.ErrorIs(t, err, abort)
}
