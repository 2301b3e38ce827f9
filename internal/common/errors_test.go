package common_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/common"
)

func TestAppErrorFormatting(t *testing.T) {
	cause := errors.New("connection reset")
	err := common.NewAppError("PERSISTENCE", "save failed", cause)

	assert.Equal(t, "PERSISTENCE: save failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := common.NewAppError("VALIDATION", "empty text", nil)
	assert.Equal(t, "VALIDATION: empty text", bare.Error())
}

func TestWrapErrorNilPassthrough(t *testing.T) {
	assert.NoError(t, common.WrapError(nil, "ignored"))

	wrapped := common.WrapError(common.ErrNotFound, "fetch document")
	assert.ErrorIs(t, wrapped, common.ErrNotFound)
}

func TestStatusFromErrorKind(t *testing.T) {
	cases := []struct {
		kind constants.ErrorKind
		code codes.Code
	}{
		{constants.ErrKindTimeout, codes.DeadlineExceeded},
		{constants.ErrKindPersistence, codes.Unavailable},
		{constants.ErrKindTenantMismatch, codes.FailedPrecondition},
		{constants.ErrKindInternal, codes.Internal},
		{constants.ErrorKind("SOMETHING_NEW"), codes.Internal},
	}
	for _, tc := range cases {
		err := common.StatusFromErrorKind(tc.kind)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, tc.code, st.Code(), "kind %s", tc.kind)
		// the message is generic on purpose; no internal error detail leaks
		assert.NotContains(t, st.Message(), "sql")
	}
}
