package services

import (
	"context"
	"fmt"
	"testing"

	apperrors "github.com/shivam6677ojh/QuickStay-HotelBooking/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapStoreErrNil(t *testing.T) {
	assert.NoError(t, wrapStoreErr(nil))
}

// Timeout của store phải ra STORE_UNAVAILABLE (retryable), không bao giờ
// được lẫn với "phòng đã kín"
func TestWrapStoreErrTimeout(t *testing.T) {
	for _, err := range []error{
		context.DeadlineExceeded,
		context.Canceled,
		fmt.Errorf("query rooms: %w", context.DeadlineExceeded),
	} {
		got := wrapStoreErr(err)
		require.Error(t, got)
		assert.True(t, apperrors.HasCode(got, apperrors.ErrCodeStoreUnavailable), "err: %v", err)
		assert.True(t, apperrors.IsRetryable(got), "err: %v", err)
		assert.False(t, apperrors.HasCode(got, apperrors.ErrCodeRoomNotAvailable), "err: %v", err)
	}
}

// Serialization failure / deadlock của Postgres là xung đột tạm thời,
// caller được phép thử lại
func TestWrapStoreErrSerializationConflict(t *testing.T) {
	for _, code := range []string{"40001", "40P01"} {
		got := wrapStoreErr(&pgconn.PgError{Code: code})
		require.Error(t, got)
		assert.True(t, apperrors.HasCode(got, apperrors.ErrCodeStoreConflict), "sqlstate: %s", code)
		assert.True(t, apperrors.IsRetryable(got), "sqlstate: %s", code)
	}
}

func TestWrapStoreErrOtherPgError(t *testing.T) {
	got := wrapStoreErr(&pgconn.PgError{Code: "23505"})
	require.Error(t, got)
	assert.True(t, apperrors.HasCode(got, apperrors.ErrCodeDBError))
	assert.False(t, apperrors.IsRetryable(got))
}

// Lỗi nghiệp vụ đã là AppError thì đi qua nguyên vẹn, không bị bọc lại
func TestWrapStoreErrKeepsAppError(t *testing.T) {
	orig := apperrors.NewAppError(apperrors.ErrCodeRoomNotAvailable, "Phòng đã kín", nil)

	got := wrapStoreErr(orig)

	assert.Same(t, orig, got)
}

func TestWrapStoreErrGeneric(t *testing.T) {
	got := wrapStoreErr(fmt.Errorf("connection reset"))
	require.Error(t, got)
	assert.True(t, apperrors.HasCode(got, apperrors.ErrCodeDBError))
	assert.False(t, apperrors.IsRetryable(got))
}
