package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	err := NewAppError(ErrCodeRoomNotAvailable, "Phòng đã có người đặt", nil)

	assert.True(t, HasCode(err, ErrCodeRoomNotAvailable))
	assert.False(t, HasCode(err, ErrCodeRoomNotFound))

	// Vẫn nhận ra AppError sau khi bị wrap
	wrapped := fmt.Errorf("tạo booking: %w", err)
	assert.True(t, HasCode(wrapped, ErrCodeRoomNotAvailable))

	assert.False(t, HasCode(fmt.Errorf("lỗi thường"), ErrCodeRoomNotAvailable))
	assert.False(t, HasCode(nil, ErrCodeRoomNotAvailable))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewAppError(ErrCodeStoreUnavailable, "store treo", nil)))
	assert.True(t, IsRetryable(NewAppError(ErrCodeStoreConflict, "xung đột ghi", nil)))

	// Lỗi nghiệp vụ không phải retryable
	assert.False(t, IsRetryable(NewAppError(ErrCodeRoomNotAvailable, "phòng kín", nil)))
	assert.False(t, IsRetryable(NewAppError(ErrCodeAlreadyCancelled, "đã hủy", nil)))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewAppError(ErrCodeStoreUnavailable, "Store không phản hồi", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "STORE_UNAVAILABLE")
	assert.Contains(t, err.Error(), "connection refused")
}
