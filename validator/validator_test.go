package validator

import (
	"testing"
	"time"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
	assert.Equal(t, time.UTC, parsed.Location())

	_, err = ParseDate("01/06/2025")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))

	_, err = ParseDate("")
	require.Error(t, err)
}

func TestValidateDateRange(t *testing.T) {
	in, _ := ParseDate("2025-06-01")
	out, _ := ParseDate("2025-06-04")

	assert.NoError(t, ValidateDateRange(in, out))

	err := ValidateDateRange(out, in)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRange))

	// Cùng ngày cũng không hợp lệ
	err = ValidateDateRange(in, in)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRange))
}

func TestValidateCheckInNotPast(t *testing.T) {
	today, _ := ParseDate("2025-06-01")
	yesterday, _ := ParseDate("2025-05-31")
	tomorrow, _ := ParseDate("2025-06-02")

	assert.NoError(t, ValidateCheckInNotPast(today, today))
	assert.NoError(t, ValidateCheckInNotPast(tomorrow, today))

	err := ValidateCheckInNotPast(yesterday, today)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRange))
}

func TestValidateGuestCount(t *testing.T) {
	assert.NoError(t, ValidateGuestCount(1, 2))
	assert.NoError(t, ValidateGuestCount(2, 2))

	err := ValidateGuestCount(3, 2)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidGuestCount))

	err = ValidateGuestCount(0, 2)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidGuestCount))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("không phải email"))
}

func TestValidateBookingStatus(t *testing.T) {
	assert.NoError(t, ValidateBookingStatus("pending"))
	assert.NoError(t, ValidateBookingStatus("confirmed"))
	assert.NoError(t, ValidateBookingStatus("cancelled"))
	assert.Error(t, ValidateBookingStatus("checked-in"))
}
