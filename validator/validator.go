package validator

import (
	"regexp"
	"time"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/constants"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/errors"
)

// ParseDate parse ngày dạng ISO-8601 (YYYY-MM-DD) về UTC midnight
func ParseDate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse(constants.DateLayout, dateStr)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày không hợp lệ, cần dạng YYYY-MM-DD", err)
	}
	return parsed.UTC(), nil
}

// ValidateDateRange kiểm tra khoảng ngày đặt phòng.
// checkOut phải sau checkIn, một booking tối thiểu một đêm.
func ValidateDateRange(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return nil
}

// ValidateCheckInNotPast từ chối ngày nhận phòng trong quá khứ
func ValidateCheckInNotPast(checkIn, today time.Time) error {
	if checkIn.Before(today) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày nhận phòng không được nhỏ hơn ngày hiện tại", nil)
	}
	return nil
}

// ValidateGuestCount kiểm tra số khách nằm trong sức chứa của phòng
func ValidateGuestCount(guests, capacity int) error {
	if guests < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidGuestCount, "Số khách phải ít nhất là 1", nil)
	}
	if guests > capacity {
		return errors.NewAppError(errors.ErrCodeInvalidGuestCount, "Số khách vượt quá sức chứa của phòng", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	return nil
}

// ValidateBookingStatus kiểm tra trạng thái booking hợp lệ
func ValidateBookingStatus(status string) error {
	switch status {
	case constants.BookingStatusPending, constants.BookingStatusConfirmed, constants.BookingStatusCancelled:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeValidation, "Trạng thái booking không hợp lệ", nil)
}
