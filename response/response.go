package response

import (
	"net/http"

	apperrors "github.com/shivam6677ojh/QuickStay-HotelBooking/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ErrorBody gắn thêm mã lỗi nghiệp vụ để client phân biệt
// lỗi retryable với lỗi bị từ chối
type ErrorBody struct {
	Code      int    `json:"code"`
	Mess      string `json:"mess"`
	ErrorCode string `json:"errorCode,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// Created trả về response thành công khi tạo mới resource
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Lỗi server",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Chưa xác thực",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Không có quyền truy cập",
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// httpStatusFor ánh xạ mã lỗi nghiệp vụ sang HTTP status
func httpStatusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeInvalidRange,
		apperrors.ErrCodeInvalidGuestCount,
		apperrors.ErrCodeValidation,
		apperrors.ErrCodeRequiredField,
		apperrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnauthorized,
		apperrors.ErrCodeInvalidToken,
		apperrors.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case apperrors.ErrCodeNotAuthorized:
		return http.StatusForbidden
	case apperrors.ErrCodeRoomNotFound,
		apperrors.ErrCodeBookingNotFound,
		apperrors.ErrCodeHotelNotFound,
		apperrors.ErrCodeUserNotFound,
		apperrors.ErrCodeDBNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeRoomNotAvailable,
		apperrors.ErrCodeAlreadyCancelled,
		apperrors.ErrCodeStoreConflict,
		apperrors.ErrCodeDBDuplicate,
		apperrors.ErrCodeUserExists,
		apperrors.ErrCodeHotelExists:
		return http.StatusConflict
	case apperrors.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AppError trả về response từ một *errors.AppError, giữ nguyên mã lỗi
// để caller phân biệt "phòng đã kín" với "thử lại sau"
func AppError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}
	c.JSON(httpStatusFor(appErr.Code), ErrorBody{
		Code:      0,
		Mess:      appErr.Message,
		ErrorCode: string(appErr.Code),
		Retryable: apperrors.IsRetryable(appErr),
	})
}
