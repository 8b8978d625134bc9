package controllers

import (
	"strconv"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/constants"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/dto"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/response"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/validator"

	"github.com/gin-gonic/gin"
)

func convertToBookingResponse(b models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:            b.ID,
		CheckInDate:   b.CheckInDate.Format(constants.DateLayout),
		CheckOutDate:  b.CheckOutDate.Format(constants.DateLayout),
		Guests:        b.Guests,
		Nights:        b.Nights(),
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		PaymentMethod: b.PaymentMethod,
		IsPaid:        b.IsPaid,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.User != nil {
		resp.User = dto.ActorResponse{ID: b.User.ID, Name: b.User.Name, Email: b.User.Email}
	}
	if b.Room != nil {
		resp.Room = dto.BookingRoomResponse{
			ID:            b.Room.ID,
			HotelID:       b.Room.HotelID,
			RoomType:      b.Room.RoomType,
			PricePerNight: b.Room.PricePerNight,
		}
	}
	if b.Hotel != nil {
		resp.Hotel = dto.BookingHotelResponse{
			ID:      b.Hotel.ID,
			Name:    b.Hotel.Name,
			Address: b.Hotel.Address,
			City:    b.Hotel.City,
		}
	}
	return resp
}

// BookingController xử lý các request đặt phòng
type BookingController struct {
	bookings *services.BookingService
	hotels   *services.HotelService
}

func NewBookingController(bookings *services.BookingService, hotels *services.HotelService) *BookingController {
	return &BookingController{bookings: bookings, hotels: hotels}
}

// CheckAvailability kiểm tra phòng trống trong khoảng ngày.
// Kết quả chỉ mang tính tham khảo, đặt phòng thật vẫn kiểm tra lại.
// @Summary Kiểm tra phòng trống
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.CheckAvailabilityRequest true "Khoảng ngày cần kiểm tra"
// @Success 200 {object} response.Response
// @Router /api/booking/check-availability [post]
func (ctl *BookingController) CheckAvailability(c *gin.Context) {
	var req dto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	checkIn, err := validator.ParseDate(req.CheckInDate)
	if err != nil {
		response.AppError(c, err)
		return
	}
	checkOut, err := validator.ParseDate(req.CheckOutDate)
	if err != nil {
		response.AppError(c, err)
		return
	}

	available, err := ctl.bookings.CheckAvailability(c.Request.Context(), req.RoomID, checkIn, checkOut)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dto.CheckAvailabilityResponse{IsAvailable: available})
}

// CreateBooking đặt phòng cho user đang đăng nhập
// @Summary Đặt phòng
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookingRequest true "Thông tin đặt phòng"
// @Success 201 {object} response.Response
// @Router /api/booking/book [post]
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	userID := c.GetUint("userID")

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	checkIn, err := validator.ParseDate(req.CheckInDate)
	if err != nil {
		response.AppError(c, err)
		return
	}
	checkOut, err := validator.ParseDate(req.CheckOutDate)
	if err != nil {
		response.AppError(c, err)
		return
	}

	booking, err := ctl.bookings.CreateBooking(c.Request.Context(), services.BookingInput{
		UserID:   userID,
		RoomID:   req.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   req.Guests,
	})
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Created(c, convertToBookingResponse(*booking))
}

// GetUserBookings lấy danh sách booking của user đang đăng nhập
// @Summary Danh sách booking của user
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/booking/user [get]
func (ctl *BookingController) GetUserBookings(c *gin.Context) {
	userID := c.GetUint("userID")

	bookings, err := ctl.bookings.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		response.AppError(c, err)
		return
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, convertToBookingResponse(b))
	}
	response.Success(c, result)
}

// GetOwnerBookings lấy danh sách booking của khách sạn owner kèm tổng doanh thu
// @Summary Danh sách booking của owner
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/booking/owner [get]
func (ctl *BookingController) GetOwnerBookings(c *gin.Context) {
	ownerID := c.GetUint("userID")

	hotel, err := ctl.hotels.GetOwnerHotel(c.Request.Context(), ownerID)
	if err != nil {
		response.AppError(c, err)
		return
	}

	bookings, err := ctl.bookings.GetHotelBookings(c.Request.Context(), hotel.ID)
	if err != nil {
		response.AppError(c, err)
		return
	}

	result := dto.OwnerBookingsResponse{
		Bookings:      make([]dto.BookingResponse, 0, len(bookings)),
		TotalBookings: len(bookings),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, convertToBookingResponse(b))
		if b.Status != models.BookingStatusCancelled {
			result.TotalEarnings += b.TotalPrice
		}
	}
	response.Success(c, result)
}

// CancelBooking hủy booking của chính user đang đăng nhập
// @Summary Hủy booking
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID booking"
// @Success 200 {object} response.Response
// @Router /api/booking/{id}/cancel [put]
func (ctl *BookingController) CancelBooking(c *gin.Context) {
	userID := c.GetUint("userID")

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	booking, err := ctl.bookings.CancelBooking(c.Request.Context(), uint(bookingID), userID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, convertToBookingResponse(*booking))
}
