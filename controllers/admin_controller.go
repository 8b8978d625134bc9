package controllers

import (
	"strconv"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/dto"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/response"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services"

	"github.com/gin-gonic/gin"
)

// AdminController xử lý các request của trang quản trị
type AdminController struct {
	dashboard *services.DashboardService
	bookings  *services.BookingService
	users     *services.UserService
	hotels    *services.HotelService
}

func NewAdminController(dashboard *services.DashboardService, bookings *services.BookingService,
	users *services.UserService, hotels *services.HotelService) *AdminController {
	return &AdminController{dashboard: dashboard, bookings: bookings, users: users, hotels: hotels}
}

// GetDashboard lấy số liệu tổng quan toàn hệ thống
func (ctl *AdminController) GetDashboard(c *gin.Context) {
	stats, err := ctl.dashboard.GetAdminStats(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, stats)
}

// GetOwnerDashboard lấy số liệu của khách sạn owner đang đăng nhập
func (ctl *AdminController) GetOwnerDashboard(c *gin.Context) {
	ownerID := c.GetUint("userID")

	hotel, err := ctl.hotels.GetOwnerHotel(c.Request.Context(), ownerID)
	if err != nil {
		response.AppError(c, err)
		return
	}

	stats, err := ctl.dashboard.GetOwnerStats(c.Request.Context(), hotel.ID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, stats)
}

// GetBookings lấy toàn bộ booking có phân trang
func (ctl *AdminController) GetBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	bookings, total, err := ctl.bookings.GetAllBookings(c.Request.Context(), page, limit)
	if err != nil {
		response.AppError(c, err)
		return
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, convertToBookingResponse(b))
	}
	response.SuccessWithPagination(c, result, page, limit, int(total))
}

// GetUsers lấy danh sách user có phân trang
func (ctl *AdminController) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := ctl.users.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.SuccessWithPagination(c, users, page, limit, int(total))
}

// GetHotels lấy danh sách khách sạn kèm số liệu
func (ctl *AdminController) GetHotels(c *gin.Context) {
	hotels, err := ctl.hotels.ListHotels(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, hotels)
}

// UpdateBookingStatus đổi trạng thái booking (xác nhận hoặc hủy)
func (ctl *AdminController) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctl.bookings.UpdateBookingStatus(c.Request.Context(), uint(bookingID), req.Status)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, convertToBookingResponse(*booking))
}

// UpdateUserRole đổi role của user
func (ctl *AdminController) UpdateUserRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID user không hợp lệ")
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := ctl.users.UpdateRole(c.Request.Context(), uint(userID), req.Role); err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, nil)
}
