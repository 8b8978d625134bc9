package controllers

import (
	"github.com/shivam6677ojh/QuickStay-HotelBooking/dto"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/response"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services"

	"github.com/gin-gonic/gin"
)

// HotelController xử lý các request về khách sạn
type HotelController struct {
	hotels *services.HotelService
	search *services.SearchService
}

func NewHotelController(hotels *services.HotelService, search *services.SearchService) *HotelController {
	return &HotelController{hotels: hotels, search: search}
}

// RegisterHotel đăng ký khách sạn, user trở thành owner
func (ctl *HotelController) RegisterHotel(c *gin.Context) {
	userID := c.GetUint("userID")

	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	hotel, err := ctl.hotels.RegisterHotel(c.Request.Context(), userID, req)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Created(c, hotel)
}

// GetOwnerHotel lấy khách sạn của owner đang đăng nhập
func (ctl *HotelController) GetOwnerHotel(c *gin.Context) {
	ownerID := c.GetUint("userID")

	hotel, err := ctl.hotels.GetOwnerHotel(c.Request.Context(), ownerID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, hotel)
}

// UpdateHotel cập nhật thông tin khách sạn của owner
func (ctl *HotelController) UpdateHotel(c *gin.Context) {
	ownerID := c.GetUint("userID")

	var req dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	hotel, err := ctl.hotels.UpdateHotel(c.Request.Context(), ownerID, req)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, hotel)
}

// GetCities lấy danh sách thành phố có khách sạn
func (ctl *HotelController) GetCities(c *gin.Context) {
	cities, err := ctl.hotels.ListCities(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, cities)
}

// SearchHotels tìm khách sạn theo tên hoặc thành phố, chịu được gõ sai chính tả
func (ctl *HotelController) SearchHotels(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	hotels, err := ctl.search.SearchHotels(c.Request.Context(), query)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, hotels)
}
