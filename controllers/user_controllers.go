package controllers

import (
	"github.com/shivam6677ojh/QuickStay-HotelBooking/dto"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/response"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services"

	"github.com/gin-gonic/gin"
)

// UserController xử lý hồ sơ user
type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetProfile lấy hồ sơ của user đang đăng nhập
func (ctl *UserController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	profile, err := ctl.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, profile)
}

// PromoteAdminRequest là body của request nâng quyền admin
type PromoteAdminRequest struct {
	Token string `json:"token" binding:"required"`
}

// PromoteToAdmin nâng user đang đăng nhập lên admin bằng setup token
func (ctl *UserController) PromoteToAdmin(c *gin.Context) {
	userID := c.GetUint("userID")

	var req PromoteAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := ctl.users.PromoteToAdmin(c.Request.Context(), userID, req.Token); err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, nil)
}

// StoreRecentSearch lưu thành phố user vừa tìm kiếm
func (ctl *UserController) StoreRecentSearch(c *gin.Context) {
	userID := c.GetUint("userID")

	var req dto.StoreRecentSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	searches, err := ctl.users.StoreRecentSearch(c.Request.Context(), userID, req.City)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, gin.H{"recentSearchedCities": searches})
}
