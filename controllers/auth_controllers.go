package controllers

import (
	"github.com/shivam6677ojh/QuickStay-HotelBooking/dto"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/response"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services"

	"github.com/gin-gonic/gin"
)

func convertToLoginResponse(user *models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserRole:     user.Role,
		UserAvatar:   user.Avatar,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// AuthController xử lý đăng ký và đăng nhập
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register đăng ký tài khoản mới, mã xác thực gửi qua email
func (ctl *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := ctl.auth.Register(c.Request.Context(), input)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Created(c, gin.H{"id": user.ID, "email": user.Email})
}

// VerifyEmail xác thực email bằng mã đã gửi
func (ctl *AuthController) VerifyEmail(c *gin.Context) {
	email := c.Query("email")
	code := c.Query("code")
	if email == "" || code == "" {
		response.BadRequest(c, "Thiếu email hoặc mã xác thực")
		return
	}

	if err := ctl.auth.VerifyEmail(c.Request.Context(), email, code); err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, nil)
}

// Login đăng nhập bằng email và mật khẩu
func (ctl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, token, err := ctl.auth.Login(c.Request.Context(), input)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, gin.H{
		"user":  convertToLoginResponse(user),
		"token": token,
	})
}

// Logout đăng xuất. Token là stateless nên server chỉ xác nhận,
// client tự xóa token.
func (ctl *AuthController) Logout(c *gin.Context) {
	response.Success(c, nil)
}

// AuthGoogle đăng nhập bằng tài khoản Google
func (ctl *AuthController) AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, token, err := ctl.auth.GoogleLogin(c.Request.Context(), input.TokenID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, gin.H{
		"user":  convertToLoginResponse(user),
		"token": token,
	})
}
