package dto

import "time"

// RegisterInput là DTO cho request đăng ký
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginInput là DTO cho request đăng nhập
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthInput là DTO cho request đăng nhập Google
type GoogleAuthInput struct {
	TokenID string `json:"tokenId" binding:"required"`
}

// GoogleUser thông tin người dùng lấy từ payload của Google
type GoogleUser struct {
	Name          string
	Email         string
	VerifiedEmail bool
	Picture       string
}

// UserLoginResponse là DTO cho response đăng nhập
type UserLoginResponse struct {
	UserID       uint      `json:"userId"`
	UserName     string    `json:"userName"`
	UserEmail    string    `json:"userEmail"`
	UserVerified bool      `json:"userVerified"`
	UserRole     int       `json:"userRole"`
	UserAvatar   string    `json:"userAvatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
