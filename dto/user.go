package dto

// UserResponse là DTO cho thông tin user
type UserResponse struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           int      `json:"role"`
	Avatar         string   `json:"avatar"`
	IsVerified     bool     `json:"isVerified"`
	RecentSearches []string `json:"recentSearchedCities"`
}

// StoreRecentSearchRequest là DTO cho request lưu thành phố vừa tìm
type StoreRecentSearchRequest struct {
	City string `json:"recentSearchedCity" binding:"required"`
}

// UpdateUserRoleRequest là DTO cho request đổi role user
type UpdateUserRoleRequest struct {
	Role int `json:"role"`
}
