package dto

// CreateHotelRequest là DTO cho request đăng ký khách sạn
type CreateHotelRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Contact string `json:"contact"`
	City    string `json:"city" binding:"required"`
}

// UpdateHotelRequest là DTO cho request cập nhật khách sạn
type UpdateHotelRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	City    string `json:"city"`
}

// HotelResponse là DTO cho response của khách sạn
type HotelResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	City    string `json:"city"`
	OwnerID uint   `json:"ownerId"`
}

// HotelStatsResponse khách sạn kèm số liệu cho trang admin
type HotelStatsResponse struct {
	HotelResponse
	RoomCount    int64 `json:"roomCount"`
	BookingCount int64 `json:"bookingCount"`
}
