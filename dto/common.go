package dto

// DashboardStats số liệu tổng quan cho trang admin
type DashboardStats struct {
	TotalBookings   int64 `json:"totalBookings"`
	TotalRevenue    int64 `json:"totalRevenue"`
	TotalUsers      int64 `json:"totalUsers"`
	TotalHotels     int64 `json:"totalHotels"`
	TotalRooms      int64 `json:"totalRooms"`
	PendingBookings int64 `json:"pendingBookings"`
}

// ScoredHotel khách sạn kèm điểm phù hợp khi tìm kiếm
type ScoredHotel struct {
	Hotel HotelResponse `json:"hotel"`
	Score int           `json:"score"`
}
