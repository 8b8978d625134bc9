package dto

import "encoding/json"

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	RoomType      string   `json:"roomType" binding:"required"`
	PricePerNight int64    `json:"pricePerNight" binding:"required"`
	Capacity      int      `json:"capacity"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
}

// UpdateRoomRequest là DTO cho request cập nhật phòng
type UpdateRoomRequest struct {
	ID            uint     `json:"id" binding:"required"`
	RoomType      string   `json:"roomType"`
	PricePerNight int64    `json:"pricePerNight"`
	Capacity      int      `json:"capacity"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
}

// ToggleRoomRequest là DTO cho request bật/tắt phòng
type ToggleRoomRequest struct {
	RoomID uint `json:"roomId" binding:"required"`
}

// RoomResponse là DTO cho response của phòng
type RoomResponse struct {
	ID            uint                 `json:"id"`
	Hotel         BookingHotelResponse `json:"hotel"`
	RoomType      string               `json:"roomType"`
	PricePerNight int64                `json:"pricePerNight"`
	Capacity      int                  `json:"capacity"`
	Amenities     []string             `json:"amenities"`
	Description   string               `json:"description"`
	Images        json.RawMessage      `json:"images"`
	IsAvailable   bool                 `json:"isAvailable"`
}

// RoomBookedDates danh sách khoảng ngày đã đặt của một phòng (cho calendar)
type RoomBookedDates struct {
	RoomID uint        `json:"roomId"`
	Dates  []DateRange `json:"dates"`
}

// DateRange một khoảng ngày [checkIn, checkOut)
type DateRange struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}
