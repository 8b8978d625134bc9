package dto

import "time"

// CheckAvailabilityRequest là DTO cho request kiểm tra phòng trống.
// Ngày truyền theo dạng ISO-8601 (YYYY-MM-DD).
type CheckAvailabilityRequest struct {
	RoomID       uint   `json:"room" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

// CheckAvailabilityResponse là DTO cho response kiểm tra phòng trống
type CheckAvailabilityResponse struct {
	IsAvailable bool `json:"isAvailable"`
}

// CreateBookingRequest là DTO cho request đặt phòng
type CreateBookingRequest struct {
	RoomID       uint   `json:"room" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Guests       int    `json:"guests" binding:"required"`
}

// BookingRoomResponse thông tin phòng trong booking
type BookingRoomResponse struct {
	ID            uint   `json:"id"`
	HotelID       uint   `json:"hotelId"`
	RoomType      string `json:"roomType"`
	PricePerNight int64  `json:"pricePerNight"`
}

// BookingHotelResponse thông tin khách sạn trong booking
type BookingHotelResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// BookingResponse là DTO cho response của booking
type BookingResponse struct {
	ID            uint                 `json:"id"`
	User          ActorResponse        `json:"user"`
	Room          BookingRoomResponse  `json:"room"`
	Hotel         BookingHotelResponse `json:"hotel"`
	CheckInDate   string               `json:"checkInDate"`
	CheckOutDate  string               `json:"checkOutDate"`
	Guests        int                  `json:"guests"`
	Nights        int                  `json:"nights"`
	TotalPrice    int64                `json:"totalPrice"`
	Status        string               `json:"status"`
	PaymentMethod string               `json:"paymentMethod"`
	IsPaid        bool                 `json:"isPaid"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// OwnerBookingsResponse là DTO cho danh sách booking của chủ khách sạn
type OwnerBookingsResponse struct {
	Bookings      []BookingResponse `json:"bookings"`
	TotalBookings int               `json:"totalBookings"`
	TotalEarnings int64             `json:"totalEarnings"`
}

// UpdateBookingStatusRequest là DTO cho request cập nhật trạng thái booking
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ActorResponse là DTO cho thông tin user/actor
type ActorResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
