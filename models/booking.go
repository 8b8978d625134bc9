package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking là một lần giữ phòng của khách cho một khoảng ngày liên tục.
// CheckInDate là ngày nhận phòng (inclusive), CheckOutDate là ngày trả phòng
// (exclusive, khách rời đi sáng hôm đó). TotalPrice được tính một lần lúc tạo
// và không bao giờ tính lại, kể cả khi giá phòng thay đổi sau này.
type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId" gorm:"index"`
	User          *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RoomID        uint      `json:"roomId" gorm:"index"`
	Room          *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	HotelID       uint      `json:"hotelId" gorm:"index"`
	Hotel         *Hotel    `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	CheckInDate   time.Time `json:"checkInDate" gorm:"type:date;index"`
	CheckOutDate  time.Time `json:"checkOutDate" gorm:"type:date;index"`
	Guests        int       `json:"guests"`
	TotalPrice    int64     `json:"totalPrice"` // đơn vị nhỏ nhất của tiền tệ (cent)
	Status        string    `json:"status" gorm:"default:pending;index"`
	PaymentMethod string    `json:"paymentMethod" gorm:"default:Pay At Hotel"`
	IsPaid        bool      `json:"isPaid" gorm:"default:false"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Nights trả về số đêm của booking
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// Overlaps kiểm tra hai khoảng [checkIn, checkOut) có giao nhau không.
// Trùng biên (checkout của booking này bằng checkin của booking kia)
// không tính là giao, cho phép trả phòng và nhận phòng cùng ngày.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && checkIn.Before(b.CheckOutDate)
}
