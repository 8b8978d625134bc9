package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	HotelID       uint            `json:"hotelId" gorm:"index"`
	Hotel         *Hotel          `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	RoomType      string          `json:"roomType"`
	PricePerNight int64           `json:"pricePerNight"` // đơn vị nhỏ nhất của tiền tệ (cent)
	Capacity      int             `json:"capacity" gorm:"default:2"`
	Amenities     pq.StringArray  `json:"amenities" gorm:"type:text[]"`
	Description   string          `json:"description"`
	Images        json.RawMessage `json:"images" gorm:"type:json"`
	IsAvailable   bool            `json:"isAvailable" gorm:"default:true"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) Validate() error {
	if r.RoomType == "" {
		return fmt.Errorf("room type is required")
	}
	if r.PricePerNight <= 0 {
		return fmt.Errorf("invalid price per night: %d, must be positive", r.PricePerNight)
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("invalid capacity: %d, must be positive", r.Capacity)
	}
	return nil
}
