package models

import (
	"time"
)

type Hotel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact"`
	City      string    `json:"city" gorm:"index"`
	OwnerID   uint      `json:"ownerId" gorm:"index"`
	Owner     *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Rooms     []Room    `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
