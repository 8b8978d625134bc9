package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Name            string         `gorm:"default:New User" json:"name"`
	Email           string         `gorm:"unique" json:"email"`
	Password        string         `json:"-"`
	IsVerified      bool           `gorm:"default:false" json:"isVerified"`
	Code            string         `json:"-"`
	CodeCreatedAt   time.Time      `json:"-"`
	Avatar          string         `json:"avatar"`
	Role            int            `gorm:"default:0" json:"role"`
	Status          int            `gorm:"default:1" json:"status"`
	RecentSearches  pq.StringArray `json:"recentSearches" gorm:"type:text[]"`
	Bookings        []Booking      `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}
