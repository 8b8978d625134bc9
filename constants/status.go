package constants

import "time"

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// User role
const (
	RoleUser  = 0
	RoleOwner = 1
	RoleAdmin = 2
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Payment method
const (
	PaymentMethodPayAtHotel = "Pay At Hotel"
)

// Date layout dùng chung cho toàn bộ API (ISO-8601 calendar date)
const DateLayout = "2006-01-02"

// Cache TTL
const (
	CacheTTLListing   = 10 * time.Minute
	CacheTTLDashboard = 5 * time.Minute
)
