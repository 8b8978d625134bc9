package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestBookingOverlaps(t *testing.T) {
	b := &Booking{CheckInDate: day("2025-06-10"), CheckOutDate: day("2025-06-15")}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"giao một phần phía trước", "2025-06-08", "2025-06-12", true},
		{"giao một phần phía sau", "2025-06-13", "2025-06-18", true},
		{"nằm gọn bên trong", "2025-06-11", "2025-06-13", true},
		{"bao trùm toàn bộ", "2025-06-08", "2025-06-18", true},
		{"trùng khít", "2025-06-10", "2025-06-15", true},
		{"hoàn toàn trước", "2025-06-01", "2025-06-05", false},
		{"hoàn toàn sau", "2025-06-20", "2025-06-25", false},
		{"checkout trùng checkin của booking", "2025-06-05", "2025-06-10", false},
		{"checkin trùng checkout của booking", "2025-06-15", "2025-06-20", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(day(tt.checkIn), day(tt.checkOut)))
		})
	}
}

func TestBookingNights(t *testing.T) {
	b := &Booking{CheckInDate: day("2025-06-10"), CheckOutDate: day("2025-06-13")}
	assert.Equal(t, 3, b.Nights())

	oneNight := &Booking{CheckInDate: day("2025-06-10"), CheckOutDate: day("2025-06-11")}
	assert.Equal(t, 1, oneNight.Nights())
}
