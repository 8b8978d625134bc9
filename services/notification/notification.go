package notification

import (
	"fmt"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"

	"github.com/olahol/melody"
)

// Service đẩy thông báo realtime cho dashboard admin
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingMessageBuilder build message thông báo booking
type BookingMessageBuilder struct {
	booking *models.Booking
	event   string
}

func NewBookingMessageBuilder(booking *models.Booking, event string) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		booking: booking,
		event:   event,
	}
}

func (b *BookingMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Booking #%d %s: phòng %d từ %s đến %s",
		b.booking.ID,
		b.event,
		b.booking.RoomID,
		b.booking.CheckInDate.Format("2006-01-02"),
		b.booking.CheckOutDate.Format("2006-01-02"),
	)
}
