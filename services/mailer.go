package services

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/constants"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services/logger"

	"gopkg.in/gomail.v2"
)

// Mailer gửi email cho khách. Mọi lời gọi đều best-effort:
// lỗi gửi được log một lần rồi bỏ qua, không bao giờ chặn
// hay rollback thao tác đã ghi xuống store.
type Mailer interface {
	SendBookingConfirmation(email, name string, booking *models.Booking) error
	SendBookingCancellation(email, name string, booking *models.Booking) error
	SendVerificationCode(email, code string) error
}

// SMTPMailer implement Mailer qua SMTP
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    logger.Logger
}

// NewSMTPMailer khởi tạo mailer từ biến môi trường SMTP_*
func NewSMTPMailer(log logger.Logger) *SMTPMailer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		log.Warn("SMTP_PORT không hợp lệ, dùng mặc định 587: %v", err)
		port = 587
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(
			os.Getenv("SMTP_HOST"),
			port,
			os.Getenv("SMTP_USER"),
			os.Getenv("SMTP_PASS"),
		),
		from: os.Getenv("SENDER_EMAIL"),
		log:  log,
	}
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func formatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

// SendBookingConfirmation gửi email xác nhận đặt phòng
func (m *SMTPMailer) SendBookingConfirmation(email, name string, booking *models.Booking) error {
	hotelName := ""
	roomType := ""
	if booking.Hotel != nil {
		hotelName = booking.Hotel.Name
	}
	if booking.Room != nil {
		roomType = booking.Room.RoomType
	}

	body := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h1 style="color: #4F46E5;">Booking Confirmed!</h1>
		<p>Dear %s,</p>
		<p>Your booking has been confirmed with the following details:</p>
		<div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<ul style="list-style: none; padding: 0;">
				<li style="margin: 10px 0;"><strong>Hotel:</strong> %s</li>
				<li style="margin: 10px 0;"><strong>Room Type:</strong> %s</li>
				<li style="margin: 10px 0;"><strong>Check-In Date:</strong> %s</li>
				<li style="margin: 10px 0;"><strong>Check-Out Date:</strong> %s</li>
				<li style="margin: 10px 0;"><strong>Number of Guests:</strong> %d</li>
				<li style="margin: 10px 0; font-size: 18px;"><strong>Total Price:</strong> <span style="color: #4F46E5;">%s</span></li>
			</ul>
		</div>
		<p>We look forward to hosting you!</p>
		<p>Best regards,<br/><strong>QuickStay Team</strong></p>
	</div>`,
		name, hotelName, roomType,
		formatDate(booking.CheckInDate), formatDate(booking.CheckOutDate),
		booking.Guests, formatAmount(booking.TotalPrice))

	return m.send(email, "Booking Confirmation - QuickStay", body)
}

// SendBookingCancellation gửi email xác nhận hủy phòng
func (m *SMTPMailer) SendBookingCancellation(email, name string, booking *models.Booking) error {
	hotelName := ""
	if booking.Hotel != nil {
		hotelName = booking.Hotel.Name
	}

	body := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h1 style="color: #DC2626;">Booking Cancelled</h1>
		<p>Dear %s,</p>
		<p>Your booking has been successfully cancelled. Here are the details:</p>
		<div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<ul style="list-style: none; padding: 0;">
				<li style="margin: 10px 0;"><strong>Hotel:</strong> %s</li>
				<li style="margin: 10px 0;"><strong>Check-In Date:</strong> %s</li>
				<li style="margin: 10px 0;"><strong>Check-Out Date:</strong> %s</li>
				<li style="margin: 10px 0;"><strong>Total Amount:</strong> %s</li>
			</ul>
		</div>
		<p>We hope to serve you again soon!</p>
		<p>Best regards,<br/><strong>QuickStay Team</strong></p>
	</div>`,
		name, hotelName,
		formatDate(booking.CheckInDate), formatDate(booking.CheckOutDate),
		formatAmount(booking.TotalPrice))

	return m.send(email, "Booking Cancellation - QuickStay", body)
}

// SendVerificationCode gửi mã xác thực email khi đăng ký
func (m *SMTPMailer) SendVerificationCode(email, code string) error {
	body := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h1 style="color: #4F46E5;">Verify your email</h1>
		<p>Your QuickStay verification code is:</p>
		<h2 style="letter-spacing: 4px;">%s</h2>
		<p style="color: #6B7280; font-size: 14px;">The code expires in 5 minutes.</p>
	</div>`, code)

	return m.send(email, "Email Verification - QuickStay", body)
}
