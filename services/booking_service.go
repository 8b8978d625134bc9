package services

import (
	"context"
	"time"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/errors"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services/logger"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services/notification"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/validator"
)

const defaultStoreTimeout = 5 * time.Second

// BookingInput là dữ liệu đặt phòng đã parse xong, ngày ở UTC midnight
type BookingInput struct {
	UserID   uint
	RoomID   uint
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// BookingService là engine kiểm soát đặt phòng: quyết định nhận hay từ chối
// một yêu cầu dựa trên các booking đang giữ chỗ, tính giá, và xử lý hủy.
// Mọi đường ghi cho một phòng đi qua WithRoomLock của store nên hai yêu cầu
// trùng khoảng ngày trên cùng phòng không bao giờ cùng được nhận.
type BookingService struct {
	store    BookingStore
	rooms    RoomStore
	mailer   Mailer
	notifier notification.Service
	log      logger.Logger

	storeTimeout time.Duration
	// enforceToggle: phòng bị owner tắt (IsAvailable=false) không nhận
	// booking mới nhưng booking cũ vẫn giữ nguyên
	enforceToggle bool
	now           func() time.Time
}

// BookingServiceOption tùy biến BookingService khi khởi tạo
type BookingServiceOption func(*BookingService)

func WithMailer(m Mailer) BookingServiceOption {
	return func(s *BookingService) { s.mailer = m }
}

func WithNotifier(n notification.Service) BookingServiceOption {
	return func(s *BookingService) { s.notifier = n }
}

func WithStoreTimeout(d time.Duration) BookingServiceOption {
	return func(s *BookingService) { s.storeTimeout = d }
}

// WithClock thay nguồn thời gian, dùng cho test với ngày cố định
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) { s.now = now }
}

func WithoutRoomToggle() BookingServiceOption {
	return func(s *BookingService) { s.enforceToggle = false }
}

func NewBookingService(store BookingStore, rooms RoomStore, log logger.Logger, opts ...BookingServiceOption) *BookingService {
	s := &BookingService{
		store:         store,
		rooms:         rooms,
		log:           log,
		storeTimeout:  defaultStoreTimeout,
		enforceToggle: true,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// opCtx chặn trên mọi lời gọi store để một store treo trả về
// STORE_UNAVAILABLE thay vì giữ request mãi
func (s *BookingService) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

func (s *BookingService) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

// CheckAvailability trả về true nếu phòng trống trong khoảng [checkIn, checkOut).
// Không giữ chỗ: kết quả chỉ là snapshot, booking thật vẫn phải qua CreateBooking.
func (s *BookingService) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	if err := validator.ValidateDateRange(checkIn, checkOut); err != nil {
		return false, err
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	room, err := s.rooms.GetRoom(ctx, roomID)
	if err != nil {
		return false, err
	}
	if s.enforceToggle && !room.IsAvailable {
		return false, nil
	}

	overlapping, err := s.store.FindOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}

// CreateBooking nhận hoặc từ chối một yêu cầu đặt phòng. Kiểm tra overlap và
// insert chạy trong cùng room lock nên kết quả CheckAvailability cũ không thể
// gây double-booking. Giá = số đêm * giá mỗi đêm tại thời điểm đặt, chốt vào
// booking và không đổi về sau.
func (s *BookingService) CreateBooking(ctx context.Context, input BookingInput) (*models.Booking, error) {
	if err := validator.ValidateDateRange(input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}
	if err := validator.ValidateCheckInNotPast(input.CheckIn, s.today()); err != nil {
		return nil, err
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var booking *models.Booking
	err := s.store.WithRoomLock(ctx, input.RoomID, func(tx BookingStore, room *models.Room) error {
		if s.enforceToggle && !room.IsAvailable {
			return errors.NewAppError(errors.ErrCodeRoomNotAvailable, "Phòng hiện không nhận đặt", nil)
		}
		if err := validator.ValidateGuestCount(input.Guests, room.Capacity); err != nil {
			return err
		}

		overlapping, err := tx.FindOverlapping(ctx, input.RoomID, input.CheckIn, input.CheckOut)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return errors.NewAppError(errors.ErrCodeRoomNotAvailable, "Phòng đã có người đặt trong khoảng ngày này", nil)
		}

		booking = &models.Booking{
			UserID:       input.UserID,
			RoomID:       room.ID,
			HotelID:      room.HotelID,
			CheckInDate:  input.CheckIn,
			CheckOutDate: input.CheckOut,
			Guests:       input.Guests,
			Status:       models.BookingStatusPending,
		}
		booking.TotalPrice = int64(booking.Nights()) * room.PricePerNight
		return tx.Create(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	// Load lại kèm User/Room/Hotel cho response và email
	detailed, err := s.store.GetByID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Không load được booking %d sau khi tạo: %v", booking.ID, err)
		return booking, nil
	}

	s.notifyAsync(detailed, "mới")
	return detailed, nil
}

// CancelBooking hủy booking của chính người yêu cầu. Hủy là terminal và
// giải phóng khoảng ngày cho khách khác ngay lập tức.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, requesterID uint) (*models.Booking, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	booking, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != requesterID {
		return nil, errors.NewAppError(errors.ErrCodeNotAuthorized, "Bạn không có quyền hủy booking này", nil)
	}

	state := models.GetBookingState(booking.Status)
	if err := state.Cancel(booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeAlreadyCancelled, "Booking đã được hủy trước đó", err)
	}

	if err := s.store.Save(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyAsync(booking, "đã hủy")
	return booking, nil
}

// UpdateBookingStatus đổi trạng thái booking theo state machine, dành cho
// admin/owner. pending -> confirmed, pending/confirmed -> cancelled.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, bookingID uint, newStatus string) (*models.Booking, error) {
	if err := validator.ValidateBookingStatus(newStatus); err != nil {
		return nil, err
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	booking, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	state := models.GetBookingState(booking.Status)
	switch newStatus {
	case models.BookingStatusConfirmed:
		if err := state.Confirm(booking); err != nil {
			return nil, errors.NewAppError(errors.ErrCodeValidation, "Không thể xác nhận booking ở trạng thái hiện tại", err)
		}
	case models.BookingStatusCancelled:
		if err := state.Cancel(booking); err != nil {
			return nil, errors.NewAppError(errors.ErrCodeAlreadyCancelled, "Booking đã được hủy trước đó", err)
		}
	default:
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Không thể chuyển về trạng thái pending", nil)
	}

	if err := s.store.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetUserBookings trả về danh sách booking của một user, mới nhất trước
func (s *BookingService) GetUserBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.store.ListByUser(ctx, userID)
}

// GetHotelBookings trả về danh sách booking của một khách sạn
func (s *BookingService) GetHotelBookings(ctx context.Context, hotelID uint) ([]models.Booking, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.store.ListByHotel(ctx, hotelID)
}

// GetAllBookings trả về toàn bộ booking có phân trang, dành cho admin
func (s *BookingService) GetAllBookings(ctx context.Context, page, limit int) ([]models.Booking, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.store.ListAll(ctx, (page-1)*limit, limit)
}

// GetBooking trả về một booking kèm User/Room/Hotel
func (s *BookingService) GetBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.store.GetByID(ctx, bookingID)
}

// notifyAsync gửi email và broadcast websocket ngoài request path.
// Booking đã ghi xong, lỗi thông báo chỉ log một lần rồi bỏ qua.
func (s *BookingService) notifyAsync(booking *models.Booking, event string) {
	b := *booking
	go func() {
		if s.mailer != nil && b.User != nil {
			var err error
			if b.Status == models.BookingStatusCancelled {
				err = s.mailer.SendBookingCancellation(b.User.Email, b.User.Name, &b)
			} else {
				err = s.mailer.SendBookingConfirmation(b.User.Email, b.User.Name, &b)
			}
			if err != nil {
				s.log.Error("Gửi email cho booking %d thất bại: %v", b.ID, err)
			}
		}
		if s.notifier != nil {
			msg := notification.NewBookingMessageBuilder(&b, event).Build()
			if err := s.notifier.SendMessage(msg); err != nil {
				s.log.Error("Broadcast booking %d thất bại: %v", b.ID, err)
			}
		}
	}()
}
