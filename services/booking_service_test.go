package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/constants"
	apperrors "github.com/shivam6677ojh/QuickStay-HotelBooking/errors"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore là bản in-memory của BookingStore và RoomStore cho test.
// WithRoomLock dùng mutex riêng cho từng phòng, giống hành vi
// SELECT FOR UPDATE trên row của phòng.
type memStore struct {
	mu       sync.Mutex
	roomMu   map[uint]*sync.Mutex
	rooms    map[uint]models.Room
	users    map[uint]models.User
	bookings map[uint]models.Booking
	nextID   uint
}

func newMemStore() *memStore {
	return &memStore{
		roomMu:   make(map[uint]*sync.Mutex),
		rooms:    make(map[uint]models.Room),
		users:    make(map[uint]models.User),
		bookings: make(map[uint]models.Booking),
	}
}

func (s *memStore) addRoom(room models.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
	s.roomMu[room.ID] = &sync.Mutex{}
}

func (s *memStore) addUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

func (s *memStore) setRoomPrice(roomID uint, price int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room := s.rooms[roomID]
	room.PricePerNight = price
	s.rooms[roomID] = room
}

func (s *memStore) FindOverlapping(ctx context.Context, roomID uint, checkIn, checkOut time.Time) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Booking
	for _, b := range s.bookings {
		if b.RoomID != roomID || b.Status == models.BookingStatusCancelled {
			continue
		}
		if b.Overlaps(checkIn, checkOut) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *memStore) Create(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	booking.ID = s.nextID
	if booking.PaymentMethod == "" {
		booking.PaymentMethod = constants.PaymentMethodPayAtHotel
	}
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrCodeBookingNotFound, "Không tìm thấy booking", nil)
	}
	if user, ok := s.users[b.UserID]; ok {
		b.User = &user
	}
	if room, ok := s.rooms[b.RoomID]; ok {
		b.Room = &room
	}
	return &b, nil
}

func (s *memStore) Save(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *memStore) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *memStore) ListByHotel(ctx context.Context, hotelID uint) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Booking
	for _, b := range s.bookings {
		if b.HotelID == hotelID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *memStore) ListAll(ctx context.Context, offset, limit int) ([]models.Booking, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Booking
	for _, b := range s.bookings {
		result = append(result, b)
	}
	return result, int64(len(s.bookings)), nil
}

func (s *memStore) WithRoomLock(ctx context.Context, roomID uint, fn func(tx BookingStore, room *models.Room) error) error {
	s.mu.Lock()
	roomLock, ok := s.roomMu[roomID]
	if !ok {
		s.mu.Unlock()
		return apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", nil)
	}
	s.mu.Unlock()

	roomLock.Lock()
	defer roomLock.Unlock()

	s.mu.Lock()
	room := s.rooms[roomID]
	s.mu.Unlock()
	return fn(s, &room)
}

func (s *memStore) GetRoom(ctx context.Context, roomID uint) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", nil)
	}
	return &room, nil
}

func date(s string) time.Time {
	t, err := time.Parse(constants.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// fixedClock trả về một ngày cố định để test không phụ thuộc ngày chạy
func fixedClock() time.Time {
	return date("2025-01-01")
}

func newTestService(store *memStore, opts ...BookingServiceOption) *BookingService {
	base := []BookingServiceOption{WithClock(fixedClock)}
	return NewBookingService(store, store, logger.NewDefaultLogger(logger.ErrorLevel), append(base, opts...)...)
}

func newTestStore() *memStore {
	store := newMemStore()
	store.addUser(models.User{ID: 1, Name: "Alice", Email: "alice@example.com"})
	store.addUser(models.User{ID: 2, Name: "Bob", Email: "bob@example.com"})
	// Phòng 101: $100/đêm, chứa tối đa 2 khách
	store.addRoom(models.Room{ID: 101, HotelID: 1, RoomType: "Double Bed", PricePerNight: 10000, Capacity: 2, IsAvailable: true})
	store.addRoom(models.Room{ID: 102, HotelID: 1, RoomType: "Single Bed", PricePerNight: 5000, Capacity: 1, IsAvailable: true})
	return store
}

func TestCheckAvailabilityEmptyRoom(t *testing.T) {
	svc := newTestService(newTestStore())

	available, err := svc.CheckAvailability(context.Background(), 101, date("2025-06-01"), date("2025-06-04"))
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCheckAvailabilityInvalidRange(t *testing.T) {
	svc := newTestService(newTestStore())

	_, err := svc.CheckAvailability(context.Background(), 101, date("2025-06-04"), date("2025-06-01"))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidRange))

	// checkOut == checkIn cũng không hợp lệ, booking tối thiểu một đêm
	_, err = svc.CheckAvailability(context.Background(), 101, date("2025-06-01"), date("2025-06-01"))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidRange))
}

func TestCheckAvailabilityRoomNotFound(t *testing.T) {
	svc := newTestService(newTestStore())

	_, err := svc.CheckAvailability(context.Background(), 999, date("2025-06-01"), date("2025-06-04"))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRoomNotFound))
}

func TestCreateBookingComputesPrice(t *testing.T) {
	svc := newTestService(newTestStore())

	// 3 đêm x $100 = $300
	booking, err := svc.CreateBooking(context.Background(), BookingInput{
		UserID: 1, RoomID: 101,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30000), booking.TotalPrice)
	assert.Equal(t, 3, booking.Nights())
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, uint(1), booking.HotelID)
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	svc := newTestService(newTestStore())
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, BookingInput{
		UserID: 1, RoomID: 101,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-05"),
		Guests: 1,
	})
	require.NoError(t, err)

	// Giao một phần với booking đã có
	_, err = svc.CreateBooking(ctx, BookingInput{
		UserID: 2, RoomID: 101,
		CheckIn: date("2025-06-03"), CheckOut: date("2025-06-07"),
		Guests: 1,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRoomNotAvailable))

	// Nằm gọn bên trong
	_, err = svc.CreateBooking(ctx, BookingInput{
		UserID: 2, RoomID: 101,
		CheckIn: date("2025-06-02"), CheckOut: date("2025-06-03"),
		Guests: 1,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRoomNotAvailable))
}

func TestCreateBookingAllowsBackToBack(t *testing.T) {
	svc := newTestService(newTestStore())
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, BookingInput{
		UserID: 1, RoomID: 101,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 1,
	})
	require.NoError(t, err)

	// Nhận phòng đúng ngày khách trước trả phòng, không tính là trùng
	_, err = svc.CreateBooking(ctx, BookingInput{
		UserID: 2, RoomID: 101,
		CheckIn: date("2025-06-04"), CheckOut: date("2025-06-06"),
		Guests: 1,
	})
	require.NoError(t, err)

	// Và chiều ngược lại: trả phòng đúng ngày khách sau nhận
	_, err = svc.CreateBooking(ctx, BookingInput{
		UserID: 2, RoomID: 101,
		CheckIn: date("2025-05-30"), CheckOut: date("2025-06-01"),
		Guests: 1,
	})
	require.NoError(t, err)
}

func TestCreateBookingRejectsPastCheckIn(t *testing.T) {
	svc := newTestService(newTestStore())

	_, err := svc.CreateBooking(context.Background(), BookingInput{
		UserID: 1, RoomID: 101,
		CheckIn: date("2024-12-30"), CheckOut: date("2025-01-02"),
		Guests: 1,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidRange))
}

func TestCreateBookingRejectsGuestOverflow(t *testing.T) {
	svc := newTestService(newTestStore())

	_, err := svc.CreateBooking(context.Background(), BookingInput{
		UserID: 1, RoomID: 101,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 3,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidGuestCount))

	_, err = svc.CreateBooking(context.Background(), BookingInput{
		UserID: 1, RoomID: 101,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 0,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidGuestCount))
}

func TestCreateBookingRoomToggledOff(t *testing.T) {
	store := newTestStore()
	room := models.Room{ID: 103, HotelID: 1, RoomType: "Suite", PricePerNight: 20000, Capacity: 4, IsAvailable: false}
	store.addRoom(room)
	svc := newTestService(store)

	_, err := svc.CreateBooking(context.Background(), BookingInput{
		UserID: 1, RoomID: 103,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 2,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRoomNotAvailable))

	// Tắt policy toggle thì phòng vẫn nhận đặt
	svcNoToggle := newTestService(store, WithoutRoomToggle())
	_, err = svcNoToggle.CreateBooking(context.Background(), BookingInput{
		UserID: 1, RoomID: 103,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 2,
	})
	require.NoError(t, err)
}

func TestConcurrentBookingSameRange(t *testing.T) {
	svc := newTestService(newTestStore())

	const attempts = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := svc.CreateBooking(context.Background(), BookingInput{
				UserID: userID, RoomID: 101,
				CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
				Guests: 1,
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if apperrors.HasCode(err, apperrors.ErrCodeRoomNotAvailable) {
				rejected++
			}
		}(uint(1 + i%2))
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
}

func TestConcurrentBookingDifferentRooms(t *testing.T) {
	svc := newTestService(newTestStore())

	var wg sync.WaitGroup
	errs := make([]error, 2)
	rooms := []uint{101, 102}
	for i, roomID := range rooms {
		wg.Add(1)
		go func(i int, roomID uint) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(context.Background(), BookingInput{
				UserID: 1, RoomID: roomID,
				CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
				Guests: 1,
			})
		}(i, roomID)
	}
	wg.Wait()

	// Phòng khác nhau không chặn nhau
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
}

func TestCancelBookingFreesRange(t *testing.T) {
	svc := newTestService(newTestStore())
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, BookingInput{
		UserID: 1, RoomID: 101,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 1,
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking(ctx, booking.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	// Khoảng ngày được giải phóng cho khách khác
	_, err = svc.CreateBooking(ctx, BookingInput{
		UserID: 2, RoomID: 101,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 1,
	})
	require.NoError(t, err)
}

func TestCancelBookingNotOwner(t *testing.T) {
	svc := newTestService(newTestStore())
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, BookingInput{
		UserID: 1, RoomID: 101,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 1,
	})
	require.NoError(t, err)

	_, err = svc.CancelBooking(ctx, booking.ID, 2)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotAuthorized))

	// Booking vẫn giữ nguyên, khách khác vẫn bị từ chối
	_, err = svc.CreateBooking(ctx, BookingInput{
		UserID: 2, RoomID: 101,
		CheckIn: date("2025-06-02"), CheckOut: date("2025-06-03"),
		Guests: 1,
	})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRoomNotAvailable))
}

func TestCancelBookingTwice(t *testing.T) {
	svc := newTestService(newTestStore())
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, BookingInput{
		UserID: 1, RoomID: 101,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 1,
	})
	require.NoError(t, err)

	_, err = svc.CancelBooking(ctx, booking.ID, 1)
	require.NoError(t, err)

	_, err = svc.CancelBooking(ctx, booking.ID, 1)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeAlreadyCancelled))
}

func TestCancelBookingNotFound(t *testing.T) {
	svc := newTestService(newTestStore())

	_, err := svc.CancelBooking(context.Background(), 999, 1)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeBookingNotFound))
}

func TestPriceLockedAtBookingTime(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, BookingInput{
		UserID: 1, RoomID: 101,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 1,
	})
	require.NoError(t, err)
	require.Equal(t, int64(30000), booking.TotalPrice)

	// Owner tăng giá, booking cũ không đổi
	store.setRoomPrice(101, 20000)

	got, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), got.TotalPrice)

	// Booking mới dùng giá mới
	newBooking, err := svc.CreateBooking(ctx, BookingInput{
		UserID: 2, RoomID: 101,
		CheckIn: date("2025-07-01"), CheckOut: date("2025-07-03"),
		Guests: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(40000), newBooking.TotalPrice)
}

func TestUpdateBookingStatus(t *testing.T) {
	svc := newTestService(newTestStore())
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, BookingInput{
		UserID: 1, RoomID: 101,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 1,
	})
	require.NoError(t, err)

	confirmed, err := svc.UpdateBookingStatus(ctx, booking.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)

	// Xác nhận lần nữa bị từ chối
	_, err = svc.UpdateBookingStatus(ctx, booking.ID, models.BookingStatusConfirmed)
	require.Error(t, err)

	// Booking đã confirm vẫn hủy được
	cancelled, err := svc.UpdateBookingStatus(ctx, booking.ID, models.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	// Đã hủy là terminal
	_, err = svc.UpdateBookingStatus(ctx, booking.ID, models.BookingStatusConfirmed)
	require.Error(t, err)

	_, err = svc.UpdateBookingStatus(ctx, booking.ID, "không tồn tại")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
}

func TestCheckAvailabilityReflectsBookings(t *testing.T) {
	svc := newTestService(newTestStore())
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, BookingInput{
		UserID: 1, RoomID: 101,
		CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"),
		Guests: 1,
	})
	require.NoError(t, err)

	available, err := svc.CheckAvailability(ctx, 101, date("2025-06-02"), date("2025-06-05"))
	require.NoError(t, err)
	assert.False(t, available)

	// Liền kề thì vẫn trống
	available, err = svc.CheckAvailability(ctx, 101, date("2025-06-04"), date("2025-06-06"))
	require.NoError(t, err)
	assert.True(t, available)

	// Hủy xong thì trống lại
	_, err = svc.CancelBooking(ctx, booking.ID, 1)
	require.NoError(t, err)

	available, err = svc.CheckAvailability(ctx, 101, date("2025-06-02"), date("2025-06-05"))
	require.NoError(t, err)
	assert.True(t, available)
}
