package services

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/shivam6677ojh/QuickStay-HotelBooking/errors"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingStore là boundary lưu trữ của booking engine. GormBookingStore là
// implementation thật; test dùng bản in-memory. WithRoomLock là primitive
// atomicity duy nhất engine cần: mọi thao tác check+insert cho một phòng
// phải chạy bên trong nó.
type BookingStore interface {
	// FindOverlapping trả về các booking chưa hủy của phòng giao với
	// khoảng [checkIn, checkOut)
	FindOverlapping(ctx context.Context, roomID uint, checkIn, checkOut time.Time) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	Save(ctx context.Context, booking *models.Booking) error
	ListByUser(ctx context.Context, userID uint) ([]models.Booking, error)
	ListByHotel(ctx context.Context, hotelID uint) ([]models.Booking, error)
	ListAll(ctx context.Context, offset, limit int) ([]models.Booking, int64, error)
	// WithRoomLock chạy fn trong transaction đã giữ lock trên row của phòng.
	// Hai booking cùng phòng serialize với nhau tại đây; phòng khác nhau
	// không chặn nhau.
	WithRoomLock(ctx context.Context, roomID uint, fn func(tx BookingStore, room *models.Room) error) error
}

// RoomStore là boundary tra cứu phòng (giá mỗi đêm, sức chứa, toggle)
type RoomStore interface {
	GetRoom(ctx context.Context, roomID uint) (*models.Room, error)
}

// wrapStoreErr ánh xạ lỗi hạ tầng sang mã retryable, tách khỏi lỗi nghiệp vụ
func wrapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsAppError(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.NewAppError(apperrors.ErrCodeStoreUnavailable, "Store không phản hồi kịp, vui lòng thử lại", err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 40001 serialization_failure, 40P01 deadlock_detected
		if pgErr.Code == "40001" || pgErr.Code == "40P01" {
			return apperrors.NewAppError(apperrors.ErrCodeStoreConflict, "Xung đột ghi đồng thời, vui lòng thử lại", err)
		}
	}
	return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi truy vấn dữ liệu", err)
}

// GormBookingStore implement BookingStore trên Postgres
type GormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

func (s *GormBookingStore) FindOverlapping(ctx context.Context, roomID uint, checkIn, checkOut time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("room_id = ? AND status <> ? AND check_in_date < ? AND check_out_date > ?",
			roomID, models.BookingStatusCancelled, checkOut, checkIn).
		Find(&bookings).Error
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return bookings, nil
}

func (s *GormBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	if err := s.db.WithContext(ctx).Create(booking).Error; err != nil {
		return wrapStoreErr(err)
	}
	return nil
}

func (s *GormBookingStore) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Preload("Hotel").
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeBookingNotFound, "Không tìm thấy booking", err)
		}
		return nil, wrapStoreErr(err)
	}
	return &booking, nil
}

func (s *GormBookingStore) Save(ctx context.Context, booking *models.Booking) error {
	if err := s.db.WithContext(ctx).Save(booking).Error; err != nil {
		return wrapStoreErr(err)
	}
	return nil
}

func (s *GormBookingStore) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Room").
		Preload("Hotel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return bookings, nil
}

func (s *GormBookingStore) ListByHotel(ctx context.Context, hotelID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Room").
		Preload("User").
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return bookings, nil
}

func (s *GormBookingStore) ListAll(ctx context.Context, offset, limit int) ([]models.Booking, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Booking{}).Count(&total).Error; err != nil {
		return nil, 0, wrapStoreErr(err)
	}

	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Preload("Hotel").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, wrapStoreErr(err)
	}
	return bookings, total, nil
}

// WithRoomLock mở transaction và SELECT ... FOR UPDATE row của phòng trước
// khi gọi fn. Lock giữ đến khi commit nên overlap-check và insert bên trong
// fn là atomic đối với mọi booking attempt khác trên cùng phòng.
func (s *GormBookingStore) WithRoomLock(ctx context.Context, roomID uint, fn func(tx BookingStore, room *models.Room) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
			}
			return wrapStoreErr(err)
		}
		return fn(&GormBookingStore{db: tx}, &room)
	})
	return wrapStoreErr(err)
}

// GormRoomStore implement RoomStore trên Postgres
type GormRoomStore struct {
	db *gorm.DB
}

func NewGormRoomStore(db *gorm.DB) *GormRoomStore {
	return &GormRoomStore{db: db}
}

func (s *GormRoomStore) GetRoom(ctx context.Context, roomID uint) (*models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).Preload("Hotel").First(&room, roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		return nil, wrapStoreErr(err)
	}
	return &room, nil
}
