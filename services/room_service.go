package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/constants"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/dto"
	apperrors "github.com/shivam6677ojh/QuickStay-HotelBooking/errors"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services/logger"

	"github.com/goccy/go-json"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const cacheKeyRooms = "rooms:all"

// RoomService quản lý phòng của khách sạn
type RoomService struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewRoomService(db *gorm.DB, rdb *redis.Client, log logger.Logger) *RoomService {
	return &RoomService{db: db, rdb: rdb, log: log}
}

// ownerHotel lấy khách sạn của owner, mọi thao tác phòng đều phải
// thuộc khách sạn của chính owner đó
func (s *RoomService) ownerHotel(ctx context.Context, ownerID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&hotel).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeHotelNotFound, "Bạn chưa đăng ký khách sạn", err)
		}
		return nil, wrapStoreErr(err)
	}
	return &hotel, nil
}

// CreateRoom tạo phòng mới cho khách sạn của owner
func (s *RoomService) CreateRoom(ctx context.Context, ownerID uint, input dto.CreateRoomRequest) (*models.Room, error) {
	hotel, err := s.ownerHotel(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	images, err := json.Marshal(input.Images)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Danh sách ảnh không hợp lệ", err)
	}

	capacity := input.Capacity
	if capacity == 0 {
		capacity = 2
	}

	room := models.Room{
		HotelID:       hotel.ID,
		RoomType:      input.RoomType,
		PricePerNight: input.PricePerNight,
		Capacity:      capacity,
		Amenities:     pq.StringArray(input.Amenities),
		Description:   input.Description,
		Images:        images,
		IsAvailable:   true,
	}
	if err := room.Validate(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Thông tin phòng không hợp lệ", err)
	}

	if err := s.db.WithContext(ctx).Create(&room).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	s.invalidateRoomCache(ctx)
	return &room, nil
}

// UpdateRoom cập nhật thông tin phòng thuộc khách sạn của owner.
// Đổi giá không ảnh hưởng booking đã tạo, giá đã chốt lúc đặt.
func (s *RoomService) UpdateRoom(ctx context.Context, ownerID uint, input dto.UpdateRoomRequest) (*models.Room, error) {
	hotel, err := s.ownerHotel(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var room models.Room
	err = s.db.WithContext(ctx).Where("id = ? AND hotel_id = ?", input.ID, hotel.ID).First(&room).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		return nil, wrapStoreErr(err)
	}

	if input.RoomType != "" {
		room.RoomType = input.RoomType
	}
	if input.PricePerNight > 0 {
		room.PricePerNight = input.PricePerNight
	}
	if input.Capacity > 0 {
		room.Capacity = input.Capacity
	}
	if input.Amenities != nil {
		room.Amenities = pq.StringArray(input.Amenities)
	}
	if input.Description != "" {
		room.Description = input.Description
	}
	if input.Images != nil {
		images, err := json.Marshal(input.Images)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Danh sách ảnh không hợp lệ", err)
		}
		room.Images = images
	}

	if err := s.db.WithContext(ctx).Save(&room).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	s.invalidateRoomCache(ctx)
	return &room, nil
}

// ToggleAvailability bật/tắt nhận đặt phòng. Tắt chỉ chặn booking mới,
// booking đang có vẫn giữ nguyên.
func (s *RoomService) ToggleAvailability(ctx context.Context, ownerID, roomID uint) (*models.Room, error) {
	hotel, err := s.ownerHotel(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var room models.Room
	err = s.db.WithContext(ctx).Where("id = ? AND hotel_id = ?", roomID, hotel.ID).First(&room).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		return nil, wrapStoreErr(err)
	}

	room.IsAvailable = !room.IsAvailable
	if err := s.db.WithContext(ctx).Model(&room).Update("is_available", room.IsAvailable).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	s.invalidateRoomCache(ctx)
	return &room, nil
}

// ListRooms trả về toàn bộ phòng đang mở, cache trên Redis
func (s *RoomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, cacheKeyRooms, &rooms); err != nil {
			s.log.Warn("Đọc cache phòng thất bại: %v", err)
		}
		if len(rooms) > 0 {
			return rooms, nil
		}
	}

	err := s.db.WithContext(ctx).
		Preload("Hotel").
		Where("is_available = ?", true).
		Order("created_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	if s.rdb != nil && len(rooms) > 0 {
		if err := SetToRedis(ctx, s.rdb, cacheKeyRooms, rooms, constants.CacheTTLListing); err != nil {
			s.log.Warn("Ghi cache phòng thất bại: %v", err)
		}
	}
	return rooms, nil
}

// RoomFilter là bộ lọc danh sách phòng cho trang tìm kiếm
type RoomFilter struct {
	Destination string
	CheckIn     *time.Time
	CheckOut    *time.Time
	Guests      int
	MinPrice    int64
	MaxPrice    int64
	RoomType    string
	SortBy      string // price_asc, price_desc, newest
}

// ListRoomsFiltered lọc danh sách phòng đang mở theo bộ lọc tìm kiếm.
// Lọc chạy trên danh sách đã cache; riêng lọc theo ngày cần một truy vấn
// lấy các phòng đã kín trong khoảng đó.
func (s *RoomService) ListRoomsFiltered(ctx context.Context, f RoomFilter) ([]models.Room, error) {
	rooms, err := s.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	booked := map[uint]bool{}
	if f.CheckIn != nil && f.CheckOut != nil {
		var bookedIDs []uint
		err := s.db.WithContext(ctx).Model(&models.Booking{}).
			Distinct("room_id").
			Where("status <> ? AND check_in_date < ? AND check_out_date > ?",
				models.BookingStatusCancelled, *f.CheckOut, *f.CheckIn).
			Pluck("room_id", &bookedIDs).Error
		if err != nil {
			return nil, wrapStoreErr(err)
		}
		for _, id := range bookedIDs {
			booked[id] = true
		}
	}

	destination := strings.ToLower(f.Destination)
	result := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if booked[r.ID] {
			continue
		}
		if destination != "" {
			if r.Hotel == nil || !strings.Contains(strings.ToLower(r.Hotel.City), destination) {
				continue
			}
		}
		if f.Guests > 0 && r.Capacity < f.Guests {
			continue
		}
		if f.MinPrice > 0 && r.PricePerNight < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && r.PricePerNight > f.MaxPrice {
			continue
		}
		if f.RoomType != "" && !strings.EqualFold(r.RoomType, f.RoomType) {
			continue
		}
		result = append(result, r)
	}

	switch f.SortBy {
	case "price_asc":
		sort.Slice(result, func(i, j int) bool { return result[i].PricePerNight < result[j].PricePerNight })
	case "price_desc":
		sort.Slice(result, func(i, j int) bool { return result[i].PricePerNight > result[j].PricePerNight })
	case "newest":
		sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	}
	return result, nil
}

// DeleteRoom xóa phòng không còn booking đang hoạt động
func (s *RoomService) DeleteRoom(ctx context.Context, ownerID, roomID uint) error {
	hotel, err := s.ownerHotel(ctx, ownerID)
	if err != nil {
		return err
	}

	var room models.Room
	err = s.db.WithContext(ctx).Where("id = ? AND hotel_id = ?", roomID, hotel.ID).First(&room).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		return wrapStoreErr(err)
	}

	var active int64
	err = s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("room_id = ? AND status <> ?", roomID, models.BookingStatusCancelled).
		Count(&active).Error
	if err != nil {
		return wrapStoreErr(err)
	}
	if active > 0 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Phòng vẫn còn booking đang hoạt động", nil)
	}

	if err := s.db.WithContext(ctx).Delete(&room).Error; err != nil {
		return wrapStoreErr(err)
	}
	s.invalidateRoomCache(ctx)
	return nil
}

// ListOwnerRooms trả về toàn bộ phòng của khách sạn owner, kể cả phòng đã tắt
func (s *RoomService) ListOwnerRooms(ctx context.Context, ownerID uint) ([]models.Room, error) {
	hotel, err := s.ownerHotel(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var rooms []models.Room
	err = s.db.WithContext(ctx).
		Preload("Hotel").
		Where("hotel_id = ?", hotel.ID).
		Order("created_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return rooms, nil
}

// GetRoom trả về một phòng kèm khách sạn
func (s *RoomService) GetRoom(ctx context.Context, roomID uint) (*models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).Preload("Hotel").First(&room, roomID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		return nil, wrapStoreErr(err)
	}
	return &room, nil
}

// GetBookedDates trả về các khoảng ngày chưa hủy của phòng cho calendar
func (s *RoomService) GetBookedDates(ctx context.Context, roomID uint) (*dto.RoomBookedDates, error) {
	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}

	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("room_id = ? AND status <> ?", roomID, models.BookingStatusCancelled).
		Order("check_in_date").
		Find(&bookings).Error
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	result := &dto.RoomBookedDates{RoomID: roomID, Dates: make([]dto.DateRange, 0, len(bookings))}
	for _, b := range bookings {
		result.Dates = append(result.Dates, dto.DateRange{
			CheckInDate:  b.CheckInDate.Format(constants.DateLayout),
			CheckOutDate: b.CheckOutDate.Format(constants.DateLayout),
		})
	}
	return result, nil
}

func (s *RoomService) invalidateRoomCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, cacheKeyRooms); err != nil {
		s.log.Warn("Xóa cache phòng thất bại: %v", err)
	}
}
