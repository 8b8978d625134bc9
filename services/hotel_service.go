package services

import (
	"context"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/constants"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/dto"
	apperrors "github.com/shivam6677ojh/QuickStay-HotelBooking/errors"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const cacheKeyCities = "hotels:cities"

// HotelService quản lý khách sạn của owner
type HotelService struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewHotelService(db *gorm.DB, rdb *redis.Client, log logger.Logger) *HotelService {
	return &HotelService{db: db, rdb: rdb, log: log}
}

// RegisterHotel đăng ký khách sạn cho user và nâng role lên owner.
// Mỗi user chỉ có một khách sạn.
func (s *HotelService) RegisterHotel(ctx context.Context, ownerID uint, input dto.CreateHotelRequest) (*models.Hotel, error) {
	var existing models.Hotel
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&existing).Error
	if err == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeHotelExists, "Bạn đã đăng ký khách sạn rồi", nil)
	}
	if err != gorm.ErrRecordNotFound {
		return nil, wrapStoreErr(err)
	}

	hotel := models.Hotel{
		Name:    input.Name,
		Address: input.Address,
		Contact: input.Contact,
		City:    input.City,
		OwnerID: ownerID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hotel).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", ownerID).
			Update("role", constants.RoleOwner).Error
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	s.invalidateCityCache(ctx)
	return &hotel, nil
}

// GetOwnerHotel trả về khách sạn của owner
func (s *HotelService) GetOwnerHotel(ctx context.Context, ownerID uint) (*models.Hotel, error) {
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

// UpdateHotel cập nhật thông tin khách sạn của owner
func (s *HotelService) UpdateHotel(ctx context.Context, ownerID uint, input dto.UpdateHotelRequest) (*models.Hotel, error) {
	hotel, err := s.GetOwnerHotel(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		hotel.Name = input.Name
	}
	if input.Address != "" {
		hotel.Address = input.Address
	}
	if input.Contact != "" {
		hotel.Contact = input.Contact
	}
	if input.City != "" {
		hotel.City = input.City
	}

	if err := s.db.WithContext(ctx).Save(hotel).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	s.invalidateCityCache(ctx)
	return hotel, nil
}

// ListCities trả về danh sách thành phố có khách sạn, cache trên Redis
func (s *HotelService) ListCities(ctx context.Context) ([]string, error) {
	var cities []string
	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, cacheKeyCities, &cities); err != nil {
			s.log.Warn("Đọc cache thành phố thất bại: %v", err)
		}
		if len(cities) > 0 {
			return cities, nil
		}
	}

	err := s.db.WithContext(ctx).Model(&models.Hotel{}).
		Distinct("city").Order("city").Pluck("city", &cities).Error
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	if s.rdb != nil && len(cities) > 0 {
		if err := SetToRedis(ctx, s.rdb, cacheKeyCities, cities, constants.CacheTTLListing); err != nil {
			s.log.Warn("Ghi cache thành phố thất bại: %v", err)
		}
	}
	return cities, nil
}

// ListHotels trả về toàn bộ khách sạn kèm số liệu cho admin
func (s *HotelService) ListHotels(ctx context.Context) ([]dto.HotelStatsResponse, error) {
	var hotels []models.Hotel
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&hotels).Error; err != nil {
		return nil, wrapStoreErr(err)
	}

	result := make([]dto.HotelStatsResponse, 0, len(hotels))
	for _, h := range hotels {
		var roomCount, bookingCount int64
		s.db.WithContext(ctx).Model(&models.Room{}).Where("hotel_id = ?", h.ID).Count(&roomCount)
		s.db.WithContext(ctx).Model(&models.Booking{}).Where("hotel_id = ?", h.ID).Count(&bookingCount)
		result = append(result, dto.HotelStatsResponse{
			HotelResponse: dto.HotelResponse{
				ID:      h.ID,
				Name:    h.Name,
				Address: h.Address,
				Contact: h.Contact,
				City:    h.City,
				OwnerID: h.OwnerID,
			},
			RoomCount:    roomCount,
			BookingCount: bookingCount,
		})
	}
	return result, nil
}

func (s *HotelService) invalidateCityCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, cacheKeyCities); err != nil {
		s.log.Warn("Xóa cache thành phố thất bại: %v", err)
	}
}
