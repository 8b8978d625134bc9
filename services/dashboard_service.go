package services

import (
	"context"
	"fmt"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/constants"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/dto"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	cacheKeyAdminStats    = "dashboard:admin"
	cacheKeyOwnerStatsFmt = "dashboard:owner:%d"
)

// DashboardService tổng hợp số liệu cho trang admin và owner.
// Số liệu chỉ là thống kê nên đọc từ cache được, không dùng cho
// quyết định nhận/từ chối booking.
type DashboardService struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewDashboardService(db *gorm.DB, rdb *redis.Client, log logger.Logger) *DashboardService {
	return &DashboardService{db: db, rdb: rdb, log: log}
}

func (s *DashboardService) computeAdminStats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	if err := db.Model(&models.Booking{}).
		Where("status <> ?", models.BookingStatusCancelled).
		Select("COALESCE(SUM(total_price), 0)").Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	if err := db.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusPending).
		Count(&stats.PendingBookings).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	if err := db.Model(&models.Hotel{}).Count(&stats.TotalHotels).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	if err := db.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	return stats, nil
}

// GetAdminStats trả về số liệu toàn hệ thống, ưu tiên cache
func (s *DashboardService) GetAdminStats(ctx context.Context) (*dto.DashboardStats, error) {
	if s.rdb != nil {
		var cached dto.DashboardStats
		if err := GetFromRedis(ctx, s.rdb, cacheKeyAdminStats, &cached); err != nil {
			s.log.Warn("Đọc cache dashboard thất bại: %v", err)
		} else if cached.TotalBookings > 0 || cached.TotalUsers > 0 {
			return &cached, nil
		}
	}

	stats, err := s.computeAdminStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, cacheKeyAdminStats, stats, constants.CacheTTLDashboard); err != nil {
			s.log.Warn("Ghi cache dashboard thất bại: %v", err)
		}
	}
	return stats, nil
}

// GetOwnerStats trả về số liệu của một khách sạn cho trang owner
func (s *DashboardService) GetOwnerStats(ctx context.Context, hotelID uint) (*dto.DashboardStats, error) {
	key := fmt.Sprintf(cacheKeyOwnerStatsFmt, hotelID)
	if s.rdb != nil {
		var cached dto.DashboardStats
		if err := GetFromRedis(ctx, s.rdb, key, &cached); err != nil {
			s.log.Warn("Đọc cache dashboard owner thất bại: %v", err)
		} else if cached.TotalBookings > 0 {
			return &cached, nil
		}
	}

	stats := &dto.DashboardStats{}
	db := s.db.WithContext(ctx)
	if err := db.Model(&models.Booking{}).Where("hotel_id = ?", hotelID).
		Count(&stats.TotalBookings).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	if err := db.Model(&models.Booking{}).
		Where("hotel_id = ? AND status <> ?", hotelID, models.BookingStatusCancelled).
		Select("COALESCE(SUM(total_price), 0)").Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	if err := db.Model(&models.Booking{}).
		Where("hotel_id = ? AND status = ?", hotelID, models.BookingStatusPending).
		Count(&stats.PendingBookings).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	if err := db.Model(&models.Room{}).Where("hotel_id = ?", hotelID).
		Count(&stats.TotalRooms).Error; err != nil {
		return nil, wrapStoreErr(err)
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, key, stats, constants.CacheTTLDashboard); err != nil {
			s.log.Warn("Ghi cache dashboard owner thất bại: %v", err)
		}
	}
	return stats, nil
}

// RefreshAdminStats tính lại số liệu và ghi đè cache, gọi từ cron
func (s *DashboardService) RefreshAdminStats(ctx context.Context) error {
	stats, err := s.computeAdminStats(ctx)
	if err != nil {
		return err
	}
	if s.rdb == nil {
		return nil
	}
	return SetToRedis(ctx, s.rdb, cacheKeyAdminStats, stats, constants.CacheTTLDashboard)
}
