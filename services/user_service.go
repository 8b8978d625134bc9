package services

import (
	"context"
	"os"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/constants"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/dto"
	apperrors "github.com/shivam6677ojh/QuickStay-HotelBooking/errors"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Chỉ giữ lại tối đa 3 thành phố tìm gần nhất cho mỗi user
const maxRecentSearches = 3

// UserService xử lý hồ sơ và dữ liệu cá nhân của user
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) getUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "Không tìm thấy user", err)
		}
		return nil, wrapStoreErr(err)
	}
	return &user, nil
}

// GetProfile trả về hồ sơ của user đang đăng nhập
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		Avatar:         user.Avatar,
		IsVerified:     user.IsVerified,
		RecentSearches: user.RecentSearches,
	}, nil
}

// StoreRecentSearch lưu thành phố user vừa tìm, mới nhất đứng cuối,
// không trùng lặp, vượt quá giới hạn thì bỏ thành phố cũ nhất
func (s *UserService) StoreRecentSearch(ctx context.Context, userID uint, city string) ([]string, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	searches := make([]string, 0, len(user.RecentSearches)+1)
	for _, c := range user.RecentSearches {
		if c != city {
			searches = append(searches, c)
		}
	}
	searches = append(searches, city)
	if len(searches) > maxRecentSearches {
		searches = searches[len(searches)-maxRecentSearches:]
	}

	if err := s.db.WithContext(ctx).Model(user).
		Update("recent_searches", pq.StringArray(searches)).Error; err != nil {
		return nil, wrapStoreErr(err)
	}
	return searches, nil
}

// UpdateRole đổi role của user (admin promote user thành owner)
func (s *UserService) UpdateRole(ctx context.Context, userID uint, role int) error {
	switch role {
	case constants.RoleUser, constants.RoleOwner, constants.RoleAdmin:
	default:
		return apperrors.NewAppError(apperrors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(user).Update("role", role).Error; err != nil {
		return wrapStoreErr(err)
	}
	return nil
}

// PromoteToAdmin nâng user lên admin khi biết setup token.
// Token đặt qua biến môi trường ADMIN_SETUP_TOKEN, không đặt thì tắt hẳn.
func (s *UserService) PromoteToAdmin(ctx context.Context, userID uint, token string) error {
	expected := os.Getenv("ADMIN_SETUP_TOKEN")
	if expected == "" || token != expected {
		return apperrors.NewAppError(apperrors.ErrCodeNotAuthorized, "Setup token không hợp lệ", nil)
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(user).Update("role", constants.RoleAdmin).Error; err != nil {
		return wrapStoreErr(err)
	}
	return nil
}

// ListUsers trả về danh sách user cho trang admin
func (s *UserService) ListUsers(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, wrapStoreErr(err)
	}

	var users []models.User
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, wrapStoreErr(err)
	}
	return users, total, nil
}
