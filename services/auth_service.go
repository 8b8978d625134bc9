package services

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/dto"
	apperrors "github.com/shivam6677ojh/QuickStay-HotelBooking/errors"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services/logger"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/validator"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// Mã xác thực email hết hạn sau 5 phút
const verificationCodeTTL = 5 * time.Minute

// AuthService xử lý đăng ký, xác thực email và đăng nhập
type AuthService struct {
	db     *gorm.DB
	mailer Mailer
	log    logger.Logger
}

func NewAuthService(db *gorm.DB, mailer Mailer, log logger.Logger) *AuthService {
	return &AuthService{db: db, mailer: mailer, log: log}
}

func generateVerificationCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// Register tạo user mới và gửi mã xác thực qua email
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*models.User, error) {
	if err := validator.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validator.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeUserExists, "Email đã được đăng ký", nil)
	}
	if err != gorm.ErrRecordNotFound {
		return nil, wrapStoreErr(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Không thể mã hóa mật khẩu", err)
	}

	user := models.User{
		Name:          input.Name,
		Email:         input.Email,
		Password:      string(hashed),
		Code:          generateVerificationCode(),
		CodeCreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, wrapStoreErr(err)
	}

	if s.mailer != nil {
		go func(email, code string) {
			if err := s.mailer.SendVerificationCode(email, code); err != nil {
				s.log.Error("Gửi mã xác thực cho %s thất bại: %v", email, err)
			}
		}(user.Email, user.Code)
	}
	return &user, nil
}

// VerifyEmail kiểm tra mã xác thực và đánh dấu user đã verify
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "Không tìm thấy tài khoản", err)
		}
		return wrapStoreErr(err)
	}

	if user.Code == "" || user.Code != code {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidCode, "Mã xác thực không đúng", nil)
	}
	if time.Since(user.CodeCreatedAt) > verificationCodeTTL {
		return apperrors.NewAppError(apperrors.ErrCodeExpiredCode, "Mã xác thực đã hết hạn", nil)
	}

	updates := map[string]interface{}{"is_verified": true, "code": ""}
	if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return wrapStoreErr(err)
	}
	return nil
}

// Login xác thực mật khẩu và trả về user kèm access token
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*models.User, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", input.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "Email hoặc mật khẩu không đúng", err)
		}
		return nil, "", wrapStoreErr(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Email hoặc mật khẩu không đúng", nil)
	}
	if !user.IsVerified {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Tài khoản chưa xác thực email", nil)
	}

	token, err := GenerateToken(UserInfo{UserID: user.ID, Role: user.Role}, 60*24)
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeValidation, "Không thể tạo token", err)
	}
	return &user, token, nil
}

// GoogleLogin xác thực id token của Google, tạo user nếu chưa có
func (s *AuthService) GoogleLogin(ctx context.Context, tokenID string) (*models.User, string, error) {
	payload, err := idtoken.Validate(ctx, tokenID, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token Google không hợp lệ", err)
	}

	googleUser := dto.GoogleUser{
		Name:  fmt.Sprint(payload.Claims["name"]),
		Email: fmt.Sprint(payload.Claims["email"]),
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		googleUser.Picture = picture
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		googleUser.VerifiedEmail = verified
	}

	var user models.User
	err = s.db.WithContext(ctx).Where("email = ?", googleUser.Email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Name:       googleUser.Name,
			Email:      googleUser.Email,
			Avatar:     googleUser.Picture,
			IsVerified: googleUser.VerifiedEmail,
		}
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, "", wrapStoreErr(err)
		}
	} else if err != nil {
		return nil, "", wrapStoreErr(err)
	}

	token, err := GenerateToken(UserInfo{UserID: user.ID, Role: user.Role}, 60*24)
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeValidation, "Không thể tạo token", err)
	}
	return &user, token, nil
}
