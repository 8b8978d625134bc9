package services

import (
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/errors"

	"github.com/dgrijalva/jwt-go"
)

// UserInfo là claims gắn trong access token
type UserInfo struct {
	UserID uint `json:"userid"`
	Role   int  `json:"role"`
}

// GenerateToken tạo access token cho user, hạn tính theo phút
func GenerateToken(info UserInfo, expireMinutes int) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": info.UserID,
			"role":   info.Role,
		},
		"exp": time.Now().Add(time.Duration(expireMinutes) * time.Minute).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("ACCESS_TOKEN_SECRET")))
}

// VerifyToken xác thực chữ ký và hạn của token, trả về claims
func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Phương thức ký token không hợp lệ", nil)
		}
		return []byte(os.Getenv("ACCESS_TOKEN_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", nil)
	}
	return claims, nil
}

// GetUserIDFromToken lấy userID và role từ token
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	claimsMap, err := VerifyToken(tokenString)
	if err != nil {
		return 0, 0, err
	}

	// Trích xuất userID và role từ claims
	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		// Một số client gửi claims đã marshal lại thành chuỗi
		raw, okStr := claimsMap["userinfo"].(string)
		if !okStr {
			return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
		}
		if err := json.Unmarshal([]byte(raw), &userInfo); err != nil {
			return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse thông tin user", err)
		}
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy role trong token", nil)
	}

	return uint(userID), int(role), nil
}
