package services

import (
	"fmt"
	"time"

	"roombook/errors"
	"roombook/types"

	"github.com/dgrijalva/jwt-go"
)

// GenerateToken tạo JWT cho một tài khoản
func GenerateToken(account types.AccountID, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"account": account.String(),
		},
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GetAccountFromToken xác thực chữ ký và lấy tài khoản từ token
func GetAccountFromToken(tokenString, secret string) (types.AccountID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}

	claimsMap, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", nil)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	account, ok := userInfo["account"].(string)
	if !ok || account == "" {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy tài khoản trong token", nil)
	}

	return types.AccountID(account), nil
}
