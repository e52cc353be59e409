package middleware

import (
	"strconv"
	"strings"

	"roombook/errors"
	"roombook/response"
	"roombook/services"
	"roombook/types"
	"roombook/validator"

	"github.com/gin-gonic/gin"
)

const (
	CallerKey       = "caller"
	CallValueKey    = "callValue"
	CallValueHeader = "X-Call-Value"
)

// AuthMiddleware xác thực token và lưu tài khoản người gọi vào context
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		account, err := services.GetAccountFromToken(tokenString, secret)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if err := validator.ValidateAccount(account.String()); err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(CallerKey, account)
		c.Next()
	}
}

// CallValueMiddleware đọc số tiền đính kèm lệnh gọi từ header X-Call-Value
func CallValueMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var value uint64
		if raw := c.GetHeader(CallValueHeader); raw != "" {
			// Giới hạn bởi cột bigint của sổ cái
			parsed, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 63)
			if err != nil {
				response.BadRequest(c, "X-Call-Value không hợp lệ")
				c.Abort()
				return
			}
			value = parsed
		}
		c.Set(CallValueKey, value)
		c.Next()
	}
}

// CallerFrom lấy tài khoản người gọi đã xác thực, ZeroAccount nếu không có
func CallerFrom(c *gin.Context) types.AccountID {
	if v, ok := c.Get(CallerKey); ok {
		if account, ok := v.(types.AccountID); ok {
			return account
		}
	}
	return types.ZeroAccount
}

// CallValueFrom lấy số tiền đính kèm, 0 nếu không có
func CallValueFrom(c *gin.Context) uint64 {
	if v, ok := c.Get(CallValueKey); ok {
		if value, ok := v.(uint64); ok {
			return value
		}
	}
	return 0
}

// ErrorHandler xử lý lỗi
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			if errors.IsAppError(err) {
				response.AppError(c, err)
				return
			}
			response.ServerError(c)
		}
	}
}
