package response

import (
	"net/http"

	"roombook/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code      int         `json:"code"`
	Mess      string      `json:"mess"`
	ErrorCode string      `json:"errorCode,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// AppError trả về response theo mã lỗi của ứng dụng
func AppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}
	status := StatusOf(appErr.Code)
	if status == http.StatusInternalServerError {
		ServerError(c)
		return
	}
	c.JSON(status, Response{
		Code:      0,
		Mess:      appErr.Message,
		ErrorCode: string(appErr.Code),
	})
}

// StatusOf ánh xạ mã lỗi sang HTTP status
func StatusOf(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeCallerIsOwner, errors.ErrCodeCallerIsNotOwner, errors.ErrCodeNotATenant:
		return http.StatusForbidden
	case errors.ErrCodeRoomNotFound, errors.ErrCodeAgreementMissing:
		return http.StatusNotFound
	case errors.ErrCodeRoomIsNotVacant, errors.ErrCodeRoomIsVacant:
		return http.StatusConflict
	case errors.ErrCodeNotEnoughAgreementFee, errors.ErrCodeNotEnoughRentFee:
		return http.StatusPaymentRequired
	case errors.ErrCodeTransferFailed:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case errors.ErrCodeValidation, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeCacheError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Lỗi server",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Chưa xác thực",
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}
