package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Access control
	ErrCodeCallerIsOwner    ErrorCode = "CALLER_IS_OWNER"
	ErrCodeCallerIsNotOwner ErrorCode = "CALLER_IS_NOT_OWNER"
	ErrCodeNotATenant       ErrorCode = "NOT_A_TENANT_ADDRESS"

	// Room errors
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeRoomIsNotVacant  ErrorCode = "ROOM_IS_NOT_VACANT"
	ErrCodeRoomIsVacant     ErrorCode = "ROOM_IS_VACANT"
	ErrCodeAgreementMissing ErrorCode = "AGREEMENT_NOT_FOUND"

	// Fee errors
	ErrCodeNotEnoughAgreementFee ErrorCode = "NOT_ENOUGH_AGREEMENT_FEE"
	ErrCodeNotEnoughRentFee      ErrorCode = "NOT_ENOUGH_RENT_FEE"
	ErrCodeTransferFailed        ErrorCode = "TRANSFER_FAILED"

	// Auth errors
	ErrCodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken      ErrorCode = "INVALID_TOKEN"
	ErrCodeLandlordImmutable ErrorCode = "LANDLORD_IMMUTABLE"

	// Database errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeCacheError ErrorCode = "CACHE_ERROR"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is so khớp theo mã lỗi, để errors.Is(err, ErrRoomNotFound) vẫn đúng khi lỗi có kèm nguyên nhân
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// CodeOf trả về mã lỗi, hoặc chuỗi rỗng nếu không phải AppError
func CodeOf(err error) ErrorCode {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return ""
}

// DBError bọc lỗi database
func DBError(message string, err error) *AppError {
	return NewAppError(ErrCodeDBError, message, err)
}

// TransferFailed bọc lỗi chuyển tiền
func TransferFailed(message string, err error) *AppError {
	return NewAppError(ErrCodeTransferFailed, message, err)
}

var (
	// Access control
	ErrCallerIsOwner    = NewAppError(ErrCodeCallerIsOwner, "caller is the owner", nil)
	ErrCallerIsNotOwner = NewAppError(ErrCodeCallerIsNotOwner, "caller is not the owner", nil)
	ErrNotATenant       = NewAppError(ErrCodeNotATenant, "caller is not the room tenant", nil)

	// Room errors
	ErrRoomNotFound      = NewAppError(ErrCodeRoomNotFound, "room not found", nil)
	ErrRoomIsNotVacant   = NewAppError(ErrCodeRoomIsNotVacant, "room is not vacant", nil)
	ErrRoomIsVacant      = NewAppError(ErrCodeRoomIsVacant, "room is vacant", nil)
	ErrAgreementNotFound = NewAppError(ErrCodeAgreementMissing, "agreement not found", nil)

	// Fee errors
	ErrNotEnoughAgreementFee = NewAppError(ErrCodeNotEnoughAgreementFee, "not enough agreement fee", nil)
	ErrNotEnoughRentFee      = NewAppError(ErrCodeNotEnoughRentFee, "not enough rent fee", nil)
	ErrTransferFailed        = NewAppError(ErrCodeTransferFailed, "transfer failed", nil)

	ErrUnauthorized      = NewAppError(ErrCodeUnauthorized, "unauthorized", nil)
	ErrLandlordImmutable = NewAppError(ErrCodeLandlordImmutable, "landlord is already set", nil)
)
