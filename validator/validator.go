package validator

import (
	"sync"

	"roombook/errors"
	"roombook/types"

	playground "github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *playground.Validate
)

func instance() *playground.Validate {
	once.Do(func() {
		validate = playground.New()
		_ = validate.RegisterValidation("account", func(fl playground.FieldLevel) bool {
			return isValidAccount(fl.Field().String())
		})
	})
	return validate
}

// isValidAccount kiểm tra định danh tài khoản: chữ và số, tối đa 128 ký tự, không phải tài khoản rỗng
func isValidAccount(account string) bool {
	if err := instance().Var(account, "required,max=128,alphanum"); err != nil {
		return false
	}
	id := types.AccountID(account)
	return !id.IsZero() && !id.Equal(types.HotelAccount)
}

// ValidateAccount kiểm tra định danh tài khoản dùng làm người gọi hoặc landlord
func ValidateAccount(account string) error {
	if err := instance().Var(account, "account"); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Tài khoản không hợp lệ", err)
	}
	return nil
}

// ValidateStruct kiểm tra struct theo tag `validate`
func ValidateStruct(v interface{}) error {
	if err := instance().Struct(v); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}
	return nil
}
