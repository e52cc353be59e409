package services

import (
	"errors"
	"fmt"

	apperrors "roombook/errors"
	"roombook/models"
	"roombook/types"
	"roombook/validator"

	"gorm.io/gorm"
)

// Models trả về danh sách model cần migrate
func Models() []interface{} {
	return []interface{}{
		&models.Hotel{},
		&models.Counter{},
		&models.Room{},
		&models.RoomAgreement{},
		&models.Rent{},
		&models.Account{},
		&models.Transfer{},
	}
}

// InitHotel khởi tạo sổ cái: migrate bảng, tạo bộ đếm và ghi landlord một lần duy nhất.
// Nếu landlord đã được ghi, landlord cấu hình phải trùng hoặc để trống.
func InitHotel(db *gorm.DB, configured types.AccountID) (types.AccountID, error) {
	if !configured.IsZero() {
		if err := validator.ValidateAccount(configured.String()); err != nil {
			return "", err
		}
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return "", apperrors.DBError("lỗi migrate bảng", err)
	}
	if err := NewIdentifierAllocator().Seed(db); err != nil {
		return "", err
	}

	var hotel models.Hotel
	err := db.Where("id = ?", models.HotelSingletonID).First(&hotel).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if configured.IsZero() {
			return "", apperrors.NewAppError(apperrors.ErrCodeValidation, "chưa cấu hình LANDLORD_ACCOUNT", nil)
		}
		hotel = models.Hotel{ID: models.HotelSingletonID, Landlord: configured}
		if err := db.Create(&hotel).Error; err != nil {
			return "", apperrors.DBError("lỗi lưu landlord", err)
		}
		return hotel.Landlord, nil
	case err != nil:
		return "", apperrors.DBError("lỗi đọc landlord", err)
	}

	if !configured.IsZero() && !configured.Equal(hotel.Landlord) {
		return "", apperrors.NewAppError(apperrors.ErrCodeLandlordImmutable,
			fmt.Sprintf("landlord đã là %s, không thể đổi sang %s", hotel.Landlord, configured), nil)
	}
	return hotel.Landlord, nil
}
