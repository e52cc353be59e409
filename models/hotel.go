package models

import (
	"time"

	"roombook/types"
)

// HotelSingletonID là khóa duy nhất của bảng hotels
const HotelSingletonID = 1

// Hotel lưu landlord của hệ thống, chỉ ghi một lần khi khởi tạo
type Hotel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement:false"`
	Landlord  types.AccountID `gorm:"type:varchar(128);not null"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}
