package models

import (
	"time"

	"roombook/types"
)

// Rent là bản ghi của một lần thanh toán, chỉ ghi thêm
type Rent struct {
	RentID          uint64          `json:"rentId" gorm:"primaryKey;autoIncrement:false"`
	RoomID          uint64          `json:"roomId" gorm:"index"`
	AgreementID     uint64          `json:"agreementId"`
	RoomName        string          `json:"roomName"`
	RoomAddress     string          `json:"roomAddress"`
	RentPerMonth    uint64          `json:"rentPerMonth"`
	TenantAddress   types.AccountID `json:"tenantAddress" gorm:"type:varchar(128)"`
	LandLordAddress types.AccountID `json:"landLordAddress" gorm:"type:varchar(128)"`
	TimeStamp       uint64          `json:"timeStamp"`
	CreatedAt       time.Time       `json:"-" gorm:"autoCreateTime"`
}
