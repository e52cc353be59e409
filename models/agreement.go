package models

import "time"

// RoomAgreement là bản chụp điều khoản phòng tại thời điểm ký hợp đồng, không được sửa sau khi ghi
type RoomAgreement struct {
	AgreementID     uint64    `json:"agreementId" gorm:"primaryKey;autoIncrement:false"`
	RoomID          uint64    `json:"roomId" gorm:"index"`
	RoomName        string    `json:"roomName"`
	RoomAddress     string    `json:"roomAddress"`
	RentPerMonth    uint64    `json:"rentPerMonth"`
	SecurityDeposit uint64    `json:"securityDeposit"`
	LockInPeriod    uint32    `json:"lockInPeriod"`
	TimeStamp       uint64    `json:"timeStamp"`
	CreatedAt       time.Time `json:"-" gorm:"autoCreateTime"`
}
