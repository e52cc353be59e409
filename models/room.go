package models

import (
	"time"

	"roombook/types"
)

type Room struct {
	RoomID          uint64          `json:"roomId" gorm:"primaryKey;autoIncrement:false"`
	AgreementID     uint64          `json:"agreementId"`
	RoomName        string          `json:"roomName"`
	RoomAddress     string          `json:"roomAddress"`
	RentPerMonth    uint64          `json:"rentPerMonth"`
	SecurityDeposit uint64          `json:"securityDeposit"`
	TimeStamp       uint64          `json:"timeStamp"`
	Vacant          bool            `json:"vacant" gorm:"index"`
	Landlord        types.AccountID `json:"landlord" gorm:"type:varchar(128);not null"`
	CurrentTenant   types.AccountID `json:"currentTenant" gorm:"type:varchar(128);not null"`
	CreatedAt       time.Time       `json:"-" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"-" gorm:"autoUpdateTime"`
}

// AgreementFee là tổng tiền cần trả khi ký hợp đồng.
// ok = false khi tổng bị tràn số, tức là không số tiền nào đủ để ký.
func (r *Room) AgreementFee() (uint64, bool) {
	total := r.RentPerMonth + r.SecurityDeposit
	if total < r.RentPerMonth {
		return 0, false
	}
	return total, true
}

// IsConsistent kiểm tra ràng buộc vacant <=> không có người thuê
func (r *Room) IsConsistent() bool {
	return r.Vacant == r.CurrentTenant.IsZero()
}

// Status trả về tên trạng thái hiện tại
func (r *Room) Status() string {
	return GetRoomState(r).Name()
}
