package models

import (
	"time"

	"roombook/types"
)

type Account struct {
	Address   types.AccountID `json:"address" gorm:"primaryKey;type:varchar(128)"`
	Balance   uint64          `json:"balance" gorm:"not null;default:0"`
	UpdatedAt time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Transfer là nhật ký chuyển tiền, chỉ ghi thêm
type Transfer struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	From      types.AccountID `json:"from" gorm:"column:from_account;type:varchar(128);index"`
	To        types.AccountID `json:"to" gorm:"column:to_account;type:varchar(128);index"`
	Amount    uint64          `json:"amount"`
	RoomID    uint64          `json:"roomId" gorm:"index"`
	Reason    string          `json:"reason" gorm:"type:varchar(32)"`
	CreatedAt time.Time       `json:"createdAt" gorm:"autoCreateTime"`
}
