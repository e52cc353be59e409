package services

import (
	"errors"
	"fmt"

	"roombook/constants"
	apperrors "roombook/errors"
	"roombook/models"
	"roombook/types"

	"gorm.io/gorm"
)

// Transferer chuyển tiền giữa các bên. Mọi thao tác chạy trên transaction được truyền vào,
// nên chuyển tiền lỗi sẽ làm cả thao tác nghiệp vụ bị rollback.
type Transferer interface {
	// Receive ghi nhận tiền đính kèm lệnh gọi vào tài khoản ký quỹ của khách sạn
	Receive(tx *gorm.DB, from types.AccountID, amount uint64, roomID uint64) error
	Transfer(tx *gorm.DB, from, to types.AccountID, amount uint64, roomID uint64, reason string) error
}

// FundsLedger lưu số dư tài khoản và nhật ký chuyển tiền
type FundsLedger struct{}

func NewFundsLedger() *FundsLedger {
	return &FundsLedger{}
}

func (f *FundsLedger) Receive(tx *gorm.DB, from types.AccountID, amount uint64, roomID uint64) error {
	if amount == 0 {
		return nil
	}
	if err := f.credit(tx, types.HotelAccount, amount); err != nil {
		return err
	}
	return f.journal(tx, from, types.HotelAccount, amount, roomID, constants.TransferReasonCallValue)
}

func (f *FundsLedger) Transfer(tx *gorm.DB, from, to types.AccountID, amount uint64, roomID uint64, reason string) error {
	if amount == 0 {
		return nil
	}
	if to.IsZero() {
		return apperrors.TransferFailed("không thể chuyển tiền tới tài khoản rỗng", nil)
	}
	if err := f.debit(tx, from, amount); err != nil {
		return err
	}
	if err := f.credit(tx, to, amount); err != nil {
		return err
	}
	return f.journal(tx, from, to, amount, roomID, reason)
}

// Balance trả về số dư, tài khoản chưa có bản ghi có số dư 0
func (f *FundsLedger) Balance(tx *gorm.DB, address types.AccountID) (uint64, error) {
	var account models.Account
	err := tx.Where("address = ?", address).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.DBError("lỗi khi đọc số dư", err)
	}
	return account.Balance, nil
}

// Transfers trả về nhật ký chuyển tiền của một phòng
func (f *FundsLedger) Transfers(tx *gorm.DB, roomID uint64) ([]models.Transfer, error) {
	transfers := make([]models.Transfer, 0)
	if err := tx.Where("room_id = ?", roomID).Order("id ASC").Find(&transfers).Error; err != nil {
		return nil, apperrors.DBError("lỗi khi đọc nhật ký chuyển tiền", err)
	}
	return transfers, nil
}

func (f *FundsLedger) debit(tx *gorm.DB, address types.AccountID, amount uint64) error {
	res := tx.Model(&models.Account{}).
		Where("address = ? AND balance >= ?", address, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return apperrors.TransferFailed(fmt.Sprintf("lỗi trừ tiền tài khoản %s", address), res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.TransferFailed(fmt.Sprintf("tài khoản %s không đủ số dư %d", address, amount), nil)
	}
	return nil
}

func (f *FundsLedger) credit(tx *gorm.DB, address types.AccountID, amount uint64) error {
	res := tx.Model(&models.Account{}).
		Where("address = ?", address).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return apperrors.TransferFailed(fmt.Sprintf("lỗi cộng tiền tài khoản %s", address), res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	if err := tx.Create(&models.Account{Address: address, Balance: amount}).Error; err != nil {
		return apperrors.TransferFailed(fmt.Sprintf("lỗi tạo tài khoản %s", address), err)
	}
	return nil
}

func (f *FundsLedger) journal(tx *gorm.DB, from, to types.AccountID, amount uint64, roomID uint64, reason string) error {
	record := &models.Transfer{From: from, To: to, Amount: amount, RoomID: roomID, Reason: reason}
	if err := tx.Create(record).Error; err != nil {
		return apperrors.TransferFailed("lỗi ghi nhật ký chuyển tiền", err)
	}
	return nil
}
