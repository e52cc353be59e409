package services

import (
	"errors"

	apperrors "roombook/errors"
	"roombook/models"

	"gorm.io/gorm"
)

// AgreementLedger lưu các hợp đồng, chỉ ghi thêm
type AgreementLedger struct{}

func NewAgreementLedger() *AgreementLedger {
	return &AgreementLedger{}
}

func (l *AgreementLedger) Append(tx *gorm.DB, agreement *models.RoomAgreement) error {
	if err := tx.Create(agreement).Error; err != nil {
		return apperrors.DBError("lỗi khi ghi hợp đồng", err)
	}
	return nil
}

func (l *AgreementLedger) Get(tx *gorm.DB, agreementID uint64) (*models.RoomAgreement, error) {
	var agreement models.RoomAgreement
	err := tx.Where("agreement_id = ?", agreementID).First(&agreement).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrAgreementNotFound
	}
	if err != nil {
		return nil, apperrors.DBError("lỗi khi lấy hợp đồng", err)
	}
	return &agreement, nil
}

func (l *AgreementLedger) ListByRoom(tx *gorm.DB, roomID uint64) ([]models.RoomAgreement, error) {
	agreements := make([]models.RoomAgreement, 0)
	if err := tx.Where("room_id = ?", roomID).Order("agreement_id ASC").Find(&agreements).Error; err != nil {
		return nil, apperrors.DBError("lỗi khi lấy danh sách hợp đồng", err)
	}
	return agreements, nil
}

// RentLedger lưu lịch sử thanh toán, chỉ ghi thêm
type RentLedger struct{}

func NewRentLedger() *RentLedger {
	return &RentLedger{}
}

func (l *RentLedger) Append(tx *gorm.DB, rent *models.Rent) error {
	if err := tx.Create(rent).Error; err != nil {
		return apperrors.DBError("lỗi khi ghi thanh toán", err)
	}
	return nil
}

func (l *RentLedger) ListByRoom(tx *gorm.DB, roomID uint64) ([]models.Rent, error) {
	rents := make([]models.Rent, 0)
	if err := tx.Where("room_id = ?", roomID).Order("rent_id ASC").Find(&rents).Error; err != nil {
		return nil, apperrors.DBError("lỗi khi lấy lịch sử thanh toán", err)
	}
	return rents, nil
}
