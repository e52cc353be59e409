package services

import (
	"fmt"

	"roombook/constants"
	apperrors "roombook/errors"
	"roombook/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IdentifierAllocator cấp định danh tăng dần cho room, agreement và rent.
// Mọi lần cấp đều chạy trong transaction của thao tác gọi nó, nên thao tác lỗi không tiêu tốn định danh.
type IdentifierAllocator struct{}

func NewIdentifierAllocator() *IdentifierAllocator {
	return &IdentifierAllocator{}
}

// Seed tạo ba bộ đếm với giá trị 0 nếu chưa có
func (a *IdentifierAllocator) Seed(db *gorm.DB) error {
	for _, name := range []string{constants.CounterRoom, constants.CounterAgreement, constants.CounterRent} {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Counter{Name: name, Value: 0}).Error
		if err != nil {
			return apperrors.DBError(fmt.Sprintf("lỗi khởi tạo bộ đếm %s", name), err)
		}
	}
	return nil
}

func (a *IdentifierAllocator) NextRoomID(tx *gorm.DB) (uint64, error) {
	return a.next(tx, constants.CounterRoom)
}

func (a *IdentifierAllocator) NextAgreementID(tx *gorm.DB) (uint64, error) {
	return a.next(tx, constants.CounterAgreement)
}

func (a *IdentifierAllocator) NextRentID(tx *gorm.DB) (uint64, error) {
	return a.next(tx, constants.CounterRent)
}

// Peek đọc giá trị hiện tại của bộ đếm mà không tăng
func (a *IdentifierAllocator) Peek(tx *gorm.DB, name string) (uint64, error) {
	var counter models.Counter
	if err := tx.Where("name = ?", name).First(&counter).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, apperrors.DBError(fmt.Sprintf("lỗi đọc bộ đếm %s", name), err)
	}
	return counter.Value, nil
}

// next tăng bộ đếm và trả về giá trị trước khi tăng
func (a *IdentifierAllocator) next(tx *gorm.DB, name string) (uint64, error) {
	res := tx.Model(&models.Counter{}).
		Where("name = ?", name).
		Update("value", gorm.Expr("value + ?", 1))
	if res.Error != nil {
		return 0, apperrors.DBError(fmt.Sprintf("lỗi tăng bộ đếm %s", name), res.Error)
	}
	if res.RowsAffected == 0 {
		if err := tx.Create(&models.Counter{Name: name, Value: 1}).Error; err != nil {
			return 0, apperrors.DBError(fmt.Sprintf("lỗi tạo bộ đếm %s", name), err)
		}
		return 0, nil
	}
	value, err := a.Peek(tx, name)
	if err != nil {
		return 0, err
	}
	return value - 1, nil
}
