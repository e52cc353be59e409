package services

import (
	"context"
	"fmt"

	"roombook/constants"
	apperrors "roombook/errors"
	"roombook/models"
	"roombook/services/logger"

	"gorm.io/gorm"
)

// Violation mô tả một ràng buộc của sổ cái bị vi phạm
type Violation struct {
	Table   string
	ID      uint64
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s#%d: %s", v.Table, v.ID, v.Message)
}

// LedgerAuditor kiểm tra định kỳ các ràng buộc của sổ cái
type LedgerAuditor struct {
	db        *gorm.DB
	logger    logger.Logger
	allocator *IdentifierAllocator
}

func NewLedgerAuditor(db *gorm.DB, log logger.Logger) *LedgerAuditor {
	return &LedgerAuditor{db: db, logger: log, allocator: NewIdentifierAllocator()}
}

// Audit trả về danh sách vi phạm, rỗng khi sổ cái nhất quán
func (a *LedgerAuditor) Audit(ctx context.Context) ([]Violation, error) {
	db := a.db.WithContext(ctx)
	var violations []Violation

	roomUpper, err := a.allocator.Peek(db, constants.CounterRoom)
	if err != nil {
		return nil, err
	}
	var rooms []models.Room
	if err := db.Order("room_id ASC").Find(&rooms).Error; err != nil {
		return nil, apperrors.DBError("lỗi đọc phòng", err)
	}
	for _, room := range rooms {
		if !room.IsConsistent() {
			violations = append(violations, Violation{Table: "rooms", ID: room.RoomID, Message: "vacant không khớp với current_tenant"})
		}
		if room.RoomID >= roomUpper {
			violations = append(violations, Violation{Table: "rooms", ID: room.RoomID, Message: "room_id vượt quá bộ đếm"})
		}
	}

	checks := []struct {
		table   string
		counter string
		column  string
	}{
		{"room_agreements", constants.CounterAgreement, "agreement_id"},
		{"rents", constants.CounterRent, "rent_id"},
	}
	for _, c := range checks {
		upper, err := a.allocator.Peek(db, c.counter)
		if err != nil {
			return nil, err
		}
		var ids []uint64
		if err := db.Table(c.table).Where(c.column+" >= ?", upper).Pluck(c.column, &ids).Error; err != nil {
			return nil, apperrors.DBError("lỗi đọc "+c.table, err)
		}
		for _, id := range ids {
			violations = append(violations, Violation{Table: c.table, ID: id, Message: c.column + " vượt quá bộ đếm"})
		}
	}

	return violations, nil
}

// Run chạy Audit và ghi log kết quả, dùng cho cron job
func (a *LedgerAuditor) Run(ctx context.Context) {
	violations, err := a.Audit(ctx)
	if err != nil {
		a.logger.Error("❌ Lỗi kiểm tra sổ cái: %v", err)
		return
	}
	if len(violations) == 0 {
		a.logger.Info("✅ Sổ cái nhất quán")
		return
	}
	for _, v := range violations {
		a.logger.Error("❌ Vi phạm sổ cái: %s", v)
	}
}
