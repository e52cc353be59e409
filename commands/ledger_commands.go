package commands

import (
	"roombook/models"

	"gorm.io/gorm"
)

// LedgerCommand định nghĩa interface cho các thao tác ghi.
// Các command được gom lại và chỉ chạy sau khi mọi điều kiện đã được kiểm tra.
type LedgerCommand interface {
	Execute(tx *gorm.DB) error
}

type RoomWriter interface {
	Insert(tx *gorm.DB, room *models.Room) error
}

type AgreementWriter interface {
	Append(tx *gorm.DB, agreement *models.RoomAgreement) error
}

type RentWriter interface {
	Append(tx *gorm.DB, rent *models.Rent) error
}

// SaveRoomCommand ghi đè phòng theo room_id
type SaveRoomCommand struct {
	writer RoomWriter
	room   *models.Room
}

func NewSaveRoomCommand(writer RoomWriter, room *models.Room) *SaveRoomCommand {
	return &SaveRoomCommand{writer: writer, room: room}
}

func (c *SaveRoomCommand) Execute(tx *gorm.DB) error {
	return c.writer.Insert(tx, c.room)
}

// AppendAgreementCommand ghi thêm hợp đồng
type AppendAgreementCommand struct {
	writer    AgreementWriter
	agreement *models.RoomAgreement
}

func NewAppendAgreementCommand(writer AgreementWriter, agreement *models.RoomAgreement) *AppendAgreementCommand {
	return &AppendAgreementCommand{writer: writer, agreement: agreement}
}

func (c *AppendAgreementCommand) Execute(tx *gorm.DB) error {
	return c.writer.Append(tx, c.agreement)
}

// AppendRentCommand ghi thêm bản ghi thanh toán
type AppendRentCommand struct {
	writer RentWriter
	rent   *models.Rent
}

func NewAppendRentCommand(writer RentWriter, rent *models.Rent) *AppendRentCommand {
	return &AppendRentCommand{writer: writer, rent: rent}
}

func (c *AppendRentCommand) Execute(tx *gorm.DB) error {
	return c.writer.Append(tx, c.rent)
}

// FuncCommand bọc một hàm thành command
type FuncCommand func(tx *gorm.DB) error

func (f FuncCommand) Execute(tx *gorm.DB) error {
	return f(tx)
}

// Batch chạy lần lượt các command, dừng ở lỗi đầu tiên
type Batch []LedgerCommand

func (b Batch) Execute(tx *gorm.DB) error {
	for _, cmd := range b {
		if err := cmd.Execute(tx); err != nil {
			return err
		}
	}
	return nil
}
