package services

import (
	"errors"

	apperrors "roombook/errors"
	"roombook/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomRegistry là nơi duy nhất đọc/ghi bảng rooms
type RoomRegistry struct{}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{}
}

// Get lấy phòng theo id, trả về nil nếu phòng chưa từng được tạo
func (r *RoomRegistry) Get(tx *gorm.DB, roomID uint64) (*models.Room, error) {
	var room models.Room
	err := tx.Where("room_id = ?", roomID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.DBError("lỗi khi lấy thông tin phòng", err)
	}
	return &room, nil
}

// Insert ghi đè phòng tại room_id.
// Không dùng Save vì room_id = 0 là giá trị hợp lệ, Save sẽ coi đó là bản ghi mới.
func (r *RoomRegistry) Insert(tx *gorm.DB, room *models.Room) error {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_id"}},
		UpdateAll: true,
	}).Create(room).Error
	if err != nil {
		return apperrors.DBError("lỗi khi lưu phòng", err)
	}
	return nil
}

// List liệt kê các phòng trong khoảng [0, upper) theo thứ tự room_id tăng dần.
// Những id chưa có bản ghi được bỏ qua.
func (r *RoomRegistry) List(tx *gorm.DB, upper uint64, vacantOnly bool) ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	if upper == 0 {
		return rooms, nil
	}
	query := tx.Model(&models.Room{}).Where("room_id < ?", upper)
	if vacantOnly {
		query = query.Where("vacant = ?", true)
	}
	if err := query.Order("room_id ASC").Find(&rooms).Error; err != nil {
		return nil, apperrors.DBError("lỗi khi lấy danh sách phòng", err)
	}
	return rooms, nil
}
