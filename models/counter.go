package models

// Counter là bộ đếm định danh tăng dần (room, agreement, rent)
type Counter struct {
	Name  string `gorm:"primaryKey;type:varchar(32)"`
	Value uint64 `gorm:"not null;default:0"`
}
