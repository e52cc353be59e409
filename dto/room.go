package dto

import "roombook/models"

// AddRoomRequest là DTO cho request tạo phòng
type AddRoomRequest struct {
	RoomName        string `json:"roomName"`
	RoomAddress     string `json:"roomAddress"`
	RentPerMonth    uint64 `json:"rentPerMonth" binding:"lte=9223372036854775807"`
	SecurityDeposit uint64 `json:"securityDeposit" binding:"lte=9223372036854775807"`
	TimeStamp       uint64 `json:"timeStamp"`
}

// RoomIDUri là DTO cho tham số :id trên đường dẫn
type RoomIDUri struct {
	ID uint64 `uri:"id"`
}

// AddressUri là DTO cho tham số :address trên đường dẫn
type AddressUri struct {
	Address string `uri:"address" binding:"required"`
}

// RoomListResponse là DTO cho danh sách phòng
type RoomListResponse struct {
	Data  []models.Room `json:"data"`
	Total int           `json:"total"`
}

// BalanceResponse là DTO cho số dư tài khoản
type BalanceResponse struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

// LandlordResponse là DTO cho landlord
type LandlordResponse struct {
	Landlord string `json:"landlord"`
}
