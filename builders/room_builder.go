package builders

import (
	"roombook/constants"
	"roombook/models"
	"roombook/types"
)

// RoomBuilder giúp tạo phòng mới theo từng bước
type RoomBuilder struct {
	room *models.Room
}

// NewRoomBuilder tạo phòng mới ở trạng thái trống
func NewRoomBuilder(roomID, agreementID uint64) *RoomBuilder {
	return &RoomBuilder{
		room: &models.Room{
			RoomID:        roomID,
			AgreementID:   agreementID,
			Vacant:        true,
			CurrentTenant: types.ZeroAccount,
		},
	}
}

// WithInfo thêm tên và địa chỉ phòng
func (b *RoomBuilder) WithInfo(name, address string) *RoomBuilder {
	b.room.RoomName = name
	b.room.RoomAddress = address
	return b
}

// WithPrice thêm giá thuê và tiền cọc
func (b *RoomBuilder) WithPrice(rentPerMonth, securityDeposit uint64) *RoomBuilder {
	b.room.RentPerMonth = rentPerMonth
	b.room.SecurityDeposit = securityDeposit
	return b
}

// WithLandlord thêm chủ phòng
func (b *RoomBuilder) WithLandlord(landlord types.AccountID) *RoomBuilder {
	b.room.Landlord = landlord
	return b
}

// WithTimeStamp thêm thời điểm cập nhật
func (b *RoomBuilder) WithTimeStamp(ts uint64) *RoomBuilder {
	b.room.TimeStamp = ts
	return b
}

// Build tạo phòng hoàn chỉnh
func (b *RoomBuilder) Build() *models.Room {
	return b.room
}

// BuildAgreement chụp lại điều khoản phòng thành hợp đồng
func BuildAgreement(room *models.Room) *models.RoomAgreement {
	return &models.RoomAgreement{
		AgreementID:     room.AgreementID,
		RoomID:          room.RoomID,
		RoomName:        room.RoomName,
		RoomAddress:     room.RoomAddress,
		RentPerMonth:    room.RentPerMonth,
		SecurityDeposit: room.SecurityDeposit,
		LockInPeriod:    constants.LockInPeriod,
		TimeStamp:       room.TimeStamp,
	}
}

// BuildRent tạo bản ghi thanh toán cho phòng
func BuildRent(rentID uint64, room *models.Room, tenant types.AccountID) *models.Rent {
	return &models.Rent{
		RentID:          rentID,
		RoomID:          room.RoomID,
		AgreementID:     room.AgreementID,
		RoomName:        room.RoomName,
		RoomAddress:     room.RoomAddress,
		RentPerMonth:    room.RentPerMonth,
		TenantAddress:   tenant,
		LandLordAddress: room.Landlord,
		TimeStamp:       room.TimeStamp,
	}
}
