package types

import "strings"

// AccountID là định danh của một bên tham gia sổ cái (landlord, tenant, escrow)
type AccountID string

// ZeroAccount là định danh rỗng, dùng khi phòng chưa có người thuê
const ZeroAccount AccountID = "0x0000000000000000000000000000000000000000000000000000000000000000"

// HotelAccount là tài khoản ký quỹ nhận tiền đính kèm theo mỗi lệnh gọi
const HotelAccount AccountID = "hotel"

func (a AccountID) String() string {
	return string(a)
}

// IsZero kiểm tra định danh rỗng
func (a AccountID) IsZero() bool {
	return a == "" || a == ZeroAccount
}

// Equal so sánh hai định danh, không phân biệt hoa thường với địa chỉ hex
func (a AccountID) Equal(b AccountID) bool {
	return strings.EqualFold(string(a), string(b))
}
