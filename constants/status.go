package constants

// Room status
const (
	RoomStatusVacant   = "vacant"
	RoomStatusOccupied = "occupied"
)

// Bộ đếm định danh
const (
	CounterRoom      = "room"
	CounterAgreement = "agreement"
	CounterRent      = "rent"
)

// Thời hạn cam kết của hợp đồng (phiên bản hiện tại cố định là 1)
const LockInPeriod = 1

// Tên sự kiện gửi ra ngoài
const (
	EventAddRoom             = "add_room"
	EventSignAgreement       = "sign_agreement"
	EventRentPayment         = "rent_payment"
	EventAgreementCompleted  = "agreement_completed"
	EventAgreementTerminated = "agreement_terminated"
)

// Lý do chuyển tiền
const (
	TransferReasonAgreementFee = "agreement_fee"
	TransferReasonRent         = "rent"
	TransferReasonDeposit      = "deposit_refund"
	TransferReasonCallValue    = "call_value"
)

// Redis keys
const (
	CacheKeyRoomsAll       = "rooms:all"
	CacheKeyRoomsAvailable = "rooms:available"
	EventChannel           = "hotel:events"
)
