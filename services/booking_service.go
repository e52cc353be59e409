package services

import (
	"context"
	"math"
	"sync"
	"time"

	"roombook/builders"
	"roombook/commands"
	"roombook/constants"
	apperrors "roombook/errors"
	"roombook/models"
	"roombook/services/logger"
	"roombook/services/notification"
	"roombook/types"

	"gorm.io/gorm"
)

// MaxAmount là số tiền lớn nhất lưu được trong cột bigint
const MaxAmount uint64 = math.MaxInt64

// AddRoomInput là dữ liệu tạo phòng. Không kiểm tra độ dài chuỗi hay giá trị dương.
type AddRoomInput struct {
	RoomName        string
	RoomAddress     string
	RentPerMonth    uint64
	SecurityDeposit uint64
	TimeStamp       uint64
}

// SignReceipt là kết quả của một lần ký hợp đồng
type SignReceipt struct {
	Room      models.Room          `json:"room"`
	Agreement models.RoomAgreement `json:"agreement"`
	Rent      models.Rent          `json:"rent"`
}

// FundsReader đọc số dư và nhật ký chuyển tiền
type FundsReader interface {
	Balance(tx *gorm.DB, address types.AccountID) (uint64, error)
	Transfers(tx *gorm.DB, roomID uint64) ([]models.Transfer, error)
}

type RoomBookServiceOptions struct {
	DB         *gorm.DB
	Logger     logger.Logger
	Landlord   types.AccountID
	Notifier   notification.Service
	Cache      RoomCache
	Transferer Transferer
	Balances   FundsReader
	Metrics    *Metrics
	Clock      func() time.Time
}

// RoomBookService điều phối mọi thao tác đặt phòng.
// Các thao tác được chạy tuần tự: mỗi thao tác giữ mutex và chạy trong một transaction.
type RoomBookService struct {
	mu sync.Mutex

	db         *gorm.DB
	logger     logger.Logger
	landlord   types.AccountID
	guard      *Guard
	allocator  *IdentifierAllocator
	registry   *RoomRegistry
	agreements *AgreementLedger
	rents      *RentLedger
	funds      Transferer
	balances   FundsReader
	notifier   notification.Service
	cache      RoomCache
	metrics    *Metrics
	clock      func() time.Time
}

func NewRoomBookService(opts RoomBookServiceOptions) *RoomBookService {
	s := &RoomBookService{
		db:         opts.DB,
		logger:     opts.Logger,
		landlord:   opts.Landlord,
		guard:      NewGuard(opts.Landlord),
		allocator:  NewIdentifierAllocator(),
		registry:   NewRoomRegistry(),
		agreements: NewAgreementLedger(),
		rents:      NewRentLedger(),
		funds:      opts.Transferer,
		balances:   opts.Balances,
		notifier:   opts.Notifier,
		cache:      opts.Cache,
		metrics:    opts.Metrics,
		clock:      opts.Clock,
	}
	ledger := NewFundsLedger()
	if s.funds == nil {
		s.funds = ledger
	}
	if s.balances == nil {
		s.balances = ledger
	}
	if s.logger == nil {
		s.logger = logger.NewNopLogger()
	}
	if s.notifier == nil {
		s.notifier = notification.NopService{}
	}
	if s.cache == nil {
		s.cache = noRoomCache{}
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	return s
}

// GetLandlord trả về landlord cố định của hệ thống
func (s *RoomBookService) GetLandlord() types.AccountID {
	return s.landlord
}

func (s *RoomBookService) AddRoom(ctx context.Context, in AddRoomInput) (*models.Room, error) {
	call := types.CallFrom(ctx)
	var room *models.Room

	err := s.mutate(ctx, constants.EventAddRoom, func(tx *gorm.DB) error {
		return s.guard.OnlyOwner(call.Caller, func() error {
			if in.RentPerMonth > MaxAmount || in.SecurityDeposit > MaxAmount {
				return errAmountTooLarge
			}
			roomID, err := s.allocator.NextRoomID(tx)
			if err != nil {
				return err
			}
			// agreement_id được giữ trước, chỉ dùng khi có người ký
			agreementID, err := s.allocator.NextAgreementID(tx)
			if err != nil {
				return err
			}

			room = builders.NewRoomBuilder(roomID, agreementID).
				WithInfo(in.RoomName, in.RoomAddress).
				WithPrice(in.RentPerMonth, in.SecurityDeposit).
				WithLandlord(call.Caller).
				WithTimeStamp(in.TimeStamp).
				Build()

			return commands.NewSaveRoomCommand(s.registry, room).Execute(tx)
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("✅ Landlord %s tạo phòng %d", call.Caller, room.RoomID)
	s.notify(constants.EventAddRoom, room.RoomID, call.Caller)
	return room, nil
}

func (s *RoomBookService) SignAgreement(ctx context.Context, roomID uint64) (*SignReceipt, error) {
	call := types.CallFrom(ctx)
	var receipt *SignReceipt
	var fee uint64

	err := s.mutate(ctx, constants.EventSignAgreement, func(tx *gorm.DB) error {
		return s.guard.NonOwner(call.Caller, func() error {
			room, err := s.requireRoom(tx, roomID)
			if err != nil {
				return err
			}
			total, ok := room.AgreementFee()
			if !ok || call.Value < total {
				return apperrors.ErrNotEnoughAgreementFee
			}
			if !room.Vacant {
				return apperrors.ErrRoomIsNotVacant
			}
			fee = total

			agreementID, err := s.allocator.NextAgreementID(tx)
			if err != nil {
				return err
			}
			rentID, err := s.allocator.NextRentID(tx)
			if err != nil {
				return err
			}
			if err := models.GetRoomState(room).Sign(room, call.Caller, agreementID, s.now()); err != nil {
				return err
			}
			agreement := builders.BuildAgreement(room)
			rent := builders.BuildRent(rentID, room, call.Caller)

			batch := commands.Batch{
				s.receiveCommand(call, roomID),
				s.transferCommand(types.HotelAccount, room.Landlord, total, roomID, constants.TransferReasonAgreementFee),
				commands.NewSaveRoomCommand(s.registry, room),
				commands.NewAppendAgreementCommand(s.agreements, agreement),
				commands.NewAppendRentCommand(s.rents, rent),
			}
			if err := batch.Execute(tx); err != nil {
				return err
			}

			receipt = &SignReceipt{Room: *room, Agreement: *agreement, Rent: *rent}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AddTransferred(constants.TransferReasonAgreementFee, fee)
	s.logger.Info("✅ %s ký hợp đồng %d cho phòng %d", call.Caller, receipt.Agreement.AgreementID, roomID)
	s.notify(constants.EventSignAgreement, roomID, call.Caller)
	return receipt, nil
}

func (s *RoomBookService) PayRent(ctx context.Context, roomID uint64) (*models.Rent, error) {
	call := types.CallFrom(ctx)
	var rent *models.Rent

	err := s.mutate(ctx, constants.EventRentPayment, func(tx *gorm.DB) error {
		room, err := s.requireRoom(tx, roomID)
		if err != nil {
			return err
		}
		if room.Vacant || !call.Caller.Equal(room.CurrentTenant) {
			return apperrors.ErrNotATenant
		}
		if call.Value < room.RentPerMonth {
			return apperrors.ErrNotEnoughRentFee
		}

		rentID, err := s.allocator.NextRentID(tx)
		if err != nil {
			return err
		}
		// Giữ chỗ một agreement_id như khi tạo phòng; bản ghi rent vẫn trỏ tới hợp đồng hiện tại
		if _, err := s.allocator.NextAgreementID(tx); err != nil {
			return err
		}
		if err := models.GetRoomState(room).PayRent(room, s.now()); err != nil {
			return err
		}
		rent = builders.BuildRent(rentID, room, call.Caller)

		return commands.Batch{
			s.receiveCommand(call, roomID),
			s.transferCommand(types.HotelAccount, room.Landlord, room.RentPerMonth, roomID, constants.TransferReasonRent),
			commands.NewSaveRoomCommand(s.registry, room),
			commands.NewAppendRentCommand(s.rents, rent),
		}.Execute(tx)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AddTransferred(constants.TransferReasonRent, rent.RentPerMonth)
	s.logger.Info("✅ %s trả tiền thuê phòng %d (rent %d)", call.Caller, roomID, rent.RentID)
	s.notify(constants.EventRentPayment, roomID, call.Caller)
	return rent, nil
}

// AgreementCompleted kết thúc hợp đồng đúng hạn và hoàn tiền cọc cho người thuê
func (s *RoomBookService) AgreementCompleted(ctx context.Context, roomID uint64) (*models.Room, error) {
	return s.release(ctx, roomID, constants.EventAgreementCompleted, true)
}

// AgreementTerminated chấm dứt hợp đồng sớm, tiền cọc không được hoàn
func (s *RoomBookService) AgreementTerminated(ctx context.Context, roomID uint64) (*models.Room, error) {
	return s.release(ctx, roomID, constants.EventAgreementTerminated, false)
}

func (s *RoomBookService) release(ctx context.Context, roomID uint64, event string, refund bool) (*models.Room, error) {
	call := types.CallFrom(ctx)
	var room *models.Room
	var tenant types.AccountID

	err := s.mutate(ctx, event, func(tx *gorm.DB) error {
		return s.guard.OnlyOwner(call.Caller, func() error {
			var err error
			room, err = s.requireRoom(tx, roomID)
			if err != nil {
				return err
			}
			if room.Vacant {
				return apperrors.ErrRoomIsVacant
			}
			tenant = room.CurrentTenant
			if err := models.GetRoomState(room).Release(room, s.now()); err != nil {
				return err
			}

			batch := commands.Batch{}
			if refund {
				batch = append(batch, s.transferCommand(room.Landlord, tenant, room.SecurityDeposit, roomID, constants.TransferReasonDeposit))
			}
			batch = append(batch, commands.NewSaveRoomCommand(s.registry, room))
			return batch.Execute(tx)
		})
	})
	if err != nil {
		return nil, err
	}

	if refund {
		s.metrics.AddTransferred(constants.TransferReasonDeposit, room.SecurityDeposit)
	}
	s.logger.Info("✅ Phòng %d trống trở lại (%s, tenant %s)", roomID, event, tenant)
	s.notify(event, roomID, tenant)
	return room, nil
}

// GetRooms trả về tất cả phòng theo room_id tăng dần, chỉ landlord được gọi
func (s *RoomBookService) GetRooms(ctx context.Context) ([]models.Room, error) {
	call := types.CallFrom(ctx)
	return Guarded(s.guard.OnlyOwner, call.Caller, func() ([]models.Room, error) {
		return s.listRooms(ctx, "get_room", constants.CacheKeyRoomsAll, false)
	})
}

// GetAvailableRooms trả về các phòng đang trống
func (s *RoomBookService) GetAvailableRooms(ctx context.Context) ([]models.Room, error) {
	return s.listRooms(ctx, "get_available_room", constants.CacheKeyRoomsAvailable, true)
}

// SearchAvailableRooms tìm phòng trống theo tên hoặc địa chỉ
func (s *RoomBookService) SearchAvailableRooms(ctx context.Context, query string) ([]models.Room, error) {
	rooms, err := s.GetAvailableRooms(ctx)
	if err != nil {
		return nil, err
	}
	return SearchRooms(query, rooms), nil
}

func (s *RoomBookService) GetAgreement(ctx context.Context, agreementID uint64) (*models.RoomAgreement, error) {
	var agreement *models.RoomAgreement
	err := s.view(ctx, "get_agreement", func(tx *gorm.DB) error {
		var err error
		agreement, err = s.agreements.Get(tx, agreementID)
		return err
	})
	return agreement, err
}

func (s *RoomBookService) GetRents(ctx context.Context, roomID uint64) ([]models.Rent, error) {
	var rents []models.Rent
	err := s.view(ctx, "get_rents", func(tx *gorm.DB) error {
		if _, err := s.requireRoom(tx, roomID); err != nil {
			return err
		}
		var err error
		rents, err = s.rents.ListByRoom(tx, roomID)
		return err
	})
	return rents, err
}

// GetRoomAgreements trả về mọi hợp đồng từng ký cho phòng
func (s *RoomBookService) GetRoomAgreements(ctx context.Context, roomID uint64) ([]models.RoomAgreement, error) {
	var agreements []models.RoomAgreement
	err := s.view(ctx, "get_room_agreements", func(tx *gorm.DB) error {
		if _, err := s.requireRoom(tx, roomID); err != nil {
			return err
		}
		var err error
		agreements, err = s.agreements.ListByRoom(tx, roomID)
		return err
	})
	return agreements, err
}

// GetTransfers trả về nhật ký chuyển tiền của phòng, chỉ landlord được xem
func (s *RoomBookService) GetTransfers(ctx context.Context, roomID uint64) ([]models.Transfer, error) {
	call := types.CallFrom(ctx)
	var transfers []models.Transfer
	err := s.view(ctx, "get_transfers", func(tx *gorm.DB) error {
		return s.guard.OnlyOwner(call.Caller, func() error {
			if _, err := s.requireRoom(tx, roomID); err != nil {
				return err
			}
			var err error
			transfers, err = s.balances.Transfers(tx, roomID)
			return err
		})
	})
	return transfers, err
}

func (s *RoomBookService) GetBalance(ctx context.Context, address types.AccountID) (uint64, error) {
	var balance uint64
	err := s.view(ctx, "get_balance", func(tx *gorm.DB) error {
		var err error
		balance, err = s.balances.Balance(tx, address)
		return err
	})
	return balance, err
}

func (s *RoomBookService) listRooms(ctx context.Context, op, cacheKey string, vacantOnly bool) ([]models.Room, error) {
	var rooms []models.Room
	err := s.view(ctx, op, func(tx *gorm.DB) error {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			rooms = cached
			return nil
		}
		upper, err := s.allocator.Peek(tx, constants.CounterRoom)
		if err != nil {
			return err
		}
		rooms, err = s.registry.List(tx, upper, vacantOnly)
		if err != nil {
			return err
		}
		s.cache.Set(ctx, cacheKey, rooms)
		return nil
	})
	return rooms, err
}

var errAmountTooLarge = apperrors.NewAppError(apperrors.ErrCodeValidation, "số tiền vượt quá giới hạn lưu trữ", nil)

func (s *RoomBookService) requireRoom(tx *gorm.DB, roomID uint64) (*models.Room, error) {
	room, err := s.registry.Get(tx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	return room, nil
}

func (s *RoomBookService) receiveCommand(call types.Call, roomID uint64) commands.LedgerCommand {
	return commands.FuncCommand(func(tx *gorm.DB) error {
		if call.Value > MaxAmount {
			return errAmountTooLarge
		}
		return s.funds.Receive(tx, call.Caller, call.Value, roomID)
	})
}

func (s *RoomBookService) transferCommand(from, to types.AccountID, amount, roomID uint64, reason string) commands.LedgerCommand {
	return commands.FuncCommand(func(tx *gorm.DB) error {
		return s.funds.Transfer(tx, from, to, amount, roomID, reason)
	})
}

// mutate chạy thao tác ghi trong một transaction; lỗi ở bất kỳ bước nào, kể cả khi xóa cache, sẽ rollback toàn bộ
func (s *RoomBookService) mutate(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := fn(tx); err != nil {
			return err
		}
		// Xóa cache trước khi commit: nếu không xóa được thì rollback
		if err := s.cache.Invalidate(ctx); err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeCacheError, "không thể xóa cache danh sách phòng", err)
		}
		return nil
	})
	return s.finish(op, err)
}

func (s *RoomBookService) view(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.finish(op, fn(s.db.WithContext(ctx)))
}

func (s *RoomBookService) finish(op string, err error) error {
	if err != nil && !apperrors.IsAppError(err) {
		err = apperrors.DBError("lỗi khi thực hiện "+op, err)
	}
	s.metrics.Observe(op, err)
	if err != nil {
		if code := apperrors.CodeOf(err); code == apperrors.ErrCodeDBError || code == apperrors.ErrCodeTransferFailed || code == apperrors.ErrCodeCacheError {
			s.logger.Error("❌ %s thất bại: %v", op, err)
		} else {
			s.logger.Debug("%s bị từ chối: %v", op, err)
		}
	}
	return err
}

// notify gửi sự kiện sau khi commit, lỗi chỉ được log lại
func (s *RoomBookService) notify(event string, roomID uint64, account types.AccountID) {
	message, err := notification.NewMessageBuilder(event, roomID).
		WithAccount(account).
		WithTimestamp(s.now()).
		Build()
	if err != nil {
		s.logger.Error("❌ Lỗi tạo sự kiện %s: %v", event, err)
		return
	}
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("❌ Lỗi gửi sự kiện %s: %v", event, err)
	}
}

func (s *RoomBookService) now() uint64 {
	return uint64(s.clock().UnixMilli())
}
