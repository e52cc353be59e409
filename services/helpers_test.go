package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"roombook/constants"
	"roombook/services/logger"
	"roombook/types"

	"github.com/glebarez/sqlite"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"roombook/services/notification"
)

const (
	landlord types.AccountID = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	tenant   types.AccountID = "5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty"
	stranger types.AccountID = "5FLSigC9HGRKVhB9FiEo4Y3koPsNmBmLJbpXg2mp1hXcS59Y"
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []notification.Event
}

func (n *recordingNotifier) SendMessage(message string) error {
	var event notification.Event
	if err := json.Unmarshal([]byte(message), &event); err != nil {
		return err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

func (n *recordingNotifier) Events() []notification.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification.Event(nil), n.events...)
}

type testEnv struct {
	db       *gorm.DB
	service  *RoomBookService
	notifier *recordingNotifier
	funds    *FundsLedger
}

func newTestEnv(t *testing.T, mutate ...func(*RoomBookServiceOptions)) *testEnv {
	t.Helper()
	db := newTestDB(t)
	owner, err := InitHotel(db, landlord)
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	opts := RoomBookServiceOptions{
		DB:       db,
		Logger:   logger.NewNopLogger(),
		Landlord: owner,
		Notifier: notifier,
		Clock:    func() time.Time { return fixedNow },
	}
	for _, m := range mutate {
		m(&opts)
	}
	return &testEnv{
		db:       db,
		service:  NewRoomBookService(opts),
		notifier: notifier,
		funds:    NewFundsLedger(),
	}
}

func as(caller types.AccountID, value uint64) context.Context {
	return types.WithCall(context.Background(), caller, value)
}

func (e *testEnv) addRoom(t *testing.T, name string, rent, deposit uint64) uint64 {
	t.Helper()
	room, err := e.service.AddRoom(as(landlord, 0), AddRoomInput{
		RoomName:        name,
		RoomAddress:     name + " street",
		RentPerMonth:    rent,
		SecurityDeposit: deposit,
	})
	require.NoError(t, err)
	return room.RoomID
}

func (e *testEnv) balance(t *testing.T, account types.AccountID) uint64 {
	t.Helper()
	b, err := e.funds.Balance(e.db, account)
	require.NoError(t, err)
	return b
}

// counters chụp giá trị hiện tại của ba bộ đếm định danh
func (e *testEnv) counters(t *testing.T) map[string]uint64 {
	t.Helper()
	allocator := NewIdentifierAllocator()
	values := make(map[string]uint64, 3)
	for _, name := range []string{constants.CounterRoom, constants.CounterAgreement, constants.CounterRent} {
		v, err := allocator.Peek(e.db, name)
		require.NoError(t, err)
		values[name] = v
	}
	return values
}
