package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"roombook/dto"
	"roombook/errors"
	"roombook/models"
	"roombook/services"
	"roombook/services/logger"
	"roombook/types"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	testSecret                   = "test-secret"
	landlord     types.AccountID = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	tenant       types.AccountID = "5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty"
	escrowTarget                 = "/api/v1/accounts/hotel/balance"
)

type envelope struct {
	Code      int             `json:"code"`
	Mess      string          `json:"mess"`
	ErrorCode string          `json:"errorCode"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	owner, err := services.InitHotel(db, landlord)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	service := services.NewRoomBookService(services.RoomBookServiceOptions{
		DB:       db,
		Logger:   logger.NewNopLogger(),
		Landlord: owner,
		Metrics:  services.NewMetrics(registry),
	})

	router := gin.New()
	SetupRoutes(router, service, testSecret, registry)
	return router
}

func tokenFor(t *testing.T, account types.AccountID) string {
	t.Helper()
	token, err := services.GenerateToken(account, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func do(t *testing.T, router *gin.Engine, method, path string, account types.AccountID, value uint64, body interface{}) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if account != "" {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, account))
	}
	if value > 0 {
		req.Header.Set("X-Call-Value", strconv.FormatUint(value, 10))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "text/plain; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestRoutes_BookingFlow(t *testing.T) {
	router := newTestRouter(t)

	status, resp := do(t, router, http.MethodPost, "/api/v1/rooms", landlord, 0, dto.AddRoomRequest{
		RoomName: "r1", RoomAddress: "addr1", RentPerMonth: 10, SecurityDeposit: 10,
	})
	require.Equal(t, http.StatusOK, status)
	var room models.Room
	require.NoError(t, json.Unmarshal(resp.Data, &room))
	assert.Equal(t, uint64(0), room.RoomID)
	assert.True(t, room.Vacant)

	status, resp = do(t, router, http.MethodPost, "/api/v1/rooms/0/agreement", tenant, 19, nil)
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, string(errors.ErrCodeNotEnoughAgreementFee), resp.ErrorCode)

	status, resp = do(t, router, http.MethodPost, "/api/v1/rooms/0/agreement", tenant, 20, nil)
	require.Equal(t, http.StatusOK, status)
	var receipt services.SignReceipt
	require.NoError(t, json.Unmarshal(resp.Data, &receipt))
	assert.Equal(t, uint64(1), receipt.Agreement.AgreementID)
	assert.Equal(t, uint64(0), receipt.Rent.RentID)

	status, resp = do(t, router, http.MethodGet, "/api/v1/rooms/available", "", 0, nil)
	require.Equal(t, http.StatusOK, status)
	var list dto.RoomListResponse
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, 0, list.Total)

	status, _ = do(t, router, http.MethodPost, "/api/v1/rooms/0/rent", tenant, 10, nil)
	require.Equal(t, http.StatusOK, status)

	status, resp = do(t, router, http.MethodGet, "/api/v1/rooms/0/rents", "", 0, nil)
	require.Equal(t, http.StatusOK, status)
	var rents []models.Rent
	require.NoError(t, json.Unmarshal(resp.Data, &rents))
	assert.Len(t, rents, 2)

	status, resp = do(t, router, http.MethodPost, "/api/v1/rooms/0/complete", landlord, 0, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &room))
	assert.True(t, room.Vacant)

	status, resp = do(t, router, http.MethodGet, "/api/v1/accounts/"+tenant.String()+"/balance", "", 0, nil)
	require.Equal(t, http.StatusOK, status)
	var balance dto.BalanceResponse
	require.NoError(t, json.Unmarshal(resp.Data, &balance))
	assert.Equal(t, uint64(10), balance.Balance)

	status, resp = do(t, router, http.MethodGet, escrowTarget, "", 0, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &balance))
	assert.Equal(t, uint64(0), balance.Balance)

	status, resp = do(t, router, http.MethodGet, "/api/v1/rooms/0/transfers", landlord, 0, nil)
	require.Equal(t, http.StatusOK, status)
	var transfers []models.Transfer
	require.NoError(t, json.Unmarshal(resp.Data, &transfers))
	assert.Len(t, transfers, 5)
}

func TestRoutes_AccessControl(t *testing.T) {
	router := newTestRouter(t)

	status, _ := do(t, router, http.MethodPost, "/api/v1/rooms", "", 0, dto.AddRoomRequest{RoomName: "r1"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, resp := do(t, router, http.MethodPost, "/api/v1/rooms", tenant, 0, dto.AddRoomRequest{RoomName: "r1"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, string(errors.ErrCodeCallerIsNotOwner), resp.ErrorCode)

	status, _ = do(t, router, http.MethodGet, "/api/v1/rooms", tenant, 0, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = do(t, router, http.MethodPost, "/api/v1/rooms", landlord, 0, dto.AddRoomRequest{RoomName: "r1", RentPerMonth: 1})
	require.Equal(t, http.StatusOK, status)

	status, resp = do(t, router, http.MethodPost, "/api/v1/rooms/0/agreement", landlord, 1, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, string(errors.ErrCodeCallerIsOwner), resp.ErrorCode)

	status, resp = do(t, router, http.MethodPost, "/api/v1/rooms/0/complete", landlord, 0, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, string(errors.ErrCodeRoomIsVacant), resp.ErrorCode)

	status, resp = do(t, router, http.MethodPost, "/api/v1/rooms/5/rent", tenant, 1, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, string(errors.ErrCodeRoomNotFound), resp.ErrorCode)

	status, _ = do(t, router, http.MethodGet, "/api/v1/rooms/0/transfers", tenant, 0, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRoutes_BadInput(t *testing.T) {
	router := newTestRouter(t)

	status, _ := do(t, router, http.MethodPost, "/api/v1/rooms/abc/agreement", tenant, 1, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms/0/agreement", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, tenant))
	req.Header.Set("X-Call-Value", "-3")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/rooms/0/agreement", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, tenant))
	req.Header.Set("X-Call-Value", "9223372036854775808")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	status, _ = do(t, router, http.MethodPost, "/api/v1/rooms", landlord, 0, dto.AddRoomRequest{RoomName: "r1", RentPerMonth: 1 << 63})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, router, http.MethodGet, "/api/v1/accounts/not%20valid/balance", "", 0, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, router, http.MethodGet, "/api/v1/agreements/9", "", 0, nil)
	assert.Equal(t, http.StatusNotFound, status)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_Infra(t *testing.T) {
	router := newTestRouter(t)

	status, resp := do(t, router, http.MethodGet, "/api/v1/landlord", "", 0, nil)
	require.Equal(t, http.StatusOK, status)
	var owner dto.LandlordResponse
	require.NoError(t, json.Unmarshal(resp.Data, &owner))
	assert.Equal(t, landlord.String(), owner.Landlord)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "pong", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	do(t, router, http.MethodGet, "/api/v1/rooms/available", "", 0, nil)
	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `roombook_operations_total{operation="get_available_room",result="ok"} 1`)
}
