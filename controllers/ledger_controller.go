package controllers

import (
	"strconv"

	"roombook/dto"
	"roombook/response"
	"roombook/services"
	"roombook/types"
	"roombook/validator"

	"github.com/gin-gonic/gin"
)

// LedgerController phục vụ các truy vấn sổ cái: hợp đồng, lịch sử thanh toán, số dư
type LedgerController struct {
	service *services.RoomBookService
}

func NewLedgerController(service *services.RoomBookService) *LedgerController {
	return &LedgerController{service: service}
}

// GetAgreement godoc
// @Summary  Chi tiết hợp đồng
// @Tags     ledger
// @Produce  json
// @Param    id path int true "Agreement ID"
// @Success  200 {object} response.Response
// @Router   /agreements/{id} [get]
func (lc *LedgerController) GetAgreement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "agreement id không hợp lệ")
		return
	}
	agreement, err := lc.service.GetAgreement(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, agreement)
}

// GetRents godoc
// @Summary  Lịch sử thanh toán của phòng
// @Tags     ledger
// @Produce  json
// @Param    id path int true "Room ID"
// @Success  200 {object} response.Response
// @Router   /rooms/{id}/rents [get]
func (lc *LedgerController) GetRents(c *gin.Context) {
	roomID, ok := bindRoomID(c)
	if !ok {
		return
	}
	rents, err := lc.service.GetRents(c.Request.Context(), roomID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, rents)
}

// GetRoomAgreements godoc
// @Summary  Các hợp đồng đã ký của phòng
// @Tags     ledger
// @Produce  json
// @Param    id path int true "Room ID"
// @Success  200 {object} response.Response
// @Router   /rooms/{id}/agreements [get]
func (lc *LedgerController) GetRoomAgreements(c *gin.Context) {
	roomID, ok := bindRoomID(c)
	if !ok {
		return
	}
	agreements, err := lc.service.GetRoomAgreements(c.Request.Context(), roomID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, agreements)
}

// GetTransfers godoc
// @Summary  Nhật ký chuyển tiền của phòng (chỉ landlord)
// @Tags     ledger
// @Produce  json
// @Param    id path int true "Room ID"
// @Success  200 {object} response.Response
// @Security BearerAuth
// @Router   /rooms/{id}/transfers [get]
func (lc *LedgerController) GetTransfers(c *gin.Context) {
	roomID, ok := bindRoomID(c)
	if !ok {
		return
	}
	transfers, err := lc.service.GetTransfers(callContext(c), roomID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, transfers)
}

// GetBalance godoc
// @Summary  Số dư tài khoản
// @Tags     ledger
// @Produce  json
// @Param    address path string true "Account"
// @Success  200 {object} response.Response
// @Router   /accounts/{address}/balance [get]
func (lc *LedgerController) GetBalance(c *gin.Context) {
	var uri dto.AddressUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Tài khoản không hợp lệ")
		return
	}
	if uri.Address != types.HotelAccount.String() {
		if err := validator.ValidateAccount(uri.Address); err != nil {
			response.AppError(c, err)
			return
		}
	}
	balance, err := lc.service.GetBalance(c.Request.Context(), types.AccountID(uri.Address))
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dto.BalanceResponse{Address: uri.Address, Balance: balance})
}
