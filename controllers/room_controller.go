package controllers

import (
	"context"

	"roombook/dto"
	"roombook/middleware"
	"roombook/models"
	"roombook/response"
	"roombook/services"
	"roombook/types"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	service *services.RoomBookService
}

func NewRoomController(service *services.RoomBookService) *RoomController {
	return &RoomController{service: service}
}

// callContext gắn người gọi và số tiền đính kèm vào context của request
func callContext(c *gin.Context) context.Context {
	return types.WithCall(c.Request.Context(), middleware.CallerFrom(c), middleware.CallValueFrom(c))
}

func bindRoomID(c *gin.Context) (uint64, bool) {
	var uri dto.RoomIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "room id không hợp lệ")
		return 0, false
	}
	return uri.ID, true
}

// AddRoom godoc
// @Summary  Tạo phòng mới (chỉ landlord)
// @Tags     rooms
// @Accept   json
// @Produce  json
// @Param    body body dto.AddRoomRequest true "Thông tin phòng"
// @Success  200 {object} response.Response
// @Security BearerAuth
// @Router   /rooms [post]
func (rc *RoomController) AddRoom(c *gin.Context) {
	var req dto.AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room, err := rc.service.AddRoom(callContext(c), services.AddRoomInput{
		RoomName:        req.RoomName,
		RoomAddress:     req.RoomAddress,
		RentPerMonth:    req.RentPerMonth,
		SecurityDeposit: req.SecurityDeposit,
		TimeStamp:       req.TimeStamp,
	})
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, room)
}

// SignAgreement godoc
// @Summary  Ký hợp đồng thuê phòng, tiền đính kèm qua header X-Call-Value
// @Tags     rooms
// @Produce  json
// @Param    id path int true "Room ID"
// @Param    X-Call-Value header int false "Số tiền đính kèm"
// @Success  200 {object} response.Response
// @Security BearerAuth
// @Router   /rooms/{id}/agreement [post]
func (rc *RoomController) SignAgreement(c *gin.Context) {
	roomID, ok := bindRoomID(c)
	if !ok {
		return
	}
	receipt, err := rc.service.SignAgreement(callContext(c), roomID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, receipt)
}

// PayRent godoc
// @Summary  Trả tiền thuê phòng
// @Tags     rooms
// @Produce  json
// @Param    id path int true "Room ID"
// @Param    X-Call-Value header int false "Số tiền đính kèm"
// @Success  200 {object} response.Response
// @Security BearerAuth
// @Router   /rooms/{id}/rent [post]
func (rc *RoomController) PayRent(c *gin.Context) {
	roomID, ok := bindRoomID(c)
	if !ok {
		return
	}
	rent, err := rc.service.PayRent(callContext(c), roomID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, rent)
}

// AgreementCompleted godoc
// @Summary  Kết thúc hợp đồng và hoàn cọc (chỉ landlord)
// @Tags     rooms
// @Produce  json
// @Param    id path int true "Room ID"
// @Success  200 {object} response.Response
// @Security BearerAuth
// @Router   /rooms/{id}/complete [post]
func (rc *RoomController) AgreementCompleted(c *gin.Context) {
	roomID, ok := bindRoomID(c)
	if !ok {
		return
	}
	room, err := rc.service.AgreementCompleted(callContext(c), roomID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, room)
}

// AgreementTerminated godoc
// @Summary  Chấm dứt hợp đồng sớm (chỉ landlord)
// @Tags     rooms
// @Produce  json
// @Param    id path int true "Room ID"
// @Success  200 {object} response.Response
// @Security BearerAuth
// @Router   /rooms/{id}/terminate [post]
func (rc *RoomController) AgreementTerminated(c *gin.Context) {
	roomID, ok := bindRoomID(c)
	if !ok {
		return
	}
	room, err := rc.service.AgreementTerminated(callContext(c), roomID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, room)
}

// GetRooms godoc
// @Summary  Danh sách tất cả phòng (chỉ landlord)
// @Tags     rooms
// @Produce  json
// @Success  200 {object} response.Response
// @Security BearerAuth
// @Router   /rooms [get]
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.service.GetRooms(callContext(c))
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dto.RoomListResponse{Data: rooms, Total: len(rooms)})
}

// GetAvailableRooms godoc
// @Summary  Danh sách phòng trống, có thể tìm theo tên/địa chỉ
// @Tags     rooms
// @Produce  json
// @Param    q query string false "Từ khóa"
// @Success  200 {object} response.Response
// @Router   /rooms/available [get]
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	ctx := callContext(c)
	query := c.Query("q")

	var err error
	var rooms []models.Room
	if query == "" {
		rooms, err = rc.service.GetAvailableRooms(ctx)
	} else {
		rooms, err = rc.service.SearchAvailableRooms(ctx, query)
	}
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dto.RoomListResponse{Data: rooms, Total: len(rooms)})
}

// GetLandlord godoc
// @Summary  Landlord của khách sạn
// @Tags     hotel
// @Produce  json
// @Success  200 {object} response.Response
// @Router   /landlord [get]
func (rc *RoomController) GetLandlord(c *gin.Context) {
	response.Success(c, dto.LandlordResponse{Landlord: rc.service.GetLandlord().String()})
}
