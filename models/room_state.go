package models

import (
	"roombook/constants"
	apperrors "roombook/errors"
	"roombook/types"
)

// RoomState định nghĩa interface cho các trạng thái phòng
type RoomState interface {
	Name() string
	Sign(room *Room, tenant types.AccountID, agreementID, now uint64) error
	PayRent(room *Room, now uint64) error
	Release(room *Room, now uint64) error
}

// VacantState trạng thái phòng trống
type VacantState struct{}

func (s *VacantState) Name() string { return constants.RoomStatusVacant }

func (s *VacantState) Sign(room *Room, tenant types.AccountID, agreementID, now uint64) error {
	room.Vacant = false
	room.CurrentTenant = tenant
	room.AgreementID = agreementID
	room.TimeStamp = now
	return nil
}

func (s *VacantState) PayRent(room *Room, now uint64) error {
	return apperrors.ErrNotATenant
}

func (s *VacantState) Release(room *Room, now uint64) error {
	return apperrors.ErrRoomIsVacant
}

// OccupiedState trạng thái phòng đang có người thuê
type OccupiedState struct{}

func (s *OccupiedState) Name() string { return constants.RoomStatusOccupied }

func (s *OccupiedState) Sign(room *Room, tenant types.AccountID, agreementID, now uint64) error {
	return apperrors.ErrRoomIsNotVacant
}

func (s *OccupiedState) PayRent(room *Room, now uint64) error {
	room.TimeStamp = now
	return nil
}

func (s *OccupiedState) Release(room *Room, now uint64) error {
	room.Vacant = true
	room.CurrentTenant = types.ZeroAccount
	room.TimeStamp = now
	return nil
}

// GetRoomState trả về state tương ứng với trạng thái phòng
func GetRoomState(room *Room) RoomState {
	if room.Vacant {
		return &VacantState{}
	}
	return &OccupiedState{}
}
