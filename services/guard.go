package services

import (
	apperrors "roombook/errors"
	"roombook/types"
)

// Guard kiểm tra quyền của người gọi trước khi chạy thao tác
type Guard struct {
	landlord types.AccountID
}

func NewGuard(landlord types.AccountID) *Guard {
	return &Guard{landlord: landlord}
}

// OnlyOwner chỉ chạy body khi người gọi là landlord
func (g *Guard) OnlyOwner(caller types.AccountID, body func() error) error {
	if !caller.Equal(g.landlord) {
		return apperrors.ErrCallerIsNotOwner
	}
	return body()
}

// NonOwner chỉ chạy body khi người gọi không phải landlord
func (g *Guard) NonOwner(caller types.AccountID, body func() error) error {
	if caller.Equal(g.landlord) {
		return apperrors.ErrCallerIsOwner
	}
	return body()
}

// Guarded chạy body trả về giá trị qua một cổng kiểm tra quyền
func Guarded[T any](gate func(types.AccountID, func() error) error, caller types.AccountID, body func() (T, error)) (T, error) {
	var result T
	err := gate(caller, func() error {
		var err error
		result, err = body()
		return err
	})
	return result, err
}
