package services

import (
	"testing"

	apperrors "roombook/errors"
	"roombook/types"

	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	guard := NewGuard(landlord)
	ran := false
	body := func() error {
		ran = true
		return nil
	}

	tests := []struct {
		name    string
		gate    func(types.AccountID, func() error) error
		caller  types.AccountID
		wantErr error
	}{
		{"owner passes OnlyOwner", guard.OnlyOwner, landlord, nil},
		{"tenant blocked by OnlyOwner", guard.OnlyOwner, tenant, apperrors.ErrCallerIsNotOwner},
		{"zero account blocked by OnlyOwner", guard.OnlyOwner, types.ZeroAccount, apperrors.ErrCallerIsNotOwner},
		{"tenant passes NonOwner", guard.NonOwner, tenant, nil},
		{"owner blocked by NonOwner", guard.NonOwner, landlord, apperrors.ErrCallerIsOwner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ran = false
			err := tt.gate(tt.caller, body)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, ran)
				return
			}
			assert.NoError(t, err)
			assert.True(t, ran)
		})
	}
}

func TestGuarded(t *testing.T) {
	guard := NewGuard(landlord)

	value, err := Guarded(guard.OnlyOwner, landlord, func() (int, error) { return 7, nil })
	assert.NoError(t, err)
	assert.Equal(t, 7, value)

	value, err = Guarded(guard.OnlyOwner, tenant, func() (int, error) { return 7, nil })
	assert.ErrorIs(t, err, apperrors.ErrCallerIsNotOwner)
	assert.Zero(t, value)
}
