package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rakibul/unibus/internal/app/models/dto"
	"github.com/rakibul/unibus/internal/pkg/apperrors"
)

func TestGetProfileInvalidID(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.GetProfile(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.GetProfile(context.Background(), -7)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateProfileRejectsBadInput(t *testing.T) {
	svc := NewUserService(nil)
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.UpdateProfileRequest
	}{
		{"short name", dto.UpdateProfileRequest{Name: "A", UniversityID: "201-15-3210"}},
		{"bad university id", dto.UpdateProfileRequest{Name: "Nusrat Jahan", UniversityID: "not-an-id"}},
		{"bad mobile", dto.UpdateProfileRequest{Name: "Nusrat Jahan", UniversityID: "201-15-3210", Mobile: "12345"}},
	}

	for _, tc := range cases {
		_, err := svc.UpdateProfile(ctx, 1, tc.req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, tc.name)
	}
}
