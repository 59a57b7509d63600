package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rakibul/unibus/internal/pkg/apperrors"
)

func responseCodeFor(err error) int {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)
	return w.Code
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{apperrors.ErrScheduleNotFound, http.StatusNotFound},
		{apperrors.ErrComplaintNotFound, http.StatusNotFound},
		{apperrors.ErrNoticeNotFound, http.StatusNotFound},
		{apperrors.ErrUserNotFound, http.StatusNotFound},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{apperrors.ErrTokenRevoked, http.StatusUnauthorized},
		{apperrors.ErrPermissionDenied, http.StatusForbidden},
		{apperrors.ErrAccountDisabled, http.StatusForbidden},
		{apperrors.ErrValidationFailed, http.StatusBadRequest},
		{apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{apperrors.ErrUniversityIDExists, http.StatusConflict},
		{apperrors.ErrInvalidStatusTransition, http.StatusUnprocessableEntity},
		{apperrors.ErrAdminResponseRequired, http.StatusUnprocessableEntity},
		{apperrors.ErrOAuthProviderMisconfigured, http.StatusBadGateway},
		{apperrors.ErrOAuthExchangeFailed, http.StatusUnauthorized},
		{apperrors.ErrOAuthStateMismatch, http.StatusBadRequest},
		{errors.New("something unexpected"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, responseCodeFor(tc.err), "error: %v", tc.err)
	}
}

func TestHandleAPIErrorUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: time cannot be empty", apperrors.ErrValidationFailed)
	assert.Equal(t, http.StatusBadRequest, responseCodeFor(wrapped))

	wrappedOAuth := fmt.Errorf("%w: oauth2: invalid_client", apperrors.ErrOAuthProviderMisconfigured)
	assert.Equal(t, http.StatusBadGateway, responseCodeFor(wrappedOAuth))
}

func TestHandleAPIErrorCustomErrorUnwraps(t *testing.T) {
	err := apperrors.NewForbiddenError("complaint belongs to another user")
	assert.Equal(t, http.StatusForbidden, responseCodeFor(err))
}
