package handler

import (
	"net/http"
	"testing"

	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/usecase"
	"teleradiology-api/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return NewAuthHandler(uc, validator.NewValidator(), newErrorHandler())
}

func TestAuthHandler_LoginValidation(t *testing.T) {
	uc := new(mockAuthUsecase)
	h := newAuthHandler(uc)

	rec := record(h.Login, jsonRequest(t, http.MethodPost, "/api/auth/login", "{not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", errorMessage(t, rec))

	rec = record(h.Login, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "nope"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", errorMessage(t, rec))

	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthHandler_LoginFailureUsesErrorEnvelope(t *testing.T) {
	uc := new(mockAuthUsecase)
	uc.On("Login", mock.Anything, &dto.LoginRequest{Email: "admin@example.com", Password: "wrong"}).
		Return(nil, usecase.ErrInvalidCredentials)

	rec := record(newAuthHandler(uc).Login, jsonRequest(t, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "admin@example.com", Password: "wrong"}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", errorMessage(t, rec))
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	uc := new(mockAuthUsecase)
	uc.On("Login", mock.Anything, mock.AnythingOfType("*dto.LoginRequest")).
		Return(&dto.AuthResponse{Tokens: &dto.TokenResponse{AccessToken: "access"}}, nil)

	rec := record(newAuthHandler(uc).Login, jsonRequest(t, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "admin@example.com", Password: "secret"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Login successful", body.Message)
}

func TestAuthHandler_LogoutPassesTokenAndOptionalRefresh(t *testing.T) {
	user := staff(entity.RoleAdmin)
	uc := new(mockAuthUsecase)
	uc.On("Logout", mock.Anything, user.ID, "token-1", "refresh-1").Return(nil).Once()
	uc.On("Logout", mock.Anything, user.ID, "token-1", "").Return(nil).Once()
	h := newAuthHandler(uc)

	req := asUser(jsonRequest(t, http.MethodPost, "/api/auth/logout", dto.LogoutRequest{RefreshToken: "refresh-1"}), user, "token-1")
	assert.Equal(t, http.StatusOK, record(h.Logout, req).Code)

	req = asUser(jsonRequest(t, http.MethodPost, "/api/auth/logout", nil), user, "token-1")
	assert.Equal(t, http.StatusOK, record(h.Logout, req).Code)

	rec := record(h.Logout, jsonRequest(t, http.MethodPost, "/api/auth/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	uc.AssertExpectations(t)
}

func TestAuthHandler_ForgotPasswordIsUniform(t *testing.T) {
	uc := new(mockAuthUsecase)
	uc.On("ForgotPassword", mock.Anything, &dto.ForgotPasswordRequest{Email: "unknown@example.com"}).Return(nil)

	rec := record(newAuthHandler(uc).ForgotPassword, jsonRequest(t, http.MethodPost, "/api/auth/forgot-password",
		dto.ForgotPasswordRequest{Email: "unknown@example.com"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "If that email is registered, a reset link has been sent", decode(t, rec).Message)
}
