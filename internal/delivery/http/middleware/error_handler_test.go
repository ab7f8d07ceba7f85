package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"teleradiology-api/internal/testutil"
	"teleradiology-api/pkg/apperror"
	"teleradiology-api/pkg/validator"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type signupForm struct {
	Email string `json:"email" validate:"required,email"`
}

func TestErrorHandler_Handle(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"app error", apperror.Conflict("Email already registered"), http.StatusConflict, "Email already registered"},
		{"wrapped app error", fmt.Errorf("create: %w", apperror.NotFound("Contact not found")), http.StatusNotFound, "Contact not found"},
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "contents_slug_key"}, http.StatusBadRequest, "Duplicate field value entered"},
		{"foreign key", &pgconn.PgError{Code: "23503"}, http.StatusBadRequest, "Referenced resource does not exist"},
		{"check violation", &pgconn.PgError{Code: "23514"}, http.StatusBadRequest, "Invalid input data"},
		{"bad text representation", &pgconn.PgError{Code: "22P02"}, http.StatusBadRequest, "Invalid input data"},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, "Resource not found"},
		{"duplicated key", gorm.ErrDuplicatedKey, http.StatusBadRequest, "Duplicate field value entered"},
		{"expired token", jwt.ErrTokenExpired, http.StatusUnauthorized, "Token has expired."},
		{"malformed token", jwt.ErrTokenMalformed, http.StatusUnauthorized, "Invalid token."},
		{"bad signature", jwt.ErrTokenSignatureInvalid, http.StatusUnauthorized, "Invalid token."},
		{"body too large", &http.MaxBytesError{Limit: 10}, http.StatusBadRequest, "File too large"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	h := NewErrorHandler(testutil.NewLogger(), validator.NewValidator(), false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/x", nil), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, errorMessage(t, rec))
		})
	}
}

func TestErrorHandler_UniqueViolationDetails(t *testing.T) {
	h := NewErrorHandler(testutil.NewLogger(), validator.NewValidator(), false)
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/users", nil), &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	body := decodeBody(t, rec)
	assert.Equal(t, map[string]interface{}{"constraint": "users_email_key"}, body.Error.Details)
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	v := validator.NewValidator()
	err := v.Validate(&signupForm{Email: "nope"})
	require.Error(t, err)

	h := NewErrorHandler(testutil.NewLogger(), v, false)
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", nil), err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestErrorHandler_ProductionHidesStack(t *testing.T) {
	dev := NewErrorHandler(testutil.NewLogger(), validator.NewValidator(), false)
	rec := httptest.NewRecorder()
	dev.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret detail"))
	assert.Contains(t, decodeBody(t, rec).Error.Stack, "secret detail")

	prod := NewErrorHandler(testutil.NewLogger(), validator.NewValidator(), true)
	rec = httptest.NewRecorder()
	prod.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret detail"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")
}

func TestErrorHandler_Recover(t *testing.T) {
	h := NewErrorHandler(testutil.NewLogger(), validator.NewValidator(), true)
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	})

	rec := serve(h.Recover(panicking), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, decodeBody(t, rec).Success)

	rec = serve(h.Recover(okHandler), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
