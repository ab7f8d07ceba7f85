package middleware

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"runtime/debug"

	"teleradiology-api/pkg/apperror"
	"teleradiology-api/pkg/response"
	customValidator "teleradiology-api/pkg/validator"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrorHandler turns errors returned by usecases into the JSON envelope.
type ErrorHandler struct {
	log        *logrus.Logger
	validator  *customValidator.CustomValidator
	production bool
}

func NewErrorHandler(log *logrus.Logger, validator *customValidator.CustomValidator, production bool) *ErrorHandler {
	return &ErrorHandler{
		log:        log,
		validator:  validator,
		production: production,
	}
}

func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := apperror.As(err); ok {
		response.Error(w, appErr.Status, appErr.Message, appErr.Details)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		response.ValidationError(w, h.validator.FormatValidationErrors(validationErrs))
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			response.Error(w, http.StatusBadRequest, "Duplicate field value entered", map[string]string{"constraint": pgErr.ConstraintName})
			return
		case "23503":
			response.Error(w, http.StatusBadRequest, "Referenced resource does not exist", nil)
			return
		case "23514", "22P02":
			response.Error(w, http.StatusBadRequest, "Invalid input data", nil)
			return
		}
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(w, "Resource not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		response.Error(w, http.StatusBadRequest, "Duplicate field value entered", nil)
	case errors.Is(err, jwt.ErrTokenExpired):
		response.Unauthorized(w, "Token has expired.")
	case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrTokenSignatureInvalid):
		response.Unauthorized(w, "Invalid token.")
	case errors.As(err, &maxBytesErr), errors.Is(err, multipart.ErrMessageTooLarge):
		response.BadRequest(w, "File too large")
	default:
		h.log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Errorf("Unhandled error: %+v", err)
		if h.production {
			response.InternalServerError(w, "")
			return
		}
		response.ErrorWithStack(w, http.StatusInternalServerError, "Internal server error", fmt.Sprintf("%+v", err))
	}
}

// Recover converts a panic into a 500 envelope.
func (h *ErrorHandler) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := string(debug.Stack())
				h.log.WithFields(logrus.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  rec,
				}).Error(stack)
				if h.production {
					response.InternalServerError(w, "")
					return
				}
				response.ErrorWithStack(w, http.StatusInternalServerError, "Internal server error", stack)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
