package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/delivery/http/middleware"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/testutil"
	"teleradiology-api/internal/usecase"
	"teleradiology-api/pkg/pagination"
	"teleradiology-api/pkg/response"
	"teleradiology-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mocks embed the usecase interface so only the methods a test drives need
// an implementation.

type mockAuthUsecase struct {
	mock.Mock
	usecase.AuthUsecase
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.AuthResponse)
	return res, args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error {
	return m.Called(ctx, userID, accessTokenID, refreshToken).Error(0)
}

func (m *mockAuthUsecase) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

type mockContactUsecase struct {
	mock.Mock
	usecase.ContactUsecase
}

func (m *mockContactUsecase) CreateContact(ctx context.Context, req *dto.CreateContactRequest, meta usecase.RequestMeta) (*dto.ContactReceipt, error) {
	args := m.Called(ctx, req, meta)
	res, _ := args.Get(0).(*dto.ContactReceipt)
	return res, args.Error(1)
}

func (m *mockContactUsecase) GetAllContacts(ctx context.Context, filter entity.ContactFilter, page pagination.Params) ([]dto.ContactResponse, int64, error) {
	args := m.Called(ctx, filter, page)
	res, _ := args.Get(0).([]dto.ContactResponse)
	return res, args.Get(1).(int64), args.Error(2)
}

func (m *mockContactUsecase) GetContact(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.ContactResponse)
	return res, args.Error(1)
}

type mockLeadUsecase struct {
	mock.Mock
	usecase.SalesLeadUsecase
}

func (m *mockLeadUsecase) GetAllLeads(ctx context.Context, filter entity.LeadFilter, page pagination.Params) ([]dto.LeadResponse, int64, error) {
	args := m.Called(ctx, filter, page)
	res, _ := args.Get(0).([]dto.LeadResponse)
	return res, args.Get(1).(int64), args.Error(2)
}

func (m *mockLeadUsecase) QualifyLead(ctx context.Context, actorID, id uuid.UUID, req *dto.QualifyLeadRequest) (*dto.LeadResponse, error) {
	args := m.Called(ctx, actorID, id, req)
	res, _ := args.Get(0).(*dto.LeadResponse)
	return res, args.Error(1)
}

type mockUploadUsecase struct {
	mock.Mock
	usecase.UploadUsecase
}

func (m *mockUploadUsecase) Upload(ctx context.Context, category string, file usecase.UploadFile) (*dto.UploadResponse, error) {
	args := m.Called(ctx, category, file)
	res, _ := args.Get(0).(*dto.UploadResponse)
	return res, args.Error(1)
}

func (m *mockUploadUsecase) Open(ctx context.Context, category, name string) (io.ReadCloser, *dto.UploadResponse, error) {
	args := m.Called(ctx, category, name)
	body, _ := args.Get(0).(io.ReadCloser)
	info, _ := args.Get(1).(*dto.UploadResponse)
	return body, info, args.Error(2)
}

func (m *mockUploadUsecase) List(ctx context.Context, category string) ([]dto.UploadResponse, error) {
	args := m.Called(ctx, category)
	res, _ := args.Get(0).([]dto.UploadResponse)
	return res, args.Error(1)
}

func newErrorHandler() *middleware.ErrorHandler {
	return middleware.NewErrorHandler(testutil.NewLogger(), validator.NewValidator(), false)
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(v))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser attaches an authenticated user the way AuthMiddleware does.
func asUser(req *http.Request, user *entity.User, tokenID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, user.ID)
	ctx = context.WithValue(ctx, middleware.UserKey, user)
	ctx = context.WithValue(ctx, middleware.TokenIDKey, tokenID)
	return req.WithContext(ctx)
}

func withVars(req *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(req, vars)
}

func record(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, rec)
	require.NotNil(t, body.Error, rec.Body.String())
	return body.Error.Message
}

func staff(role entity.Role) *entity.User {
	return &entity.User{ID: uuid.New(), Email: strings.ToLower(string(role)) + "@example.com", Role: role, IsActive: true}
}
