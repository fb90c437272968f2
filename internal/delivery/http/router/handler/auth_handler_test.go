package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "adminapi/internal/delivery/context"
	"adminapi/internal/delivery/http/response"
	"adminapi/internal/delivery/http/validator"
	"adminapi/internal/domain/entity"
	domainerrors "adminapi/internal/domain/errors"
	mockusecase "adminapi/internal/mocks/usecase"
	"adminapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func registeredAdmin(t *testing.T) entity.Admin {
	t.Helper()

	now := time.Now()
	admin, err := entity.NewAdmin(1, "jdoe", "Jane", "Doe", "jane.doe@example.com",
		"$2a$10$abcdefghijklmnopqrstuv", now, now)
	require.NoError(t, err)

	return admin
}

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		RegisterAdmin(mock.Anything, &usecase.RegisterAdminInput{
			Username:  "jdoe",
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane.doe@example.com",
			Password:  "correct horse battery staple",
		}).
		Return(&usecase.RegisterAdminOutput{Admin: registeredAdmin(t)}, nil)

	handler := NewAuthHandler(uc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"username":"jdoe","firstName":"Jane","lastName":"Doe","email":"jane.doe@example.com","password":"correct horse battery staple"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "jdoe", data["username"])
	assert.Equal(t, "jane.doe@example.com", data["email"])

	// The stored hash must never leave the service.
	assert.NotContains(t, rec.Body.String(), "$2a$")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"username":"jdoe","firstName":"Jane","lastName":"Doe","email":"jane.doe@example.com","password":"short"}`)

	err := handler.Register(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestAuthHandler_Register_MalformedJSON(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register", `{"username":`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "jdoe", Password: "correct horse battery staple"}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			ExpiresIn:    900,
		}, nil)

	handler := NewAuthHandler(uc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"username":"jdoe","password":"correct horse battery staple"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "access-token", data["accessToken"])
	assert.Equal(t, "refresh-token", data["refreshToken"])
	assert.Equal(t, "Bearer", data["tokenType"])
	assert.Equal(t, float64(900), data["expiresIn"])
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrAuthenticationFailed)

	handler := NewAuthHandler(uc)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"username":"jdoe","password":"wrong"}`)

	err := handler.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		Refresh(mock.Anything, &usecase.RefreshInput{RefreshToken: "refresh-token"}).
		Return(&usecase.RefreshOutput{AccessToken: "new-access-token", ExpiresIn: 900}, nil)

	handler := NewAuthHandler(uc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/refresh",
		`{"refreshToken":"refresh-token"}`)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "new-access-token", data["accessToken"])
	assert.Equal(t, "Bearer", data["tokenType"])

	// Refresh never hands out a new refresh token.
	assert.NotContains(t, data, "refreshToken")
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		Refresh(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidToken)

	handler := NewAuthHandler(uc)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/refresh",
		`{"refreshToken":"revoked-token"}`)

	err := handler.Refresh(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		RevokeAllSessions(mock.Anything, int64(42)).
		Return(nil)

	handler := NewAuthHandler(uc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/logout", "")
	deliverycontext.SetAdminID(c, 42)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestAuthHandler_Logout_NoAuthenticatedAdmin(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/logout", "")

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestAuthHandler_Logout_RevocationError(t *testing.T) {
	uc := mockusecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		RevokeAllSessions(mock.Anything, int64(42)).
		Return(errors.New("connection refused"))

	handler := NewAuthHandler(uc)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/logout", "")
	deliverycontext.SetAdminID(c, 42)

	assert.Error(t, handler.Logout(c))
}

func TestHealthCheck(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
