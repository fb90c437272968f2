package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "adminapi/internal/delivery/context"
	domainerrors "adminapi/internal/domain/errors"
	"adminapi/internal/domain/service"
	mockservice "adminapi/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func passthroughHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_ValidAccessToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("valid-access-token").
		Return(&service.TokenClaims{AdminID: 42, Username: "jdoe", TokenType: service.TokenTypeAccess}, nil)

	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Bearer valid-access-token")

	var called bool
	require.NoError(t, m.Authenticate(passthroughHandler(&called))(c))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)

	adminID, ok := deliverycontext.GetAdminID(c)
	require.True(t, ok)
	assert.Equal(t, int64(42), adminID)
	assert.Equal(t, "jdoe", deliverycontext.GetUsername(c))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "")

	var called bool
	require.NoError(t, m.Authenticate(passthroughHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_NotBearerScheme(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	var called bool
	require.NoError(t, m.Authenticate(passthroughHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("garbage").
		Return(nil, domainerrors.ErrInvalidToken)

	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Bearer garbage")

	var called bool
	require.NoError(t, m.Authenticate(passthroughHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("valid-refresh-token").
		Return(&service.TokenClaims{AdminID: 42, Username: "jdoe", TokenType: service.TokenTypeRefresh}, nil)

	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Bearer valid-refresh-token")

	var called bool
	require.NoError(t, m.Authenticate(passthroughHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "not an access token")
}
