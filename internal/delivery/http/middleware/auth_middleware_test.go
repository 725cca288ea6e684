package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cityquest/internal/domain/service"
	mockService "cityquest/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("valid-token").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"explorer"},
		Type:   "access",
	}, nil)

	c, _ := newAuthTestContext(t, "Bearer valid-token")

	var nextCalled bool
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get("userID"))
	assert.Equal(t, []string{"explorer"}, c.Get("roles"))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Basic abc123")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("token is expired"))

	c, rec := newAuthTestContext(t, "Bearer bad-token")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RejectsRefreshToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateToken("refresh-token").Return(&service.Claims{
		UserID: uuid.New(),
		Type:   "refresh",
	}, nil)

	c, rec := newAuthTestContext(t, "Bearer refresh-token")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tests := []struct {
		name       string
		roles      any
		wantStatus int
		wantNext   bool
	}{
		{name: "has role", roles: []string{"explorer", "curator"}, wantNext: true},
		{name: "missing role", roles: []string{"explorer"}, wantStatus: http.StatusForbidden},
		{name: "roles not set", roles: nil, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthTestContext(t, "")
			if tt.roles != nil {
				c.Set("roles", tt.roles)
			}

			var nextCalled bool
			err := m.RequireRole("curator")(func(c echo.Context) error {
				nextCalled = true

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantNext, nextCalled)
			if !tt.wantNext {
				assert.Equal(t, tt.wantStatus, rec.Code)
			}
		})
	}
}
