package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bizdir/config"
	deliverycontext "bizdir/internal/delivery/context"
	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
	"bizdir/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, func(entity.ID, entity.Role) string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	issue := func(userID entity.ID, role entity.Role) string {
		token, err := tokenSvc.GenerateToken(userID, role)
		require.NoError(t, err)

		return token
	}

	return NewAuthMiddleware(tokenSvc), issue
}

func invoke(m echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, authz.Caller, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var caller authz.Caller
	nextCalled := false
	handler := m(func(c echo.Context) error {
		nextCalled = true
		caller = deliverycontext.GetCaller(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	_ = handler(c)

	return rec, caller, nextCalled
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	m, issue := newAuthFixture(t)

	token := issue(7, entity.RoleOwner)
	_, caller, nextCalled := invoke(m.Authenticate, "Bearer "+token)

	require.True(t, nextCalled)
	assert.Equal(t, entity.ID(7), caller.ID)
	assert.Equal(t, entity.RoleOwner, caller.Role)
	assert.True(t, caller.Authenticated())
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m, _ := newAuthFixture(t)

	rec, _, nextCalled := invoke(m.Authenticate, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m, issue := newAuthFixture(t)

	rec, _, nextCalled := invoke(m.Authenticate, issue(7, entity.RoleOwner))

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_GarbageToken(t *testing.T) {
	m, _ := newAuthFixture(t)

	rec, _, nextCalled := invoke(m.Authenticate, "Bearer not-a-jwt")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_OptionalAuthenticate_FallsBackToAnonymous(t *testing.T) {
	m, _ := newAuthFixture(t)

	rec, caller, nextCalled := invoke(m.OptionalAuthenticate, "")

	require.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, caller.Authenticated())
}

func TestAuthMiddleware_OptionalAuthenticate_UsesValidToken(t *testing.T) {
	m, issue := newAuthFixture(t)

	token := issue(3, entity.RoleViewer)
	_, caller, nextCalled := invoke(m.OptionalAuthenticate, "Bearer "+token)

	require.True(t, nextCalled)
	assert.Equal(t, entity.ID(3), caller.ID)
	assert.Equal(t, entity.RoleViewer, caller.Role)
}
