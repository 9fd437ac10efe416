package middleware

import (
	"strings"

	deliverycontext "bizdir/internal/delivery/context"
	"bizdir/internal/delivery/http/response"
	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
// Authorization itself happens in the usecase layer against the caller
// identity this middleware extracts; routes only decide whether an identity
// is required at all.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller identity in
// the request context. Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, errMsg := m.callerFromHeader(c)
		if errMsg != "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", errMsg)
		}

		setCaller(c, caller)

		return next(c)
	}
}

// OptionalAuthenticate extracts the caller identity when a valid token is
// present and falls back to the anonymous caller otherwise. Listing routes
// use it so a logged-in user and a guest share the same handler.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, errMsg := m.callerFromHeader(c)
		if errMsg != "" {
			caller = authz.Anonymous()
		}

		setCaller(c, caller)

		return next(c)
	}
}

// callerFromHeader parses the Authorization header into a caller identity.
// A non-empty second return value describes why authentication failed.
func (m *AuthMiddleware) callerFromHeader(c echo.Context) (authz.Caller, string) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return authz.Anonymous(), "Authorization header is missing"
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return authz.Anonymous(), "Invalid token format, must be Bearer token"
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return authz.Anonymous(), "Invalid or expired token"
	}

	caller := authz.Caller{ID: claims.UserID, Role: claims.Role}
	if !caller.Authenticated() {
		return authz.Anonymous(), "Token carries no usable identity"
	}

	return caller, ""
}

func setCaller(c echo.Context, caller authz.Caller) {
	ctx := deliverycontext.WithCaller(c.Request().Context(), caller)
	c.SetRequest(c.Request().WithContext(ctx))
	c.Set(string(deliverycontext.KeyCaller), caller)
}
