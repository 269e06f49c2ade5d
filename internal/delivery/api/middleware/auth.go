package middleware

import (
	"strings"

	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/identity"
	"foodiecircle/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const keyUserID = "userID"

// AuthMiddleware validates bearer access tokens and exposes the caller identity.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.identify(c)
		if err != nil {
			return err
		}
		if userID == uuid.Nil {
			return domainerrors.ErrUnauthenticated
		}

		setIdentity(c, userID)

		return next(c)
	}
}

// OptionalAuthenticate attaches the identity when a valid token is present and
// lets anonymous requests through. A malformed or expired token is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.identify(c)
		if err != nil {
			return err
		}
		if userID != uuid.Nil {
			setIdentity(c, userID)
		}

		return next(c)
	}
}

// identify returns uuid.Nil when no Authorization header is sent.
func (m *AuthMiddleware) identify(c echo.Context) (uuid.UUID, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return uuid.Nil, nil
	}

	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || tokenString == "" {
		return uuid.Nil, domainerrors.ErrUnauthenticated.WithDetails("authorization must be a Bearer token")
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, domainerrors.ErrUnauthenticated.WithDetails("invalid or expired token")
	}

	return claims.UserID, nil
}

func setIdentity(c echo.Context, userID uuid.UUID) {
	c.Set(keyUserID, userID)
	c.SetRequest(c.Request().WithContext(identity.WithUserID(c.Request().Context(), userID)))
}

// GetUserID returns the authenticated caller set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
