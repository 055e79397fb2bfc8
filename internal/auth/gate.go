package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
)

const tokenContextKey = "token-identity"

// UserLookup loads the account a token refers to.
type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// Gate resolves the caller of a request and enforces the policy table
// before the request reaches a handler.
type Gate struct {
	issuer *TokenIssuer
	users  UserLookup
}

// NewGate creates a gate backed by the issuer and user lookup.
func NewGate(issuer *TokenIssuer, users UserLookup) *Gate {
	return &Gate{issuer: issuer, users: users}
}

// Authenticate requires a valid bearer token whose user still exists. The
// identity attached to the context carries the user's current role.
func (g *Gate) Authenticate() echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		ContextKey:  tokenContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return g.issuer.Verify(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.Unauthenticated(tokenErrorMessage(err))
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(g.loadUser(next))
	}
}

func (g *Gate) loadUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claimed, ok := c.Get(tokenContextKey).(Identity)
		if !ok {
			return apperrors.Unauthenticated(ErrTokenMalformed.Error())
		}

		user, err := g.users.FindByID(c.Request().Context(), claimed.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.Unauthenticated("user not found")
			}
			return apperrors.Internal(err)
		}

		SetIdentity(c, Identity{UserID: user.ID, Role: user.Role})
		return next(c)
	}
}

// Require rejects callers whose role the policy table does not allow for
// action. Ownership is checked later by the service owning the resource.
func (g *Gate) Require(action Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				return apperrors.Unauthenticated("authentication required")
			}
			if !Permits(action, id.Role) {
				return apperrors.Forbidden(forbiddenMessage(action))
			}
			return next(c)
		}
	}
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "token expired"
	case errors.Is(err, ErrTokenSignature), errors.Is(err, ErrTokenMalformed):
		return "invalid token"
	default:
		return ErrTokenMissing.Error()
	}
}

func forbiddenMessage(action Action) string {
	rule, _ := RuleFor(action)
	if len(rule.Roles) == 1 && rule.Roles[0] == model.RoleAdmin {
		return "admin only access"
	}
	return "recruiter or admin access required"
}
