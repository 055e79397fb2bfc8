package auth

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobportal/internal/model"
)

const identityKey = "identity"

// Identity is the resolved caller of a request.
type Identity struct {
	UserID uuid.UUID
	Role   model.Role
}

// IsAdmin reports whether the caller has the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// SetIdentity attaches the identity to the request context.
func SetIdentity(c echo.Context, id Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity attached by Gate.Authenticate.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
