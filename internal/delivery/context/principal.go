package context

import (
	"context"

	"github.com/labstack/echo/v4"

	"marketplace/internal/domain/entity"
)

// SetPrincipal stores the authenticated caller on both echo.Context and the request context.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(string(keyPrincipal), principal)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), principal)))
}

// GetPrincipal returns the authenticated caller set by the auth middleware.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(string(keyPrincipal)).(entity.Principal)

	return principal, ok
}

func WithPrincipal(ctx context.Context, principal entity.Principal) context.Context {
	return context.WithValue(ctx, keyPrincipal, principal)
}

// PrincipalFromContext extracts the principal from a plain context.Context.
func PrincipalFromContext(ctx context.Context) (entity.Principal, bool) {
	return valueOf[entity.Principal](ctx, keyPrincipal)
}
