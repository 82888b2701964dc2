package auth

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"

	RoleAdmin  = "admin"
	RoleReader = "reader"
)

type ctxKey int

const (
	userNameKey ctxKey = iota
	userRoleKey
)

var ErrNoUserName = errors.New("user name is missing in context")

func SetAuthContext(ctx context.Context, userName, role string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, userName)
	return context.WithValue(ctx, userRoleKey, role)
}

// UserName extracts the authenticated user from the request context.
func UserName(c echo.Context) (string, error) {
	name, ok := c.Request().Context().Value(userNameKey).(string)
	if !ok || name == "" {
		return "", ErrNoUserName
	}
	return name, nil
}

func Role(c echo.Context) string {
	role, _ := c.Request().Context().Value(userRoleKey).(string)
	return role
}

func IsAdmin(c echo.Context) bool {
	return Role(c) == RoleAdmin
}
