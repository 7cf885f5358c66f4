package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// StaffAuthorizer decides whether a request token belongs to marketplace
// staff. Identity is an external collaborator; the core trusts the boolean.
type StaffAuthorizer interface {
	Authorize(ctx context.Context, token string) (bool, error)
}

// StaffOnly guards mutating endpoints behind staff authorization.
// A missing token yields 401, a rejected one 403. Authorizer failures are
// 500: an unreachable identity service must not open the door.
func StaffOnly(authorizer StaffAuthorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := strings.TrimPrefix(ctx.Request().Header.Get("Authorization"), "Bearer ")
			if token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing staff token",
				})
			}

			allowed, err := authorizer.Authorize(ctx.Request().Context(), token)
			if err != nil {
				return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
					Code:    http.StatusInternalServerError,
					Message: "internal error",
				})
			}
			if !allowed {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "staff access required",
				})
			}

			return next(ctx)
		}
	}
}
