package http

import (
	"net/http"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the session layer in front of the service.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const actorKey = "actor"

// Identity resolves the caller from the identity headers. Requests without a
// valid user id or with an unknown role are rejected with 401.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := kernel.UUIDFromString(c.Request().Header.Get(HeaderUserID))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, failure("Not logged in"))
			}

			role, err := order.ParseRole(c.Request().Header.Get(HeaderUserRole))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, failure("Unknown role"))
			}

			actor, err := order.NewActor(userID, role)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, failure("Not logged in"))
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// RequireAdmin must run after Identity.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := actorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, failure("Not logged in"))
			}
			if !actor.IsAdmin() {
				return c.JSON(http.StatusForbidden, failure("Access denied. Admin only."))
			}
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (order.Actor, bool) {
	actor, ok := c.Get(actorKey).(order.Actor)
	return actor, ok
}
