package handler // handler contains the HTTP handlers for the API

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health returns a health-check handler used by load balancers and
// monitoring systems. It pings the database pool so a broken store shows
// up as unhealthy rather than as a wave of 500s on real traffic.
func Health(db *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "degraded"})
		}
		return c.String(http.StatusOK, "ok")
	}
}
