package router // package router defines how HTTP routes are registered for the API

import (
	"database/sql"

	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"securenotes/internal/handler"    // handlers implement the business logic
	"securenotes/internal/middleware" // session guard for protected routes
)

// Register wires every route of the API onto the provided Echo instance.
// The account endpoints are open; everything under /notes sits behind the
// session guard, which must run before any notes handler so the owner id
// is always present in the request context.
func Register(e *echo.Echo, db *sql.DB, a *handler.AccountHandler, n *handler.NoteHandler, jwtSecret string) {
	// Health endpoint for load balancers and monitoring.
	e.GET("/healthz", handler.Health(db))

	// Account endpoints require no session.
	e.POST("/create-user", a.Register)
	e.POST("/login", a.Login)

	// Notes endpoints require a valid, unexpired token cookie.
	notes := e.Group("/notes")
	notes.Use(middleware.SessionAuth(jwtSecret))
	notes.POST("", n.Create)
	notes.GET("", n.List)
	notes.PATCH("", n.Update)
	notes.DELETE("", n.Delete)
}
