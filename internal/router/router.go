// Package router wires the API's routes onto an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/blog-api/internal/handler"
	"github.com/iliyamo/blog-api/internal/middleware"
)

// Register mounts every route of the API. Public endpoints (signup, login,
// published browsing, single-blog reads, health) need no token; everything
// that writes blogs or lists the caller's own blogs sits behind TokenAuth.
func Register(e *echo.Echo, a *handler.AuthHandler, b *handler.BlogHandler, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	e.POST("/signup", a.Signup)
	e.POST("/login", a.Login)

	// Public browsing. The single-blog read increments read_count for every
	// caller, authenticated or not.
	e.GET("/blogs", b.ListPublished)
	e.GET("/blogs/:id", b.GetOne)

	guard := middleware.TokenAuth(jwtSecret)
	e.POST("/blogs", b.Create, guard)
	e.PUT("/blogs/publish/:id", b.Publish, guard)
	e.GET("/myblogs", b.ListMine, guard)
	e.PUT("/blogs/:id", b.Update, guard)
	e.DELETE("/blogs/:id", b.Delete, guard)
}
