// Package router wires endpoint handlers onto the echo instance.
package router

import (
	"net/http"

	"linkvault/config"
	authmiddleware "linkvault/internal/delivery/http/middleware"
	"linkvault/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Router registers all HTTP routes.
type Router interface {
	RegisterRoutes(e *echo.Echo)
}

// Params holds dependencies for the router, injected by Fx.
type Params struct {
	fx.In

	Config              *config.Config
	AuthGate            *authmiddleware.AuthGate
	AuthHandler         *handler.AuthHandler
	RegistrationHandler *handler.RegistrationHandler
	SessionHandler      *handler.SessionHandler
	AccountHandler      *handler.AccountHandler
}

type router struct {
	params Params
}

// New creates a new router.
func New(params Params) Router {
	return &router{params: params}
}

// RegisterRoutes mounts every endpoint. Credential acquisition endpoints are
// public; everything else sits behind the auth gate.
func (r *router) RegisterRoutes(e *echo.Echo) {
	gate := r.params.AuthGate
	userScope := r.params.Config.JWT.ScopeUser
	adminScope := r.params.Config.JWT.ScopeAdmin

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	auth := e.Group("/auth")
	auth.POST("/register", r.params.RegistrationHandler.Register)
	auth.POST("/confirm", r.params.RegistrationHandler.Confirm)
	auth.POST("/resend", r.params.RegistrationHandler.Resend)
	auth.POST("/recover", r.params.RegistrationHandler.Recover)
	auth.POST("/reset", r.params.RegistrationHandler.Reset)
	auth.POST("/login", r.params.AuthHandler.Login)
	auth.POST("/refresh", r.params.AuthHandler.Refresh)
	auth.POST("/logout", r.params.AuthHandler.Logout, gate.Require(userScope))
	auth.POST("/password", r.params.AuthHandler.ChangePassword, gate.Require(userScope))

	sessions := e.Group("/sessions", gate.Require(userScope))
	sessions.GET("", r.params.SessionHandler.List)
	sessions.DELETE("/:id", r.params.SessionHandler.Terminate)

	account := e.Group("/account", gate.Require(userScope))
	account.GET("", r.params.AccountHandler.Get)
	account.DELETE("", r.params.AccountHandler.Delete)

	admin := e.Group("/admin", gate.Require(adminScope))
	admin.DELETE("/users/:id", r.params.AccountHandler.Purge)
}
