package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/wanderlust/wanderlust-api/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session routes.  The flow is form-driven:
// GET renders the form description, POST performs the action and
// redirects with a flash message.  Logout is a plain GET, matching the
// navigation-link style of the client.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	// Signup: describe the form, then create the account and open a session.
	e.GET("/signup", a.SignupForm)
	e.POST("/signup", a.Signup)
	// Login: same shape.  Bad credentials redirect back with an error flash.
	e.GET("/login", a.LoginForm)
	e.POST("/login", a.Login)
	// Logout revokes the current session token and clears the cookie.
	e.GET("/logout", a.Logout)
}
