package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/wanderlust-api/internal/config"
	"github.com/wanderlust/wanderlust-api/internal/flash"
	"github.com/wanderlust/wanderlust-api/internal/middleware"
	"github.com/wanderlust/wanderlust-api/internal/repository"
	"github.com/wanderlust/wanderlust-api/internal/utils"
)

// AuthHandler bundles dependencies for signup, login and logout.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, t *repository.TokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Tokens: t}
}

// ----- DTOs -----

type signupReq struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}
type loginReq struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// SignupForm handles GET /signup.  With no template engine in play the
// form is described as JSON for the client to render.
func (h *AuthHandler) SignupForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"fields": []string{"username", "email", "password"},
		"notice": flash.PopAll(c),
	})
}

// Signup handles POST /signup: create the user, open a session and
// land on the listings page.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	fields := map[string]string{}
	if req.Username == "" {
		fields["username"] = "username is required"
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		fields["email"] = "a valid email is required"
	}
	if req.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		switch err {
		case repository.ErrUsernameExists:
			return validationFailed(c, map[string]string{"username": "username already taken"})
		case repository.ErrEmailExists:
			return validationFailed(c, map[string]string{"email": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	if err := h.openSession(c, ctx, uid, req.Username); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "open session failed"})
	}
	return redirectWithSuccess(c, "Welcome to Wanderlust!", "/listings")
}

// LoginForm handles GET /login.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"fields": []string{"username", "password"},
		"notice": flash.PopAll(c),
	})
}

// Login handles POST /login.  Bad credentials redirect back to the
// login page with an error flash; nothing distinguishes an unknown
// username from a wrong password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return validationFailed(c, map[string]string{"credentials": "username and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return redirectWithError(c, "Invalid username or password.", "/login")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return redirectWithError(c, "Invalid username or password.", "/login")
	}

	if err := h.openSession(c, ctx, u.ID, u.Username); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "open session failed"})
	}
	return redirectWithSuccess(c, "Welcome back, "+u.Username+"!", "/listings")
}

// Logout handles GET /logout: revoke the current session (when the
// cookie still parses), expire the cookie and return to the listings.
func (h *AuthHandler) Logout(c echo.Context) error {
	if ck, err := c.Cookie(middleware.SessionCookie); err == nil && ck.Value != "" {
		if _, _, jti, perr := utils.ParseSession(h.Cfg.JWTSecret, ck.Value); perr == nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			_ = h.Tokens.RevokeByHash(ctx, utils.HashSessionID(jti))
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return redirectWithSuccess(c, "Logged out successfully!", "/listings")
}

// openSession issues a session JWT, records its hash for revocation
// and sets the cookie.
func (h *AuthHandler) openSession(c echo.Context, ctx context.Context, uid uint64, username string) error {
	s, err := utils.NewSession(h.Cfg.JWTSecret, uid, username, h.Cfg.SessionTTLHours)
	if err != nil {
		return err
	}
	if err := h.Tokens.StoreSession(ctx, uid, utils.HashSessionID(s.ID), s.Exp); err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.Exp,
		HttpOnly: true,
	})
	return nil
}
