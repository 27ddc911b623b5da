package handler

import (
	"context"      // context with cancellation for DB calls
	"database/sql" // sentinel errors such as sql.ErrNoRows
	"net/http"     // HTTP status codes
	"time"         // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing
	"go.uber.org/zap"             // structured logging

	"securenotes/internal/config"     // app configuration
	"securenotes/internal/repository" // DB repositories
	"securenotes/internal/utils"      // hashing, token minting, validation
)

// AccountHandler bundles dependencies for the registration and login
// endpoints.
type AccountHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
	Log   *zap.Logger
}

func NewAccountHandler(cfg config.Config, u *repository.UserRepo, log *zap.Logger) *AccountHandler {
	return &AccountHandler{Cfg: cfg, Users: u, Log: log}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /create-user. All input violations are collected
// and returned together; the duplicate-email check runs before the
// password is hashed so a rejected registration never pays the bcrypt
// cost.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if errs := utils.ValidateRegistration(req.Name, req.Email, req.Password); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exists, err := h.Users.EmailExists(ctx, req.Email)
	if err != nil {
		h.Log.Error("register: email lookup failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creating user"})
	}
	if exists {
		return c.JSON(http.StatusConflict, echo.Map{"message": "User already registered"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		h.Log.Error("register: hash failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creating user"})
	}

	if _, err := h.Users.Create(ctx, req.Name, req.Email, hash); err != nil {
		// Duplicate insert racing past the lookup still surfaces as 409.
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"message": "User already registered"})
		}
		h.Log.Error("register: insert failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creating user"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "User created successfully",
		"userCreated": echo.Map{"name": req.Name},
	})
}

// Login handles POST /login. Unknown email and wrong password produce the
// identical 401 body so the response never reveals which one failed. On
// success a session token carrying only the user id is minted and set as
// an HttpOnly cookie.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if errs := utils.ValidateLogin(req.Email, req.Password); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid email or password"})
		}
		h.Log.Error("login: user lookup failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid email or password"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, h.Cfg.TokenTTLMin)
	if err != nil {
		h.Log.Error("login: token minting failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    tok.Token,
		Path:     "/",
		MaxAge:   h.Cfg.CookieTTLMin * 60,
		Expires:  time.Now().UTC().Add(time.Duration(h.Cfg.CookieTTLMin) * time.Minute),
		HttpOnly: true,
		Secure:   false,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Login successfully"})
}
