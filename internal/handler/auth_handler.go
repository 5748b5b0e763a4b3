package handler

import (
	"errors"
	"net/http"

	"shoppyglobe/internal/usecase"
	auth "shoppyglobe/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// /api/authのHTTP
type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase
	loginUC    *auth.LoginUsecase
}

// DI
func NewAuthHandler(registerUC *auth.RegisterUserUsecase, loginUC *auth.LoginUsecase) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// 登録・ログインのレスポンス（passwordは返さない）
type AuthResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidEmailFormat):
			return usecase.NewHTTPError(http.StatusBadRequest, "invalid email")
		case errors.Is(err, auth.ErrPasswordTooShort):
			return usecase.NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			return usecase.NewHTTPError(http.StatusBadRequest, "User already exists")
		default:
			return err
		}
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		ID:    out.User.ID,
		Name:  out.User.Name,
		Email: out.User.Email,
		Token: out.Token,
	})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return usecase.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		return err
	}

	return c.JSON(http.StatusOK, AuthResponse{
		ID:    out.User.ID,
		Name:  out.User.Name,
		Email: out.User.Email,
		Token: out.Token,
	})
}
