package handler

import (
	"net/http"
	"strconv"

	"shoppyglobe/internal/config"
	"shoppyglobe/internal/middleware"
	"shoppyglobe/internal/repository"
	"shoppyglobe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	ProductID int64  `json:"productId"`
	Quantity  *int64 `json:"quantity"` // 省略時は1
}

type UpdateCartItemRequest struct {
	Quantity *int64 `json:"quantity"`
}

// /api/cart, /api/cart/{productId} を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/api/cart")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.UserGuard(userRepo))

	g.GET("", h.getCart)
	g.POST("", h.addToCart)
	g.PUT("/:productId", h.updateItem)
	g.DELETE("/:productId", h.deleteItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return usecase.NewHTTPError(http.StatusUnauthorized, "Not authorized, invalid token")
	}

	out, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return usecase.NewHTTPError(http.StatusUnauthorized, "Not authorized, invalid token")
	}

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	// quantity省略時は1個
	qty := int64(1)
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	out, err := h.uc.AddToCart(c.Request().Context(), userID, usecase.AddCartInput{
		ProductID: req.ProductID,
		Quantity:  qty,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return usecase.NewHTTPError(http.StatusUnauthorized, "Not authorized, invalid token")
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Quantity == nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "quantity is required")
	}

	out, err := h.uc.UpdateCartItem(c.Request().Context(), userID, productID, usecase.UpdateCartInput{
		Quantity: *req.Quantity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return usecase.NewHTTPError(http.StatusUnauthorized, "Not authorized, invalid token")
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteCartItem(c.Request().Context(), userID, productID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Item removed from cart"})
}

// AuthJWTが保存したuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	raw := c.Get(middleware.CtxUserIDKey)
	userID, ok := raw.(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
