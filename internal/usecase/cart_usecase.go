package usecase

import (
	"context"
	"errors"
	"net/http"

	"shoppyglobe/internal/domain/model"
	repo "shoppyglobe/internal/repository"
)

// CartUsecase は /api/cart の業務ロジックです。
// クライアント側カートとは独立したサーバー保持カート（同期はしない）。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// CartLineResponse は明細＋商品の現在属性（populate相当）。
type CartLineResponse struct {
	ID       int64         `json:"id"`
	UserID   int64         `json:"user_id"`
	Product  model.Product `json:"product"`
	Quantity int64         `json:"quantity"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartInput struct {
	Quantity int64
}

// GetCart はユーザーの全明細を商品情報付きで返す。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) ([]CartLineResponse, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "Not authorized, invalid token")
	}

	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lines := make([]CartLineResponse, 0, len(items))
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			// 商品が消えた明細は表示しない
			continue
		}

		lines = append(lines, CartLineResponse{
			ID:       it.ID,
			UserID:   it.UserID,
			Product:  p,
			Quantity: it.Quantity,
		})
	}

	return lines, nil
}

// AddToCart はカートに追加（同一商品は数量加算）。
// 在庫の上限チェックは要求数量に対して行う。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (CartLineResponse, error) {
	if userID <= 0 {
		return CartLineResponse{}, NewHTTPError(http.StatusUnauthorized, "Not authorized, invalid token")
	}
	if in.ProductID <= 0 {
		return CartLineResponse{}, NewHTTPError(http.StatusBadRequest, "productId is required")
	}
	if in.Quantity <= 0 {
		return CartLineResponse{}, NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
	}

	// 商品チェック
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartLineResponse{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return CartLineResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 在庫チェック
	if p.Stock < in.Quantity {
		return CartLineResponse{}, NewHTTPError(http.StatusBadRequest, "Not enough stock available")
	}

	// Upsert（同一商品は加算）
	item, err := u.cartItemRepo.UpsertByUserAndProduct(ctx, userID, in.ProductID, in.Quantity)
	if err != nil {
		return CartLineResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartLineResponse{
		ID:       item.ID,
		UserID:   item.UserID,
		Product:  p,
		Quantity: item.Quantity,
	}, nil
}

// UpdateCartItem は数量を上書き（在庫チェックあり）。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID int64, productID int64, in UpdateCartInput) (CartLineResponse, error) {
	if userID <= 0 {
		return CartLineResponse{}, NewHTTPError(http.StatusUnauthorized, "Not authorized, invalid token")
	}
	if productID <= 0 {
		return CartLineResponse{}, NewHTTPError(http.StatusBadRequest, "productId is required")
	}
	if in.Quantity <= 0 {
		return CartLineResponse{}, NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
	}

	//商品の在庫チェック
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartLineResponse{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return CartLineResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if p.Stock < in.Quantity {
		return CartLineResponse{}, NewHTTPError(http.StatusBadRequest, "Not enough stock available")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, userID, productID, in.Quantity); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartLineResponse{}, NewHTTPError(http.StatusNotFound, "Cart item not found for this product")
		}
		return CartLineResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := u.cartItemRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return CartLineResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartLineResponse{
		ID:       item.ID,
		UserID:   item.UserID,
		Product:  p,
		Quantity: item.Quantity,
	}, nil
}

// DeleteCartItem は (user, product) の明細を削除。
func (u *CartUsecase) DeleteCartItem(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "Not authorized, invalid token")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "productId is required")
	}

	if err := u.cartItemRepo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Cart item not found for this product")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
