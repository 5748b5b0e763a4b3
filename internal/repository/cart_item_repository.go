package repository

import (
	"context"

	"shoppyglobe/internal/domain/model"
)

// サーバー側カートは (user_id, product_id) をキーに持つ。
type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.CartItem, error)
	// 同一商品はプラス（storage側のupsertで競合を防ぐ）
	UpsertByUserAndProduct(ctx context.Context, userID int64, productID int64, addQty int64) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, userID int64, productID int64, qty int64) error
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error
}
