package repository

import (
	"context"
	"errors"

	"shoppyglobe/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	// seederが使う
	Create(ctx context.Context, p model.Product) (model.Product, error)
}
