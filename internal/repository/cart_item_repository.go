package repository

import (
	"context"

	"cakeshop/internal/domain/model"
)

type CartItemRepository interface {
	// ケーキ付き・新しい順
	ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error)
	// 同一ケーキは数量をプラス（1文で行うのでレースしない）
	Upsert(ctx context.Context, item model.CartItem) (model.CartItem, error)
	FindByID(ctx context.Context, userID string, cartItemID string) (model.CartItem, error)
	// 他人の明細はErrNotFound
	UpdateQuantity(ctx context.Context, userID string, cartItemID string, qty int) error
	DeleteByID(ctx context.Context, userID string, cartItemID string) error
	// 空でもエラーにしない
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}
