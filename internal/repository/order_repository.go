package repository

import (
	"context"

	"cakeshop/internal/domain/model"
)

type AdminOrderListFilter struct {
	Status *model.OrderStatus
	UserID *string
}

// 取得系は明細とケーキを含めて返す。
type OrderRepository interface {
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	// ステータス更新用（FOR UPDATE）
	FindByIDForUpdate(ctx context.Context, orderID string) (model.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
	// ヘッダーのみ保存。明細はOrderItemRepository。
	Create(ctx context.Context, order *model.Order) error
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error

	//管理者用の注文一覧
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, error)
}
