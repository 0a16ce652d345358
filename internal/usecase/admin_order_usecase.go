package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cakeshop/internal/domain/model"
	repo "cakeshop/internal/repository"
)

type AdminOrderUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
	clock Clock

	// falseなら遷移チェックをしない（旧挙動）
	strictStatus bool
}

func NewAdminOrderUsecase(tx repo.TransactionManager, idGen IDGenerator, clock Clock, strictStatus bool) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx, idGen: idGen, clock: clock, strictStatus: strictStatus}
}

type AdminListOrdersInput struct {
	Status string
	UserID string
}

// 注文一覧（新しい順）
func (u *AdminOrderUsecase) List(ctx context.Context, in AdminListOrdersInput) ([]model.Order, error) {
	var f repo.AdminOrderListFilter

	if s := strings.TrimSpace(in.Status); s != "" {
		status := model.OrderStatus(s)
		if !status.Valid() {
			return nil, NewError(CodeValidation, "invalid status")
		}
		f.Status = &status
	}
	if id := strings.TrimSpace(in.UserID); id != "" {
		f.UserID = &id
	}

	var orders []model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		list, err := r.Orders().ListAdmin(ctx, f)
		if err != nil {
			return storageError("list orders", err)
		}
		orders = list
		return nil
	})
	if err != nil {
		if _, ok := AsError(err); ok {
			return nil, err
		}
		return nil, storageError("list orders tx", err)
	}
	return orders, nil
}

// 監査ログ用。Valid()を通った定数だけを渡すのでエスケープは要らない。
func statusJSON(s model.OrderStatus) string {
	return fmt.Sprintf(`{"status":%q}`, string(s))
}

// ステータス更新。遷移の可否は OrderStatus.CanTransitionTo だけで決める。
// 同じステータスなら何もしない（監査ログも残さない）。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, actorUserID string, orderID string, status string) (model.Order, error) {
	if actorUserID == "" {
		return model.Order{}, unauthenticated()
	}

	newStatus := model.OrderStatus(strings.TrimSpace(status))
	if !newStatus.Valid() {
		return model.Order{}, NewError(CodeValidation, "invalid status")
	}

	var updated model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDForUpdate(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("order")
		}
		if err != nil {
			return storageError("lock order", err)
		}

		if o.Status != newStatus {
			// 遷移ガード
			if u.strictStatus && !o.Status.CanTransitionTo(newStatus) {
				return NewError(CodeInvalidTransition,
					fmt.Sprintf("cannot change order status from %s to %s", o.Status, newStatus))
			}

			if err := r.Orders().UpdateStatus(ctx, o.ID, newStatus); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return notFound("order")
				}
				return storageError("update order status", err)
			}

			// 監査ログ（UPDATE_ORDER_STATUS）
			if err := r.AuditLogs().Create(ctx, model.AuditLog{
				ID:           u.idGen.NewID(),
				ActorUserID:  actorUserID,
				Action:       model.AuditActionUpdateOrderStatus,
				ResourceType: model.AuditResourceOrder,
				ResourceID:   o.ID,
				BeforeJSON:   statusJSON(o.Status),
				AfterJSON:    statusJSON(newStatus),
				CreatedAt:    u.clock.Now(),
			}); err != nil {
				return storageError("create audit log", err)
			}
		}

		loaded, err := r.Orders().FindByID(ctx, o.ID)
		if err != nil {
			return storageError("load order", err)
		}
		updated = loaded
		return nil
	})
	if err != nil {
		if _, ok := AsError(err); ok {
			return model.Order{}, err
		}
		return model.Order{}, storageError("update order status tx", err)
	}
	return updated, nil
}
