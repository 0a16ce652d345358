package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cakeshop/internal/domain/model"
	repo "cakeshop/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx        repo.TransactionManager
	orders    repo.OrderRepository
	validator OrderValidator
	idGen     IDGenerator
	clock     Clock

	// trueならクライアントの価格で合計する（旧挙動）
	trustClientPrices bool
}

type OrderOption func(*OrderUsecase)

// クライアントが送った価格をそのまま使う
func WithClientPrices(trust bool) OrderOption {
	return func(u *OrderUsecase) { u.trustClientPrices = trust }
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	validator OrderValidator,
	idGen IDGenerator,
	clock Clock,
	opts ...OrderOption,
) *OrderUsecase {
	u := &OrderUsecase{
		tx:        tx,
		orders:    orders,
		validator: validator,
		idGen:     idGen,
		clock:     clock,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type CreateOrderItemInput struct {
	CakeID   string
	Quantity int
	// 互換モードでだけ使う
	Price *decimal.Decimal
}

type CreateOrderInput struct {
	DeliveryAddress string
	Phone           string
	CustomerName    string
	Items           []CreateOrderItemInput
}

// 価格確定済みの明細
type pricedLine struct {
	cakeID   string
	quantity int
	price    decimal.Decimal
}

// 注文確定。
// 合計計算・ヘッダー/明細の保存・カート全削除を1つのTxで行う。
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID string, in CreateOrderInput) (model.Order, error) {
	if userID == "" {
		return model.Order{}, unauthenticated()
	}
	if err := u.validator.ValidateCreateOrder(in); err != nil {
		return model.Order{}, err
	}

	var created model.Order

	//注文処理はトランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		lines, err := u.priceLines(ctx, r, in.Items)
		if err != nil {
			return err
		}

		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.price.Mul(decimal.NewFromInt(int64(l.quantity))))
		}
		total = total.Round(2)
		if total.GreaterThan(model.MaxOrderTotal) {
			return NewError(CodeValidation, "order total exceeds "+model.MaxOrderTotal.StringFixed(2))
		}

		now := u.clock.Now()
		order := model.Order{
			ID:              u.idGen.NewID(),
			UserID:          userID,
			Total:           total,
			Status:          model.OrderStatusPending,
			PaymentMethod:   model.PaymentMethodPayOnDelivery,
			DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
			Phone:           strings.TrimSpace(in.Phone),
			CustomerName:    strings.TrimSpace(in.CustomerName),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := r.Orders().Create(ctx, &order); err != nil {
			return storageError("create order", err)
		}

		//スナップショット（入力順を保つためにcreated_atをずらす）
		items := make([]model.OrderItem, 0, len(lines))
		for i, l := range lines {
			items = append(items, model.OrderItem{
				ID:        u.idGen.NewID(),
				OrderID:   order.ID,
				CakeID:    l.cakeID,
				Quantity:  l.quantity,
				Price:     l.price,
				CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
			})
		}
		if err := r.OrderItems().CreateBulk(ctx, order.ID, items); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return notFound("cake")
			}
			return storageError("create order items", err)
		}

		//注文に含まれない明細も含めてカートを空にする
		if _, err := r.CartItems().DeleteByUserID(ctx, userID); err != nil {
			return storageError("clear cart", err)
		}

		loaded, err := r.Orders().FindByID(ctx, order.ID)
		if err != nil {
			return storageError("load order", err)
		}
		created = loaded
		return nil
	})
	if err != nil {
		if _, ok := AsError(err); ok {
			return model.Order{}, err
		}
		// commit失敗など
		return model.Order{}, storageError("create order tx", err)
	}
	return created, nil
}

// 明細の価格を決める。
// 通常はカタログの現在価格。互換モードではクライアントの価格。
func (u *OrderUsecase) priceLines(ctx context.Context, r repo.TxRepos, in []CreateOrderItemInput) ([]pricedLine, error) {
	if u.trustClientPrices {
		lines := make([]pricedLine, 0, len(in))
		for _, it := range in {
			if it.Price == nil || it.Price.IsNegative() {
				return nil, NewError(CodeValidation, "price is required for each item")
			}
			lines = append(lines, pricedLine{
				cakeID:   strings.TrimSpace(it.CakeID),
				quantity: it.Quantity,
				price:    it.Price.Round(2),
			})
		}
		return lines, nil
	}

	// 同じケーキは1行にまとめる
	merged := make([]pricedLine, 0, len(in))
	index := map[string]int{}
	ids := make([]string, 0, len(in))
	for _, it := range in {
		id := strings.TrimSpace(it.CakeID)
		if i, ok := index[id]; ok {
			merged[i].quantity += it.Quantity
			if merged[i].quantity > model.MaxLineQuantity {
				return nil, quantityTooLarge()
			}
			continue
		}
		index[id] = len(merged)
		merged = append(merged, pricedLine{cakeID: id, quantity: it.Quantity})
		ids = append(ids, id)
	}

	cakes, err := r.Cakes().FindByIDsForShare(ctx, ids)
	if err != nil {
		return nil, storageError("load cakes", err)
	}
	byID := make(map[string]model.Cake, len(cakes))
	for _, c := range cakes {
		byID[c.ID] = c
	}

	for i := range merged {
		c, ok := byID[merged[i].cakeID]
		if !ok {
			return nil, NewError(CodeNotFound, "cake not found: "+merged[i].cakeID)
		}
		if !c.InStock {
			return nil, NewError(CodeOutOfStock, c.Name+" is out of stock")
		}
		merged[i].price = c.Price
	}
	return merged, nil
}

// 無ければnil
func (u *OrderUsecase) Get(ctx context.Context, orderID string) (*model.Order, error) {
	o, err := u.orders.FindByID(ctx, strings.TrimSpace(orderID))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageError("find order", err)
	}
	return &o, nil
}

// 新しい順
func (u *OrderUsecase) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if userID == "" {
		return nil, unauthenticated()
	}

	orders, err := u.orders.ListByUserID(ctx, userID)
	if err != nil {
		return nil, storageError("list orders", err)
	}
	return orders, nil
}
