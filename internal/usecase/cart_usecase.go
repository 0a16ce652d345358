package usecase

import (
	"context"
	"errors"
	"fmt"

	"cakeshop/internal/domain/model"
	repo "cakeshop/internal/repository"
)

// CartUsecase はカートの業務ロジック。
// 明細は (user, cake) で一意。追加は数量をマージする。
type CartUsecase struct {
	cartItems repo.CartItemRepository
	cakes     repo.CakeRepository
	idGen     IDGenerator
}

func NewCartUsecase(
	cartItems repo.CartItemRepository,
	cakes repo.CakeRepository,
	idGen IDGenerator,
) *CartUsecase {
	return &CartUsecase{
		cartItems: cartItems,
		cakes:     cakes,
		idGen:     idGen,
	}
}

func invalidQuantity() error {
	return NewError(CodeInvalidQuantity, "quantity must be at least 1")
}

func quantityTooLarge() error {
	return NewError(CodeInvalidQuantity, fmt.Sprintf("quantity must be at most %d", model.MaxLineQuantity))
}

func checkQuantity(q int) error {
	if q < 1 {
		return invalidQuantity()
	}
	if q > model.MaxLineQuantity {
		return quantityTooLarge()
	}
	return nil
}

// 新しい順
func (u *CartUsecase) List(ctx context.Context, userID string) ([]model.CartItem, error) {
	if userID == "" {
		return nil, unauthenticated()
	}

	items, err := u.cartItems.ListByUserID(ctx, userID)
	if err != nil {
		return nil, storageError("list cart", err)
	}
	return items, nil
}

// カートに追加（同一ケーキは数量加算）。
func (u *CartUsecase) AddItem(ctx context.Context, userID string, cakeID string, quantity int) (model.CartItem, error) {
	if userID == "" {
		return model.CartItem{}, unauthenticated()
	}
	if err := checkQuantity(quantity); err != nil {
		return model.CartItem{}, err
	}

	// ケーキの存在チェック
	if _, err := u.cakes.FindByID(ctx, cakeID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.CartItem{}, notFound("cake")
		}
		return model.CartItem{}, storageError("find cake", err)
	}

	item, err := u.cartItems.Upsert(ctx, model.CartItem{
		ID:       u.idGen.NewID(),
		UserID:   userID,
		CakeID:   cakeID,
		Quantity: quantity,
	})
	if err != nil {
		// チェック後に消えた
		if errors.Is(err, repo.ErrNotFound) {
			return model.CartItem{}, notFound("cake")
		}
		// 既存の数量と足すと上限を超える
		if errors.Is(err, repo.ErrQuantityLimit) {
			return model.CartItem{}, quantityTooLarge()
		}
		return model.CartItem{}, storageError("upsert cart item", err)
	}
	return item, nil
}

// 数量を置き換える（加算ではない）。
func (u *CartUsecase) UpdateItem(ctx context.Context, userID string, cartItemID string, quantity int) (model.CartItem, error) {
	if userID == "" {
		return model.CartItem{}, unauthenticated()
	}
	if err := checkQuantity(quantity); err != nil {
		return model.CartItem{}, err
	}

	if err := u.cartItems.UpdateQuantity(ctx, userID, cartItemID, quantity); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.CartItem{}, notFound("cart item")
		}
		return model.CartItem{}, storageError("update cart item", err)
	}

	item, err := u.cartItems.FindByID(ctx, userID, cartItemID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.CartItem{}, notFound("cart item")
		}
		return model.CartItem{}, storageError("find cart item", err)
	}
	return item, nil
}

// 明細削除。無ければNOT_FOUND。
func (u *CartUsecase) RemoveItem(ctx context.Context, userID string, cartItemID string) error {
	if userID == "" {
		return unauthenticated()
	}

	if err := u.cartItems.DeleteByID(ctx, userID, cartItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("cart item")
		}
		return storageError("delete cart item", err)
	}
	return nil
}

// 全削除。空のカートでもエラーにしない。
func (u *CartUsecase) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return unauthenticated()
	}

	if _, err := u.cartItems.DeleteByUserID(ctx, userID); err != nil {
		return storageError("clear cart", err)
	}
	return nil
}
