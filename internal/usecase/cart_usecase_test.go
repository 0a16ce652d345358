package usecase_test

import (
	"context"
	"errors"
	"testing"

	"cakeshop/internal/domain/model"
	repo "cakeshop/internal/repository"
	"cakeshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartUC() (*usecase.CartUsecase, *CartItemRepoMock, *CakeRepoMock) {
	items := new(CartItemRepoMock)
	cakes := new(CakeRepoMock)
	return usecase.NewCartUsecase(items, cakes, &seqIDGen{}), items, cakes
}

func TestCartUsecase_AddItem_InvalidQuantity(t *testing.T) {
	uc, items, _ := newCartUC()

	for _, q := range []int{0, -3, model.MaxLineQuantity + 1, 2147483647} {
		_, err := uc.AddItem(context.Background(), "u1", "c1", q)
		assertCode(t, err, usecase.CodeInvalidQuantity)
	}
	items.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCartUsecase_AddItem_MergeOverLimit(t *testing.T) {
	uc, items, cakes := newCartUC()

	cakes.On("FindByID", mock.Anything, "c1").Return(model.Cake{ID: "c1"}, nil)
	items.On("Upsert", mock.Anything, mock.Anything).Return(model.CartItem{}, repo.ErrQuantityLimit)

	_, err := uc.AddItem(context.Background(), "u1", "c1", 500)
	assertCode(t, err, usecase.CodeInvalidQuantity)
	assertErrContains(t, err, "at most 999")
}

func TestCartUsecase_AddItem_Unauthenticated(t *testing.T) {
	uc, _, _ := newCartUC()

	_, err := uc.AddItem(context.Background(), "", "c1", 1)
	assertCode(t, err, usecase.CodeUnauthenticated)
}

func TestCartUsecase_AddItem_UnknownCake(t *testing.T) {
	uc, items, cakes := newCartUC()

	cakes.On("FindByID", mock.Anything, "nope").Return(model.Cake{}, repo.ErrNotFound)

	_, err := uc.AddItem(context.Background(), "u1", "nope", 1)
	assertCode(t, err, usecase.CodeNotFound)
	items.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCartUsecase_AddItem_UpsertsWithNewID(t *testing.T) {
	uc, items, cakes := newCartUC()

	cakes.On("FindByID", mock.Anything, "c1").Return(model.Cake{ID: "c1"}, nil)
	merged := model.CartItem{ID: "existing", UserID: "u1", CakeID: "c1", Quantity: 5, Cake: &model.Cake{ID: "c1"}}
	items.On("Upsert", mock.Anything, model.CartItem{ID: "id-1", UserID: "u1", CakeID: "c1", Quantity: 3}).Return(merged, nil)

	got, err := uc.AddItem(context.Background(), "u1", "c1", 3)
	require.NoError(t, err)
	assert.Equal(t, merged, got)
	items.AssertExpectations(t)
}

func TestCartUsecase_UpdateItem(t *testing.T) {
	uc, items, _ := newCartUC()

	_, err := uc.UpdateItem(context.Background(), "u1", "line1", 0)
	assertCode(t, err, usecase.CodeInvalidQuantity)
	_, err = uc.UpdateItem(context.Background(), "u1", "line1", model.MaxLineQuantity+1)
	assertCode(t, err, usecase.CodeInvalidQuantity)
	items.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	items.On("UpdateQuantity", mock.Anything, "u1", "missing", 2).Return(repo.ErrNotFound)
	_, err = uc.UpdateItem(context.Background(), "u1", "missing", 2)
	assertCode(t, err, usecase.CodeNotFound)

	items.On("UpdateQuantity", mock.Anything, "u1", "line1", 7).Return(nil)
	items.On("FindByID", mock.Anything, "u1", "line1").Return(model.CartItem{ID: "line1", Quantity: 7}, nil)
	got, err := uc.UpdateItem(context.Background(), "u1", "line1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
}

func TestCartUsecase_RemoveItem(t *testing.T) {
	uc, items, _ := newCartUC()

	items.On("DeleteByID", mock.Anything, "u1", "line1").Return(nil).Once()
	items.On("DeleteByID", mock.Anything, "u1", "line1").Return(repo.ErrNotFound).Once()

	require.NoError(t, uc.RemoveItem(context.Background(), "u1", "line1"))
	assertCode(t, uc.RemoveItem(context.Background(), "u1", "line1"), usecase.CodeNotFound)
}

func TestCartUsecase_Clear_EmptyCartIsNotError(t *testing.T) {
	uc, items, _ := newCartUC()

	items.On("DeleteByUserID", mock.Anything, "u1").Return(int64(0), nil)

	assert.NoError(t, uc.Clear(context.Background(), "u1"))
}

func TestCartUsecase_Clear_StorageError(t *testing.T) {
	uc, items, _ := newCartUC()

	items.On("DeleteByUserID", mock.Anything, "u1").Return(int64(0), errors.New("timeout"))

	err := uc.Clear(context.Background(), "u1")
	assertCode(t, err, usecase.CodeStorageUnavailable)
	assertErrContains(t, err, "storage unavailable")
}

func TestCartUsecase_List(t *testing.T) {
	uc, items, _ := newCartUC()

	items.On("ListByUserID", mock.Anything, "u1").Return([]model.CartItem{{ID: "b"}, {ID: "a"}}, nil)

	got, err := uc.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
