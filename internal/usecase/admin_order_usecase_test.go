package usecase_test

import (
	"context"
	"testing"

	"cakeshop/internal/domain/model"
	repo "cakeshop/internal/repository"
	"cakeshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	tx     *TxManagerMock
	orders *OrderRepoMock
	audit  *AuditRepoMock
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		tx:     new(TxManagerMock),
		orders: new(OrderRepoMock),
		audit:  new(AuditRepoMock),
	}
	f.tx.Repos = &TxReposMock{orders: f.orders, auditLogs: f.audit}
	return f
}

func (f *adminFixture) usecase(strict bool) *usecase.AdminOrderUsecase {
	return usecase.NewAdminOrderUsecase(f.tx, &seqIDGen{}, fixedClock{t: testNow}, strict)
}

func TestAdminOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	f := newAdminFixture()

	_, err := f.usecase(true).UpdateStatus(context.Background(), "admin", "o1", "SHIPPED")
	assertCode(t, err, usecase.CodeValidation)
	f.tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	f := newAdminFixture()
	f.tx.On("WithinTx", mock.Anything).Return(nil)
	f.orders.On("FindByIDForUpdate", mock.Anything, "missing").Return(model.Order{}, repo.ErrNotFound)

	_, err := f.usecase(true).UpdateStatus(context.Background(), "admin", "missing", "DELIVERED")
	assertCode(t, err, usecase.CodeNotFound)
}

func TestAdminOrderUsecase_UpdateStatus_PendingToDelivered(t *testing.T) {
	f := newAdminFixture()
	f.tx.On("WithinTx", mock.Anything).Return(nil)
	f.orders.On("FindByIDForUpdate", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusPending}, nil)
	f.orders.On("UpdateStatus", mock.Anything, "o1", model.OrderStatusDelivered).Return(nil)
	f.audit.On("Create", mock.Anything, model.AuditLog{
		ID:           "id-1",
		ActorUserID:  "admin",
		Action:       model.AuditActionUpdateOrderStatus,
		ResourceType: model.AuditResourceOrder,
		ResourceID:   "o1",
		BeforeJSON:   `{"status":"PENDING"}`,
		AfterJSON:    `{"status":"DELIVERED"}`,
		CreatedAt:    testNow,
	}).Return(nil)
	f.orders.On("FindByID", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusDelivered}, nil)

	got, err := f.usecase(true).UpdateStatus(context.Background(), "admin", "o1", "DELIVERED")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, got.Status)

	f.orders.AssertExpectations(t)
	f.audit.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateStatus_AuditSnapshotsAreJSON(t *testing.T) {
	f := newAdminFixture()
	f.tx.On("WithinTx", mock.Anything).Return(nil)
	f.orders.On("FindByIDForUpdate", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusOutForDelivery}, nil)
	f.orders.On("UpdateStatus", mock.Anything, "o1", model.OrderStatusCancelled).Return(nil)
	var logged model.AuditLog
	f.audit.On("Create", mock.Anything, mock.AnythingOfType("model.AuditLog")).
		Run(func(args mock.Arguments) { logged = args.Get(1).(model.AuditLog) }).
		Return(nil)
	f.orders.On("FindByID", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusCancelled}, nil)

	_, err := f.usecase(true).UpdateStatus(context.Background(), "admin", "o1", " CANCELLED ")
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":"OUT_FOR_DELIVERY"}`, logged.BeforeJSON)
	assert.JSONEq(t, `{"status":"CANCELLED"}`, logged.AfterJSON)
}

func TestAdminOrderUsecase_UpdateStatus_RejectsIllegalTransition(t *testing.T) {
	f := newAdminFixture()
	f.tx.On("WithinTx", mock.Anything).Return(nil)
	f.orders.On("FindByIDForUpdate", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusDelivered}, nil)

	_, err := f.usecase(true).UpdateStatus(context.Background(), "admin", "o1", "PENDING")
	assertCode(t, err, usecase.CodeInvalidTransition)
	assertErrContains(t, err, "from DELIVERED to PENDING")
	f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	f.audit.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_LooseModeWritesAnything(t *testing.T) {
	f := newAdminFixture()
	f.tx.On("WithinTx", mock.Anything).Return(nil)
	f.orders.On("FindByIDForUpdate", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusCancelled}, nil)
	f.orders.On("UpdateStatus", mock.Anything, "o1", model.OrderStatusPending).Return(nil)
	f.audit.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.orders.On("FindByID", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusPending}, nil)

	got, err := f.usecase(false).UpdateStatus(context.Background(), "admin", "o1", "PENDING")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, got.Status)
}

func TestAdminOrderUsecase_UpdateStatus_SameStatusIsNoop(t *testing.T) {
	f := newAdminFixture()
	f.tx.On("WithinTx", mock.Anything).Return(nil)
	f.orders.On("FindByIDForUpdate", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusDelivered}, nil)
	f.orders.On("FindByID", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusDelivered}, nil)

	got, err := f.usecase(true).UpdateStatus(context.Background(), "admin", "o1", "DELIVERED")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, got.Status)
	f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	f.audit.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_List(t *testing.T) {
	f := newAdminFixture()
	f.tx.On("WithinTx", mock.Anything).Return(nil)

	status := model.OrderStatusPending
	userID := "u1"
	f.orders.On("ListAdmin", mock.Anything, repo.AdminOrderListFilter{Status: &status, UserID: &userID}).
		Return([]model.Order{{ID: "o1"}}, nil)

	got, err := f.usecase(true).List(context.Background(), usecase.AdminListOrdersInput{Status: "PENDING", UserID: "u1"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = f.usecase(true).List(context.Background(), usecase.AdminListOrdersInput{Status: "PAID"})
	assertCode(t, err, usecase.CodeValidation)
}
