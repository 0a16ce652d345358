package gateway

import (
	"context"
	"log"

	"cakeshop/internal/domain/model"
	"cakeshop/internal/middleware"
	"cakeshop/internal/usecase"
	auth "cakeshop/internal/usecase/auth_usecase"
)

// resolverが使うusecaseの約束

type CatalogService interface {
	List(ctx context.Context, in usecase.ListCakesInput) ([]model.Cake, error)
	Get(ctx context.Context, id string) (*model.Cake, error)
	Categories(ctx context.Context) ([]string, error)
}

type CartService interface {
	List(ctx context.Context, userID string) ([]model.CartItem, error)
	AddItem(ctx context.Context, userID string, cakeID string, quantity int) (model.CartItem, error)
	UpdateItem(ctx context.Context, userID string, cartItemID string, quantity int) (model.CartItem, error)
	RemoveItem(ctx context.Context, userID string, cartItemID string) error
	Clear(ctx context.Context, userID string) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID string, in usecase.CreateOrderInput) (model.Order, error)
	Get(ctx context.Context, orderID string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
}

type AdminOrderService interface {
	List(ctx context.Context, in usecase.AdminListOrdersInput) ([]model.Order, error)
	UpdateStatus(ctx context.Context, actorUserID string, orderID string, status string) (model.Order, error)
}

type RegisterService interface {
	Execute(ctx context.Context, in auth.RegisterUserInput) (auth.AuthOutput, error)
}

type LoginService interface {
	Execute(ctx context.Context, in auth.LoginInput) (auth.AuthOutput, error)
}

// Resolver はGraphQLのフィールドとusecaseをつなぐ。
// 認可（本人かADMINか）はここで判定し、usecaseには確定したuserIDだけを渡す。
type Resolver struct {
	Catalog     CatalogService
	Cart        CartService
	Orders      OrderService
	AdminOrders AdminOrderService
	Register    RegisterService
	Login       LoginService
	Session     middleware.SessionResolver
	Logger      *log.Logger
}

// クライアントに返すエラーへ変換する。
// *usecase.Errorはそのまま返す（extensions.codeを載せるため、包まない）。
func (r *Resolver) fail(op string, err error) error {
	ue, ok := usecase.AsError(err)
	if !ok {
		r.logf("%s: %v", op, err)
		return &usecase.Error{Code: usecase.CodeInternal, Message: "internal error", Err: err}
	}
	if ue.Err != nil {
		r.logf("%s: %s: %v", op, ue.Code, ue.Err)
	}
	return ue
}

func (r *Resolver) logf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}
