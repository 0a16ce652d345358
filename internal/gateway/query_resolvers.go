package gateway

import (
	"cakeshop/internal/middleware"
	"cakeshop/internal/usecase"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) cakes(p graphql.ResolveParams) (interface{}, error) {
	cakes, err := r.Catalog.List(p.Context, usecase.ListCakesInput{
		Search:   stringArg(p, "search"),
		Category: stringArg(p, "category"),
	})
	if err != nil {
		return nil, r.fail("cakes", err)
	}
	return toCakeDTOs(cakes), nil
}

// 無ければnull
func (r *Resolver) cake(p graphql.ResolveParams) (interface{}, error) {
	c, err := r.Catalog.Get(p.Context, stringArg(p, "id"))
	if err != nil {
		return nil, r.fail("cake", err)
	}
	if c == nil {
		return nil, nil
	}
	return toCakeDTO(*c), nil
}

func (r *Resolver) categories(p graphql.ResolveParams) (interface{}, error) {
	cats, err := r.Catalog.Categories(p.Context)
	if err != nil {
		return nil, r.fail("categories", err)
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}

func (r *Resolver) cart(p graphql.ResolveParams) (interface{}, error) {
	userID, err := middleware.ResolveUserID(p.Context, stringArg(p, "userId"))
	if err != nil {
		return nil, r.fail("cart", err)
	}

	items, err := r.Cart.List(p.Context, userID)
	if err != nil {
		return nil, r.fail("cart", err)
	}
	return toCartItemDTOs(items), nil
}

func (r *Resolver) orders(p graphql.ResolveParams) (interface{}, error) {
	userID, err := middleware.ResolveUserID(p.Context, stringArg(p, "userId"))
	if err != nil {
		return nil, r.fail("orders", err)
	}

	orders, err := r.Orders.ListByUser(p.Context, userID)
	if err != nil {
		return nil, r.fail("orders", err)
	}
	return toOrderDTOs(orders), nil
}

// 他人の注文は（ADMIN以外には）存在しないものとして返す
func (r *Resolver) order(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := middleware.RequireUser(p.Context)
	if err != nil {
		return nil, r.fail("order", err)
	}

	o, err := r.Orders.Get(p.Context, stringArg(p, "id"))
	if err != nil {
		return nil, r.fail("order", err)
	}
	if o == nil {
		return nil, nil
	}
	if o.UserID != viewer.ID && !viewer.IsAdmin() {
		return nil, nil
	}
	return toOrderDTO(*o), nil
}

// tokenがあればそれを検証、無ければセッションのユーザー（匿名ならnull）
func (r *Resolver) me(p graphql.ResolveParams) (interface{}, error) {
	if token := stringArg(p, "token"); token != "" {
		u, err := r.Session.Resolve(p.Context, token)
		if err != nil {
			return nil, r.fail("me", err)
		}
		return toUserDTO(*u), nil
	}

	if u, ok := middleware.UserFromContext(p.Context); ok {
		return toUserDTO(*u), nil
	}
	if err := middleware.SessionErrorFromContext(p.Context); err != nil {
		return nil, r.fail("me", err)
	}
	return nil, nil
}

// User.orders。Userはトークンで本人確認済みのときだけ返している。
func (r *Resolver) userOrders(p graphql.ResolveParams) (interface{}, error) {
	u, ok := p.Source.(userDTO)
	if !ok {
		return []orderDTO{}, nil
	}

	orders, err := r.Orders.ListByUser(p.Context, u.ID)
	if err != nil {
		return nil, r.fail("user orders", err)
	}
	return toOrderDTOs(orders), nil
}

func (r *Resolver) adminOrders(p graphql.ResolveParams) (interface{}, error) {
	if _, err := middleware.RequireAdmin(p.Context); err != nil {
		return nil, r.fail("admin orders", err)
	}

	orders, err := r.AdminOrders.List(p.Context, usecase.AdminListOrdersInput{
		Status: stringArg(p, "status"),
		UserID: stringArg(p, "userId"),
	})
	if err != nil {
		return nil, r.fail("admin orders", err)
	}
	return toOrderDTOs(orders), nil
}
