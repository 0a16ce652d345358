package gateway

import (
	"cakeshop/internal/middleware"
	"cakeshop/internal/usecase"
	auth "cakeshop/internal/usecase/auth_usecase"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) register(p graphql.ResolveParams) (interface{}, error) {
	// パスワードはtrimしない
	password, _ := p.Args["password"].(string)

	out, err := r.Register.Execute(p.Context, auth.RegisterUserInput{
		Email:    stringArg(p, "email"),
		Password: password,
		Name:     stringArg(p, "name"),
		Phone:    optionalStringArg(p, "phone"),
		Address:  optionalStringArg(p, "address"),
	})
	if err != nil {
		return nil, r.fail("register", err)
	}
	return toAuthPayloadDTO(out), nil
}

func (r *Resolver) login(p graphql.ResolveParams) (interface{}, error) {
	// パスワードはtrimしない
	password, _ := p.Args["password"].(string)

	out, err := r.Login.Execute(p.Context, auth.LoginInput{
		Email:    stringArg(p, "email"),
		Password: password,
	})
	if err != nil {
		return nil, r.fail("login", err)
	}
	return toAuthPayloadDTO(out), nil
}

func (r *Resolver) addToCart(p graphql.ResolveParams) (interface{}, error) {
	userID, err := middleware.ResolveUserID(p.Context, stringArg(p, "userId"))
	if err != nil {
		return nil, r.fail("add to cart", err)
	}

	item, err := r.Cart.AddItem(p.Context, userID, stringArg(p, "cakeId"), intArg(p, "quantity"))
	if err != nil {
		return nil, r.fail("add to cart", err)
	}
	return toCartItemDTO(item), nil
}

func (r *Resolver) updateCartItem(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := middleware.RequireUser(p.Context)
	if err != nil {
		return nil, r.fail("update cart item", err)
	}

	item, err := r.Cart.UpdateItem(p.Context, viewer.ID, stringArg(p, "id"), intArg(p, "quantity"))
	if err != nil {
		return nil, r.fail("update cart item", err)
	}
	return toCartItemDTO(item), nil
}

func (r *Resolver) removeFromCart(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := middleware.RequireUser(p.Context)
	if err != nil {
		return nil, r.fail("remove from cart", err)
	}

	if err := r.Cart.RemoveItem(p.Context, viewer.ID, stringArg(p, "id")); err != nil {
		return nil, r.fail("remove from cart", err)
	}
	return true, nil
}

func (r *Resolver) clearCart(p graphql.ResolveParams) (interface{}, error) {
	userID, err := middleware.ResolveUserID(p.Context, stringArg(p, "userId"))
	if err != nil {
		return nil, r.fail("clear cart", err)
	}

	if err := r.Cart.Clear(p.Context, userID); err != nil {
		return nil, r.fail("clear cart", err)
	}
	return true, nil
}

func (r *Resolver) createOrder(p graphql.ResolveParams) (interface{}, error) {
	userID, err := middleware.ResolveUserID(p.Context, stringArg(p, "userId"))
	if err != nil {
		return nil, r.fail("create order", err)
	}

	items, err := orderItemsArg(p)
	if err != nil {
		return nil, r.fail("create order", err)
	}

	o, err := r.Orders.CreateOrder(p.Context, userID, usecase.CreateOrderInput{
		DeliveryAddress: stringArg(p, "deliveryAddress"),
		Phone:           stringArg(p, "phone"),
		CustomerName:    stringArg(p, "customerName"),
		Items:           items,
	})
	if err != nil {
		return nil, r.fail("create order", err)
	}
	return toOrderDTO(o), nil
}

// ADMINのみ
func (r *Resolver) updateOrderStatus(p graphql.ResolveParams) (interface{}, error) {
	admin, err := middleware.RequireAdmin(p.Context)
	if err != nil {
		return nil, r.fail("update order status", err)
	}

	o, err := r.AdminOrders.UpdateStatus(p.Context, admin.ID, stringArg(p, "id"), stringArg(p, "status"))
	if err != nil {
		return nil, r.fail("update order status", err)
	}
	return toOrderDTO(o), nil
}
