package gateway

import (
	"cakeshop/internal/domain/model"

	"github.com/graphql-go/graphql"
)

// NewSchema はストアフロントのGraphQLスキーマを組み立てる。
// フィールド名は既存フロントエンドと互換。
func NewSchema(r *Resolver) (graphql.Schema, error) {
	t := newTypes(r)

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"cakes": &graphql.Field{
				Type: nonNullList(t.cake),
				Args: graphql.FieldConfigArgument{
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
					"category": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.cakes,
			},
			"cake": &graphql.Field{
				Type: t.cake,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.cake,
			},
			"categories": &graphql.Field{
				Type:    nonNullList(graphql.String),
				Resolve: r.categories,
			},
			"cart": &graphql.Field{
				Type: nonNullList(t.cartItem),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.cart,
			},
			"orders": &graphql.Field{
				Type: nonNullList(t.order),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.orders,
			},
			"order": &graphql.Field{
				Type: t.order,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.order,
			},
			"me": &graphql.Field{
				Type: t.user,
				Args: graphql.FieldConfigArgument{
					"token": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.me,
			},
			"adminOrders": &graphql.Field{
				Type: nonNullList(t.order),
				Args: graphql.FieldConfigArgument{
					"status": &graphql.ArgumentConfig{Type: t.orderStatus},
					"userId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.adminOrders,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: graphql.NewNonNull(t.authPayload),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"phone":    &graphql.ArgumentConfig{Type: graphql.String},
					"address":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.register,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(t.authPayload),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.login,
			},
			"addToCart": &graphql.Field{
				Type: graphql.NewNonNull(t.cartItem),
				Args: graphql.FieldConfigArgument{
					"userId":   &graphql.ArgumentConfig{Type: graphql.ID},
					"cakeId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"quantity": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.addToCart,
			},
			"updateCartItem": &graphql.Field{
				Type: graphql.NewNonNull(t.cartItem),
				Args: graphql.FieldConfigArgument{
					"id":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"quantity": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.updateCartItem,
			},
			"removeFromCart": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.removeFromCart,
			},
			"clearCart": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.clearCart,
			},
			"createOrder": &graphql.Field{
				Type: graphql.NewNonNull(t.order),
				Args: graphql.FieldConfigArgument{
					"userId":          &graphql.ArgumentConfig{Type: graphql.ID},
					"deliveryAddress": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"phone":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"customerName":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"items":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.orderItemInput)))},
				},
				Resolve: r.createOrder,
			},
			"updateOrderStatus": &graphql.Field{
				Type: graphql.NewNonNull(t.order),
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.orderStatus)},
				},
				Resolve: r.updateOrderStatus,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

type types struct {
	user           *graphql.Object
	authPayload    *graphql.Object
	cake           *graphql.Object
	cartItem       *graphql.Object
	order          *graphql.Object
	orderItem      *graphql.Object
	orderStatus    *graphql.Enum
	orderItemInput *graphql.InputObject
}

func nonNullList(of graphql.Type) graphql.Type {
	return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(of)))
}

func newTypes(r *Resolver) types {
	var t types

	statusValues := graphql.EnumValueConfigMap{}
	for _, s := range model.OrderStatuses() {
		statusValues[string(s)] = &graphql.EnumValueConfig{Value: string(s)}
	}
	t.orderStatus = graphql.NewEnum(graphql.EnumConfig{
		Name:   "OrderStatus",
		Values: statusValues,
	})

	t.cake = graphql.NewObject(graphql.ObjectConfig{
		Name: "Cake",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"image":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"category":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"weight":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"flavor":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"inStock":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.cartItem = graphql.NewObject(graphql.ObjectConfig{
		Name: "CartItem",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"userId":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"cakeId":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"quantity":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"cake":      &graphql.Field{Type: graphql.NewNonNull(t.cake)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.orderItem = graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderItem",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"orderId":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"cakeId":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"quantity": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"price":    &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"cake":     &graphql.Field{Type: graphql.NewNonNull(t.cake)},
		},
	})

	t.order = graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"userId":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"total":           &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"status":          &graphql.Field{Type: graphql.NewNonNull(t.orderStatus)},
			"paymentMethod":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"deliveryAddress": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"phone":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"customerName":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"items":           &graphql.Field{Type: nonNullList(t.orderItem)},
			"createdAt":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"updatedAt":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"phone":     &graphql.Field{Type: graphql.String},
			"address":   &graphql.Field{Type: graphql.String},
			"role":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"orders": &graphql.Field{
				Type:    nonNullList(t.order),
				Resolve: r.userOrders,
			},
		},
	})

	t.authPayload = graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":      &graphql.Field{Type: graphql.NewNonNull(t.user)},
			"expiresAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.orderItemInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"cakeId":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"quantity": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			// 互換モード（TRUST_CLIENT_PRICES）でだけ使う
			"price": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		},
	})

	return t
}
