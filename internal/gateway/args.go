package gateway

import (
	"strings"

	"cakeshop/internal/usecase"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
)

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return strings.TrimSpace(s)
}

func optionalStringArg(p graphql.ResolveParams, name string) *string {
	s, ok := p.Args[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func intArg(p graphql.ResolveParams, name string) int {
	n, _ := p.Args[name].(int)
	return n
}

// OrderItemInputのリストを読む
func orderItemsArg(p graphql.ResolveParams) ([]usecase.CreateOrderItemInput, error) {
	raw, _ := p.Args["items"].([]interface{})

	items := make([]usecase.CreateOrderItemInput, 0, len(raw))
	for _, r := range raw {
		m, ok := r.(map[string]interface{})
		if !ok {
			return nil, usecase.NewError(usecase.CodeValidation, "invalid item")
		}

		cakeID, _ := m["cakeId"].(string)
		qty, _ := m["quantity"].(int)
		it := usecase.CreateOrderItemInput{
			CakeID:   strings.TrimSpace(cakeID),
			Quantity: qty,
		}

		// Floatはfloat64で来る（整数リテラルならintのこともある）
		switch v := m["price"].(type) {
		case float64:
			d := decimal.NewFromFloat(v)
			it.Price = &d
		case int:
			d := decimal.NewFromInt(int64(v))
			it.Price = &d
		}

		items = append(items, it)
	}
	return items, nil
}
