package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cakeshop/internal/domain/model"
	"cakeshop/internal/usecase"
)

const (
	maxPhoneLen   = 50
	maxOrderLines = 100
)

type orderValidator struct{}

func NewOrderValidator() usecase.OrderValidator {
	return &orderValidator{}
}

// 注文確定の入力を検証
func (v *orderValidator) ValidateCreateOrder(in usecase.CreateOrderInput) error {
	// 必須チェック
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return invalid("deliveryAddress is required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return invalid("phone is required")
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return invalid("customerName is required")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Phone)) > maxPhoneLen {
		return invalid("phone is too long")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.CustomerName)) > maxNameLen {
		return invalid("customerName is too long")
	}

	if len(in.Items) == 0 {
		return invalid("at least one item is required")
	}
	if len(in.Items) > maxOrderLines {
		return invalid("too many items")
	}

	for _, it := range in.Items {
		if strings.TrimSpace(it.CakeID) == "" {
			return invalid("cakeId is required")
		}
		if it.Quantity < 1 {
			return usecase.NewError(usecase.CodeInvalidQuantity, "quantity must be at least 1")
		}
		if it.Quantity > model.MaxLineQuantity {
			return usecase.NewError(usecase.CodeInvalidQuantity, fmt.Sprintf("quantity must be at most %d", model.MaxLineQuantity))
		}
		if it.Price != nil && it.Price.IsNegative() {
			return invalid("price must not be negative")
		}
	}

	return nil
}
