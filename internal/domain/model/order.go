package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusConfirmed      OrderStatus = "CONFIRMED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// 支払い方法は代引きのみ。
const PaymentMethodPayOnDelivery = "PAY_ON_DELIVERY"

// 合計は numeric(10,2) に入る範囲まで
var MaxOrderTotal = decimal.RequireFromString("99999999.99")

// 配送までの順序。CANCELLEDは含めない。
var fulfillmentSteps = map[OrderStatus]int{
	OrderStatusPending:        0,
	OrderStatusConfirmed:      1,
	OrderStatusPreparing:      2,
	OrderStatusOutForDelivery: 3,
	OrderStatusDelivered:      4,
}

// 全ステータス（表示順）。
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusOutForDelivery,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

func (s OrderStatus) Valid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := fulfillmentSteps[s]
	return ok
}

// DELIVERED / CANCELLED からは動かせない。
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// 同じステータスへの更新は何もしない扱いで常にOK。
// 前進は飛ばしてよい。キャンセルは終端以外からならどこからでも。
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return fulfillmentSteps[next] > fulfillmentSteps[s]
}

type Order struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Total           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentMethod   string          `gorm:"type:varchar(30);not null" json:"payment_method"`
	DeliveryAddress string          `gorm:"type:text;not null" json:"delivery_address"`
	Phone           string          `gorm:"type:varchar(50);not null" json:"phone"`
	CustomerName    string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
