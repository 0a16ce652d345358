package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。注文時点の価格を保存し、以後は変更しない。
type OrderItem struct {
	ID        string          `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   string          `gorm:"type:uuid;not null;index" json:"order_id"`
	CakeID    string          `gorm:"type:uuid;not null;index" json:"cake_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Cake      *Cake           `gorm:"foreignKey:CakeID" json:"cake,omitempty"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}

// 小計 = 価格 × 数量
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
