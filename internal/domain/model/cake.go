package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カタログの商品（ケーキ）。コアからは読み取り専用。
type Cake struct {
	ID          string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Image       string          `gorm:"type:text;not null" json:"image"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Weight      string          `gorm:"type:varchar(50);not null" json:"weight"`
	Flavor      string          `gorm:"type:varchar(100);not null" json:"flavor"`
	InStock     bool            `gorm:"not null;default:true" json:"in_stock"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
