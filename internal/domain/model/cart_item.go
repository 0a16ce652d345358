package model

import "time"

// 1明細の数量上限。カートで加算した後も、注文でまとめた後もこれを超えない。
const MaxLineQuantity = 999

// カートの明細。(user_id, cake_id) はDB側で一意。
// 2回目の追加は行を増やさず数量を加算する。
type CartItem struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:ux_cart_items_user_cake" json:"user_id"`
	CakeID    string    `gorm:"type:uuid;not null;uniqueIndex:ux_cart_items_user_cake" json:"cake_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Cake      *Cake     `gorm:"foreignKey:CakeID" json:"cake,omitempty"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
