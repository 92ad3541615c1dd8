package entity

import (
	"gorm.io/gorm"
)

type OrderAdditive struct {
	gorm.Model
	Quantity    int   `json:"quantity" gorm:"default:1"`
	PriceAtTime int64 `json:"priceAtTime"`

	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"` // not serialized back, avoids a cycle

	AdditiveID uint     `json:"additiveId"`
	Additive   Additive `json:"-"`
}
