package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity    int   `json:"quantity"`
	PriceAtTime int64 `json:"priceAtTime"` // unit price snapshotted at checkout

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"` // preload only when the title is needed

	Additives []OrderAdditive `json:"-"`
}
