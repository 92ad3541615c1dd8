package entity

import (
	"gorm.io/gorm"
)

const OrderStatusPending = "pending"

type Order struct {
	gorm.Model
	TotalAmount int64  `json:"total"`
	ItemsCount  int    `json:"itemsCount"`
	Status      string `json:"status" gorm:"default:pending"`

	OrderItems []OrderItem `json:"-"` // preload only for order detail
}
