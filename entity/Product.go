package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Title       string `json:"title"`
	Img         string `json:"img"`
	Price       int64  `json:"price"` // minor currency units
	Volume      *int   `json:"volume"`
	Category    string `json:"category"`
	Popular     bool   `json:"popular"`
	Description string `json:"description"`

	OrderItems []OrderItem `json:"-"` // preload only when order history is needed
}
