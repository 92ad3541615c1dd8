package entity

import (
	"gorm.io/gorm"
)

type Additive struct {
	gorm.Model
	Title     string `json:"title"`
	Price     int64  `json:"price"` // minor currency units
	Category  string `json:"category"`
	Available bool   `json:"available"`

	OrderAdditives []OrderAdditive `json:"-"`
}
