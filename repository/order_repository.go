package repository

import (
	"time"

	"github.com/flounder11/online-coffee-api/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Writes (always inside the caller's transaction) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreateOrderAdditive(tx *gorm.DB, oa *entity.OrderAdditive) error {
	return tx.Create(oa).Error
}

// ---------------- Reads ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /api/cart/order/:id → items joined with products for display fields
type OrderItemRow struct {
	ID          uint      `json:"id"`
	ProductID   uint      `json:"productId"`
	Quantity    int       `json:"quantity"`
	PriceAtTime int64     `json:"priceAtTime"`
	Title       string    `json:"title"`
	Img         string    `json:"img"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]OrderItemRow, error) {
	var rows []OrderItemRow
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.product_id, oi.quantity, oi.price_at_time, oi.created_at, p.title, p.img").
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.id ASC").
		Scan(&rows).Error
	return rows, err
}

type OrderAdditiveRow struct {
	ID          uint   `json:"id"`
	AdditiveID  uint   `json:"additiveId"`
	Quantity    int    `json:"quantity"`
	PriceAtTime int64  `json:"priceAtTime"`
	Title       string `json:"title"`
	Category    string `json:"category"`
}

func (r *OrderRepository) GetItemAdditives(orderItemID uint) ([]OrderAdditiveRow, error) {
	var rows []OrderAdditiveRow
	err := r.DB.Table("order_additives AS oa").
		Select("oa.id, oa.additive_id, oa.quantity, oa.price_at_time, a.title, a.category").
		Joins("JOIN additives a ON a.id = oa.additive_id").
		Where("oa.order_item_id = ?", orderItemID).
		Order("oa.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) CountOrders() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Count(&cnt).Error
	return cnt, err
}
