package services

import (
	"errors"
	"time"

	"github.com/flounder11/online-coffee-api/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(repo *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: repo}
}

type OrderItemDetail struct {
	repository.OrderItemRow
	Additives []repository.OrderAdditiveRow `json:"additives"`
}

type OrderDetail struct {
	ID         uint              `json:"id"`
	Total      int64             `json:"total"`
	ItemsCount int               `json:"itemsCount"`
	Status     string            `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
	Items      []OrderItemDetail `json:"items"`
}

// Detail reconstructs a committed order: header, items joined with product
// display fields, and each item's additives.
func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	rows, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}

	items := make([]OrderItemDetail, 0, len(rows))
	for _, row := range rows {
		adds, err := s.Repo.GetItemAdditives(row.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, OrderItemDetail{OrderItemRow: row, Additives: adds})
	}

	return &OrderDetail{
		ID:         o.ID,
		Total:      o.TotalAmount,
		ItemsCount: o.ItemsCount,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
		Items:      items,
	}, nil
}
