package services

import (
	"errors"
	"time"

	"github.com/flounder11/online-coffee-api/entity"
	"github.com/flounder11/online-coffee-api/repository"
	"gorm.io/gorm"
)

// totalTolerance absorbs client-side display rounding, in minor currency units.
// Absolute, never a percentage.
const totalTolerance = 1

type CheckoutService struct {
	DB           *gorm.DB
	ProductRepo  *repository.ProductRepository
	AdditiveRepo *repository.AdditiveRepository
	OrderRepo    *repository.OrderRepository
}

func NewCheckoutService(
	db *gorm.DB,
	productRepo *repository.ProductRepository,
	additiveRepo *repository.AdditiveRepository,
	orderRepo *repository.OrderRepository,
) *CheckoutService {
	return &CheckoutService{DB: db, ProductRepo: productRepo, AdditiveRepo: additiveRepo, OrderRepo: orderRepo}
}

// ----- DTOs from Controller -----

type CartAdditiveIn struct {
	ID       uint `json:"id" binding:"required"`
	Quantity int  `json:"quantity" binding:"omitempty,min=1"` // defaults to 1
}

type CartItemIn struct {
	ProductID uint             `json:"productId" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	Additives []CartAdditiveIn `json:"additives"`
}

type CheckoutReq struct {
	Items []CartItemIn `json:"items"`
	Total *int64       `json:"total"` // client-side total, checked against the recomputed one
}

// ----- Validation result -----

type ValidatedAdditive struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type ValidatedItem struct {
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"` // catalog unit price at validation time
	Title     string `json:"title"`

	Additives      []ValidatedAdditive `json:"additives"`
	AdditivesTotal int64               `json:"additivesTotal"` // for the whole line
}

type ValidatedOrder struct {
	Items      []ValidatedItem
	Total      int64
	ItemsCount int
}

// Validate resolves every cart line against the catalog and recomputes all
// prices server-side. Client-supplied prices are never trusted; the optional
// claimed total is only compared against the recomputed one. Pure reads, no
// transaction, no writes.
func (s *CheckoutService) Validate(items []CartItemIn, claimedTotal *int64) (*ValidatedOrder, error) {
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	var total int64
	out := make([]ValidatedItem, 0, len(items))

	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, &InvalidQuantityError{Field: "item", Qty: it.Quantity}
		}

		p, err := s.ProductRepo.GetBasics(it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ProductNotFoundError{ID: it.ProductID}
			}
			return nil, err
		}

		lineBase := p.Price * int64(it.Quantity)

		var additivesSubtotal int64
		adds := make([]ValidatedAdditive, 0, len(it.Additives))
		for _, ref := range it.Additives {
			a, err := s.AdditiveRepo.FindByID(ref.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, &AdditiveNotFoundError{ID: ref.ID}
				}
				return nil, err
			}
			if !a.Available {
				return nil, &AdditiveUnavailableError{Title: a.Title}
			}

			qty := ref.Quantity
			if qty == 0 {
				qty = 1
			}
			if qty < 0 {
				return nil, &InvalidQuantityError{Field: "additive", Qty: qty}
			}

			additivesSubtotal += a.Price * int64(qty)
			adds = append(adds, ValidatedAdditive{
				ID: a.ID, Title: a.Title, Price: a.Price, Quantity: qty,
			})
		}

		// additives are charged per unit of the product ordered
		lineTotal := lineBase + additivesSubtotal*int64(it.Quantity)
		total += lineTotal

		out = append(out, ValidatedItem{
			ProductID: p.ID,
			Quantity:  it.Quantity,
			Price:     p.Price,
			Title:     p.Title,
			Additives:      adds,
			AdditivesTotal: additivesSubtotal * int64(it.Quantity),
		})
	}

	if claimedTotal != nil && abs64(total-*claimedTotal) > totalTolerance {
		return nil, ErrTotalMismatch
	}

	return &ValidatedOrder{Items: out, Total: total, ItemsCount: len(out)}, nil
}

// ----- Commit -----

type CheckoutRes struct {
	ID         uint            `json:"id"`
	Total      int64           `json:"total"`
	ItemsCount int             `json:"itemsCount"`
	Items      []ValidatedItem `json:"items"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Checkout validates the cart and persists the order header, its items and
// their additives in one transaction. Any insert failure rolls the whole
// order back; no partial order is ever visible.
func (s *CheckoutService) Checkout(req *CheckoutReq) (*CheckoutRes, error) {
	v, err := s.Validate(req.Items, req.Total)
	if err != nil {
		return nil, err
	}

	var out CheckoutRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			TotalAmount: v.Total,
			ItemsCount:  v.ItemsCount,
			Status:      entity.OrderStatusPending,
		}
		if err := s.OrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range v.Items {
			oi := entity.OrderItem{
				OrderID:     order.ID,
				ProductID:   it.ProductID,
				Quantity:    it.Quantity,
				PriceAtTime: it.Price,
			}
			if err := s.OrderRepo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}

			for _, a := range it.Additives {
				oa := entity.OrderAdditive{
					OrderItemID: oi.ID,
					AdditiveID:  a.ID,
					Quantity:    a.Quantity,
					PriceAtTime: a.Price,
				}
				if err := s.OrderRepo.CreateOrderAdditive(tx, &oa); err != nil {
					return err
				}
			}
		}

		out = CheckoutRes{
			ID:         order.ID,
			Total:      order.TotalAmount,
			ItemsCount: order.ItemsCount,
			Items:      v.Items,
			Status:     order.Status,
			CreatedAt:  order.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
