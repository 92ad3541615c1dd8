package repository

import (
	"github.com/flounder11/online-coffee-api/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

type ProductFilter struct {
	Category string
	Popular  bool
	Volume   *int
	Sort     string // price_asc | price_desc | title | default id
}

func (r *ProductRepository) List(f ProductFilter) ([]entity.Product, error) {
	q := r.DB.Model(&entity.Product{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Popular {
		q = q.Where("popular = ?", true)
	}
	if f.Volume != nil {
		q = q.Where("volume = ?", *f.Volume)
	}
	switch f.Sort {
	case "price_asc":
		q = q.Order("price ASC")
	case "price_desc":
		q = q.Order("price DESC")
	case "title":
		q = q.Order("title ASC")
	default:
		q = q.Order("id ASC")
	}
	var products []entity.Product
	err := q.Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetBasics fetches only the columns checkout needs (id, title, img, price).
func (r *ProductRepository) GetBasics(id uint) (entity.Product, error) {
	var p entity.Product
	err := r.DB.Select("id, title, img, price").First(&p, id).Error
	return p, err
}
