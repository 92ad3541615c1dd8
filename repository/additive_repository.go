package repository

import (
	"github.com/flounder11/online-coffee-api/entity"
	"gorm.io/gorm"
)

type AdditiveRepository struct {
	DB *gorm.DB
}

func NewAdditiveRepository(db *gorm.DB) *AdditiveRepository {
	return &AdditiveRepository{DB: db}
}

type AdditiveFilter struct {
	Category  string
	Available bool // when true, only currently available additives
}

func (r *AdditiveRepository) List(f AdditiveFilter) ([]entity.Additive, error) {
	q := r.DB.Model(&entity.Additive{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Available {
		q = q.Where("available = ?", true)
	}
	var additives []entity.Additive
	err := q.Order("category, title").Find(&additives).Error
	return additives, err
}

func (r *AdditiveRepository) FindByID(id uint) (*entity.Additive, error) {
	var a entity.Additive
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdditiveRepository) Create(a *entity.Additive) error {
	return r.DB.Create(a).Error
}

func (r *AdditiveRepository) Update(a *entity.Additive) error {
	return r.DB.Save(a).Error
}

func (r *AdditiveRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Additive{}, id).Error
}
