package services

import (
	"github.com/flounder11/online-coffee-api/entity"
	"github.com/flounder11/online-coffee-api/repository"
)

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

func (s *ProductService) List(f repository.ProductFilter) ([]entity.Product, error) {
	return s.Repo.List(f)
}

func (s *ProductService) Get(id uint) (*entity.Product, error) {
	return s.Repo.FindByID(id)
}
