package services

import (
	"github.com/flounder11/online-coffee-api/entity"
	"github.com/flounder11/online-coffee-api/repository"
)

type AdditiveService struct {
	Repo *repository.AdditiveRepository
}

func NewAdditiveService(repo *repository.AdditiveRepository) *AdditiveService {
	return &AdditiveService{Repo: repo}
}

type CreateAdditiveIn struct {
	Title     string `json:"title" binding:"required"`
	Price     int64  `json:"price" binding:"required"`
	Category  string `json:"category" binding:"required"`
	Available bool   `json:"available"`
}

// Absent fields keep their stored values.
type UpdateAdditiveIn struct {
	Title     *string `json:"title"`
	Price     *int64  `json:"price"`
	Category  *string `json:"category"`
	Available *bool   `json:"available"`
}

func (s *AdditiveService) List(f repository.AdditiveFilter) ([]entity.Additive, error) {
	return s.Repo.List(f)
}

func (s *AdditiveService) Get(id uint) (*entity.Additive, error) {
	return s.Repo.FindByID(id)
}

func (s *AdditiveService) Create(in *CreateAdditiveIn) (*entity.Additive, error) {
	a := entity.Additive{
		Title:     in.Title,
		Price:     in.Price,
		Category:  in.Category,
		Available: in.Available,
	}
	if err := s.Repo.Create(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AdditiveService) Update(id uint, in *UpdateAdditiveIn) (*entity.Additive, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Price != nil {
		a.Price = *in.Price
	}
	if in.Category != nil {
		a.Category = *in.Category
	}
	if in.Available != nil {
		a.Available = *in.Available
	}
	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AdditiveService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
