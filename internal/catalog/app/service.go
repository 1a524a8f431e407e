package app

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/annie29007/ds-cart/internal/catalog/domain"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("product not found")
	ErrDuplicateID       = errors.New("product id already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddProduct(id int, name, category string, price domain.Money, stock int) (domain.Product, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if id <= 0 || name == "" || price.Amount < 0 || stock < 0 {
		return domain.Product{}, ErrInvalidInput
	}
	if _, ok := s.repo.Get(id); ok {
		return domain.Product{}, ErrDuplicateID
	}

	p := domain.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
	}
	s.repo.Append(p)
	return p, nil
}

func (s *Service) GetProduct(id int) (domain.Product, error) {
	p, ok := s.repo.Get(id)
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) DeleteProduct(id int) error {
	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// SetStock replaces a product's stock level (admin operation).
func (s *Service) SetStock(id, stock int) error {
	if stock < 0 {
		return ErrInvalidInput
	}
	if !s.repo.Mutate(id, func(p *domain.Product) { p.Stock = stock }) {
		return ErrNotFound
	}
	return nil
}

// DecrementStock reduces stock in place, refusing to go below zero.
func (s *Service) DecrementStock(id, qty int) error {
	if qty <= 0 {
		return ErrInvalidInput
	}

	var short bool
	found := s.repo.Mutate(id, func(p *domain.Product) {
		if p.Stock < qty {
			short = true
			return
		}
		p.Stock -= qty
	})
	if !found {
		return ErrNotFound
	}
	if short {
		return ErrInsufficientStock
	}
	return nil
}

// All yields the catalog in insertion order without mutating it.
func (s *Service) All() iter.Seq[domain.Product] {
	return s.repo.All()
}

func (s *Service) Len() int {
	return s.repo.Len()
}

// Seed bulk-loads products, applying the same validation as AddProduct.
func (s *Service) Seed(products []domain.Product) error {
	for _, p := range products {
		if _, err := s.AddProduct(p.ID, p.Name, p.Category, p.Price, p.Stock); err != nil {
			return fmt.Errorf("seed product %d: %w", p.ID, err)
		}
	}
	return nil
}
