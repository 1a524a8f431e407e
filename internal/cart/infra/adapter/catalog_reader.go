package adapter

import (
	cartapp "github.com/annie29007/ds-cart/internal/cart/app"
	catalogapp "github.com/annie29007/ds-cart/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(id int) (cartapp.Product, error) {
	p, err := r.svc.GetProduct(id)
	if err != nil {
		return cartapp.Product{}, err
	}

	return cartapp.Product{
		ID:       p.ID,
		Name:     p.Name,
		Currency: p.Price.Currency,
		Amount:   p.Price.Amount,
		Stock:    p.Stock,
	}, nil
}
