package adapter

import (
	catalogapp "github.com/annie29007/ds-cart/internal/catalog/app"
	checkoutapp "github.com/annie29007/ds-cart/internal/checkout/app"
)

type CatalogStockKeeper struct {
	svc *catalogapp.Service
}

func NewCatalogStockKeeper(svc *catalogapp.Service) *CatalogStockKeeper {
	return &CatalogStockKeeper{svc: svc}
}

func (k *CatalogStockKeeper) GetProduct(id int) (checkoutapp.Product, error) {
	p, err := k.svc.GetProduct(id)
	if err != nil {
		return checkoutapp.Product{}, err
	}

	return checkoutapp.Product{
		ID:       p.ID,
		Name:     p.Name,
		Currency: p.Price.Currency,
		Amount:   p.Price.Amount,
		Stock:    p.Stock,
	}, nil
}

func (k *CatalogStockKeeper) DecrementStock(id, qty int) error {
	return k.svc.DecrementStock(id, qty)
}
