package adapter

import (
	cartapp "github.com/annie29007/ds-cart/internal/cart/app"
	cartdomain "github.com/annie29007/ds-cart/internal/cart/domain"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Entries() []cartdomain.Entry {
	return r.svc.Entries()
}

func (r *CartServiceReader) Clear() {
	r.svc.Clear()
}
