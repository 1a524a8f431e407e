package app

import (
	"context"

	cartdomain "github.com/annie29007/ds-cart/internal/cart/domain"
	"github.com/annie29007/ds-cart/internal/checkout/domain"
)

// CartReader exposes the session cart to checkout. Entries returns the raw
// stack, most recent first.
type CartReader interface {
	Entries() []cartdomain.Entry
	Clear()
}

type Product struct {
	ID       int
	Name     string
	Currency string
	Amount   int64
	Stock    int
}

// StockKeeper resolves products by id and commits stock decrements.
type StockKeeper interface {
	GetProduct(id int) (Product, error)
	DecrementStock(id, qty int) error
}

// ReceiptSink durably records a finished settlement. A sink failure does not
// roll the settlement back.
type ReceiptSink interface {
	Save(ctx context.Context, st domain.Settlement) (orderID string, err error)
}
