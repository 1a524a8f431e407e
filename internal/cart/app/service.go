package app

import (
	"errors"

	"github.com/emirpasic/gods/v2/stacks/linkedliststack"

	"github.com/annie29007/ds-cart/internal/cart/domain"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInsufficientStock = errors.New("not enough stock")
)

// Line is the display view of one cart entry, most-recent-first. Unavailable
// marks an entry whose product has been deleted from the catalog since it
// was added.
type Line struct {
	ProductID   int
	Name        string
	Quantity    int
	Currency    string
	UnitAmount  int64
	Unavailable bool
}

// Service holds the active session's selections as a LIFO stack. Pushing the
// same product twice keeps two independent entries; quantities are never
// merged.
type Service struct {
	stack   *linkedliststack.Stack[domain.Entry]
	catalog CatalogReader
}

func NewService(catalog CatalogReader) *Service {
	return &Service{
		stack:   linkedliststack.New[domain.Entry](),
		catalog: catalog,
	}
}

// Add validates the quantity against current stock and pushes a new entry.
// The check is read-only: nothing is reserved until checkout.
func (s *Service) Add(productID, qty int) (Product, error) {
	if qty <= 0 {
		return Product{}, ErrInvalidQuantity
	}

	p, err := s.catalog.GetProduct(productID)
	if err != nil {
		return Product{}, err
	}
	if qty > p.Stock {
		return Product{}, ErrInsufficientStock
	}

	s.stack.Push(domain.Entry{ProductID: productID, Quantity: qty})
	return p, nil
}

// RemoveLast pops the most recently added entry. An empty cart reports
// ok=false rather than an error; removing from an empty cart is a no-op the
// user is told about, not a failure.
func (s *Service) RemoveLast() (domain.Entry, bool) {
	return s.stack.Pop()
}

// Clear drops every entry.
func (s *Service) Clear() {
	s.stack.Clear()
}

// Entries returns the raw entries, most recent first. Non-mutating.
func (s *Service) Entries() []domain.Entry {
	return s.stack.Values()
}

// Items resolves each entry through the catalog for display, most recent
// first. Entries whose product has vanished are kept and flagged instead of
// failing the whole listing.
func (s *Service) Items() []Line {
	entries := s.stack.Values()
	lines := make([]Line, 0, len(entries))
	for _, e := range entries {
		line := Line{ProductID: e.ProductID, Quantity: e.Quantity}
		p, err := s.catalog.GetProduct(e.ProductID)
		if err != nil {
			line.Unavailable = true
		} else {
			line.Name = p.Name
			line.Currency = p.Currency
			line.UnitAmount = p.Amount
		}
		lines = append(lines, line)
	}
	return lines
}

func (s *Service) Len() int {
	return s.stack.Size()
}
