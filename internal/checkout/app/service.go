package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/emirpasic/gods/v2/queues/linkedlistqueue"

	cartdomain "github.com/annie29007/ds-cart/internal/cart/domain"
	"github.com/annie29007/ds-cart/internal/checkout/domain"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrReceiptNotSaved = errors.New("receipt not saved")
)

type Service struct {
	cart     CartReader
	stock    StockKeeper
	receipts ReceiptSink
}

func NewService(cart CartReader, stock StockKeeper, receipts ReceiptSink) *Service {
	return &Service{cart: cart, stock: stock, receipts: receipts}
}

// Checkout settles the cart in original add order. Lines that cannot be
// fulfilled are skipped, not fatal: the settlement completes with whatever
// could be charged. The cart is cleared whenever settlement ran, including
// when the receipt could not be persisted; in that case the settlement is
// returned together with an error wrapping ErrReceiptNotSaved and the
// applied stock decrements stand.
func (s *Service) Checkout(ctx context.Context, userID string) (domain.Settlement, error) {
	entries := s.cart.Entries()
	if len(entries) == 0 {
		return domain.Settlement{}, ErrEmptyCart
	}

	// Entries arrive newest-first; enqueue back to front so the queue
	// drains in the order the user added things.
	queue := linkedlistqueue.New[cartdomain.Entry]()
	for i := len(entries) - 1; i >= 0; i-- {
		queue.Enqueue(entries[i])
	}

	st := domain.Settlement{UserID: userID}
	for {
		entry, ok := queue.Dequeue()
		if !ok {
			break
		}

		p, err := s.stock.GetProduct(entry.ProductID)
		if err != nil {
			st.Skipped = append(st.Skipped, domain.SkippedLine{
				ProductID: entry.ProductID,
				Quantity:  entry.Quantity,
				Reason:    domain.ReasonUnavailable,
			})
			continue
		}

		st.Total.Currency = p.Currency
		if p.Stock < entry.Quantity {
			st.Skipped = append(st.Skipped, domain.SkippedLine{
				ProductID: p.ID,
				Name:      p.Name,
				Quantity:  entry.Quantity,
				Reason:    domain.ReasonOutOfStock,
			})
			continue
		}

		if err := s.stock.DecrementStock(p.ID, entry.Quantity); err != nil {
			st.Skipped = append(st.Skipped, domain.SkippedLine{
				ProductID: p.ID,
				Name:      p.Name,
				Quantity:  entry.Quantity,
				Reason:    domain.ReasonOutOfStock,
			})
			continue
		}

		lineTotal := p.Amount * int64(entry.Quantity)
		st.Lines = append(st.Lines, domain.SettledLine{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  entry.Quantity,
			UnitPrice: domain.Money{Currency: p.Currency, Amount: p.Amount},
			LineTotal: domain.Money{Currency: p.Currency, Amount: lineTotal},
		})
		st.Total.Amount += lineTotal
	}

	orderID, saveErr := s.receipts.Save(ctx, st)
	st.OrderID = orderID

	// Skipped lines are discarded with the rest; they are not retried.
	s.cart.Clear()

	if saveErr != nil {
		return st, fmt.Errorf("%w: %v", ErrReceiptNotSaved, saveErr)
	}
	return st, nil
}
