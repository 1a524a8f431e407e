package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/annie29007/ds-cart/internal/order/domain"
)

type Service struct {
	repo OrderRepo
	now  func() time.Time
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the timestamp source. Tests use it to pin CreatedAt.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateOrder validates the lines, recomputes totals, stamps the order and
// appends it to the store. An empty order (no lines) is still recorded:
// checkout may have skipped everything and the receipt documents that.
func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return domain.Order{}, fmt.Errorf("user id must not be empty")
	}

	lines := make([]domain.Line, 0, len(req.Lines))
	var total int64
	for i, l := range req.Lines {
		if l.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("line %d: quantity must be positive, got %d", i, l.Quantity)
		}
		if l.UnitAmount < 0 {
			return domain.Order{}, fmt.Errorf("line %d: unit amount cannot be negative, got %d", i, l.UnitAmount)
		}

		lineTotal := l.UnitAmount * int64(l.Quantity)
		lines = append(lines, domain.Line{
			ProductID:       l.ProductID,
			Name:            l.Name,
			UnitAmount:      l.UnitAmount,
			Quantity:        l.Quantity,
			LineTotalAmount: lineTotal,
		})
		total += lineTotal
	}

	order := domain.Order{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Currency:    req.Currency,
		TotalAmount: total,
		Lines:       lines,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Append(ctx, order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}
