package adapter

import (
	"context"

	checkoutdomain "github.com/annie29007/ds-cart/internal/checkout/domain"
	orderapp "github.com/annie29007/ds-cart/internal/order/app"
	orderdomain "github.com/annie29007/ds-cart/internal/order/domain"
)

type OrderServiceSink struct {
	svc *orderapp.Service
}

func NewOrderServiceSink(svc *orderapp.Service) *OrderServiceSink {
	return &OrderServiceSink{svc: svc}
}

func (s *OrderServiceSink) Save(ctx context.Context, st checkoutdomain.Settlement) (string, error) {
	lines := make([]orderdomain.LineRequest, 0, len(st.Lines))
	for _, l := range st.Lines {
		lines = append(lines, orderdomain.LineRequest{
			ProductID:  l.ProductID,
			Name:       l.Name,
			UnitAmount: l.UnitPrice.Amount,
			Quantity:   l.Quantity,
		})
	}

	order, err := s.svc.CreateOrder(ctx, orderdomain.CreateOrderRequest{
		UserID:   st.UserID,
		Currency: st.Total.Currency,
		Lines:    lines,
	})
	if err != nil {
		return "", err
	}
	return order.ID, nil
}
