package app

import (
	"context"

	"github.com/annie29007/ds-cart/internal/order/domain"
)

type OrderRepo interface {
	Append(ctx context.Context, order domain.Order) error
}
