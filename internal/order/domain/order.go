package domain

import "time"

// Order is a completed, immutable purchase record.
type Order struct {
	ID          string
	UserID      string
	Currency    string
	TotalAmount int64
	Lines       []Line
	CreatedAt   time.Time
}

type Line struct {
	ProductID       int
	Name            string
	UnitAmount      int64
	Quantity        int
	LineTotalAmount int64
}

type CreateOrderRequest struct {
	UserID   string
	Currency string
	Lines    []LineRequest
}

type LineRequest struct {
	ProductID  int
	Name       string
	UnitAmount int64
	Quantity   int
}
