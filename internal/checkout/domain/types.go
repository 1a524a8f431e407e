package domain

type Money struct {
	Currency string
	Amount   int64
}

// SettledLine is a cart entry that was charged and deducted from stock.
type SettledLine struct {
	ProductID int
	Name      string
	Quantity  int
	UnitPrice Money
	LineTotal Money
}

// SkippedLine is a cart entry checkout could not fulfil. Skipping a line
// never fails the checkout; the line simply contributes nothing.
type SkippedLine struct {
	ProductID int
	Name      string
	Quantity  int
	Reason    string
}

const (
	ReasonOutOfStock  = "not enough stock"
	ReasonUnavailable = "no longer available"
)

// Settlement is the outcome of one checkout: settled lines in original
// add order, skipped lines with reasons, and the total over settled lines.
type Settlement struct {
	OrderID string
	UserID  string
	Lines   []SettledLine
	Skipped []SkippedLine
	Total   Money
}
