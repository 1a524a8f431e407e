package app

// Product is the slice of the catalog the cart needs to validate and
// display entries.
type Product struct {
	ID       int
	Name     string
	Currency string
	Amount   int64
	Stock    int
}

type CatalogReader interface {
	GetProduct(id int) (Product, error)
}
