package domain

// Entry is one cart selection. It references the product by id only; the
// product record stays owned by the catalog and is re-resolved at use time.
type Entry struct {
	ProductID int
	Quantity  int
}
