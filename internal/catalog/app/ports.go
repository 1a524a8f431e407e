package app

import (
	"iter"

	"github.com/annie29007/ds-cart/internal/catalog/domain"
)

type ProductRepo interface {
	Append(p domain.Product)
	Get(id int) (domain.Product, bool)
	Mutate(id int, fn func(*domain.Product)) bool
	Delete(id int) bool
	All() iter.Seq[domain.Product]
	Len() int
}
