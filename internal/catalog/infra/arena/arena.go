// Package arena stores the product catalog as a doubly linked list laid out
// in a slot arena. Links are slot indexes, never pointers, and deleting a
// product only marks its slot free; freed slots are reused by later appends.
// Products are identified by id everywhere outside this package, so a reused
// slot can never be mistaken for the product that used to live in it.
package arena

import (
	"iter"

	"github.com/annie29007/ds-cart/internal/catalog/domain"
)

const none = -1

type slot struct {
	product domain.Product
	prev    int
	next    int
	free    bool
}

type Arena struct {
	slots []slot
	head  int
	tail  int
	frees []int
	size  int
}

func New() *Arena {
	return &Arena{head: none, tail: none}
}

// Append links a product at the tail in insertion order. Duplicate id checks
// are the caller's job; the arena stores whatever it is handed.
func (a *Arena) Append(p domain.Product) {
	idx := a.alloc()
	a.slots[idx] = slot{product: p, prev: a.tail, next: none}

	if a.tail == none {
		a.head = idx
	} else {
		a.slots[a.tail].next = idx
	}
	a.tail = idx
	a.size++
}

func (a *Arena) alloc() int {
	if n := len(a.frees); n > 0 {
		idx := a.frees[n-1]
		a.frees = a.frees[:n-1]
		return idx
	}
	a.slots = append(a.slots, slot{})
	return len(a.slots) - 1
}

// Get scans from the head and returns the first product with the given id.
func (a *Arena) Get(id int) (domain.Product, bool) {
	for idx := a.head; idx != none; idx = a.slots[idx].next {
		if a.slots[idx].product.ID == id {
			return a.slots[idx].product, true
		}
	}
	return domain.Product{}, false
}

// Mutate applies fn to the stored product in place. Reports whether the id
// was found.
func (a *Arena) Mutate(id int, fn func(*domain.Product)) bool {
	for idx := a.head; idx != none; idx = a.slots[idx].next {
		if a.slots[idx].product.ID == id {
			fn(&a.slots[idx].product)
			return true
		}
	}
	return false
}

// Delete splices the product out of the list and marks its slot free.
func (a *Arena) Delete(id int) bool {
	for idx := a.head; idx != none; idx = a.slots[idx].next {
		s := &a.slots[idx]
		if s.product.ID != id {
			continue
		}

		if s.prev == none {
			a.head = s.next
		} else {
			a.slots[s.prev].next = s.next
		}
		if s.next == none {
			a.tail = s.prev
		} else {
			a.slots[s.next].prev = s.prev
		}

		*s = slot{prev: none, next: none, free: true}
		a.frees = append(a.frees, idx)
		a.size--
		return true
	}
	return false
}

// All yields the products in insertion order. The sequence is lazy,
// restartable and never mutates the arena.
func (a *Arena) All() iter.Seq[domain.Product] {
	return func(yield func(domain.Product) bool) {
		for idx := a.head; idx != none; idx = a.slots[idx].next {
			if !yield(a.slots[idx].product) {
				return
			}
		}
	}
}

func (a *Arena) Len() int {
	return a.size
}
