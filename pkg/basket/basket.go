package basket

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"kasir/pkg/price"
)

// Item is one accepted basket entry. Immutable once created; removed only
// by an explicit Remove on the basket.
type Item struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Price price.Amount `json:"price_cents"`
}

// NewItem builds an item with a fresh opaque identifier.
func NewItem(name string, p price.Amount) Item {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return Item{ID: hex.EncodeToString(b), Name: name, Price: p}
}

// Basket is an insertion-ordered sequence of items. It is not safe for
// concurrent use; the session layer serializes access to it.
type Basket struct {
	items []Item
}

func New() *Basket {
	return &Basket{}
}

// Add appends the item. Duplicates are allowed.
func (b *Basket) Add(it Item) {
	b.items = append(b.items, it)
}

// Remove deletes the item at position i, shifting later items down by one.
func (b *Basket) Remove(i int) error {
	if i < 0 || i >= len(b.items) {
		return fmt.Errorf("no item at index %d", i)
	}
	b.items = append(b.items[:i], b.items[i+1:]...)
	return nil
}

// Items returns a copy of the current entries in insertion order.
func (b *Basket) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

func (b *Basket) Len() int {
	return len(b.items)
}
