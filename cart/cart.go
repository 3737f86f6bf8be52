package cart

import (
	"context"
	"encoding/json"
)

// Cart maps a menu item ID to the desired quantity. Quantities are always
// strictly positive: setting a quantity of zero or less removes the entry.
type Cart map[string]int

// Set upserts an entry, or removes it when qty drops to zero or below.
func (c Cart) Set(itemID string, qty int) {
	if qty <= 0 {
		delete(c, itemID)
		return
	}
	c[itemID] = qty
}

// Add adjusts an entry by delta, removing it if the result is not positive.
func (c Cart) Add(itemID string, delta int) {
	c.Set(itemID, c[itemID]+delta)
}

// Remove deletes an entry regardless of quantity.
func (c Cart) Remove(itemID string) {
	delete(c, itemID)
}

// ItemIDs returns the distinct item IDs in the cart.
func (c Cart) ItemIDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	return ids
}

// Count returns the total number of units across all entries.
func (c Cart) Count() int {
	total := 0
	for _, qty := range c {
		total += qty
	}
	return total
}

// Encode serializes the cart as a JSON object of id -> quantity.
func Encode(c Cart) ([]byte, error) {
	return json.Marshal(c)
}

// Decode parses stored cart data. Malformed data is treated as an empty
// cart rather than an error; entries with non-positive quantities are
// dropped so the positive-quantity invariant holds on load too.
func Decode(data []byte) Cart {
	c := Cart{}
	if len(data) == 0 {
		return c
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return Cart{}
	}
	for id, qty := range c {
		if qty <= 0 {
			delete(c, id)
		}
	}
	return c
}

// Store persists one cart per user. Implementations must treat missing or
// malformed stored data as an empty cart.
type Store interface {
	Get(ctx context.Context, userID uint) (Cart, error)
	Set(ctx context.Context, userID uint, c Cart) error
	Clear(ctx context.Context, userID uint) error
}
