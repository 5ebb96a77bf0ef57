package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CartSlots is the fixed size of the cart key space (slots 0..299).
// The slot universe is shared globally across all products regardless of
// the actual catalog size; a limitation of the storefront contract.
const CartSlots = 300

// CartData maps a cart slot to a non-negative quantity.
type CartData map[int]int

// NewCartData returns a cart with every slot initialized to zero.
func NewCartData() CartData {
	c := make(CartData, CartSlots)
	for i := 0; i < CartSlots; i++ {
		c[i] = 0
	}
	return c
}

// Value serializes the cart to JSON for storage.
func (c CartData) Value() (driver.Value, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart: %w", err)
	}
	return string(b), nil
}

// Scan deserializes the cart from its stored JSON representation.
func (c *CartData) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		*c = nil
		return nil
	default:
		return fmt.Errorf("unsupported cart column type %T", src)
	}
	return json.Unmarshal(b, c)
}
