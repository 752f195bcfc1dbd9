package cart

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItem is one priced entry of an order. It is never mutated after
// creation; removal is the only other lifecycle event.
type LineItem struct {
	Description string          `json:"item"`
	Price       decimal.Decimal `json:"price"`
}

// Cart is the ordered list of line items for one ordering session.
// Insertion order is preserved and items are addressed by index.
// Revision changes on every mutation, including Clear.
type Cart struct {
	items    []LineItem
	revision uint64
}

func New() *Cart {
	return &Cart{}
}

// Append adds the item at the end of the cart.
func (c *Cart) Append(item LineItem) {
	c.items = append(c.items, item)
	c.revision++
}

// RemoveAt removes the item at index i. Callers only pass indices they
// just displayed, so an out-of-range index panics.
func (c *Cart) RemoveAt(i int) {
	if i < 0 || i >= len(c.items) {
		panic(fmt.Sprintf("cart: remove index %d out of range [0,%d)", i, len(c.items)))
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	c.revision++
}

// Total is the exact sum of all item prices, recomputed on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Price)
	}
	return total
}

// FormatTotal renders the total with two decimals, rounding half away
// from zero.
func (c *Cart) FormatTotal() string {
	return c.Total().StringFixed(2)
}

func (c *Cart) Clear() {
	c.items = nil
	c.revision++
}

// Revision identifies the current contents. Two reads with the same
// revision saw the same items.
func (c *Cart) Revision() uint64 {
	return c.revision
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the cart contents.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Clone() *Cart {
	return &Cart{items: c.Items(), revision: c.revision}
}

// --------------------------------------------------
// JSON (session persistence)
// --------------------------------------------------

type cartJSON struct {
	Items    []LineItem `json:"items"`
	Revision uint64     `json:"revision"`
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	items := c.items
	if items == nil {
		items = []LineItem{}
	}
	return json.Marshal(cartJSON{Items: items, Revision: c.revision})
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var doc cartJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	c.items = doc.Items
	c.revision = doc.Revision
	return nil
}
