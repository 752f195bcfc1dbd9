package storefront

import (
	"errors"

	"burgerhouse/internal/cart"
)

var (
	ErrUnknownItem     = errors.New("unknown menu item")
	ErrNeedsBuilder    = errors.New("item must be customized in the builder")
	ErrBuilderClosed   = errors.New("builder is not open")
	ErrUnknownOption   = errors.New("option cannot be changed this way")
	ErrInvalidDelta    = errors.New("delta must be +1 or -1")
	ErrIndexOutOfRange = errors.New("no cart item at that index")
)

// CartLine is one displayed cart row. Index is what DELETE expects back.
type CartLine struct {
	Index int    `json:"index"`
	Item  string `json:"item"`
	Price string `json:"price"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Count int        `json:"count"`
	Total string     `json:"total"`
}

func renderCart(c *cart.Cart) CartView {
	items := c.Items()
	v := CartView{
		Items: make([]CartLine, 0, len(items)),
		Count: len(items),
		Total: c.FormatTotal(),
	}
	for i, it := range items {
		v.Items = append(v.Items, CartLine{
			Index: i,
			Item:  it.Description,
			Price: it.Price.StringFixed(2),
		})
	}
	return v
}
