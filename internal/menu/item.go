package menu

import "github.com/shopspring/decimal"

// Builder names the customization flow an item opens instead of being
// added directly.
const (
	BuilderNone   = ""
	BuilderBurger = "burger"
	BuilderMix    = "mix"
)

// Item is one orderable menu entry.
type Item struct {
	Key     string          `json:"key"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Builder string          `json:"builder,omitempty"`
}
