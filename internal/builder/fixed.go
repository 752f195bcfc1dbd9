package builder

import (
	"burgerhouse/internal/cart"

	"github.com/shopspring/decimal"
)

// FixedItem is a menu entry with no options.
type FixedItem struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
}

func (f FixedItem) Confirm() cart.LineItem {
	return cart.LineItem{Description: f.Name, Price: f.Price}
}

// MixMeal is the chips and onion rings side.
var MixMeal = FixedItem{
	Name:        "מיקס צ׳יפס וטבעות בצל",
	Price:       decimal.NewFromInt(28),
	Description: "מנת צד מושלמת למבורגר — שילוב פריך של צ׳יפס זהב וטבעות בצל חמות עם רוטב לבחירה.",
	Image:       "/burger/mix-meal.jpg",
}
