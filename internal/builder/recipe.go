package builder

import "github.com/shopspring/decimal"

// LayerOption is one static, selectable layer of a configurable item.
type LayerOption struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Image     string          `json:"image,omitempty"`

	// IsBase layers are always included and cannot be toggled.
	IsBase bool `json:"base,omitempty"`

	// IsCountable layers carry a quantity instead of a presence flag.
	// Mandatory countables never go below 1; FreeCount units are covered
	// by the recipe base price.
	IsCountable bool `json:"countable,omitempty"`
	Mandatory   bool `json:"mandatory,omitempty"`
	FreeCount   int  `json:"free_count,omitempty"`
}

func (o LayerOption) floor() int {
	if o.Mandatory {
		return 1
	}
	return 0
}

// Recipe is the declarative option table of a configurable menu item.
// Option order is the display order used for titles.
type Recipe struct {
	ID        string
	Name      string
	BasePrice decimal.Decimal
	Options   []LayerOption
}

func (r *Recipe) Option(id string) (LayerOption, bool) {
	for _, o := range r.Options {
		if o.ID == id {
			return o, true
		}
	}
	return LayerOption{}, false
}

// CanToggle reports whether id names an optional, non-countable layer.
func (r *Recipe) CanToggle(id string) bool {
	o, ok := r.Option(id)
	return ok && !o.IsBase && !o.IsCountable
}

func (r *Recipe) IsCountable(id string) bool {
	o, ok := r.Option(id)
	return ok && o.IsCountable
}

// Images lists every layer image in declaration order, for preloading.
func (r *Recipe) Images() []string {
	var out []string
	for _, o := range r.Options {
		if o.Image != "" {
			out = append(out, o.Image)
		}
	}
	return out
}

// --------------------------------------------------
// Burger
// --------------------------------------------------

const BurgerID = "burger"

// Burger: base 65 includes the first patty; each extra patty +12,
// cheese +7, the rest free.
var Burger = &Recipe{
	ID:        BurgerID,
	Name:      "בורגר",
	BasePrice: decimal.NewFromInt(65),
	Options: []LayerOption{
		{ID: "bun-bottom", Label: "לחמנייה תחתונה", UnitPrice: decimal.Zero, Image: "/burger/bun-bottom.png", IsBase: true},
		{ID: "patty", Label: "קציצה", UnitPrice: decimal.NewFromInt(12), Image: "/burger/patty.png", IsCountable: true, Mandatory: true, FreeCount: 1},
		{ID: "cheese", Label: "גבינה", UnitPrice: decimal.NewFromInt(7), Image: "/burger/cheese.png"},
		{ID: "lettuce", Label: "חסה", UnitPrice: decimal.Zero, Image: "/burger/lettuce.png"},
		{ID: "tomato", Label: "עגבנייה", UnitPrice: decimal.Zero, Image: "/burger/tomato.png"},
		{ID: "onion", Label: "בצל", UnitPrice: decimal.Zero, Image: "/burger/onion.png"},
		{ID: "bun-top", Label: "לחמנייה עליונה", UnitPrice: decimal.Zero, Image: "/burger/bun-top.png"},
	},
}

var recipes = map[string]*Recipe{
	BurgerID: Burger,
}

// Lookup returns the recipe registered under id.
func Lookup(id string) (*Recipe, bool) {
	r, ok := recipes[id]
	return r, ok
}
