package builder

import (
	"fmt"
	"strings"

	"burgerhouse/internal/cart"

	"github.com/shopspring/decimal"
)

// Configuration is the selection state of one in-progress customization.
type Configuration struct {
	RecipeID   string          `json:"recipe_id"`
	Included   map[string]bool `json:"included"`
	Quantities map[string]int  `json:"quantities"`
}

func (c *Configuration) Clone() *Configuration {
	out := &Configuration{
		RecipeID:   c.RecipeID,
		Included:   make(map[string]bool, len(c.Included)),
		Quantities: make(map[string]int, len(c.Quantities)),
	}
	for k, v := range c.Included {
		out.Included[k] = v
	}
	for k, v := range c.Quantities {
		out.Quantities[k] = v
	}
	return out
}

// Initialize returns a configuration with every base layer included,
// mandatory countables at 1 and everything else off.
func (r *Recipe) Initialize() *Configuration {
	cfg := &Configuration{
		RecipeID:   r.ID,
		Included:   make(map[string]bool, len(r.Options)),
		Quantities: make(map[string]int),
	}
	for _, o := range r.Options {
		switch {
		case o.IsCountable:
			cfg.Quantities[o.ID] = o.floor()
		default:
			cfg.Included[o.ID] = o.IsBase
		}
	}
	return cfg
}

// Toggle sets inclusion of an optional layer. Base and countable layers
// cannot be toggled; passing one is a programming error.
func (r *Recipe) Toggle(cfg *Configuration, id string, included bool) {
	o, ok := r.Option(id)
	if !ok {
		panic(fmt.Sprintf("builder: unknown option %q in recipe %q", id, r.ID))
	}
	if o.IsBase || o.IsCountable {
		panic(fmt.Sprintf("builder: option %q is not toggleable", id))
	}
	cfg.Included[id] = included
}

// SetQuantity moves a countable layer's quantity by delta. Going below
// the floor (1 for mandatory layers, else 0) is silently clamped.
func (r *Recipe) SetQuantity(cfg *Configuration, id string, delta int) {
	o, ok := r.Option(id)
	if !ok {
		panic(fmt.Sprintf("builder: unknown option %q in recipe %q", id, r.ID))
	}
	if !o.IsCountable {
		panic(fmt.Sprintf("builder: option %q is not countable", id))
	}
	q := cfg.Quantities[id] + delta
	if floor := o.floor(); q < floor {
		q = floor
	}
	cfg.Quantities[id] = q
}

// ExtraUnits is the number of paid units of a countable layer.
func (r *Recipe) ExtraUnits(cfg *Configuration, o LayerOption) int {
	extra := cfg.Quantities[o.ID] - o.FreeCount
	if extra < 0 {
		return 0
	}
	return extra
}

// DerivePrice is base + paid countable units + included flat layers.
func (r *Recipe) DerivePrice(cfg *Configuration) decimal.Decimal {
	price := r.BasePrice
	for _, o := range r.Options {
		switch {
		case o.IsBase:
		case o.IsCountable:
			price = price.Add(o.UnitPrice.Mul(decimalInt(r.ExtraUnits(cfg, o))))
		case cfg.Included[o.ID]:
			price = price.Add(o.UnitPrice)
		}
	}
	return price
}

// DeriveTitle renders e.g. "בורגר (2× קציצה, גבינה)". Countable layers
// come first, then included layers, each in declaration order.
func (r *Recipe) DeriveTitle(cfg *Configuration) string {
	var picks []string
	for _, o := range r.Options {
		if q := cfg.Quantities[o.ID]; o.IsCountable && q > 0 {
			picks = append(picks, fmt.Sprintf("%d× %s", q, o.Label))
		}
	}
	for _, o := range r.Options {
		if !o.IsBase && !o.IsCountable && cfg.Included[o.ID] {
			picks = append(picks, o.Label)
		}
	}
	if len(picks) == 0 {
		return r.Name
	}
	return fmt.Sprintf("%s (%s)", r.Name, strings.Join(picks, ", "))
}

// Confirm turns the configuration into a cart line. The caller appends it
// and drops the configuration.
func (r *Recipe) Confirm(cfg *Configuration) cart.LineItem {
	return cart.LineItem{
		Description: r.DeriveTitle(cfg),
		Price:       r.DerivePrice(cfg),
	}
}

func decimalInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
