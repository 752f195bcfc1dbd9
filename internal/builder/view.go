package builder

// OptionView is one control of the builder screen.
type OptionView struct {
	LayerOption
	Included  bool   `json:"included"`
	Quantity  int    `json:"quantity,omitempty"`
	ExtraCost string `json:"extra_cost,omitempty"`
}

// View is what the builder screen renders for a configuration.
type View struct {
	Recipe  string       `json:"recipe"`
	Title   string       `json:"title"`
	Price   string       `json:"price"`
	Options []OptionView `json:"options"`
	Preload []string     `json:"preload"`
}

// Render builds the view. resolve rewrites image paths and may be nil.
func (r *Recipe) Render(cfg *Configuration, resolve func(string) string) View {
	v := View{
		Recipe:  r.ID,
		Title:   r.DeriveTitle(cfg),
		Price:   r.DerivePrice(cfg).StringFixed(2),
		Options: make([]OptionView, 0, len(r.Options)),
	}
	for _, o := range r.Options {
		ov := OptionView{LayerOption: o}
		if resolve != nil && o.Image != "" {
			ov.Image = resolve(o.Image)
		}
		switch {
		case o.IsCountable:
			ov.Quantity = cfg.Quantities[o.ID]
			ov.Included = ov.Quantity > 0
			ov.ExtraCost = o.UnitPrice.Mul(decimalInt(r.ExtraUnits(cfg, o))).StringFixed(2)
		default:
			ov.Included = cfg.Included[o.ID]
		}
		v.Options = append(v.Options, ov)
	}
	for _, img := range r.Images() {
		if resolve != nil {
			img = resolve(img)
		}
		v.Preload = append(v.Preload, img)
	}
	return v
}
