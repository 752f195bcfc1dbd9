package menu

import "github.com/shopspring/decimal"

func price(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// Catalog is the fixed menu. The first category is the default page.
var Catalog = []Category{
	{
		ID:    "meals",
		Title: "ארוחות",
		Cover: "/cat-meals.jpg",
		Items: []Item{
			{Key: "m-burger", Name: "בורגר בהתאמה אישית 🍔", Price: price(65), Builder: BuilderBurger},
			{Key: "mix-meal", Name: "מיקס צ׳יפס וטבעות בצל🍟", Price: price(28), Builder: BuilderMix},
		},
	},
	{
		ID:    "drinks",
		Title: "שתייה",
		Cover: "/cat-drinks.jpg",
		Items: []Item{
			{Key: "d1", Name: "מים מינרליים", Price: price(7)},
			{Key: "d2", Name: "קולה", Price: price(10)},
			{Key: "d3", Name: "מיץ תפוזים", Price: price(12)},
			{Key: "d4", Name: "קפה הפוך", Price: price(14)},
		},
	},
}

var home = Home{
	Title: "ברוכים הבאים Burger House",
	Actions: []Action{
		{ID: "menu", Label: "להזמנה 🍔"},
		{ID: "track", Label: "מעקב הזמנה"},
	},
	Chips: []string{"ארוחות", "שתייה", "קינוחים"},
}
