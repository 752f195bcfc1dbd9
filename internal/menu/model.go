package menu

// Category groups menu items under one page of the menu.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Cover string `json:"cover"`
	Items []Item `json:"items"`
}

// Home is the landing screen content.
type Home struct {
	Title   string   `json:"title"`
	Actions []Action `json:"actions"`
	Chips   []string `json:"chips"`
}

type Action struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
