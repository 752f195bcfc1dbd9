package order

import (
	"encoding/json"
	"strings"

	"burgerhouse/internal/cart"
)

// Status is the tracking state reported by the order service.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusNotFound  Status = "not-found"
)

// Label is the customer-facing text of a status. Anything the service
// reports besides completed/not-found is shown as in preparation.
func (s Status) Label() string {
	switch s {
	case StatusCompleted:
		return "מוכן ✅"
	case StatusNotFound:
		return "לא נמצאה הזמנה"
	default:
		return "בהכנה 🍽️"
	}
}

// SubmitRequest is the order form.
type SubmitRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Table string `json:"table"`
}

func (r SubmitRequest) normalized() SubmitRequest {
	return SubmitRequest{
		Name:  strings.TrimSpace(r.Name),
		Phone: strings.TrimSpace(r.Phone),
		Table: strings.TrimSpace(r.Table),
	}
}

func (r SubmitRequest) complete() bool {
	return r.Name != "" && r.Phone != "" && r.Table != ""
}

// PayloadItem is one line as the order service expects it.
type PayloadItem struct {
	Item  string      `json:"item"`
	Price json.Number `json:"price"`
}

// Payload is the body of POST /submit-order.
type Payload struct {
	Name  string        `json:"name"`
	Phone string        `json:"phone"`
	Table string        `json:"table"`
	Items []PayloadItem `json:"items"`
	Total string        `json:"total"`
}

func NewPayload(req SubmitRequest, c *cart.Cart) Payload {
	items := c.Items()
	p := Payload{
		Name:  req.Name,
		Phone: req.Phone,
		Table: req.Table,
		Items: make([]PayloadItem, 0, len(items)),
		Total: c.FormatTotal(),
	}
	for _, it := range items {
		p.Items = append(p.Items, PayloadItem{
			Item:  it.Description,
			Price: json.Number(it.Price.String()),
		})
	}
	return p
}

// Submission is the result of a successful order.
type Submission struct {
	Phone     string  `json:"phone"`
	ItemCount int     `json:"item_count"`
	Total     string  `json:"total"`
	Status    *Status `json:"status,omitempty"`
}
