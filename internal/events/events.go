package events

import (
	"context"
	"time"
)

const TypeOrderSubmitted = "order.submitted"

// OrderSubmitted is published after the order service accepted an order.
type OrderSubmitted struct {
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	Phone       string    `json:"phone"`
	Table       string    `json:"table"`
	ItemCount   int       `json:"item_count"`
	Total       string    `json:"total"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type Publisher interface {
	PublishOrderSubmitted(ctx context.Context, e OrderSubmitted) error
	Close() error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderSubmitted(context.Context, OrderSubmitted) error { return nil }
func (NopPublisher) Close() error                                               { return nil }
