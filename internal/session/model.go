package session

import (
	"errors"
	"time"

	"burgerhouse/internal/builder"
	"burgerhouse/internal/cart"
)

var ErrNotFound = errors.New("session not found")

// Session is the ordering state of one customer: the cart and at most
// one open burger customization.
type Session struct {
	ID        string
	Cart      *cart.Cart
	Burger    *builder.Configuration
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		Cart:      cart.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) Clone() *Session {
	out := *s
	out.Cart = s.Cart.Clone()
	if s.Burger != nil {
		out.Burger = s.Burger.Clone()
	}
	return &out
}

// state is the persisted JSON document of a session.
type state struct {
	Cart   *cart.Cart             `json:"cart"`
	Burger *builder.Configuration `json:"burger,omitempty"`
}
