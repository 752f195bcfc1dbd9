package storefront

import (
	"context"

	"burgerhouse/internal/builder"
	"burgerhouse/internal/menu"
	"burgerhouse/internal/session"
)

// Recorder counts cart additions by source.
type Recorder interface {
	CartItemAdded(source string)
}

// Service applies cart and builder actions to a customer's session.
type Service struct {
	sessions *session.Service
	menu     *menu.Service
	recorder Recorder
}

func NewService(sessions *session.Service, menu *menu.Service, recorder Recorder) *Service {
	return &Service{sessions: sessions, menu: menu, recorder: recorder}
}

// --------------------------------------------------
// Cart
// --------------------------------------------------

func (s *Service) Cart(ctx context.Context, sessionID string) (CartView, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}
	return renderCart(sess.Cart), nil
}

// AddItem adds a menu entry that needs no customization. The side meal
// goes through its fixed item; the burger must use the builder.
func (s *Service) AddItem(ctx context.Context, sessionID, key string) (CartView, error) {
	item, ok := s.menu.FindItem(key)
	if !ok {
		return CartView{}, ErrUnknownItem
	}

	source := "menu"
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		switch item.Builder {
		case menu.BuilderBurger:
			return ErrNeedsBuilder
		case menu.BuilderMix:
			source = "side"
			sess.Cart.Append(builder.MixMeal.Confirm())
		default:
			sess.Cart.Append(builder.FixedItem{Name: item.Name, Price: item.Price}.Confirm())
		}
		return nil
	})
	if err != nil {
		return CartView{}, err
	}

	s.recorder.CartItemAdded(source)
	return renderCart(sess.Cart), nil
}

// RemoveItem checks the index against the stored cart before removing,
// since it comes from the client.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, index int) (CartView, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		if index < 0 || index >= sess.Cart.Len() {
			return ErrIndexOutOfRange
		}
		sess.Cart.RemoveAt(index)
		return nil
	})
	if err != nil {
		return CartView{}, err
	}
	return renderCart(sess.Cart), nil
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) (CartView, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		sess.Cart.Clear()
		return nil
	})
	if err != nil {
		return CartView{}, err
	}
	return renderCart(sess.Cart), nil
}

// --------------------------------------------------
// Burger builder
// --------------------------------------------------

func (s *Service) render(r *builder.Recipe, cfg *builder.Configuration) builder.View {
	return r.Render(cfg, s.menu.ResolveAsset)
}

func openRecipe(sess *session.Session) (*builder.Recipe, error) {
	if sess.Burger == nil {
		return nil, ErrBuilderClosed
	}
	r, ok := builder.Lookup(sess.Burger.RecipeID)
	if !ok {
		return nil, ErrBuilderClosed
	}
	return r, nil
}

// OpenBurger starts a fresh customization, replacing any open one.
func (s *Service) OpenBurger(ctx context.Context, sessionID string) (builder.View, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		sess.Burger = builder.Burger.Initialize()
		return nil
	})
	if err != nil {
		return builder.View{}, err
	}
	return s.render(builder.Burger, sess.Burger), nil
}

func (s *Service) Burger(ctx context.Context, sessionID string) (builder.View, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return builder.View{}, err
	}
	r, err := openRecipe(sess)
	if err != nil {
		return builder.View{}, err
	}
	return s.render(r, sess.Burger), nil
}

func (s *Service) ToggleOption(
	ctx context.Context,
	sessionID string,
	optionID string,
	included bool,
) (builder.View, error) {

	var recipe *builder.Recipe
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		r, err := openRecipe(sess)
		if err != nil {
			return err
		}
		if !r.CanToggle(optionID) {
			return ErrUnknownOption
		}
		r.Toggle(sess.Burger, optionID, included)
		recipe = r
		return nil
	})
	if err != nil {
		return builder.View{}, err
	}
	return s.render(recipe, sess.Burger), nil
}

// ChangeQuantity steps a countable option by one unit.
func (s *Service) ChangeQuantity(
	ctx context.Context,
	sessionID string,
	optionID string,
	delta int,
) (builder.View, error) {

	if delta != 1 && delta != -1 {
		return builder.View{}, ErrInvalidDelta
	}

	var recipe *builder.Recipe
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		r, err := openRecipe(sess)
		if err != nil {
			return err
		}
		if !r.IsCountable(optionID) {
			return ErrUnknownOption
		}
		r.SetQuantity(sess.Burger, optionID, delta)
		recipe = r
		return nil
	})
	if err != nil {
		return builder.View{}, err
	}
	return s.render(recipe, sess.Burger), nil
}

// ConfirmBurger appends the configured burger to the cart and closes the
// builder.
func (s *Service) ConfirmBurger(ctx context.Context, sessionID string) (CartView, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		r, err := openRecipe(sess)
		if err != nil {
			return err
		}
		sess.Cart.Append(r.Confirm(sess.Burger))
		sess.Burger = nil
		return nil
	})
	if err != nil {
		return CartView{}, err
	}

	s.recorder.CartItemAdded("burger")
	return renderCart(sess.Cart), nil
}

func (s *Service) CancelBurger(ctx context.Context, sessionID string) error {
	_, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		sess.Burger = nil
		return nil
	})
	return err
}
