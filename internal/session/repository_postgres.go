package session

import (
	"context"
	"encoding/json"
	"errors"

	"burgerhouse/internal/cart"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func encodeState(s *Session) ([]byte, error) {
	return json.Marshal(state{Cart: s.Cart, Burger: s.Burger})
}

// decodeState fills the cart and open builder of s from a stored
// document. A missing cart decodes as an empty one.
func decodeState(doc []byte, s *Session) error {
	st := state{Cart: cart.New()}
	if err := json.Unmarshal(doc, &st); err != nil {
		return err
	}
	s.Cart = st.Cart
	if s.Cart == nil {
		s.Cart = cart.New()
	}
	s.Burger = st.Burger
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, s *Session) error {
	doc, err := encodeState(s)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO sessions (id, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, s.ID, doc, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Session, error) {
	var (
		doc []byte
		s   = &Session{ID: id}
	)

	err := r.db.QueryRow(ctx, `
		SELECT state, created_at, updated_at
		FROM sessions
		WHERE id = $1
	`, id).Scan(&doc, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := decodeState(doc, s); err != nil {
		return nil, err
	}

	return s, nil
}

func (r *PostgresRepository) Save(ctx context.Context, s *Session) error {
	doc, err := encodeState(s)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE sessions
		SET state = $1,
		    updated_at = $2
		WHERE id = $3
	`, doc, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}
