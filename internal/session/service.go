package session

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const lockStripes = 64

type Service struct {
	repo   Repository
	tokens *Tokens
	locks  [lockStripes]sync.Mutex
}

func NewService(repo Repository, tokens *Tokens) *Service {
	return &Service{repo: repo, tokens: tokens}
}

func (s *Service) Tokens() *Tokens {
	return s.tokens
}

// --------------------------------------------------
// Start a new ordering session
// --------------------------------------------------
func (s *Service) Start(ctx context.Context) (*Session, string, error) {
	sess := New(uuid.New().String())

	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(sess.ID)
	if err != nil {
		return nil, "", err
	}

	return sess, token, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	return s.repo.Get(ctx, id)
}

// Update loads the session, applies fn and saves the result. Updates of
// the same session are serialized; if fn fails nothing is saved.
func (s *Service) Update(
	ctx context.Context,
	id string,
	fn func(*Session) error,
) (*Session, error) {

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(sess); err != nil {
		return nil, err
	}

	sess.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

func (s *Service) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &s.locks[h.Sum32()%lockStripes]
}
