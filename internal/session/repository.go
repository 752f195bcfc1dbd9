package session

import "context"

// Repository defines session storage. Get returns a copy the caller may
// mutate; changes are visible only after Save.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
