package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"burgerhouse/internal/events"
	"burgerhouse/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMissingFields = errors.New("נא למלא שם, טלפון, שולחן/כתובת ולהוסיף לפחות פריט אחד.")
	ErrMissingPhone  = errors.New("חסר טלפון")
)

// Recorder counts submission outcomes.
type Recorder interface {
	OrderSubmitted(result string)
}

type Service struct {
	sessions  *session.Service
	gateway   Gateway
	publisher events.Publisher
	recorder  Recorder
	logger    *zap.Logger
}

func NewService(
	sessions *session.Service,
	gateway Gateway,
	publisher events.Publisher,
	recorder Recorder,
	logger *zap.Logger,
) *Service {
	return &Service{
		sessions:  sessions,
		gateway:   gateway,
		publisher: publisher,
		recorder:  recorder,
		logger:    logger,
	}
}

// --------------------------------------------------
// Submit the session's cart to the order service
// --------------------------------------------------

// submissionKey is the Idempotency-Key for the cart as it is now. A retry
// of the same cart reuses it; any cart change, including the clear after
// an accepted order, yields a new one.
func submissionKey(sessionID string, revision uint64) string {
	name := fmt.Sprintf("burgerhouse/session/%s/cart/%d", sessionID, revision)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// Submit sends the cart and, once the service accepts it, empties the
// cart and drops any open builder. If the service rejects it the session
// is unchanged.
func (s *Service) Submit(
	ctx context.Context,
	sessionID string,
	req SubmitRequest,
) (*Submission, error) {

	req = req.normalized()
	var (
		sub      Submission
		accepted bool
	)

	_, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		if !req.complete() || sess.Cart.IsEmpty() {
			return ErrMissingFields
		}

		payload := NewPayload(req, sess.Cart)
		key := submissionKey(sess.ID, sess.Cart.Revision())
		if err := s.gateway.Submit(ctx, payload, key); err != nil {
			return fmt.Errorf("submit order: %w", err)
		}
		accepted = true

		sub = Submission{
			Phone:     req.Phone,
			ItemCount: len(payload.Items),
			Total:     payload.Total,
		}

		sess.Cart.Clear()
		sess.Burger = nil
		return nil
	})
	switch {
	case err == nil:
	case accepted:
		// The order service has the order. The stored cart keeps its
		// revision, so a resubmit carries the same key and is deduplicated.
		s.logger.Error("order accepted but session not saved",
			zap.String("session_id", sessionID),
			zap.Error(err))
	default:
		if !errors.Is(err, ErrMissingFields) {
			s.recorder.OrderSubmitted("failed")
			s.logger.Error("order submission failed",
				zap.String("session_id", sessionID),
				zap.Error(err))
		}
		return nil, err
	}

	s.recorder.OrderSubmitted("ok")
	s.logger.Info("order submitted",
		zap.String("session_id", sessionID),
		zap.String("phone", sub.Phone),
		zap.Int("items", sub.ItemCount),
		zap.String("total", sub.Total))

	s.publish(ctx, req, sub)

	// tracking lookup is best-effort; the order already went through
	if status, err := s.gateway.Status(ctx, sub.Phone); err == nil {
		sub.Status = &status
	} else {
		s.logger.Warn("status lookup after submit failed", zap.Error(err))
	}

	return &sub, nil
}

func (s *Service) publish(ctx context.Context, req SubmitRequest, sub Submission) {
	err := s.publisher.PublishOrderSubmitted(ctx, events.OrderSubmitted{
		EventID:     uuid.New().String(),
		Phone:       sub.Phone,
		Table:       req.Table,
		ItemCount:   sub.ItemCount,
		Total:       sub.Total,
		SubmittedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("publish order.submitted failed", zap.Error(err))
	}
}

// --------------------------------------------------
// Tracking
// --------------------------------------------------
func (s *Service) Status(ctx context.Context, phone string) (Status, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", ErrMissingPhone
	}
	return s.gateway.Status(ctx, phone)
}
