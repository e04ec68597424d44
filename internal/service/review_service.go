package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/bookshop-service/internal/events"
	"github.com/spec-kit/bookshop-service/internal/repository"
	apperrors "github.com/spec-kit/bookshop-service/pkg/util/errorutil"
)

const (
	MsgReviewRequired = "Review text required"
	MsgReviewNotFound = "Review not found"
)

const previewRunes = 80

// ReviewService enforces one review per user per book.
type ReviewService struct {
	books      repository.BookRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewReviewService constructs the service.
func NewReviewService(books repository.BookRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{books: books, dispatcher: dispatcher, logger: logger}
}

// SubmitReview inserts or overwrites username's review of isbn.
// username must come from a verified token.
func (s *ReviewService) SubmitReview(ctx context.Context, isbn, username, text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.NewValidationError(MsgReviewRequired, nil)
	}
	if err := s.books.UpsertReview(ctx, isbn, username, text); err != nil {
		return notFoundAs(err, MsgBookNotFound, map[string]any{"isbn": isbn})
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventReviewSubmitted,
		Actor:   username,
		ISBN:    isbn,
		Payload: events.ReviewSubmittedPayload{ReviewPreview: preview(text)},
	})
	return nil
}

// DeleteReview removes username's review of isbn. A missing book and a missing
// review both report NotFound.
func (s *ReviewService) DeleteReview(ctx context.Context, isbn, username string) error {
	if err := s.books.DeleteReview(ctx, isbn, username); err != nil {
		return notFoundAs(err, MsgReviewNotFound, map[string]any{"isbn": isbn})
	}

	s.publishEvent(ctx, events.Event{
		Type:  events.EventReviewDeleted,
		Actor: username,
		ISBN:  isbn,
	})
	return nil
}

func (s *ReviewService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

func preview(text string) string {
	r := []rune(text)
	if len(r) <= previewRunes {
		return text
	}
	return string(r[:previewRunes]) + "…"
}
