package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bookshop-service/internal/domain"
	"github.com/spec-kit/bookshop-service/internal/events"
	"github.com/spec-kit/bookshop-service/internal/repository"
)

func newReviewFixture() (*ReviewService, repository.BookRepository, *recordingDispatcher) {
	books := repository.NewBookRepository(testBooks())
	d := &recordingDispatcher{}
	return NewReviewService(books, d, nil), books, d
}

func TestReview_ResubmitOverwrites(t *testing.T) {
	ctx := context.Background()
	svc, books, _ := newReviewFixture()

	require.NoError(t, svc.SubmitReview(ctx, "1", "alice", "good"))
	require.NoError(t, svc.SubmitReview(ctx, "1", "alice", "great"))

	reviews, err := books.GetReviews(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.Reviews{"alice": "great"}, reviews)
}

func TestReview_SubmitErrors(t *testing.T) {
	ctx := context.Background()
	svc, _, d := newReviewFixture()

	requireDomainError(t, svc.SubmitReview(ctx, "9999", "alice", "x"), http.StatusNotFound, MsgBookNotFound)
	requireDomainError(t, svc.SubmitReview(ctx, "1", "alice", "  "), http.StatusBadRequest, MsgReviewRequired)
	assert.Empty(t, d.types())
}

func TestReview_DeleteLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, books, d := newReviewFixture()

	require.NoError(t, svc.SubmitReview(ctx, "1", "alice", "great"))
	require.NoError(t, svc.DeleteReview(ctx, "1", "alice"))
	requireDomainError(t, svc.DeleteReview(ctx, "1", "alice"), http.StatusNotFound, MsgReviewNotFound)
	requireDomainError(t, svc.DeleteReview(ctx, "9999", "alice"), http.StatusNotFound, MsgReviewNotFound)

	reviews, err := books.GetReviews(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.Equal(t, []events.EventType{events.EventReviewSubmitted, events.EventReviewDeleted}, d.types())
}

func TestReview_DeleteMissingLeavesCatalogUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, books, _ := newReviewFixture()
	require.NoError(t, svc.SubmitReview(ctx, "1", "bob", "fine"))
	before := books.GetAll(ctx)

	requireDomainError(t, svc.DeleteReview(ctx, "1", "alice"), http.StatusNotFound, MsgReviewNotFound)
	assert.Equal(t, before, books.GetAll(ctx))
}

func TestReview_ConcurrentDistinctReviewers(t *testing.T) {
	ctx := context.Background()
	svc, books, d := newReviewFixture()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, svc.SubmitReview(ctx, "4", fmt.Sprintf("reader-%03d", i), "epic"))
		}(i)
	}
	wg.Wait()

	reviews, err := books.GetReviews(ctx, "4")
	require.NoError(t, err)
	assert.Len(t, reviews, 100)
	assert.Len(t, d.types(), 100)
}

func TestReview_EventPreviewIsTruncated(t *testing.T) {
	ctx := context.Background()
	svc, _, d := newReviewFixture()

	require.NoError(t, svc.SubmitReview(ctx, "1", "alice", strings.Repeat("é", 200)))

	require.Len(t, d.events, 1)
	payload, ok := d.events[0].Payload.(events.ReviewSubmittedPayload)
	require.True(t, ok)
	assert.Equal(t, previewRunes+1, len([]rune(payload.ReviewPreview)))
	assert.NotEmpty(t, d.events[0].ID)
	assert.Equal(t, "1", d.events[0].ISBN)
}
