package service

import (
	"context"
	"errors"

	"github.com/spec-kit/bookshop-service/internal/domain"
	"github.com/spec-kit/bookshop-service/internal/repository"
	apperrors "github.com/spec-kit/bookshop-service/pkg/util/errorutil"
)

const (
	MsgBookNotFound    = "Book not found"
	MsgNoBooksByAuthor = "No books found by this author"
	MsgNoBooksByTitle  = "No books found with this title"
	MsgReviewsNotFound = "Reviews not found"
)

// CatalogService answers read-only catalog queries.
type CatalogService struct {
	books repository.BookRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(books repository.BookRepository) *CatalogService {
	return &CatalogService{books: books}
}

// ListBooks returns the whole catalog keyed by ISBN.
func (s *CatalogService) ListBooks(ctx context.Context) map[string]domain.Book {
	return s.books.GetAll(ctx)
}

func (s *CatalogService) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	book, err := s.books.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, notFoundAs(err, MsgBookNotFound, map[string]any{"isbn": isbn})
	}
	return book, nil
}

func (s *CatalogService) ListByAuthor(ctx context.Context, author string) ([]domain.Book, error) {
	books, err := s.books.FindByAuthor(ctx, author)
	if err != nil {
		return nil, notFoundAs(err, MsgNoBooksByAuthor, map[string]any{"author": author})
	}
	return books, nil
}

func (s *CatalogService) ListByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	books, err := s.books.FindByTitle(ctx, title)
	if err != nil {
		return nil, notFoundAs(err, MsgNoBooksByTitle, map[string]any{"title": title})
	}
	return books, nil
}

// ListReviews returns the username to review map of a book.
func (s *CatalogService) ListReviews(ctx context.Context, isbn string) (domain.Reviews, error) {
	reviews, err := s.books.GetReviews(ctx, isbn)
	if err != nil {
		return nil, notFoundAs(err, MsgReviewsNotFound, map[string]any{"isbn": isbn})
	}
	return reviews, nil
}

func notFoundAs(err error, message string, details map[string]any) error {
	if errors.Is(err, repository.ErrBookNotFound) || errors.Is(err, repository.ErrReviewNotFound) {
		return apperrors.NewNotFoundMessage(message, details)
	}
	return apperrors.NewInternalError(err)
}
