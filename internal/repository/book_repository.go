package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/spec-kit/bookshop-service/internal/domain"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrReviewNotFound = errors.New("review not found")
)

// BookRepository defines access to the fixed catalog and its review maps.
// Returned books and review maps are copies.
type BookRepository interface {
	GetAll(ctx context.Context) map[string]domain.Book
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)
	FindByAuthor(ctx context.Context, author string) ([]domain.Book, error)
	FindByTitle(ctx context.Context, title string) ([]domain.Book, error)
	GetReviews(ctx context.Context, isbn string) (domain.Reviews, error)
	UpsertReview(ctx context.Context, isbn, username, text string) error
	DeleteReview(ctx context.Context, isbn, username string) error
}

type bookRepository struct {
	mu    sync.RWMutex
	books map[string]*domain.Book
}

// NewBookRepository seeds an in-memory catalog. Later duplicates of an ISBN win.
func NewBookRepository(seed []domain.Book) BookRepository {
	books := make(map[string]*domain.Book, len(seed))
	for _, b := range seed {
		book := b.Clone()
		books[book.ISBN] = &book
	}
	return &bookRepository{books: books}
}

func (r *bookRepository) GetAll(_ context.Context) map[string]domain.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Book, len(r.books))
	for isbn, b := range r.books {
		out[isbn] = b.Clone()
	}
	return out
}

func (r *bookRepository) GetByISBN(_ context.Context, isbn string) (*domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	book := b.Clone()
	return &book, nil
}

func (r *bookRepository) FindByAuthor(_ context.Context, author string) ([]domain.Book, error) {
	return r.filter(func(b *domain.Book) bool { return b.Author == author })
}

func (r *bookRepository) FindByTitle(_ context.Context, title string) ([]domain.Book, error) {
	return r.filter(func(b *domain.Book) bool { return b.Title == title })
}

func (r *bookRepository) GetReviews(_ context.Context, isbn string) (domain.Reviews, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	return b.Reviews.Clone(), nil
}

func (r *bookRepository) UpsertReview(_ context.Context, isbn, username, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return ErrBookNotFound
	}
	if b.Reviews == nil {
		b.Reviews = domain.Reviews{}
	}
	b.Reviews[username] = text
	return nil
}

func (r *bookRepository) DeleteReview(_ context.Context, isbn, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return ErrBookNotFound
	}
	if _, ok := b.Reviews[username]; !ok {
		return ErrReviewNotFound
	}
	delete(b.Reviews, username)
	return nil
}

// filter returns matches ordered by ISBN, or ErrBookNotFound when none match.
func (r *bookRepository) filter(match func(*domain.Book) bool) ([]domain.Book, error) {
	r.mu.RLock()
	out := make([]domain.Book, 0)
	for _, b := range r.books {
		if match(b) {
			out = append(out, b.Clone())
		}
	}
	r.mu.RUnlock()

	if len(out) == 0 {
		return nil, ErrBookNotFound
	}
	sort.Slice(out, func(i, j int) bool { return isbnLess(out[i].ISBN, out[j].ISBN) })
	return out, nil
}

// isbnLess orders numeric keys numerically ("2" before "10") and falls back to
// lexical order otherwise.
func isbnLess(a, b string) bool {
	if len(a) != len(b) && isDigits(a) && isDigits(b) {
		return len(a) < len(b)
	}
	return a < b
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
