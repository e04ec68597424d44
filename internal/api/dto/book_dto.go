package dto

import "github.com/spec-kit/bookshop-service/internal/domain"

// ReviewRequest is the payload of POST /books/:isbn/reviews.
type ReviewRequest struct {
	Review string `json:"review"`
}

// BookResponse is the public shape of a catalog entry.
type BookResponse struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

// NewBookResponse maps a domain book.
func NewBookResponse(b domain.Book) BookResponse {
	reviews := map[string]string(b.Reviews)
	if reviews == nil {
		reviews = map[string]string{}
	}
	return BookResponse{ISBN: b.ISBN, Title: b.Title, Author: b.Author, Reviews: reviews}
}

// NewBookList maps a slice of domain books.
func NewBookList(books []domain.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, NewBookResponse(b))
	}
	return out
}

// NewCatalogResponse maps the full catalog keyed by ISBN.
func NewCatalogResponse(books map[string]domain.Book) map[string]BookResponse {
	out := make(map[string]BookResponse, len(books))
	for isbn, b := range books {
		out[isbn] = NewBookResponse(b)
	}
	return out
}
