package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookshop-service/internal/api/dto"
	"github.com/spec-kit/bookshop-service/internal/auth"
	"github.com/spec-kit/bookshop-service/internal/service"
)

// BooksHandler serves the public catalog.
type BooksHandler struct {
	catalog *service.CatalogService
}

// NewBooksHandler constructs handler.
func NewBooksHandler(catalog *service.CatalogService) *BooksHandler {
	return &BooksHandler{catalog: catalog}
}

// ListBooks GET /books.
func (h *BooksHandler) ListBooks(c *fiber.Ctx) error {
	return c.JSON(dto.NewCatalogResponse(h.catalog.ListBooks(c.UserContext())))
}

// GetByISBN GET /books/isbn/:isbn.
func (h *BooksHandler) GetByISBN(c *fiber.Ctx) error {
	isbn, err := auth.PathParam(c, "isbn")
	if err != nil {
		return err
	}
	book, err := h.catalog.GetByISBN(c.UserContext(), isbn)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBookResponse(*book))
}

// ListByAuthor GET /books/author/:author.
func (h *BooksHandler) ListByAuthor(c *fiber.Ctx) error {
	author, err := auth.PathParam(c, "author")
	if err != nil {
		return err
	}
	books, err := h.catalog.ListByAuthor(c.UserContext(), author)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBookList(books))
}

// ListByTitle GET /books/title/:title.
func (h *BooksHandler) ListByTitle(c *fiber.Ctx) error {
	title, err := auth.PathParam(c, "title")
	if err != nil {
		return err
	}
	books, err := h.catalog.ListByTitle(c.UserContext(), title)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBookList(books))
}

// ListReviews GET /books/:isbn/reviews.
func (h *BooksHandler) ListReviews(c *fiber.Ctx) error {
	isbn, err := auth.PathParam(c, "isbn")
	if err != nil {
		return err
	}
	reviews, err := h.catalog.ListReviews(c.UserContext(), isbn)
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}
