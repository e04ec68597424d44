package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookshop-service/internal/api/http/handlers"
	"github.com/spec-kit/bookshop-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Books          *handlers.BooksHandler
	Reviews        *handlers.ReviewsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. The public API is served at the root and
// again under /customer.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	registerAPI(app, cfg)
	registerAPI(app.Group("/customer"), cfg)
}

func registerAPI(r fiber.Router, cfg RouteConfig) {
	r.Post("/register", cfg.Users.Register)
	r.Post("/users/register", cfg.Users.Register)
	r.Post("/login", cfg.Users.Login)

	books := r.Group("/books")
	books.Get("/", cfg.Books.ListBooks)
	books.Get("/isbn/:isbn", cfg.Books.GetByISBN)
	books.Get("/author/:author", cfg.Books.ListByAuthor)
	books.Get("/title/:title", cfg.Books.ListByTitle)
	books.Get("/:isbn/reviews", cfg.Books.ListReviews)

	books.Post("/:isbn/reviews", cfg.AuthMiddleware.Handle, cfg.Reviews.SubmitReview)
	books.Delete("/:isbn/reviews/:username",
		cfg.AuthMiddleware.Handle,
		auth.RequireOwner("username"),
		cfg.Reviews.DeleteReview)
}
