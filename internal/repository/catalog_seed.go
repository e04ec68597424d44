package repository

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spec-kit/bookshop-service/internal/domain"
)

//go:embed seed/books.yaml
var defaultCatalog []byte

// LoadCatalog reads the seed catalog from path, or the embedded default when path is empty.
func LoadCatalog(path string) ([]domain.Book, error) {
	if path == "" {
		return ParseCatalog(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML book list. ISBNs must be present and unique.
func ParseCatalog(data []byte) ([]domain.Book, error) {
	var books []domain.Book
	if err := yaml.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}

	seen := make(map[string]struct{}, len(books))
	for i := range books {
		books[i].ISBN = strings.TrimSpace(books[i].ISBN)
		isbn := books[i].ISBN
		if isbn == "" {
			return nil, fmt.Errorf("catalog entry %d: isbn required", i)
		}
		if _, dup := seen[isbn]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate isbn %q", i, isbn)
		}
		seen[isbn] = struct{}{}
		if books[i].Reviews == nil {
			books[i].Reviews = domain.Reviews{}
		}
	}
	if books == nil {
		return []domain.Book{}, nil
	}
	return books, nil
}
