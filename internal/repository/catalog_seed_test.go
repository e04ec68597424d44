package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_Embedded(t *testing.T) {
	books, err := LoadCatalog("")
	require.NoError(t, err)
	require.Len(t, books, 10)
	assert.Equal(t, "1", books[0].ISBN)
	assert.Equal(t, "Things Fall Apart", books[0].Title)
	assert.Equal(t, "Chinua Achebe", books[0].Author)
	for _, b := range books {
		assert.NotNil(t, b.Reviews, b.ISBN)
	}
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- isbn: "978-0"
  title: "Go"
  author: "Gopher"
  reviews:
    alice: "seeded"
`), 0o600))

	books, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "seeded", books[0].Reviews["alice"])
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseCatalog_Validation(t *testing.T) {
	_, err := ParseCatalog([]byte(`- title: "no isbn"`))
	require.Error(t, err)

	_, err = ParseCatalog([]byte("- isbn: \"1\"\n- isbn: \"1\"\n"))
	require.Error(t, err)

	_, err = ParseCatalog([]byte(": not yaml ["))
	require.Error(t, err)

	books, err := ParseCatalog(nil)
	require.NoError(t, err)
	assert.Empty(t, books)
}
