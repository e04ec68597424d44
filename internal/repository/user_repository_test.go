package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bookshop-service/internal/domain"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Create(ctx, &domain.Identity{Username: "alice", PasswordHash: "h1"}))
	assert.True(t, repo.Exists(ctx, "alice"))
	assert.False(t, repo.Exists(ctx, "bob"))

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h1", got.PasswordHash)

	_, err = repo.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_DuplicateKeepsFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Create(ctx, &domain.Identity{Username: "alice", PasswordHash: "h1"}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.Identity{Username: "alice", PasswordHash: "h2"}), ErrUserExists)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h1", got.PasswordHash)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	identity := &domain.Identity{Username: "alice", PasswordHash: "h1"}
	require.NoError(t, repo.Create(ctx, identity))

	identity.PasswordHash = "mutated"
	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	got.PasswordHash = "mutated again"

	again, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h1", again.PasswordHash)
}

func TestUserRepository_ConcurrentSameUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	var wg sync.WaitGroup
	var created atomic.Int32
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := repo.Create(ctx, &domain.Identity{Username: "alice", PasswordHash: fmt.Sprint(i)}); err == nil {
				created.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
}
