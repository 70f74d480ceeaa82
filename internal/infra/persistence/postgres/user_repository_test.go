package postgres

import (
	"context"
	"testing"
	"time"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Email: "anna@example.com", Name: "Anna Lee", PasswordHash: "hash", Role: entity.RoleUser}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)

	found, err := repo.FindByEmail(ctx, "anna@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, entity.RoleUser, found.Role)
	assert.Empty(t, found.ResetToken)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "dup@example.com", Role: entity.RoleUser}))

	err := repo.Create(ctx, &entity.User{Email: "dup@example.com", Role: entity.RoleUser})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestUserRepository_UpdateResetToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "reset@example.com")

	expires := time.Now().Add(time.Hour)
	user.ResetToken = "abc123"
	user.ResetTokenExpiresAt = &expires
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByResetToken(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	require.NotNil(t, found.ResetTokenExpiresAt)

	// Clearing the token must write NULL back.
	found.ResetToken = ""
	found.ResetTokenExpiresAt = nil
	require.NoError(t, repo.Update(ctx, found))

	_, err = repo.FindByResetToken(ctx, "abc123")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByResetToken(ctx, "")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DeleteCascadesCarts(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	carts := NewCartRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "cascade@example.com")
	require.NoError(t, carts.Create(ctx, &entity.Cart{UserID: &user.ID}))

	require.NoError(t, users.Delete(ctx, user.ID))

	_, err := carts.FindByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	assert.ErrorIs(t, users.Delete(ctx, user.ID), repository.ErrUserNotFound)
}

func TestUserRepository_ListAndCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "one@example.com")
	seedUser(t, db, "two@example.com")
	seedUser(t, db, "three@example.com")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	page, err := repo.List(ctx, repository.ListParams{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)
}
