package postgres

import (
	"context"
	"testing"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewUserRepository().Create(ctx, &entity.User{Email: "commit@example.com", Role: entity.RoleUser})
	})
	require.NoError(t, err)

	_, err = users.FindByEmail(ctx, "commit@example.com")
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewUserRepository().Create(ctx, &entity.User{Email: "rollback@example.com", Role: entity.RoleUser}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = users.FindByEmail(ctx, "rollback@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
