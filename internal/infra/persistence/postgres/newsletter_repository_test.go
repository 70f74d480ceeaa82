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

func TestNewsletterRepository_DraftThenPublish(t *testing.T) {
	db := newTestDB(t)
	repo := NewNewsletterRepository(db)
	ctx := context.Background()

	newsletter := &entity.Newsletter{
		Title:   "Spring schedule",
		Content: "<p>Hello</p>",
		Style:   entity.NewsletterStyle{FontFamily: "Georgia", TextAlign: "center", AccentColor: "#aa5500"},
		IsDraft: true,
	}
	require.NoError(t, repo.Create(ctx, newsletter))

	found, err := repo.FindByID(ctx, newsletter.ID)
	require.NoError(t, err)
	assert.True(t, found.IsDraft)
	assert.Equal(t, "Georgia", found.Style.FontFamily)
	assert.Equal(t, "#aa5500", found.Style.AccentColor)
	assert.Nil(t, found.PublishedAt)

	publishedAt := time.Now()
	found.IsDraft = false
	found.PublishedAt = &publishedAt
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.FindByID(ctx, newsletter.ID)
	require.NoError(t, err)
	assert.False(t, found.IsDraft)
	require.NotNil(t, found.PublishedAt)

	list, err := repo.List(ctx, repository.ListParams{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, newsletter.ID))
	_, err = repo.FindByID(ctx, newsletter.ID)
	assert.ErrorIs(t, err, repository.ErrNewsletterNotFound)
	assert.ErrorIs(t, repo.Update(ctx, found), repository.ErrNewsletterNotFound)
}

func TestSubscriberRepository_ActiveFiltering(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubscriberRepository(db)
	ctx := context.Background()

	active := &entity.Subscriber{Email: "yes@example.com", IsActive: true}
	inactive := &entity.Subscriber{Email: "no@example.com", IsActive: true}
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))

	inactive.IsActive = false
	require.NoError(t, repo.Update(ctx, inactive))

	subscribers, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, subscribers, 1)
	assert.Equal(t, "yes@example.com", subscribers[0].Email)

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	all, err := repo.List(ctx, repository.ListParams{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := repo.FindByEmail(ctx, "no@example.com")
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrSubscriberNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Subscriber{ID: uuid.New()}), repository.ErrSubscriberNotFound)
}
