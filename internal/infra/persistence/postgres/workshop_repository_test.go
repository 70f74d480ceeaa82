package postgres

import (
	"context"
	"testing"
	"time"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkshop(slug string, startsAt time.Time, status entity.WorkshopStatus) *entity.Workshop {
	return &entity.Workshop{
		Title:    "Workshop " + slug,
		Slug:     slug,
		StartsAt: startsAt,
		EndsAt:   startsAt.Add(2 * time.Hour),
		Price:    decimal.NewFromInt(45),
		Capacity: 12,
		Status:   status,
		Version:  1,
	}
}

func TestWorkshopRepository_SlugAndListing(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkshopRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newTestWorkshop("late", base.Add(48*time.Hour), entity.WorkshopPublished)))
	require.NoError(t, repo.Create(ctx, newTestWorkshop("early", base, entity.WorkshopPublished)))
	require.NoError(t, repo.Create(ctx, newTestWorkshop("hidden", base.Add(24*time.Hour), entity.WorkshopDraft)))

	assert.ErrorIs(t, repo.Create(ctx, newTestWorkshop("early", base, entity.WorkshopDraft)), repository.ErrDuplicateSlug)

	published, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, "early", published[0].Slug)
	assert.Equal(t, "late", published[1].Slug)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	count, err := repo.CountPublished(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	found, err := repo.FindBySlug(ctx, "hidden")
	require.NoError(t, err)
	assert.False(t, found.IsPublished())

	_, err = repo.FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrWorkshopNotFound)
}

func TestWorkshopRepository_VersionsAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkshopRepository(db)
	ctx := context.Background()

	workshop := newTestWorkshop("restorative", time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC), entity.WorkshopDraft)
	require.NoError(t, repo.Create(ctx, workshop))
	require.NoError(t, repo.CreateVersion(ctx, &entity.WorkshopVersion{
		WorkshopID: workshop.ID, Version: 1, Status: workshop.Status, Snapshot: *workshop,
	}))

	workshop.Title = "Restorative Weekend"
	workshop.Version = 2
	require.NoError(t, repo.Update(ctx, workshop))
	require.NoError(t, repo.CreateVersion(ctx, &entity.WorkshopVersion{
		WorkshopID: workshop.ID, Version: 2, Status: workshop.Status, Snapshot: *workshop,
	}))

	versions, err := repo.ListVersions(ctx, workshop.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 2, versions[0].Version)
	assert.Equal(t, "Restorative Weekend", versions[0].Snapshot.Title)
	assert.Equal(t, "Workshop restorative", versions[1].Snapshot.Title)
	assert.True(t, decimal.NewFromInt(45).Equal(versions[1].Snapshot.Price))

	require.NoError(t, repo.Delete(ctx, workshop.ID))
	versions, err = repo.ListVersions(ctx, workshop.ID)
	require.NoError(t, err)
	assert.Empty(t, versions)
	assert.ErrorIs(t, repo.Delete(ctx, workshop.ID), repository.ErrWorkshopNotFound)
}
