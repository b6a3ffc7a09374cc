//go:build integration

package repository_test

import (
	"context"
	"testing"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository"
	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func win(dow, start, end int, enabled bool) readmodel.ScheduleWindow {
	return readmodel.ScheduleWindow{DayOfWeek: dow, StartMin: start, EndMin: end, Enabled: enabled}
}

func TestScheduleRepository(t *testing.T) {
	pool := setupTestPool(t)
	repo := repository.NewScheduleRepository(pool)
	ctx := context.Background()

	hours := []readmodel.ScheduleWindow{
		win(1, 540, 1020, true),
		win(2, 540, 780, true),
		win(2, 840, 1080, true),
		win(7, 600, 960, false),
	}
	require.NoError(t, repo.ReplaceHours(ctx, hours))

	t.Run("list returns everything ordered", func(t *testing.T) {
		got, err := repo.ListHours(ctx)
		require.NoError(t, err)
		assert.Equal(t, hours, got)
	})

	t.Run("weekday lookup skips disabled rows", func(t *testing.T) {
		got, err := repo.HoursForWeekday(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("split day comes back in time order", func(t *testing.T) {
		got, err := repo.HoursForWeekday(ctx, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 540, got[0].StartMin)
		assert.Equal(t, 840, got[1].StartMin)
	})

	t.Run("replace swaps the whole table", func(t *testing.T) {
		next := []readmodel.ScheduleWindow{win(3, 600, 900, true)}
		require.NoError(t, repo.ReplaceHours(ctx, next))

		got, err := repo.ListHours(ctx)
		require.NoError(t, err)
		assert.Equal(t, next, got)
	})

	t.Run("breaks live in their own table", func(t *testing.T) {
		breaks := []readmodel.ScheduleWindow{win(1, 720, 780, true)}
		require.NoError(t, repo.ReplaceBreaks(ctx, breaks))

		got, err := repo.ListBreaks(ctx)
		require.NoError(t, err)
		assert.Equal(t, breaks, got)

		hoursAfter, err := repo.ListHours(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, breaks, hoursAfter)
	})

	t.Run("replace with no rows empties the table", func(t *testing.T) {
		require.NoError(t, repo.ReplaceBreaks(ctx, nil))

		got, err := repo.ListBreaks(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestBlackoutRepository(t *testing.T) {
	pool := setupTestPool(t)
	repo := repository.NewBlackoutRepository(pool)
	ctx := context.Background()

	t.Run("missing day is nil without error", func(t *testing.T) {
		got, err := repo.FindByDate(ctx, "2026-12-25")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("upsert then find", func(t *testing.T) {
		reason := "holiday"
		require.NoError(t, repo.Upsert(ctx, "2026-12-25", &reason))

		got, err := repo.FindByDate(ctx, "2026-12-25")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "2026-12-25", got.DateKey)
		require.NotNil(t, got.Reason)
		assert.Equal(t, "holiday", *got.Reason)
	})

	t.Run("upsert refreshes the reason", func(t *testing.T) {
		updated := "closed for renovation"
		require.NoError(t, repo.Upsert(ctx, "2026-12-25", &updated))

		got, err := repo.FindByDate(ctx, "2026-12-25")
		require.NoError(t, err)
		require.NotNil(t, got.Reason)
		assert.Equal(t, updated, *got.Reason)
	})

	t.Run("list is ordered by date", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, "2026-01-01", nil))

		got, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "2026-01-01", got[0].DateKey)
		assert.Equal(t, "2026-12-25", got[1].DateKey)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, "2026-01-01"))

		got, err := repo.FindByDate(ctx, "2026-01-01")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("remove of a missing day is not found", func(t *testing.T) {
		err := repo.Remove(ctx, "2026-01-01")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestServiceRepository(t *testing.T) {
	pool := setupTestPool(t)
	repo := repository.NewServiceRepository(pool)
	ctx := context.Background()

	activeID := seedService(t, pool, "Haircut", 30, 0, true)
	seedService(t, pool, "Discontinued Perm", 120, 15, false)

	t.Run("find by id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, activeID)
		require.NoError(t, err)
		assert.Equal(t, "Haircut", got.Name)
		assert.Equal(t, 30, got.DurationMin)
		assert.True(t, got.Active)
	})

	t.Run("list active skips inactive services", func(t *testing.T) {
		services, err := repo.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, services, 1)
		assert.Equal(t, activeID, services[0].ID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
