package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"precip-viewer/internal/models"
)

func TestFixtureRepository_Default(t *testing.T) {
	repo, err := NewFixtureRepository("")
	require.NoError(t, err)

	assert.Equal(t, "fixture", repo.Name())
	assert.Equal(t, "Pristina, Kosovo", repo.Location())

	today, err := repo.FetchToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Monday", today.Day)
	assert.Equal(t, "2026-01-12", today.Date)
	assert.Equal(t, models.ConditionClear, today.Condition())

	week, err := repo.FetchWeek(context.Background())
	require.NoError(t, err)
	require.Len(t, week, models.WeekLength)
	assert.Equal(t, "Friday", week[4].Day)
	assert.Equal(t, models.ConditionRain, week[1].Condition())
}

func TestFixtureRepository_WeekIsCopied(t *testing.T) {
	repo, err := NewFixtureRepository("")
	require.NoError(t, err)

	week, err := repo.FetchWeek(context.Background())
	require.NoError(t, err)
	week[0].Day = "Sunday"

	again, err := repo.FetchWeek(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Monday", again[0].Day)
}

func TestFixtureRepository_FromFile(t *testing.T) {
	repo, err := NewFixtureRepository("testdata/snowy.yaml")
	require.NoError(t, err)

	today, err := repo.FetchToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Wednesday", today.Day)
	assert.Equal(t, models.ConditionSnow, today.Condition())
	assert.Equal(t, "Snow expected today", today.Message)

	_, err = repo.FetchWeek(context.Background())
	assert.ErrorIs(t, err, ErrNoFixture)
}

func TestFixtureRepository_Errors(t *testing.T) {
	_, err := NewFixtureRepository("testdata/missing.yaml")
	assert.Error(t, err)

	_, err = NewFixtureRepository("testdata/broken.yaml")
	assert.Error(t, err)
}

func TestFixtureRepository_CanceledContext(t *testing.T) {
	repo, err := NewFixtureRepository("")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.FetchToday(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.FetchWeek(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
