package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateUsesTotalsForCTR(t *testing.T) {
	now := time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC)
	ads := []Advertisement{
		{ID: "a", Category: CategoryRestaurant, ImpressionCount: 100, ClickCount: 10, IsActive: true, CreatedAt: now},
		{ID: "b", Category: CategoryNature, ImpressionCount: 200, ClickCount: 10, CreatedAt: now},
	}

	stats := Aggregate(ads, PeriodAll, now)

	assert.Equal(t, 2, stats.TotalAds)
	assert.Equal(t, 1, stats.ActiveAds)
	assert.Equal(t, int64(300), stats.TotalImpressions)
	assert.Equal(t, int64(20), stats.TotalClicks)
	assert.InDelta(t, 6.67, stats.AverageCTR, 0.01)
	require.NotNil(t, stats.TopPerformingAd)
	assert.Equal(t, "a", stats.TopPerformingAd.ID)
}

func TestAggregateSums(t *testing.T) {
	now := time.Now()
	ads := []Advertisement{
		{Category: CategoryShopping, Budget: 10000, Spent: 2500, CreatedAt: now},
		{Category: CategoryShopping, Budget: 0, Spent: 700, CreatedAt: now},
		{Category: CategoryCulture, Budget: 5000, Spent: 5000, CreatedAt: now},
	}

	stats := Aggregate(ads, PeriodAll, now)

	assert.Equal(t, int64(15000), stats.TotalBudget)
	assert.Equal(t, int64(8200), stats.TotalSpent)
	assert.Equal(t, map[Category]int{CategoryShopping: 2, CategoryCulture: 1}, stats.CategoryBreakdown)
	assert.Equal(t, 0.0, stats.AverageCTR)
}

func TestAggregateTopPerformerTieKeepsFirst(t *testing.T) {
	now := time.Now()
	ads := []Advertisement{
		{ID: "first", ImpressionCount: 10, ClickCount: 1, CreatedAt: now},
		{ID: "second", ImpressionCount: 100, ClickCount: 10, CreatedAt: now},
		{ID: "low", ImpressionCount: 100, ClickCount: 1, CreatedAt: now},
	}
	stats := Aggregate(ads, PeriodAll, now)
	require.NotNil(t, stats.TopPerformingAd)
	assert.Equal(t, "first", stats.TopPerformingAd.ID)
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil, PeriodAll, time.Now())
	assert.Zero(t, stats.TotalAds)
	assert.Nil(t, stats.TopPerformingAd)
	assert.NotNil(t, stats.CategoryBreakdown)
}

func TestAggregatePeriods(t *testing.T) {
	now := time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC)
	ads := []Advertisement{
		{ID: "today", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "yesterday", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: "two-weeks", CreatedAt: now.AddDate(0, 0, -14)},
		{ID: "old", CreatedAt: now.AddDate(0, -3, 0)},
	}

	cases := map[Period]int{
		PeriodToday: 1,
		PeriodWeek:  2,
		PeriodMonth: 3,
		PeriodAll:   4,
	}
	for period, want := range cases {
		t.Run(string(period), func(t *testing.T) {
			assert.Equal(t, want, Aggregate(ads, period, now).TotalAds)
		})
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodAll, p)

	p, err = ParsePeriod("week")
	require.NoError(t, err)
	assert.Equal(t, PeriodWeek, p)

	_, err = ParsePeriod("year")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
