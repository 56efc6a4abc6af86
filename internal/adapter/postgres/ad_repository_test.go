package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jeju-ads/internal/core/domain"
	"jeju-ads/internal/core/port"
	"jeju-ads/internal/db"
)

// testRepo connects to the database named by PSQL_TEST_ADDRESS, migrates it
// and returns a repository. Tests are skipped when the variable is unset or
// in short mode.
func testRepo(t *testing.T) *AdRepository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" || testing.Short() {
		t.Skip("database test: PSQL_TEST_ADDRESS unset or -short")
	}
	_, err := db.Migrate(addr)
	require.NoError(t, err)

	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewAdRepository(pool)
}

// insertAd stores an ad in a location unique to the test so feed queries
// only see rows the test created.
func insertAd(t *testing.T, repo *AdRepository, location string, mutate func(*domain.Advertisement)) *domain.Advertisement {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	ad := &domain.Advertisement{
		ID:           uuid.NewString(),
		AdvertiserID: "it-" + location,
		Title:        "Seongsan sunrise tour",
		LinkURL:      "https://example.com/seongsan",
		Category:     domain.CategoryActivity,
		Location:     location,
		Tags:         []string{"sunrise"},
		StartDate:    now.Add(-time.Hour),
		EndDate:      now.Add(24 * time.Hour),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if mutate != nil {
		mutate(ad)
	}
	require.NoError(t, repo.Create(context.Background(), ad))
	t.Cleanup(func() { _ = repo.Delete(context.Background(), ad.ID) })
	return ad
}

func TestUpdateLocksRowAcrossConcurrentCharges(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	ad := insertAd(t, repo, "loc-"+uuid.NewString(), func(a *domain.Advertisement) { a.Budget = 10000 })

	const clicks = 25
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		billed    int
		exhausted int
	)
	for range clicks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, ad.ID, func(a *domain.Advertisement) error {
				_, err := a.Charge(1000)
				return err
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				billed++
			case errors.Is(err, port.ErrBudgetExhausted):
				exhausted++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, billed)
	assert.Equal(t, clicks-10, exhausted)

	got, err := repo.Get(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), got.Spent)
	assert.Equal(t, int64(10), got.ClickCount)
	assert.False(t, got.IsActive)
}

func TestUpdateRollsBackOnError(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	ad := insertAd(t, repo, "loc-"+uuid.NewString(), func(a *domain.Advertisement) {
		a.Budget = 10000
		a.Spent = 9500
	})

	_, err := repo.Update(ctx, ad.ID, func(a *domain.Advertisement) error {
		_, err := a.Charge(1000)
		return err
	})
	require.ErrorIs(t, err, port.ErrBudgetExceeded)

	got, err := repo.Get(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(9500), got.Spent)
	assert.True(t, got.IsActive)

	_, err = repo.Update(ctx, uuid.NewString(), func(*domain.Advertisement) error { return nil })
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestListEligibleFiltersAndPages(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	loc := "loc-" + uuid.NewString()

	best := insertAd(t, repo, loc, func(a *domain.Advertisement) { a.ImpressionCount, a.ClickCount = 100, 20 })
	second := insertAd(t, repo, loc, func(a *domain.Advertisement) { a.ImpressionCount, a.ClickCount = 100, 10 })
	third := insertAd(t, repo, loc, func(a *domain.Advertisement) { a.ImpressionCount, a.ClickCount = 50, 5 })
	insertAd(t, repo, loc, func(a *domain.Advertisement) { a.Category = domain.CategoryRestaurant })
	insertAd(t, repo, loc, func(a *domain.Advertisement) { a.IsActive = false })
	insertAd(t, repo, loc, func(a *domain.Advertisement) { a.Budget, a.Spent = 1000, 1000 })
	insertAd(t, repo, loc, func(a *domain.Advertisement) {
		a.StartDate = time.Now().Add(time.Hour)
		a.EndDate = time.Now().Add(2 * time.Hour)
	})

	q := port.FeedQuery{Category: domain.CategoryActivity, Location: loc[4:], Page: 1, Limit: 2, Offset: 0}
	ads, total, err := repo.ListEligible(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, ads, 2)
	assert.Equal(t, best.ID, ads[0].ID)
	assert.Equal(t, second.ID, ads[1].ID)

	q.Page, q.Offset = 2, 2
	ads, total, err = repo.ListEligible(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, ads, 1)
	assert.Equal(t, third.ID, ads[0].ID)
}

func TestDeactivateExhausted(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	loc := "loc-" + uuid.NewString()

	spentOut := insertAd(t, repo, loc, func(a *domain.Advertisement) { a.Budget, a.Spent = 1000, 1000 })
	healthy := insertAd(t, repo, loc, func(a *domain.Advertisement) { a.Budget, a.Spent = 1000, 500 })
	uncapped := insertAd(t, repo, loc, func(a *domain.Advertisement) { a.Spent = 5000 })

	n, err := repo.DeactivateExhausted(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))

	for id, active := range map[string]bool{spentOut.ID: false, healthy.ID: true, uncapped.ID: true} {
		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, active, got.IsActive, id)
	}
}
