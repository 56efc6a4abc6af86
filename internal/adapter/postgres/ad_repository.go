package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jeju-ads/internal/core/domain"
	"jeju-ads/internal/core/port"
)

const adColumns = `
            a.id::text,
            a.advertiser_id,
            a.title,
            a.description,
            a.image_url,
            a.link_url,
            a.category,
            a.location,
            a.tags,
            a.start_date,
            a.end_date,
            a.budget,
            a.spent,
            a.impression_count,
            a.click_count,
            a.is_active,
            a.created_at,
            a.updated_at`

// eligibleFilter mirrors domain.Advertisement.IsEligible.
const eligibleFilter = `
          a.is_active
          AND now() BETWEEN a.start_date AND a.end_date
          AND NOT (a.budget > 0 AND a.spent >= a.budget)`

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

func scanAd(row pgx.Row) (domain.Advertisement, error) {
	var ad domain.Advertisement
	err := row.Scan(
		&ad.ID,
		&ad.AdvertiserID,
		&ad.Title,
		&ad.Description,
		&ad.ImageURL,
		&ad.LinkURL,
		&ad.Category,
		&ad.Location,
		&ad.Tags,
		&ad.StartDate,
		&ad.EndDate,
		&ad.Budget,
		&ad.Spent,
		&ad.ImpressionCount,
		&ad.ClickCount,
		&ad.IsActive,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if ad.Tags == nil {
		ad.Tags = []string{}
	}
	return ad, err
}

func collectAds(rows pgx.Rows) ([]domain.Advertisement, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Advertisement, error) {
		return scanAd(row)
	})
}

// Create inserts a new advertisement.
func (r *AdRepository) Create(ctx context.Context, ad *domain.Advertisement) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO advertisements
    (id, advertiser_id, title, description, image_url, link_url, category, location, tags,
     start_date, end_date, budget, spent, impression_count, click_count, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		ad.ID, ad.AdvertiserID, ad.Title, ad.Description, ad.ImageURL, ad.LinkURL, string(ad.Category),
		ad.Location, ad.Tags, ad.StartDate, ad.EndDate, ad.Budget, ad.Spent, ad.ImpressionCount,
		ad.ClickCount, ad.IsActive, ad.CreatedAt, ad.UpdatedAt)
	return err
}

// Get returns an advertisement by id.
func (r *AdRepository) Get(ctx context.Context, id string) (*domain.Advertisement, error) {
	ad, err := scanAd(r.pool.QueryRow(ctx, `SELECT`+adColumns+` FROM advertisements a WHERE a.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// Update locks the advertisement row, lets fn mutate a copy and writes the
// mutable columns back in the same transaction. Read committed is enough
// here: FOR UPDATE always returns the latest committed row, so concurrent
// charges queue behind each other instead of failing serialisation.
func (r *AdRepository) Update(ctx context.Context, id string, fn func(ad *domain.Advertisement) error) (*domain.Advertisement, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	// Rollback after a successful commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	ad, err := scanAd(tx.QueryRow(ctx, `SELECT`+adColumns+` FROM advertisements a WHERE a.id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err = fn(&ad); err != nil {
		return nil, err
	}
	ad.UpdatedAt = time.Now().UTC()

	_, err = tx.Exec(ctx, `UPDATE advertisements SET
    title = $2, description = $3, image_url = $4, link_url = $5,
    budget = $6, spent = $7, impression_count = $8, click_count = $9,
    is_active = $10, updated_at = $11
WHERE id = $1`,
		id, ad.Title, ad.Description, ad.ImageURL, ad.LinkURL,
		ad.Budget, ad.Spent, ad.ImpressionCount, ad.ClickCount,
		ad.IsActive, ad.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &ad, nil
}

// Delete removes an advertisement and, through the foreign keys, its events.
func (r *AdRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// ListEligible returns one page of servable ads ordered by CTR and then
// impressions, plus the total count of servable ads matching the filter.
func (r *AdRepository) ListEligible(ctx context.Context, q port.FeedQuery) ([]domain.Advertisement, int64, error) {
	var (
		where = []string{eligibleFilter}
		args  []any
	)
	if q.Category != "" {
		args = append(args, string(q.Category))
		where = append(where, fmt.Sprintf("a.category = $%d", len(args)))
	}
	if q.Location != "" {
		args = append(args, q.Location)
		where = append(where, fmt.Sprintf("strpos(a.location, $%d) > 0", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM advertisements a WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, q.Limit, q.Offset)
	query := fmt.Sprintf(`SELECT%s
        FROM advertisements a
        WHERE %s
        ORDER BY
            CASE WHEN a.impression_count > 0
                 THEN a.click_count::float8 / a.impression_count ELSE 0 END DESC,
            a.impression_count DESC,
            a.created_at DESC
        LIMIT $%d OFFSET $%d`, adColumns, cond, len(args)-1, len(args))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	ads, err := collectAds(rows)
	if err != nil {
		return nil, 0, err
	}
	return ads, total, nil
}

// ListByAdvertiser returns all ads of one advertiser, newest first.
func (r *AdRepository) ListByAdvertiser(ctx context.Context, advertiserID string) ([]domain.Advertisement, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+adColumns+`
        FROM advertisements a
        WHERE a.advertiser_id = $1
        ORDER BY a.created_at DESC`, advertiserID)
	if err != nil {
		return nil, err
	}
	return collectAds(rows)
}

// RecordImpression inserts the impression row and increments the counter.
func (r *AdRepository) RecordImpression(ctx context.Context, imp *domain.Impression) error {
	if imp.ID == "" {
		imp.ID = uuid.NewString()
	}
	imp.CreatedAt = time.Now().UTC()
	return pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE advertisements SET impression_count = impression_count + 1 WHERE id = $1`, imp.AdID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return port.ErrNotFound
		}
		_, err = tx.Exec(ctx, `INSERT INTO ad_impressions (id, ad_id, user_id, user_agent, ip_address, referrer, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			imp.ID, imp.AdID, nullable(imp.UserID), imp.UserAgent, imp.IPAddress, imp.Referrer, imp.CreatedAt)
		return err
	})
}

// RecordClick inserts the click row, increments the counter and returns the
// landing URL of the ad.
func (r *AdRepository) RecordClick(ctx context.Context, click *domain.Click) (string, error) {
	if click.ID == "" {
		click.ID = uuid.NewString()
	}
	click.CreatedAt = time.Now().UTC()
	var linkURL string
	err := pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `UPDATE advertisements SET click_count = click_count + 1 WHERE id = $1 RETURNING link_url`, click.AdID).
			Scan(&linkURL)
		if errors.Is(err, pgx.ErrNoRows) {
			return port.ErrNotFound
		}
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `INSERT INTO ad_clicks (id, ad_id, user_id, user_agent, ip_address, referrer, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			click.ID, click.AdID, nullable(click.UserID), click.UserAgent, click.IPAddress, click.Referrer, click.CreatedAt)
		return err
	})
	if err != nil {
		return "", err
	}
	return linkURL, nil
}

// DeactivateExhausted latches off every active ad whose spend has reached
// its budget.
func (r *AdRepository) DeactivateExhausted(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE advertisements
SET is_active = false, updated_at = now()
WHERE is_active AND budget > 0 AND spent >= budget`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
