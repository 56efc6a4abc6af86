package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jeju-ads/internal/core/domain"
)

// seedNamespace derives stable ad ids so seeding twice is a no-op.
var seedNamespace = uuid.MustParse("6b1f0c52-5d0e-4c1b-9a57-52a8f7a3c0de")

type seedAd struct {
	title    string
	category domain.Category
	location string
	budget   int64
}

var seedAds = []seedAd{
	{"Black pork BBQ dinner set", domain.CategoryRestaurant, "Jeju-si", 50000},
	{"Ocean view pension", domain.CategoryAccommodation, "Aewol-eup", 120000},
	{"Udo island e-bike rental", domain.CategoryActivity, "Udo", 30000},
	{"Airport shuttle", domain.CategoryTransport, "Jeju-si", 0},
	{"Tangerine gift boxes", domain.CategoryShopping, "Seogwipo-si", 40000},
	{"Haenyeo museum tickets", domain.CategoryCulture, "Gujwa-eup", 20000},
	{"Hallasan guided hike", domain.CategoryNature, "Seogwipo-si", 80000},
	{"Jeju travel insurance", domain.CategoryOther, "", 10000},
}

// Seed inserts demo advertisements for two advertisers together with
// impression and click history. Ads already present are left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for i, s := range seedAds {
		id := uuid.NewSHA1(seedNamespace, []byte(s.title)).String()
		advertiser := fmt.Sprintf("advertiser-%d", i%2+1)
		impressions := int64(100 + r.Intn(900))
		clicks := impressions * int64(1+r.Intn(8)) / 100
		spent := min(clicks*domain.DefaultCostPerClick, s.budget)
		if s.budget == 0 {
			spent = clicks * domain.DefaultCostPerClick
		}

		tag, err := pool.Exec(ctx, `INSERT INTO advertisements
    (id, advertiser_id, title, description, image_url, link_url, category, location, tags,
     start_date, end_date, budget, spent, impression_count, click_count, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,'',$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$16) ON CONFLICT DO NOTHING`,
			id, advertiser, s.title, "Demo advertisement: "+s.title,
			fmt.Sprintf("https://example.com/ads/%d", i+1), string(s.category), s.location,
			[]string{"jeju", string(s.category)},
			now.AddDate(0, 0, -3), now.AddDate(0, 1, 0),
			s.budget, spent, impressions, clicks,
			s.budget == 0 || spent < s.budget,
			now.AddDate(0, 0, -r.Intn(20)))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			continue
		}

		batch := &pgx.Batch{}
		for n := int64(0); n < impressions; n++ {
			batch.Queue(`INSERT INTO ad_impressions (id, ad_id, user_id, created_at) VALUES ($1,$2,$3,$4)`,
				uuid.NewString(), id, fmt.Sprintf("user-%d", r.Intn(100)+1), now.Add(-time.Duration(r.Intn(72))*time.Hour))
		}
		for n := int64(0); n < clicks; n++ {
			batch.Queue(`INSERT INTO ad_clicks (id, ad_id, user_id, created_at) VALUES ($1,$2,$3,$4)`,
				uuid.NewString(), id, fmt.Sprintf("user-%d", r.Intn(100)+1), now.Add(-time.Duration(r.Intn(72))*time.Hour))
		}
		if err = pool.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}
	}
	return nil
}
