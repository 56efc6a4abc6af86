package port

import (
	"context"

	"jeju-ads/internal/core/domain"
)

// AdRepository defines the persistence layer for advertisements. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe; Update must run the mutation and the write atomically so
// that concurrent billing on one ad is serialised.
type AdRepository interface {
	// Create stores a new advertisement.
	Create(ctx context.Context, ad *domain.Advertisement) error
	// Get returns an advertisement by id or ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Advertisement, error)
	// Update locks the ad, applies fn and persists the result in one
	// transaction. An error from fn aborts the transaction untouched and is
	// returned as is.
	Update(ctx context.Context, id string, fn func(ad *domain.Advertisement) error) (*domain.Advertisement, error)
	// Delete removes an advertisement permanently.
	Delete(ctx context.Context, id string) error

	// ListEligible returns ads that may be served now, best CTR first, and
	// the total number of matching ads.
	ListEligible(ctx context.Context, q FeedQuery) ([]domain.Advertisement, int64, error)
	// ListByAdvertiser returns every ad owned by the advertiser.
	ListByAdvertiser(ctx context.Context, advertiserID string) ([]domain.Advertisement, error)

	// RecordImpression stores the event and bumps the impression counter.
	RecordImpression(ctx context.Context, imp *domain.Impression) error
	// RecordClick stores the event, bumps the click counter and returns the
	// destination link of the ad.
	RecordClick(ctx context.Context, click *domain.Click) (string, error)

	// DeactivateExhausted switches off active ads whose spend reached their
	// budget and returns how many rows changed.
	DeactivateExhausted(ctx context.Context) (int64, error)
}

// FeedQuery filters the public ad feed. Page is 1-based; the use case
// derives Offset from Page and Limit before calling the repository.
type FeedQuery struct {
	Category domain.Category
	Location string
	Page     int
	Limit    int
	Offset   int
}
