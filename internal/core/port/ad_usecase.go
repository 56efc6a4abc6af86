package port

import (
	"context"
	"io"
	"time"

	"jeju-ads/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the ad service. This
// interface represents the primary port into the application domain.
type AdUseCase interface {
	// CreateAd validates and stores a new ad owned by advertiserID.
	CreateAd(ctx context.Context, advertiserID string, in CreateAdInput) (*domain.Advertisement, error)
	// GetAd returns a single ad.
	GetAd(ctx context.Context, id string) (*domain.Advertisement, error)
	// UpdateAd applies a partial update. Reactivating a budget-exhausted ad
	// is refused with ErrBudgetExhausted.
	UpdateAd(ctx context.Context, id string, in UpdateAdInput) (*domain.Advertisement, error)
	// DeleteAd removes the ad permanently.
	DeleteAd(ctx context.Context, id string) error
	// Feed lists eligible ads for the public feed.
	Feed(ctx context.Context, q FeedQuery) (*FeedPage, error)
	// AdvertiserAds lists every ad owned by the advertiser.
	AdvertiserAds(ctx context.Context, advertiserID string) ([]domain.Advertisement, error)
	// AttachImage uploads a creative and points the ad at it.
	AttachImage(ctx context.Context, id string, img ImageUpload) (*domain.Advertisement, error)

	// RecordImpression stores an impression event.
	RecordImpression(ctx context.Context, imp domain.Impression) (string, error)
	// RecordClick stores a click event and returns where to redirect.
	RecordClick(ctx context.Context, click domain.Click) (*ClickResult, error)

	// BudgetStatus reports the derived budget figures of an ad.
	BudgetStatus(ctx context.Context, id string) (*BudgetStatus, error)
	// UpdateBudget applies an administrative budget action.
	UpdateBudget(ctx context.Context, id string, action domain.BudgetAction, amount *int64) (*BudgetUpdate, error)
	// BillClick debits one click. A nil costPerClick uses the configured
	// default. Fails with ErrNotFound, ErrBudgetExhausted or
	// ErrBudgetExceeded without mutating the ad.
	BillClick(ctx context.Context, id string, costPerClick *int64) (*BillingResult, error)

	// Dashboard aggregates the advertiser's ads created within period.
	Dashboard(ctx context.Context, advertiserID string, period domain.Period) (*domain.DashboardStats, error)
	// SweepExhausted latches off active ads that already used their budget.
	SweepExhausted(ctx context.Context) (int64, error)
}

// CreateAdInput carries the fields of a new ad.
type CreateAdInput struct {
	Title       string
	Description string
	ImageURL    string
	LinkURL     string
	Category    domain.Category
	Location    string
	Tags        []string
	StartDate   time.Time
	EndDate     time.Time
	Budget      int64
}

// UpdateAdInput is a partial update; nil fields are left unchanged.
type UpdateAdInput struct {
	Title       *string
	Description *string
	ImageURL    *string
	LinkURL     *string
	Budget      *int64
	IsActive    *bool
}

// ImageUpload is a creative received from the client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FeedPage is one page of the public feed.
type FeedPage struct {
	Ads        []domain.Advertisement `json:"ads"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	Total      int64                  `json:"total"`
	TotalPages int64                  `json:"totalPages"`
}

// ClickResult is returned after a click has been recorded.
type ClickResult struct {
	ClickID     string `json:"clickId"`
	RedirectURL string `json:"redirectUrl"`
}

// BudgetStatus is the budget view of a single ad.
type BudgetStatus struct {
	Budget         int64               `json:"budget"`
	Spent          int64               `json:"spent"`
	Balance        int64               `json:"balance"`
	ExhaustionRate float64             `json:"exhaustionRate"`
	IsExhausted    bool                `json:"isExhausted"`
	Clicks         int64               `json:"clicks"`
	Impressions    int64               `json:"impressions"`
	IsActive       bool                `json:"isActive"`
	Status         domain.BudgetStatus `json:"status"`
	Alert          string              `json:"alert,omitempty"`
}

// BudgetUpdate is the result of an administrative budget action.
type BudgetUpdate struct {
	Budget int64 `json:"budget"`
	Spent  int64 `json:"spent"`
}

// BillingResult is the outcome of a successful click charge.
type BillingResult struct {
	Spent       int64 `json:"spent"`
	Balance     int64 `json:"balance"`
	IsExhausted bool  `json:"isExhausted"`
}
