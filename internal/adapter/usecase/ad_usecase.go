package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"jeju-ads/internal/core/domain"
	"jeju-ads/internal/core/port"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 100
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// AdUseCase provides the business logic for advertisements and their
// budgets. It orchestrates the domain evaluator and the outbound ports to
// implement port.AdUseCase.
type AdUseCase struct {
	repo    port.AdRepository
	cache   port.Cache
	images  port.ImageStore
	process port.ImageProcessor
	metrics port.BillingMetrics
	logger  *slog.Logger

	// defaultCPC is charged when a billing request carries no cost.
	defaultCPC     int64
	cacheTTL       time.Duration
	maxUploadBytes int64
	now            func() time.Time
}

var _ port.AdUseCase = (*AdUseCase)(nil)

// Option customises an AdUseCase.
type Option func(*AdUseCase)

// WithCache enables dashboard caching.
func WithCache(c port.Cache, ttl time.Duration) Option {
	return func(u *AdUseCase) {
		u.cache = c
		u.cacheTTL = ttl
	}
}

// WithImageStore enables creative uploads of at most maxBytes.
func WithImageStore(s port.ImageStore, maxBytes int64) Option {
	return func(u *AdUseCase) {
		u.images = s
		u.maxUploadBytes = maxBytes
	}
}

// WithImageProcessor normalises creatives before they are uploaded.
func WithImageProcessor(p port.ImageProcessor) Option {
	return func(u *AdUseCase) { u.process = p }
}

// WithMetrics reports billing activity to m.
func WithMetrics(m port.BillingMetrics) Option {
	return func(u *AdUseCase) { u.metrics = m }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *AdUseCase) { u.logger = l }
}

// WithDefaultCPC overrides domain.DefaultCostPerClick.
func WithDefaultCPC(cpc int64) Option {
	return func(u *AdUseCase) {
		if cpc > 0 {
			u.defaultCPC = cpc
		}
	}
}

// NewAdUseCase creates a new usecase with the provided repository. Caching
// and uploads stay disabled unless the matching options are given.
func NewAdUseCase(repo port.AdRepository, opts ...Option) *AdUseCase {
	u := &AdUseCase{
		repo:       repo,
		metrics:    port.NopMetrics{},
		logger:     slog.Default(),
		defaultCPC: domain.DefaultCostPerClick,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// validID rejects ids that cannot exist so they never reach the database.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", port.ErrInvalidInput, err)
}

// CreateAd builds the ad through the domain constructor and stores it.
func (u *AdUseCase) CreateAd(ctx context.Context, advertiserID string, in port.CreateAdInput) (*domain.Advertisement, error) {
	if advertiserID == "" {
		return nil, invalid(errors.New("missing advertiser"))
	}
	ad, err := domain.NewAdvertisement(domain.NewAdvertisementParams{
		ID:           uuid.NewString(),
		AdvertiserID: advertiserID,
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		LinkURL:      in.LinkURL,
		Category:     in.Category,
		Location:     in.Location,
		Tags:         in.Tags,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Budget:       in.Budget,
	}, u.now().UTC())
	if err != nil {
		return nil, invalid(err)
	}
	if err = u.repo.Create(ctx, &ad); err != nil {
		return nil, err
	}
	u.invalidateDashboard(ctx, advertiserID)
	return &ad, nil
}

// GetAd returns a single ad.
func (u *AdUseCase) GetAd(ctx context.Context, id string) (*domain.Advertisement, error) {
	if !validID(id) {
		return nil, port.ErrNotFound
	}
	return u.repo.Get(ctx, id)
}

// UpdateAd applies the non-nil fields of in. Empty strings keep the current
// value. Budget changes go through the same rules as update_budget, and an
// exhausted ad cannot be switched back on.
func (u *AdUseCase) UpdateAd(ctx context.Context, id string, in port.UpdateAdInput) (*domain.Advertisement, error) {
	if !validID(id) {
		return nil, port.ErrNotFound
	}
	ad, err := u.repo.Update(ctx, id, func(ad *domain.Advertisement) error {
		setIfNotEmpty(&ad.Title, in.Title)
		setIfNotEmpty(&ad.Description, in.Description)
		setIfNotEmpty(&ad.ImageURL, in.ImageURL)
		setIfNotEmpty(&ad.LinkURL, in.LinkURL)
		if in.Budget != nil {
			if err := ad.ApplyBudgetAction(domain.ActionUpdateBudget, in.Budget); err != nil {
				return invalid(err)
			}
		}
		if in.IsActive != nil {
			if *in.IsActive && !ad.IsActive && ad.IsExhausted() {
				return port.ErrBudgetExhausted
			}
			ad.IsActive = *in.IsActive
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.invalidateDashboard(ctx, ad.AdvertiserID)
	return ad, nil
}

func setIfNotEmpty(dst *string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		*dst = strings.TrimSpace(*v)
	}
}

// DeleteAd removes the ad permanently.
func (u *AdUseCase) DeleteAd(ctx context.Context, id string) error {
	ad, err := u.GetAd(ctx, id)
	if err != nil {
		return err
	}
	if err = u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.invalidateDashboard(ctx, ad.AdvertiserID)
	return nil
}

// Feed returns one page of eligible ads.
func (u *AdUseCase) Feed(ctx context.Context, q port.FeedQuery) (*port.FeedPage, error) {
	if q.Category != "" && !q.Category.Valid() {
		return nil, invalid(domain.ErrInvalidCategory)
	}
	if q.Limit <= 0 {
		q.Limit = defaultFeedLimit
	}
	q.Limit = min(q.Limit, maxFeedLimit)
	q.Page = max(q.Page, 1)
	q.Offset = (q.Page - 1) * q.Limit

	ads, total, err := u.repo.ListEligible(ctx, q)
	if err != nil {
		return nil, err
	}
	if ads == nil {
		ads = []domain.Advertisement{}
	}
	return &port.FeedPage{
		Ads:        ads,
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: (total + int64(q.Limit) - 1) / int64(q.Limit),
	}, nil
}

// AdvertiserAds lists the advertiser's ads.
func (u *AdUseCase) AdvertiserAds(ctx context.Context, advertiserID string) ([]domain.Advertisement, error) {
	ads, err := u.repo.ListByAdvertiser(ctx, advertiserID)
	if err != nil {
		return nil, err
	}
	if ads == nil {
		ads = []domain.Advertisement{}
	}
	return ads, nil
}

// AttachImage stores the creative and points the ad at it. The uploaded
// object is removed again if the ad cannot be updated.
func (u *AdUseCase) AttachImage(ctx context.Context, id string, img port.ImageUpload) (*domain.Advertisement, error) {
	if u.images == nil {
		return nil, port.ErrUploadsDisabled
	}
	ext, ok := allowedImageTypes[img.ContentType]
	if !ok {
		return nil, invalid(fmt.Errorf("unsupported image type %q", img.ContentType))
	}
	if img.Size <= 0 || (u.maxUploadBytes > 0 && img.Size > u.maxUploadBytes) {
		return nil, invalid(fmt.Errorf("image size %d outside allowed range", img.Size))
	}
	if _, err := u.GetAd(ctx, id); err != nil {
		return nil, err
	}

	body, size := img.Body, img.Size
	if u.process != nil {
		out, err := u.process.Process(img.Body, img.ContentType)
		if err != nil {
			return nil, invalid(err)
		}
		body, size = out.Body, out.Size
	}

	key := path.Join("ads", id, uuid.NewString()+ext)
	url, err := u.images.Put(ctx, key, body, size, img.ContentType)
	if err != nil {
		return nil, err
	}
	ad, err := u.repo.Update(ctx, id, func(ad *domain.Advertisement) error {
		ad.ImageURL = url
		return nil
	})
	if err != nil {
		if delErr := u.images.Delete(ctx, key); delErr != nil {
			u.logger.Warn("orphaned ad image", slog.String("key", key), slog.Any("error", delErr))
		}
		return nil, err
	}
	return ad, nil
}

// RecordImpression stores an impression and returns its id.
func (u *AdUseCase) RecordImpression(ctx context.Context, imp domain.Impression) (string, error) {
	if !validID(imp.AdID) {
		return "", port.ErrNotFound
	}
	imp.ID = uuid.NewString()
	if err := u.repo.RecordImpression(ctx, &imp); err != nil {
		return "", err
	}
	u.metrics.EventRecorded("impression")
	return imp.ID, nil
}

// RecordClick stores a click and returns the redirect target.
func (u *AdUseCase) RecordClick(ctx context.Context, click domain.Click) (*port.ClickResult, error) {
	if !validID(click.AdID) {
		return nil, port.ErrNotFound
	}
	click.ID = uuid.NewString()
	link, err := u.repo.RecordClick(ctx, &click)
	if err != nil {
		return nil, err
	}
	u.metrics.EventRecorded("click")
	return &port.ClickResult{ClickID: click.ID, RedirectURL: link}, nil
}

// BudgetStatus reports the evaluator's view of the ad's budget.
func (u *AdUseCase) BudgetStatus(ctx context.Context, id string) (*port.BudgetStatus, error) {
	ad, err := u.GetAd(ctx, id)
	if err != nil {
		return nil, err
	}
	alert, _ := ad.AlertMessage()
	return &port.BudgetStatus{
		Budget:         ad.Budget,
		Spent:          ad.Spent,
		Balance:        ad.Balance(),
		ExhaustionRate: ad.ExhaustionRate(),
		IsExhausted:    ad.IsExhausted(),
		Clicks:         ad.ClickCount,
		Impressions:    ad.ImpressionCount,
		IsActive:       ad.IsActive,
		Status:         ad.BudgetStatus(),
		Alert:          alert,
	}, nil
}

// UpdateBudget applies update_budget, add_budget or reset_spent.
func (u *AdUseCase) UpdateBudget(ctx context.Context, id string, action domain.BudgetAction, amount *int64) (*port.BudgetUpdate, error) {
	if !validID(id) {
		return nil, port.ErrNotFound
	}
	ad, err := u.repo.Update(ctx, id, func(ad *domain.Advertisement) error {
		if err := ad.ApplyBudgetAction(action, amount); err != nil {
			return invalid(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("ad budget updated",
		slog.String("ad_id", id),
		slog.String("action", string(action)),
		slog.Int64("budget", ad.Budget),
		slog.Int64("spent", ad.Spent),
	)
	u.invalidateDashboard(ctx, ad.AdvertiserID)
	return &port.BudgetUpdate{Budget: ad.Budget, Spent: ad.Spent}, nil
}

// BillClick charges one click. The check, the debit and the deactivation
// happen inside a single repository transaction.
func (u *AdUseCase) BillClick(ctx context.Context, id string, costPerClick *int64) (*port.BillingResult, error) {
	cost := u.defaultCPC
	if costPerClick != nil {
		if *costPerClick <= 0 {
			return nil, invalid(errors.New("cost per click must be positive"))
		}
		if *costPerClick > domain.MaxCostPerClick {
			return nil, invalid(fmt.Errorf("cost per click must not exceed %d", domain.MaxCostPerClick))
		}
		cost = *costPerClick
	}
	if !validID(id) {
		return nil, port.ErrNotFound
	}

	var deactivated bool
	ad, err := u.repo.Update(ctx, id, func(ad *domain.Advertisement) error {
		var err error
		deactivated, err = ad.Charge(cost)
		return err
	})
	switch {
	case errors.Is(err, port.ErrBudgetExhausted):
		u.metrics.BillingRejected("exhausted")
		return nil, err
	case errors.Is(err, port.ErrBudgetExceeded):
		u.metrics.BillingRejected("exceeded")
		return nil, err
	case errors.Is(err, domain.ErrSpendOverflow):
		return nil, invalid(err)
	case err != nil:
		return nil, err
	}

	u.metrics.ClickBilled(cost)
	if deactivated {
		u.metrics.AdsDeactivated("billing", 1)
		u.logger.Info("ad budget exhausted, ad deactivated",
			slog.String("ad_id", id),
			slog.Int64("budget", ad.Budget),
			slog.Int64("spent", ad.Spent),
		)
	}
	return &port.BillingResult{
		Spent:       ad.Spent,
		Balance:     ad.Balance(),
		IsExhausted: ad.IsExhausted(),
	}, nil
}

// Dashboard aggregates the advertiser's ads, served from the cache when a
// fresh copy exists.
func (u *AdUseCase) Dashboard(ctx context.Context, advertiserID string, period domain.Period) (*domain.DashboardStats, error) {
	key := dashboardKey(advertiserID, period)
	if u.cache != nil {
		var cached domain.DashboardStats
		ok, err := u.cache.Get(ctx, key, &cached)
		if err != nil {
			u.logger.Warn("dashboard cache read failed", slog.Any("error", err))
		} else if ok {
			return &cached, nil
		}
	}

	ads, err := u.repo.ListByAdvertiser(ctx, advertiserID)
	if err != nil {
		return nil, err
	}
	stats := domain.Aggregate(ads, period, u.now())

	if u.cache != nil {
		if err = u.cache.Set(ctx, key, stats, u.cacheTTL); err != nil {
			u.logger.Warn("dashboard cache write failed", slog.Any("error", err))
		}
	}
	return &stats, nil
}

// SweepExhausted latches off active ads that already reached their budget.
func (u *AdUseCase) SweepExhausted(ctx context.Context) (int64, error) {
	n, err := u.repo.DeactivateExhausted(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		u.metrics.AdsDeactivated("sweep", n)
	}
	return n, nil
}

func dashboardKey(advertiserID string, period domain.Period) string {
	return "dashboard:" + advertiserID + ":" + string(period)
}

func (u *AdUseCase) invalidateDashboard(ctx context.Context, advertiserID string) {
	if u.cache == nil {
		return
	}
	keys := []string{
		dashboardKey(advertiserID, domain.PeriodToday),
		dashboardKey(advertiserID, domain.PeriodWeek),
		dashboardKey(advertiserID, domain.PeriodMonth),
		dashboardKey(advertiserID, domain.PeriodAll),
	}
	if err := u.cache.Delete(ctx, keys...); err != nil {
		u.logger.Warn("dashboard cache invalidation failed", slog.Any("error", err))
	}
}
