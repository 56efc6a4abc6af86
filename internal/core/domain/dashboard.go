package domain

import (
	"errors"
	"time"
)

// Period selects which ads, by creation date, a dashboard covers.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

var ErrInvalidPeriod = errors.New("unknown period")

// ParsePeriod maps the query value to a Period. Empty means all.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case "":
		return PeriodAll, nil
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
		return p, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Since returns the earliest creation time included in the period and false
// for PeriodAll. Windows are anchored at local midnight of now.
func (p Period) Since(now time.Time) (time.Time, bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch p {
	case PeriodToday:
		return midnight, true
	case PeriodWeek:
		return midnight.AddDate(0, 0, -7), true
	case PeriodMonth:
		return midnight.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

// DashboardStats summarises a set of ads for the advertiser dashboard.
type DashboardStats struct {
	Period            Period           `json:"period"`
	TotalAds          int              `json:"totalAds"`
	ActiveAds         int              `json:"activeAds"`
	TotalImpressions  int64            `json:"totalImpressions"`
	TotalClicks       int64            `json:"totalClicks"`
	TotalSpent        int64            `json:"totalSpent"`
	TotalBudget       int64            `json:"totalBudget"`
	AverageCTR        float64          `json:"averageCTR"`
	CategoryBreakdown map[Category]int `json:"categoryBreakdown"`
	TopPerformingAd   *Advertisement   `json:"topPerformingAd,omitempty"`
}

// Aggregate reduces ads created within period into DashboardStats. The
// aggregate CTR is computed from the totals, not averaged per ad. The top
// performer is the ad with the highest CTR, the earliest one winning ties.
func Aggregate(ads []Advertisement, period Period, now time.Time) DashboardStats {
	stats := DashboardStats{
		Period:            period,
		CategoryBreakdown: make(map[Category]int),
	}
	since, bounded := period.Since(now)

	var top *Advertisement
	for i := range ads {
		ad := &ads[i]
		if bounded && ad.CreatedAt.Before(since) {
			continue
		}
		stats.TotalAds++
		if ad.IsActive {
			stats.ActiveAds++
		}
		stats.TotalImpressions += ad.ImpressionCount
		stats.TotalClicks += ad.ClickCount
		stats.TotalSpent += ad.Spent
		stats.TotalBudget += ad.Budget
		stats.CategoryBreakdown[ad.Category]++

		if top == nil || ad.CTR() > top.CTR() {
			top = ad
		}
	}

	if stats.TotalImpressions > 0 {
		stats.AverageCTR = float64(stats.TotalClicks) / float64(stats.TotalImpressions) * 100
	}
	if top != nil {
		best := *top
		stats.TopPerformingAd = &best
	}
	return stats
}
