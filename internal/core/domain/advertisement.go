package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Category classifies an advertisement for feed filtering and reporting.
type Category string

const (
	CategoryRestaurant    Category = "restaurant"
	CategoryAccommodation Category = "accommodation"
	CategoryActivity      Category = "activity"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryCulture       Category = "culture"
	CategoryNature        Category = "nature"
	CategoryOther         Category = "other"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryRestaurant,
	CategoryAccommodation,
	CategoryActivity,
	CategoryTransport,
	CategoryShopping,
	CategoryCulture,
	CategoryNature,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

var (
	ErrInvalidCategory = errors.New("unknown category")
	ErrInvalidSchedule = errors.New("start date must be before end date")
	ErrNegativeBudget  = errors.New("budget must not be negative")
)

// Advertisement is one paid placement shown in the feed.
// Money fields are stored in integer currency units (won).
type Advertisement struct {
	ID           string    `json:"id"`
	AdvertiserID string    `json:"advertiserId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	LinkURL      string    `json:"linkUrl"`
	Category     Category  `json:"category"`
	Location     string    `json:"location,omitempty"`
	Tags         []string  `json:"tags"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`

	// Budget of zero means no cap.
	Budget          int64 `json:"budget"`
	Spent           int64 `json:"spent"`
	ImpressionCount int64 `json:"impressions"`
	ClickCount      int64 `json:"clicks"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAdvertisementParams carries the advertiser supplied fields of a new ad.
type NewAdvertisementParams struct {
	ID           string
	AdvertiserID string
	Title        string
	Description  string
	ImageURL     string
	LinkURL      string
	Category     Category
	Location     string
	Tags         []string
	StartDate    time.Time
	EndDate      time.Time
	Budget       int64
}

// NewAdvertisement builds a fresh ad with zeroed counters and the active flag
// set. Optional fields are normalised here so the rest of the code never has
// to guess about missing values.
func NewAdvertisement(p NewAdvertisementParams, now time.Time) (Advertisement, error) {
	if !p.Category.Valid() {
		return Advertisement{}, ErrInvalidCategory
	}
	if !p.StartDate.Before(p.EndDate) {
		return Advertisement{}, ErrInvalidSchedule
	}
	if p.Budget < 0 {
		return Advertisement{}, ErrNegativeBudget
	}
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return Advertisement{
		ID:           p.ID,
		AdvertiserID: p.AdvertiserID,
		Title:        strings.TrimSpace(p.Title),
		Description:  strings.TrimSpace(p.Description),
		ImageURL:     p.ImageURL,
		LinkURL:      p.LinkURL,
		Category:     p.Category,
		Location:     strings.TrimSpace(p.Location),
		Tags:         tags,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Budget:       p.Budget,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// CTR is the click-through rate as a percentage.
func (a Advertisement) CTR() float64 {
	if a.ImpressionCount <= 0 {
		return 0
	}
	return float64(a.ClickCount) / float64(a.ImpressionCount) * 100
}

// MarshalJSON adds the derived ctr to the stored fields. Decoding ignores it.
func (a Advertisement) MarshalJSON() ([]byte, error) {
	type stored Advertisement
	return json.Marshal(struct {
		stored
		CTR float64 `json:"ctr"`
	}{stored(a), a.CTR()})
}
