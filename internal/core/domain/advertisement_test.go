package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvertisement(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ad, err := NewAdvertisement(NewAdvertisementParams{
		ID:           "ad-1",
		AdvertiserID: "adv-1",
		Title:        "  Black pork BBQ  ",
		Category:     CategoryRestaurant,
		Tags:         []string{"bbq", " ", "jeju "},
		StartDate:    now,
		EndDate:      now.AddDate(0, 1, 0),
		Budget:       50000,
	}, now)
	require.NoError(t, err)

	assert.Equal(t, "Black pork BBQ", ad.Title)
	assert.Equal(t, []string{"bbq", "jeju"}, ad.Tags)
	assert.True(t, ad.IsActive)
	assert.Zero(t, ad.Spent)
	assert.Zero(t, ad.ImpressionCount)
	assert.Zero(t, ad.ClickCount)
	assert.Zero(t, ad.CTR())
	assert.Equal(t, now, ad.CreatedAt)
}

func TestNewAdvertisementNilTags(t *testing.T) {
	now := time.Now()
	ad, err := NewAdvertisement(NewAdvertisementParams{
		Category:  CategoryOther,
		StartDate: now,
		EndDate:   now.Add(time.Hour),
	}, now)
	require.NoError(t, err)
	assert.NotNil(t, ad.Tags)
	assert.Empty(t, ad.Tags)
}

func TestNewAdvertisementRejects(t *testing.T) {
	now := time.Now()
	valid := NewAdvertisementParams{Category: CategoryNature, StartDate: now, EndDate: now.Add(time.Hour)}

	p := valid
	p.Category = "casino"
	_, err := NewAdvertisement(p, now)
	assert.ErrorIs(t, err, ErrInvalidCategory)

	p = valid
	p.EndDate = p.StartDate
	_, err = NewAdvertisement(p, now)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	p = valid
	p.Budget = -1
	_, err = NewAdvertisement(p, now)
	assert.ErrorIs(t, err, ErrNegativeBudget)
}

func TestCTR(t *testing.T) {
	assert.Equal(t, 0.0, Advertisement{ClickCount: 5}.CTR())
	assert.InDelta(t, 12.5, Advertisement{ImpressionCount: 80, ClickCount: 10}.CTR(), 1e-9)
}

func TestAdvertisementJSONCarriesCTR(t *testing.T) {
	ad := Advertisement{ID: "ad-1", Budget: 5000, ImpressionCount: 100, ClickCount: 10}

	data, err := json.Marshal(ad)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.InDelta(t, 10.0, fields["ctr"], 1e-9)
	assert.Equal(t, "ad-1", fields["id"])
	assert.InDelta(t, 5000.0, fields["budget"], 0)

	ptr, err := json.Marshal(&ad)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(ptr))

	var back Advertisement
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, ad, back)
}
