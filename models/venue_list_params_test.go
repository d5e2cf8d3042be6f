package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueListParamsFromValues(t *testing.T) {
	vals := url.Values{}
	vals.Set("city", "Brooklyn")
	vals.Set("tag", "bar")
	vals.Set("price_level", "$$")
	vals.Set("group_friendly", "true")
	vals.Set("rating_min", "4.2")
	vals.Set("bogus", "ignored")

	p := VenueListParamsFromValues(vals)

	assert.Equal(t, "Brooklyn", p.City)
	assert.Equal(t, "bar", p.Tag)
	assert.Equal(t, "$$", p.PriceLevel)
	require.NotNil(t, p.GroupFriendly)
	assert.True(t, *p.GroupFriendly)
	require.NotNil(t, p.RatingMin)
	assert.Equal(t, 4.2, *p.RatingMin)
}

func TestVenueListParamsFromValues_IgnoresUnparseable(t *testing.T) {
	vals := url.Values{}
	vals.Set("group_friendly", "maybe")
	vals.Set("rating_min", "high")

	p := VenueListParamsFromValues(vals)

	assert.Nil(t, p.GroupFriendly)
	assert.Nil(t, p.RatingMin)
}

func TestVenueListParams_Matches(t *testing.T) {
	gf := true
	min := 4.0

	tests := []struct {
		name   string
		params VenueListParams
		want   bool
	}{
		{"Empty params match anything", VenueListParams{}, true},
		{"Price level hit", VenueListParams{PriceLevel: "$$"}, true},
		{"Price level miss", VenueListParams{PriceLevel: "$$$"}, false},
		{"Group friendly hit", VenueListParams{GroupFriendly: &gf}, true},
		{"Rating above minimum", VenueListParams{RatingMin: &min}, true},
		{"Tag hit", VenueListParams{Tag: "cocktail"}, true},
		{"Tag miss", VenueListParams{Tag: "karaoke"}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.params.Matches("$$", true, 4.5, []string{"bar", "cocktail"})
			assert.Equal(t, test.want, got)
		})
	}
}
