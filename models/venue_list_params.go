package models

import (
	"net/url"
	"strconv"
)

// VenueListParams mirrors the query args of GET /v1/venues. Zero-values mean
// "no filter".
type VenueListParams struct {
	City          string
	Tag           string
	PriceLevel    string
	GroupFriendly *bool
	RatingMin     *float64
}

// VenueListParamsFromValues parses the supported query args, ignoring
// anything it does not recognise.
func VenueListParamsFromValues(vals url.Values) VenueListParams {
	p := VenueListParams{
		City:       vals.Get("city"),
		Tag:        vals.Get("tag"),
		PriceLevel: vals.Get("price_level"),
	}
	if v := vals.Get("group_friendly"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			p.GroupFriendly = &b
		}
	}
	if v := vals.Get("rating_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			p.RatingMin = &f
		}
	}
	return p
}

// Matches reports whether a venue's soft attributes pass the list filters.
// City is matched upstream by the repository query.
func (p VenueListParams) Matches(priceLevel string, groupFriendly bool, rating float64, tags []string) bool {
	if p.PriceLevel != "" && priceLevel != p.PriceLevel {
		return false
	}
	if p.GroupFriendly != nil && groupFriendly != *p.GroupFriendly {
		return false
	}
	if p.RatingMin != nil && rating < *p.RatingMin {
		return false
	}
	if p.Tag != "" {
		found := false
		for _, t := range tags {
			if t == p.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
