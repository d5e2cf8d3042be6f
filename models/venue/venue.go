package venue

import (
	"fmt"
	"time"
)

// Venue represents a bookable place known to PartyPilot.
type Venue struct {
	VenueID      string `json:"venue_id"`
	VenueName    string `json:"venue_name"`
	VenueAddress string `json:"venue_address"`
	City         string `json:"city"`

	// PriceLevel is one of "$", "$$", "$$$", "$$$$"; empty when unknown.
	PriceLevel       string   `json:"price_level,omitempty"`
	GroupFriendly    bool     `json:"group_friendly"`
	DressCodeSummary string   `json:"dress_code_summary,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	Tags             []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(name=%s, city=%s, address=%s, price=%s)",
		v.VenueName, v.City, v.VenueAddress, v.PriceLevel)
}
