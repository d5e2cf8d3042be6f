package models

import (
	"time"

	"partypilot/models/venue"
)

// Budget levels inferred from a prompt.
const (
	BUDGET_LOW    = "low"
	BUDGET_MEDIUM = "medium"
	BUDGET_HIGH   = "high"
)

// Event slot types.
const (
	SLOT_TYPE_MEETUP  = "meetup"
	SLOT_TYPE_MEAL    = "meal"
	SLOT_TYPE_BAR     = "bar"
	SLOT_TYPE_CLUB    = "club"
	SLOT_TYPE_TRANSIT = "transit"
	SLOT_TYPE_OTHER   = "other"
)

// VenueRequirements holds the soft-match criteria used to score candidate
// venues for one slot. Every field is optional; an absent field contributes
// nothing to the score.
type VenueRequirements struct {
	Tags          []string `json:"tags,omitempty"`
	Area          string   `json:"area,omitempty"`
	GroupFriendly *bool    `json:"group_friendly,omitempty"`
	DressCode     string   `json:"dress_code,omitempty"`
	PriceLevel    string   `json:"price_level,omitempty"`
}

// EventSlot is one abstract stop in an itinerary before a concrete venue is
// attached.
type EventSlot struct {
	OrderIndex          int                 `json:"order_index"`
	Type                string              `json:"type"`
	Title               string              `json:"title"`
	StartTime           time.Time           `json:"start_time"`
	EndTime             time.Time           `json:"end_time"`
	PrimaryRequirements *VenueRequirements  `json:"primary_requirements,omitempty"`
	BackupRequirements  []VenueRequirements `json:"backup_requirements,omitempty"`
}

// TripSkeleton is the inferred, not-yet-persisted shape of a planned trip.
// It is produced by a PromptInterpreter and consumed immediately by the
// matching/persistence step.
type TripSkeleton struct {
	City         string      `json:"city"`
	DateStart    time.Time   `json:"date_start"`
	DateEnd      time.Time   `json:"date_end"`
	GroupSizeMin int         `json:"group_size_min"`
	GroupSizeMax int         `json:"group_size_max"`
	Occasion     string      `json:"occasion"`
	BudgetLevel  string      `json:"budget_level"`
	EventSlots   []EventSlot `json:"event_slots"`
}

// MatchResult is the venue matcher's output for one slot. Primary is nil when
// no venue scored non-negative; Backups are best-first and never include the
// primary.
type MatchResult struct {
	Primary *venue.Venue  `json:"primary,omitempty"`
	Backups []venue.Venue `json:"backups"`
}

// Trip is the persisted form of a planned trip.
type Trip struct {
	TripID       string    `json:"trip_id"`
	Prompt       string    `json:"prompt"`
	City         string    `json:"city"`
	Occasion     string    `json:"occasion"`
	BudgetLevel  string    `json:"budget_level"`
	DateStart    time.Time `json:"date_start"`
	DateEnd      time.Time `json:"date_end"`
	GroupSizeMin int       `json:"group_size_min"`
	GroupSizeMax int       `json:"group_size_max"`
	CreatedAt    time.Time `json:"created_at"`
}

// Event is one persisted itinerary stop. VenueID is empty when the slot had
// no acceptable primary match.
type Event struct {
	EventID        string    `json:"event_id"`
	TripID         string    `json:"trip_id"`
	OrderIndex     int       `json:"order_index"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	VenueID        string    `json:"venue_id,omitempty"`
	BackupVenueIDs []string  `json:"backup_venue_ids,omitempty"`
}
