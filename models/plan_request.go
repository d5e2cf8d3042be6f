package models

import "partypilot/models/venue"

// PlanTripRequest is the body of POST /v1/trips/plan.
type PlanTripRequest struct {
	Prompt string `json:"prompt"`

	// GroupSizeOverride, when > 0, wins over anything inferred from the prompt.
	GroupSizeOverride int `json:"group_size_override,omitempty"`

	// BackupTarget is how many backup venues to pick per slot. Defaults to 1.
	BackupTarget int `json:"backup_target,omitempty"`
}

// PlannedEvent pairs a persisted Event with the venues chosen for it.
type PlannedEvent struct {
	Event   Event         `json:"event"`
	Venue   *venue.Venue  `json:"venue,omitempty"`
	Backups []venue.Venue `json:"backups,omitempty"`
}

// PlanTripResponse is the result of a planning request.
type PlanTripResponse struct {
	Trip   Trip           `json:"trip"`
	Events []PlannedEvent `json:"events"`
}

// TripWithEvents is the detail form returned by GET /v1/trips/{id}.
type TripWithEvents struct {
	Trip   Trip    `json:"trip"`
	Events []Event `json:"events"`
}
