package services

import (
	"context"
	"log"
	"time"

	"partypilot/config"
	"partypilot/matcher"
	"partypilot/models"
	"partypilot/planner"
	"partypilot/util"

	"github.com/google/uuid"
)

// Matcher is the slot-matching operation the trip service depends on.
type Matcher interface {
	FindBestMatches(ctx context.Context, city string, primaryReqs *models.VenueRequirements,
		backupReqsList []models.VenueRequirements, backupTarget int) (*models.MatchResult, error)
}

// TripStore is the slice of the trip repository the service needs.
type TripStore interface {
	SaveTripPlan(ctx context.Context, trip models.Trip, events []models.Event) error
	List(ctx context.Context) ([]models.Trip, error)
	GetWithEvents(ctx context.Context, tripID string) (*models.TripWithEvents, error)
	Delete(ctx context.Context, tripID string) error
}

// TripService orchestrates a planning request: interpret the prompt, match a
// venue per slot, persist the whole plan atomically.
type TripService struct {
	interpreter planner.PromptInterpreter
	matcher     Matcher
	tripStore   TripStore
	plotScores  bool
}

// NewTripService constructs a TripService with all collaborators injected.
func NewTripService(interpreter planner.PromptInterpreter, m Matcher, tripStore TripStore, plotScores bool) *TripService {
	return &TripService{
		interpreter: interpreter,
		matcher:     m,
		tripStore:   tripStore,
		plotScores:  plotScores,
	}
}

// PlanTrip runs the full pipeline. It fails only when the venue lookup or the
// persistence layer fails, never because of vague prompt text.
func (ts *TripService) PlanTrip(ctx context.Context, req models.PlanTripRequest) (*models.PlanTripResponse, error) {
	skeleton := ts.interpreter.InterpretPrompt(ctx, req.Prompt, req.GroupSizeOverride)

	backupTarget := req.BackupTarget
	if backupTarget <= 0 {
		backupTarget = config.DEFAULT_BACKUP_TARGET
	}

	trip := models.Trip{
		TripID:       uuid.New().String(),
		Prompt:       req.Prompt,
		City:         skeleton.City,
		Occasion:     skeleton.Occasion,
		BudgetLevel:  skeleton.BudgetLevel,
		DateStart:    skeleton.DateStart,
		DateEnd:      skeleton.DateEnd,
		GroupSizeMin: skeleton.GroupSizeMin,
		GroupSizeMax: skeleton.GroupSizeMax,
		CreatedAt:    time.Now().UTC(),
	}

	events := make([]models.Event, 0, len(skeleton.EventSlots))
	planned := make([]models.PlannedEvent, 0, len(skeleton.EventSlots))
	var slotScores []util.SlotScore

	for _, slot := range skeleton.EventSlots {
		match, err := ts.matcher.FindBestMatches(ctx, skeleton.City,
			slot.PrimaryRequirements, slot.BackupRequirements, backupTarget)
		if err != nil {
			return nil, err
		}

		event := models.Event{
			EventID:    uuid.New().String(),
			TripID:     trip.TripID,
			OrderIndex: slot.OrderIndex,
			Type:       slot.Type,
			Title:      slot.Title,
			StartTime:  slot.StartTime,
			EndTime:    slot.EndTime,
		}
		if match.Primary != nil {
			event.VenueID = match.Primary.VenueID
			slotScores = append(slotScores, util.SlotScore{
				SlotTitle: slot.Title,
				VenueName: match.Primary.VenueName,
				Score:     matcher.ScoreVenue(*match.Primary, slot.PrimaryRequirements),
			})
		} else {
			log.Printf("[TripService] no acceptable venue for slot %d (%s) in %s",
				slot.OrderIndex, slot.Title, skeleton.City)
		}
		for _, b := range match.Backups {
			event.BackupVenueIDs = append(event.BackupVenueIDs, b.VenueID)
		}

		events = append(events, event)
		planned = append(planned, models.PlannedEvent{
			Event:   event,
			Venue:   match.Primary,
			Backups: match.Backups,
		})
	}

	if err := ts.tripStore.SaveTripPlan(ctx, trip, events); err != nil {
		return nil, err
	}

	if ts.plotScores && len(slotScores) > 0 {
		if err := util.PlotMatchScores(trip.TripID, slotScores); err != nil {
			log.Printf("[TripService] score plot failed: %v", err)
		}
	}

	return &models.PlanTripResponse{Trip: trip, Events: planned}, nil
}

// ListTrips returns all persisted trips.
func (ts *TripService) ListTrips(ctx context.Context) ([]models.Trip, error) {
	return ts.tripStore.List(ctx)
}

// GetTrip returns a trip with its events, or postgres.ErrNotFound.
func (ts *TripService) GetTrip(ctx context.Context, tripID string) (*models.TripWithEvents, error) {
	return ts.tripStore.GetWithEvents(ctx, tripID)
}

// DeleteTrip removes a trip and its events.
func (ts *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	return ts.tripStore.Delete(ctx, tripID)
}
