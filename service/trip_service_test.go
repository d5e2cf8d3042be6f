package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"partypilot/matcher"
	"partypilot/models"
	"partypilot/models/venue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedInterpreter returns a pre-built skeleton for any prompt.
type fixedInterpreter struct {
	skeleton models.TripSkeleton
}

func (f *fixedInterpreter) InterpretPrompt(ctx context.Context, prompt string, groupSizeOverride int) *models.TripSkeleton {
	s := f.skeleton
	return &s
}

// memoryTripStore captures saved plans in memory.
type memoryTripStore struct {
	trips  []models.Trip
	events [][]models.Event
	err    error
}

func (m *memoryTripStore) SaveTripPlan(ctx context.Context, trip models.Trip, events []models.Event) error {
	if m.err != nil {
		return m.err
	}
	m.trips = append(m.trips, trip)
	m.events = append(m.events, events)
	return nil
}

func (m *memoryTripStore) List(ctx context.Context) ([]models.Trip, error) {
	return m.trips, nil
}

func (m *memoryTripStore) GetWithEvents(ctx context.Context, tripID string) (*models.TripWithEvents, error) {
	for i, t := range m.trips {
		if t.TripID == tripID {
			return &models.TripWithEvents{Trip: t, Events: m.events[i]}, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memoryTripStore) Delete(ctx context.Context, tripID string) error {
	return nil
}

type staticVenueSource struct {
	venues []venue.Venue
	err    error
}

func (s *staticVenueSource) FetchVenuesByCity(ctx context.Context, city string) ([]venue.Venue, error) {
	return s.venues, s.err
}

func testSkeleton() models.TripSkeleton {
	gf := true
	start := time.Date(2026, time.March, 5, 22, 0, 0, 0, time.UTC)
	return models.TripSkeleton{
		City:         "Brooklyn",
		DateStart:    start,
		DateEnd:      start.Add(4 * time.Hour),
		GroupSizeMin: 14,
		GroupSizeMax: 18,
		Occasion:     "birthday",
		BudgetLevel:  models.BUDGET_MEDIUM,
		EventSlots: []models.EventSlot{
			{
				OrderIndex: 0, Type: models.SLOT_TYPE_MEAL, Title: "Birthday dinner",
				StartTime: start, EndTime: start.Add(2 * time.Hour),
				PrimaryRequirements: &models.VenueRequirements{Tags: []string{"restaurant"}, GroupFriendly: &gf},
			},
			{
				OrderIndex: 1, Type: models.SLOT_TYPE_BAR, Title: "Birthday drinks",
				StartTime: start.Add(2 * time.Hour), EndTime: start.Add(4 * time.Hour),
				PrimaryRequirements: &models.VenueRequirements{Tags: []string{"bar"}, GroupFriendly: &gf},
			},
		},
	}
}

func testVenues() []venue.Venue {
	return []venue.Venue{
		{VenueID: "v1", VenueName: "Mama Rosa Trattoria", City: "Brooklyn", GroupFriendly: true, Tags: []string{"restaurant"}},
		{VenueID: "v2", VenueName: "Juniper Cocktail Bar", City: "Brooklyn", GroupFriendly: true, Tags: []string{"bar"}},
		{VenueID: "v3", VenueName: "Night Owl Club", City: "Brooklyn", GroupFriendly: true, Tags: []string{"club"}},
	}
}

func TestTripService_PlanTripPersistsOneEventPerSlot(t *testing.T) {
	store := &memoryTripStore{}
	m := matcher.NewVenueMatcher(&staticVenueSource{venues: testVenues()})
	ts := NewTripService(&fixedInterpreter{skeleton: testSkeleton()}, m, store, false)

	resp, err := ts.PlanTrip(context.Background(), models.PlanTripRequest{Prompt: "birthday in brooklyn"})

	require.NoError(t, err)
	require.Len(t, resp.Events, 2)

	// Best venue attached per slot.
	require.NotNil(t, resp.Events[0].Venue)
	assert.Equal(t, "v1", resp.Events[0].Venue.VenueID)
	require.NotNil(t, resp.Events[1].Venue)
	assert.Equal(t, "v2", resp.Events[1].Venue.VenueID)

	// Backups respect the default target.
	for _, e := range resp.Events {
		assert.LessOrEqual(t, len(e.Backups), 1)
	}

	// Persisted atomically: one trip, both events.
	require.Len(t, store.trips, 1)
	require.Len(t, store.events, 1)
	assert.Len(t, store.events[0], 2)
	assert.Equal(t, store.trips[0].TripID, store.events[0][0].TripID)
	assert.Equal(t, "Brooklyn", store.trips[0].City)
	assert.Equal(t, "v1", store.events[0][0].VenueID)
}

func TestTripService_EventWithoutVenueWhenPoolIsEmpty(t *testing.T) {
	store := &memoryTripStore{}
	m := matcher.NewVenueMatcher(&staticVenueSource{venues: nil})
	ts := NewTripService(&fixedInterpreter{skeleton: testSkeleton()}, m, store, false)

	resp, err := ts.PlanTrip(context.Background(), models.PlanTripRequest{Prompt: "birthday in brooklyn"})

	// A vague pool never fails planning: events are created without venues.
	require.NoError(t, err)
	require.Len(t, resp.Events, 2)
	for _, e := range resp.Events {
		assert.Nil(t, e.Venue)
		assert.Empty(t, e.Event.VenueID)
	}
	require.Len(t, store.trips, 1)
}

func TestTripService_LookupErrorPropagates(t *testing.T) {
	store := &memoryTripStore{}
	lookupErr := errors.New("connection refused")
	m := matcher.NewVenueMatcher(&staticVenueSource{err: lookupErr})
	ts := NewTripService(&fixedInterpreter{skeleton: testSkeleton()}, m, store, false)

	_, err := ts.PlanTrip(context.Background(), models.PlanTripRequest{Prompt: "birthday"})

	require.Error(t, err)
	assert.ErrorIs(t, err, lookupErr)
	// Nothing persisted on failure.
	assert.Empty(t, store.trips)
}

func TestTripService_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("deadlock detected")
	store := &memoryTripStore{err: storeErr}
	m := matcher.NewVenueMatcher(&staticVenueSource{venues: testVenues()})
	ts := NewTripService(&fixedInterpreter{skeleton: testSkeleton()}, m, store, false)

	_, err := ts.PlanTrip(context.Background(), models.PlanTripRequest{Prompt: "birthday"})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestTripService_BackupTargetFromRequest(t *testing.T) {
	store := &memoryTripStore{}
	m := matcher.NewVenueMatcher(&staticVenueSource{venues: testVenues()})
	ts := NewTripService(&fixedInterpreter{skeleton: testSkeleton()}, m, store, false)

	resp, err := ts.PlanTrip(context.Background(),
		models.PlanTripRequest{Prompt: "birthday", BackupTarget: 2})

	require.NoError(t, err)
	for _, e := range resp.Events {
		assert.LessOrEqual(t, len(e.Backups), 2)
	}
}
