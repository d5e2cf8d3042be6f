package util

import (
	"encoding/json"
	"fmt"
	"os"

	"partypilot/models"
	"partypilot/models/venue"
)

// ReadVenueSeedFromJSON loads the bundled venue seed list from JSON on disk.
func ReadVenueSeedFromJSON(filePath string) ([]venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venues []venue.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue seed: %w", err)
	}
	return venues, nil
}

// ReadTripSkeletonFromJSON loads a TripSkeleton from JSON on disk. Backs the
// stub interpreter.
func ReadTripSkeletonFromJSON(filePath string) (*models.TripSkeleton, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var skeleton models.TripSkeleton
	if err := json.Unmarshal(data, &skeleton); err != nil {
		return nil, fmt.Errorf("failed to unmarshal TripSkeleton: %w", err)
	}
	return &skeleton, nil
}

// PrintTripSkeletonPartially prints key fields of a TripSkeleton.
func PrintTripSkeletonPartially(s *models.TripSkeleton) {
	fmt.Printf("City: %s\n", s.City)
	fmt.Printf("Occasion: %s (budget: %s)\n", s.Occasion, s.BudgetLevel)
	fmt.Printf("Dates: %s -> %s\n", s.DateStart, s.DateEnd)
	fmt.Printf("Group size: %d-%d\n", s.GroupSizeMin, s.GroupSizeMax)
	fmt.Printf("Slots: %d\n", len(s.EventSlots))
	for _, slot := range s.EventSlots {
		fmt.Printf("  [%d] %s (%s) %s\n", slot.OrderIndex, slot.Title, slot.Type, slot.StartTime)
	}
}
