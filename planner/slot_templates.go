package planner

import (
	"time"

	"partypilot/config"
	"partypilot/models"
)

// Occasions the interpreter recognises.
const (
	OCCASION_BACHELOR      = "bachelor"
	OCCASION_BACHELORETTE  = "bachelorette"
	OCCASION_BIRTHDAY      = "birthday"
	OCCASION_CORPORATE     = "corporate"
	OCCASION_NIGHT_OUT     = "night out"
)

type slotTemplate struct {
	slotType  string
	title     string
	tags      []string
	dressCode string
}

// occasionTemplates maps an occasion to its ordered itinerary shape.
var occasionTemplates = map[string][]slotTemplate{
	OCCASION_BIRTHDAY: {
		{slotType: models.SLOT_TYPE_MEAL, title: "Birthday dinner", tags: []string{"restaurant", "dinner"}},
		{slotType: models.SLOT_TYPE_BAR, title: "Birthday drinks", tags: []string{"bar", "cocktail"}},
		{slotType: models.SLOT_TYPE_CLUB, title: "Dance floor", tags: []string{"club"}},
	},
	OCCASION_BACHELOR: {
		{slotType: models.SLOT_TYPE_MEAL, title: "Steak dinner", tags: []string{"steakhouse", "dinner"}},
		{slotType: models.SLOT_TYPE_BAR, title: "Bar crawl kickoff", tags: []string{"bar", "whiskey"}},
		{slotType: models.SLOT_TYPE_CLUB, title: "Late night club", tags: []string{"club"}},
	},
	OCCASION_BACHELORETTE: {
		{slotType: models.SLOT_TYPE_MEAL, title: "Group dinner", tags: []string{"restaurant", "dinner"}},
		{slotType: models.SLOT_TYPE_BAR, title: "Rooftop cocktails", tags: []string{"cocktail", "rooftop"}},
		{slotType: models.SLOT_TYPE_CLUB, title: "Dance party", tags: []string{"club"}},
	},
	OCCASION_CORPORATE: {
		{slotType: models.SLOT_TYPE_MEETUP, title: "Welcome reception", tags: []string{"lounge"}, dressCode: "business"},
		{slotType: models.SLOT_TYPE_MEAL, title: "Team dinner", tags: []string{"restaurant"}, dressCode: "business"},
		{slotType: models.SLOT_TYPE_BAR, title: "Nightcap", tags: []string{"bar"}},
	},
	OCCASION_NIGHT_OUT: {
		{slotType: models.SLOT_TYPE_BAR, title: "First round", tags: []string{"bar"}},
		{slotType: models.SLOT_TYPE_CLUB, title: "Late night", tags: []string{"club"}},
	},
}

// PriceLevelForBudget maps an inferred budget level to the requested venue
// price tier.
func PriceLevelForBudget(budgetLevel string) string {
	switch budgetLevel {
	case models.BUDGET_LOW:
		return "$"
	case models.BUDGET_HIGH:
		return "$$$"
	default:
		return "$$"
	}
}

// BuildEventSlots produces the ordered slots for an occasion with
// deterministic consecutive windows starting at dateStart. Unknown occasions
// get the "night out" shape.
func BuildEventSlots(occasion, budgetLevel string, dateStart time.Time) []models.EventSlot {
	templates, ok := occasionTemplates[occasion]
	if !ok {
		templates = occasionTemplates[OCCASION_NIGHT_OUT]
	}

	priceLevel := PriceLevelForBudget(budgetLevel)
	groupFriendly := true

	slots := make([]models.EventSlot, 0, len(templates))
	for i, t := range templates {
		start := dateStart.Add(time.Duration(i*config.SLOT_DURATION_HOURS) * time.Hour)
		end := start.Add(config.SLOT_DURATION_HOURS * time.Hour)

		primary := &models.VenueRequirements{
			Tags:          t.tags,
			GroupFriendly: &groupFriendly,
			DressCode:     t.dressCode,
			PriceLevel:    priceLevel,
		}

		// One looser fallback: keep only the leading tag and drop the price
		// and dress-code asks.
		backup := models.VenueRequirements{
			Tags:          t.tags[:1],
			GroupFriendly: &groupFriendly,
		}

		slots = append(slots, models.EventSlot{
			OrderIndex:          i,
			Type:                t.slotType,
			Title:               t.title,
			StartTime:           start,
			EndTime:             end,
			PrimaryRequirements: primary,
			BackupRequirements:  []models.VenueRequirements{backup},
		})
	}
	return slots
}
