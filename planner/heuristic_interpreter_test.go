package planner

import (
	"context"
	"testing"
	"time"

	"partypilot/config"
	"partypilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins "now" so date fallbacks are deterministic.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func newTestInterpreter(now time.Time) *HeuristicInterpreter {
	return NewHeuristicInterpreter(fixedClock{t: now}, config.DEFAULT_CITY, config.GROUP_SIZE_SPREAD)
}

// A Wednesday.
var testNow = time.Date(2026, time.February, 25, 10, 30, 0, 0, time.Local)

func TestInterpretPrompt_FullExample(t *testing.T) {
	h := newTestInterpreter(testNow)

	prompt := "Plan a birthday party in Brooklyn on March 5, 2026 for 14 people, mid-budget"
	skeleton := h.InterpretPrompt(context.Background(), prompt, 0)

	assert.Equal(t, "Brooklyn", skeleton.City)
	assert.Equal(t, OCCASION_BIRTHDAY, skeleton.Occasion)
	assert.Equal(t, models.BUDGET_MEDIUM, skeleton.BudgetLevel)
	assert.Equal(t, time.Date(2026, time.March, 5, 22, 0, 0, 0, time.Local), skeleton.DateStart)
	assert.Equal(t, 14, skeleton.GroupSizeMin)
	assert.Equal(t, 18, skeleton.GroupSizeMax)
	require.NotEmpty(t, skeleton.EventSlots)
	assert.Equal(t, skeleton.EventSlots[len(skeleton.EventSlots)-1].EndTime, skeleton.DateEnd)
}

func TestInterpretPrompt_AllDefaults(t *testing.T) {
	h := newTestInterpreter(testNow)

	skeleton := h.InterpretPrompt(context.Background(), "Plan something memorable", 0)

	assert.Equal(t, config.DEFAULT_CITY, skeleton.City)
	assert.Equal(t, OCCASION_NIGHT_OUT, skeleton.Occasion)
	assert.Equal(t, models.BUDGET_MEDIUM, skeleton.BudgetLevel)
	assert.Equal(t, config.DEFAULT_GROUP_SIZE, skeleton.GroupSizeMin)
	assert.Equal(t, config.DEFAULT_GROUP_SIZE+config.GROUP_SIZE_SPREAD, skeleton.GroupSizeMax)
	// Next Saturday from Wednesday Feb 25 2026 is Feb 28 at 22:00.
	assert.Equal(t, time.Date(2026, time.February, 28, 22, 0, 0, 0, time.Local), skeleton.DateStart)
}

func TestInterpretPrompt_Deterministic(t *testing.T) {
	h := newTestInterpreter(testNow)
	prompt := "Bachelor weekend in Vegas for 10 friends, premium budget"

	first := h.InterpretPrompt(context.Background(), prompt, 0)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, h.InterpretPrompt(context.Background(), prompt, 0))
	}
}

func TestInterpretPrompt_GroupSizeOverrideWins(t *testing.T) {
	h := newTestInterpreter(testNow)

	skeleton := h.InterpretPrompt(context.Background(), "party for 14 people", 20)

	assert.Equal(t, 20, skeleton.GroupSizeMin)
	assert.Equal(t, 24, skeleton.GroupSizeMax)
}

func TestInferCity(t *testing.T) {
	h := newTestInterpreter(testNow)

	tests := []struct {
		prompt string
		city   string
		ok     bool
	}{
		{"a party in brooklyn", "Brooklyn", true},
		{"big night in NYC", "New York City", true},
		{"we fly to new york next month", "New York City", true},
		{"vegas baby", "Las Vegas", true},
		{"somewhere warm", "", false},
	}
	for _, test := range tests {
		city, ok := h.InferCity(test.prompt)
		assert.Equal(t, test.ok, ok, test.prompt)
		assert.Equal(t, test.city, city, test.prompt)
	}
}

func TestInferGroupSize(t *testing.T) {
	h := newTestInterpreter(testNow)

	tests := []struct {
		prompt string
		size   int
		ok     bool
	}{
		{"for 14 people", 14, true},
		{"inviting 8 friends over", 8, true},
		{"about 25 guests", 25, true},
		{"3 attendees confirmed", 3, true},
		{"a large group", 0, false},
	}
	for _, test := range tests {
		size, ok := h.InferGroupSize(test.prompt)
		assert.Equal(t, test.ok, ok, test.prompt)
		assert.Equal(t, test.size, size, test.prompt)
	}
}

func TestInferOccasion(t *testing.T) {
	h := newTestInterpreter(testNow)

	// "bachelorette" must not be swallowed by the "bachelor" substring.
	assert.Equal(t, OCCASION_BACHELORETTE, h.InferOccasion("her bachelorette trip"))
	assert.Equal(t, OCCASION_BACHELOR, h.InferOccasion("his bachelor trip"))
	assert.Equal(t, OCCASION_BIRTHDAY, h.InferOccasion("a 30th birthday bash"))
	assert.Equal(t, OCCASION_CORPORATE, h.InferOccasion("corporate offsite evening"))
	assert.Equal(t, OCCASION_NIGHT_OUT, h.InferOccasion("just drinks"))
}

func TestInferBudget(t *testing.T) {
	h := newTestInterpreter(testNow)

	assert.Equal(t, models.BUDGET_HIGH, h.InferBudget("premium experience please"))
	assert.Equal(t, models.BUDGET_MEDIUM, h.InferBudget("mid-budget works"))
	assert.Equal(t, models.BUDGET_MEDIUM, h.InferBudget("medium spend"))
	assert.Equal(t, models.BUDGET_LOW, h.InferBudget("keep it cheap"))
	assert.Equal(t, models.BUDGET_LOW, h.InferBudget("we are on a tight budget"))
	assert.Equal(t, models.BUDGET_MEDIUM, h.InferBudget("whatever works"))
}

func TestInferDate(t *testing.T) {
	h := newTestInterpreter(testNow)

	tests := []struct {
		prompt string
		want   time.Time
		ok     bool
	}{
		{"on March 5, 2026", time.Date(2026, time.March, 5, 22, 0, 0, 0, time.Local), true},
		{"on march 5th 2026", time.Date(2026, time.March, 5, 22, 0, 0, 0, time.Local), true},
		// Year omitted: current year.
		{"on December 31", time.Date(2026, time.December, 31, 22, 0, 0, 0, time.Local), true},
		{"on 3/5/2026", time.Date(2026, time.March, 5, 22, 0, 0, 0, time.Local), true},
		// Two-digit year means 20YY.
		{"on 7/4/26", time.Date(2026, time.July, 4, 22, 0, 0, 0, time.Local), true},
		{"sometime soon", time.Time{}, false},
	}
	for _, test := range tests {
		got, ok := h.InferDate(test.prompt)
		assert.Equal(t, test.ok, ok, test.prompt)
		if test.ok {
			assert.Equal(t, test.want, got, test.prompt)
		}
	}
}

func TestNextSaturdayRollsAFullWeek(t *testing.T) {
	// Saturday Feb 28 2026.
	saturday := time.Date(2026, time.February, 28, 9, 0, 0, 0, time.Local)
	h := newTestInterpreter(saturday)

	skeleton := h.InterpretPrompt(context.Background(), "no date mentioned", 0)

	// Never "today": the fallback rolls to Saturday one week later.
	assert.Equal(t, time.Date(2026, time.March, 7, 22, 0, 0, 0, time.Local), skeleton.DateStart)
}

func TestBuildEventSlots_WindowsAreConsecutive(t *testing.T) {
	start := time.Date(2026, time.March, 5, 22, 0, 0, 0, time.Local)
	slots := BuildEventSlots(OCCASION_BIRTHDAY, models.BUDGET_HIGH, start)

	require.Len(t, slots, 3)
	for i, slot := range slots {
		assert.Equal(t, i, slot.OrderIndex)
		assert.True(t, slot.EndTime.After(slot.StartTime))
		if i > 0 {
			assert.Equal(t, slots[i-1].EndTime, slot.StartTime)
		}
		require.NotNil(t, slot.PrimaryRequirements)
		assert.Equal(t, "$$$", slot.PrimaryRequirements.PriceLevel)
		require.NotEmpty(t, slot.BackupRequirements)
	}
	assert.Equal(t, start, slots[0].StartTime)
}
