package planner

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"partypilot/config"
	"partypilot/models"
)

// cityRule maps prompt keywords to a canonical city name. Rules are ordered;
// the first match wins.
type cityRule struct {
	keywords []string
	city     string
}

var cityRules = []cityRule{
	{[]string{"brooklyn"}, "Brooklyn"},
	{[]string{"manhattan"}, "Manhattan"},
	{[]string{"new york", "nyc"}, "New York City"},
	{[]string{"los angeles", "west hollywood"}, "Los Angeles"},
	{[]string{"las vegas", "vegas"}, "Las Vegas"},
	{[]string{"miami", "south beach"}, "Miami"},
	{[]string{"chicago"}, "Chicago"},
	{[]string{"austin"}, "Austin"},
	{[]string{"nashville"}, "Nashville"},
	{[]string{"new orleans"}, "New Orleans"},
}

// occasionRules are ordered so "bachelorette" is tested before its
// "bachelor" substring.
var occasionRules = []struct {
	keyword  string
	occasion string
}{
	{"bachelorette", OCCASION_BACHELORETTE},
	{"bachelor", OCCASION_BACHELOR},
	{"birthday", OCCASION_BIRTHDAY},
	{"corporate", OCCASION_CORPORATE},
}

// budgetRules are ordered high, medium, low so "mid-budget" resolves to
// medium before the "budget" keyword pulls it low.
var budgetRules = []struct {
	keywords []string
	level    string
}{
	{[]string{"high", "premium"}, models.BUDGET_HIGH},
	{[]string{"mid", "medium"}, models.BUDGET_MEDIUM},
	{[]string{"cheap", "low", "budget"}, models.BUDGET_LOW},
}

var groupSizePattern = regexp.MustCompile(`(\d+)\s*(?:people|friends|guests|attendees)`)

var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

var textualDatePattern = regexp.MustCompile(
	`(january|february|march|april|may|june|july|august|september|october|november|december)` +
		`\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s*(\d{4}))?`)

var numericDatePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`)

// HeuristicInterpreter extracts trip parameters from a prompt with ordered
// pattern rules, degrading to configured defaults whenever extraction fails.
type HeuristicInterpreter struct {
	clock            Clock
	defaultCity      string
	defaultGroupSize int
	groupSizeSpread  int
}

// NewHeuristicInterpreter constructs the rule-based interpreter. The clock is
// injected so the "next Saturday" fallback stays testable.
func NewHeuristicInterpreter(clock Clock, defaultCity string, groupSizeSpread int) *HeuristicInterpreter {
	return &HeuristicInterpreter{
		clock:            clock,
		defaultCity:      defaultCity,
		defaultGroupSize: config.DEFAULT_GROUP_SIZE,
		groupSizeSpread:  groupSizeSpread,
	}
}

// InterpretPrompt assembles the full skeleton. It is pure besides the
// injected clock and never fails.
func (h *HeuristicInterpreter) InterpretPrompt(ctx context.Context, prompt string, groupSizeOverride int) *models.TripSkeleton {
	city, ok := h.InferCity(prompt)
	if !ok {
		city = h.defaultCity
	}

	groupSizeMin := groupSizeOverride
	if groupSizeMin <= 0 {
		if inferred, ok := h.InferGroupSize(prompt); ok {
			groupSizeMin = inferred
		} else {
			groupSizeMin = h.defaultGroupSize
		}
	}
	if groupSizeMin < 1 {
		groupSizeMin = 1
	}

	occasion := h.InferOccasion(prompt)
	budget := h.InferBudget(prompt)

	dateStart, ok := h.InferDate(prompt)
	if !ok {
		dateStart = h.nextSaturday()
	}

	slots := BuildEventSlots(occasion, budget, dateStart)
	dateEnd := dateStart
	if len(slots) > 0 {
		dateEnd = slots[len(slots)-1].EndTime
	}

	return &models.TripSkeleton{
		City:         city,
		DateStart:    dateStart,
		DateEnd:      dateEnd,
		GroupSizeMin: groupSizeMin,
		GroupSizeMax: groupSizeMin + h.groupSizeSpread,
		Occasion:     occasion,
		BudgetLevel:  budget,
		EventSlots:   slots,
	}
}

// InferCity tests the ordered city keyword rules; the boolean is false when
// no rule matched.
func (h *HeuristicInterpreter) InferCity(prompt string) (string, bool) {
	lower := strings.ToLower(prompt)
	for _, rule := range cityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.city, true
			}
		}
	}
	return "", false
}

// InferGroupSize matches the first "<n> people|friends|guests|attendees"
// occurrence.
func (h *HeuristicInterpreter) InferGroupSize(prompt string) (int, bool) {
	m := groupSizePattern.FindStringSubmatch(strings.ToLower(prompt))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// InferOccasion always returns a value; "night out" is the default.
func (h *HeuristicInterpreter) InferOccasion(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, rule := range occasionRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.occasion
		}
	}
	return OCCASION_NIGHT_OUT
}

// InferBudget always returns a level; medium is the default.
func (h *HeuristicInterpreter) InferBudget(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, rule := range budgetRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.level
			}
		}
	}
	return models.BUDGET_MEDIUM
}

// InferDate tries the textual "Month Day[, Year]" pattern and then the
// numeric M/D/Y form. The event hour is fixed at 22:00 local.
func (h *HeuristicInterpreter) InferDate(prompt string) (time.Time, bool) {
	lower := strings.ToLower(prompt)

	if m := textualDatePattern.FindStringSubmatch(lower); m != nil {
		month := monthNames[m[1]]
		day, err := strconv.Atoi(m[2])
		if err == nil && day >= 1 && day <= 31 {
			year := h.clock.Now().Year()
			if m[3] != "" {
				if y, err := strconv.Atoi(m[3]); err == nil {
					year = y
				}
			}
			return time.Date(year, month, day, config.EVENT_START_HOUR, 0, 0, 0, time.Local), true
		}
	}

	if m := numericDatePattern.FindStringSubmatch(lower); m != nil {
		month, errM := strconv.Atoi(m[1])
		day, errD := strconv.Atoi(m[2])
		year, errY := strconv.Atoi(m[3])
		if errM == nil && errD == nil && errY == nil &&
			month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			if year < 100 {
				year += 2000
			}
			return time.Date(year, time.Month(month), day, config.EVENT_START_HOUR, 0, 0, 0, time.Local), true
		}
	}

	return time.Time{}, false
}

// nextSaturday computes the date fallback: the coming Saturday at 22:00, and
// a full week out when today already is Saturday.
func (h *HeuristicInterpreter) nextSaturday() time.Time {
	now := h.clock.Now()
	days := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	target := now.AddDate(0, 0, days)
	return time.Date(target.Year(), target.Month(), target.Day(),
		config.EVENT_START_HOUR, 0, 0, 0, time.Local)
}
