package planner

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"partypilot/api/llm"
	"partypilot/models"
)

const llmSystemPrompt = `You are a party-trip planning parser. Answer ONLY with ONE JSON object with
exactly this schema (no extra fields):

{
  "city": "string",
  "date_start": "RFC3339 timestamp",
  "group_size_min": 0,
  "occasion": "bachelor|bachelorette|birthday|corporate|night out",
  "budget_level": "low|medium|high"
}

Leave a field empty (or 0) when the prompt does not mention it.`

// llmSkeleton is the wire shape the model is asked to return.
type llmSkeleton struct {
	City         string `json:"city"`
	DateStart    string `json:"date_start"`
	GroupSizeMin int    `json:"group_size_min"`
	Occasion     string `json:"occasion"`
	BudgetLevel  string `json:"budget_level"`
}

// LLMInterpreter delegates extraction to a chat-completion backend and fills
// every gap, transport failure included, from the heuristic interpreter so
// InterpretPrompt still always succeeds.
type LLMInterpreter struct {
	api      llm.LLMAPI
	fallback *HeuristicInterpreter
}

// NewLLMInterpreter constructs the LLM-backed interpreter.
func NewLLMInterpreter(api llm.LLMAPI, fallback *HeuristicInterpreter) *LLMInterpreter {
	return &LLMInterpreter{api: api, fallback: fallback}
}

func (l *LLMInterpreter) InterpretPrompt(ctx context.Context, prompt string, groupSizeOverride int) *models.TripSkeleton {
	base := l.fallback.InterpretPrompt(ctx, prompt, groupSizeOverride)

	raw, err := l.api.CompleteJSON(ctx, llmSystemPrompt, prompt)
	if err != nil {
		log.Printf("[LLMInterpreter] completion failed, using heuristic result: %v", err)
		return base
	}

	var parsed llmSkeleton
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("[LLMInterpreter] unparsable completion, using heuristic result: %v", err)
		return base
	}

	if parsed.City != "" {
		base.City = parsed.City
	}
	if parsed.Occasion != "" {
		base.Occasion = parsed.Occasion
	}
	if parsed.BudgetLevel == models.BUDGET_LOW ||
		parsed.BudgetLevel == models.BUDGET_MEDIUM ||
		parsed.BudgetLevel == models.BUDGET_HIGH {
		base.BudgetLevel = parsed.BudgetLevel
	}
	if groupSizeOverride <= 0 && parsed.GroupSizeMin > 0 {
		base.GroupSizeMin = parsed.GroupSizeMin
		base.GroupSizeMax = parsed.GroupSizeMin + l.fallback.groupSizeSpread
	}
	if parsed.DateStart != "" {
		if ts, err := time.Parse(time.RFC3339, parsed.DateStart); err == nil {
			base.DateStart = ts
		}
	}

	// Rebuild slots so occasion, budget and date changes stay consistent.
	base.EventSlots = BuildEventSlots(base.Occasion, base.BudgetLevel, base.DateStart)
	if n := len(base.EventSlots); n > 0 {
		base.DateEnd = base.EventSlots[n-1].EndTime
	}
	return base
}
