package planner

import (
	"context"
	"time"

	"partypilot/models"
)

// Clock abstracts the ambient time source so date fallbacks stay
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// PromptInterpreter maps one free-text prompt to a TripSkeleton. A planning
// request never fails because of vague prompt text, so implementations return
// a complete skeleton unconditionally: every extraction gap degrades to a
// documented default. groupSizeOverride wins over anything inferred when > 0.
type PromptInterpreter interface {
	InterpretPrompt(ctx context.Context, prompt string, groupSizeOverride int) *models.TripSkeleton
}
