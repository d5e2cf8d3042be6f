package planner

import (
	"context"
	"log"

	"partypilot/models"
	"partypilot/util"
)

// StubInterpreter returns a fixed sample skeleton loaded from a JSON
// resource. Meant for dev and demo setups with no prompt handling at all; it
// falls back to the heuristic interpreter when the resource is unreadable.
type StubInterpreter struct {
	skeletonPath string
	fallback     *HeuristicInterpreter
}

// NewStubInterpreter constructs the fixed-output interpreter.
func NewStubInterpreter(skeletonPath string, fallback *HeuristicInterpreter) *StubInterpreter {
	return &StubInterpreter{skeletonPath: skeletonPath, fallback: fallback}
}

func (s *StubInterpreter) InterpretPrompt(ctx context.Context, prompt string, groupSizeOverride int) *models.TripSkeleton {
	skeleton, err := util.ReadTripSkeletonFromJSON(s.skeletonPath)
	if err != nil {
		log.Printf("[StubInterpreter] could not read sample skeleton, using heuristic result: %v", err)
		return s.fallback.InterpretPrompt(ctx, prompt, groupSizeOverride)
	}

	if groupSizeOverride > 0 {
		skeleton.GroupSizeMin = groupSizeOverride
		skeleton.GroupSizeMax = groupSizeOverride + s.fallback.groupSizeSpread
	}
	if len(skeleton.EventSlots) == 0 {
		skeleton.EventSlots = BuildEventSlots(skeleton.Occasion, skeleton.BudgetLevel, skeleton.DateStart)
		if n := len(skeleton.EventSlots); n > 0 {
			skeleton.DateEnd = skeleton.EventSlots[n-1].EndTime
		}
	}
	return skeleton
}
