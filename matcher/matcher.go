package matcher

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"partypilot/models"
	"partypilot/models/venue"
)

// VenueSource supplies the candidate pool for a city. Implementations own
// their error semantics; the matcher propagates lookup failures unchanged.
type VenueSource interface {
	FetchVenuesByCity(ctx context.Context, city string) ([]venue.Venue, error)
}

// VenueMatcher scores candidate venues against soft requirements and selects
// a primary match plus ranked backups. It holds no state between calls.
type VenueMatcher struct {
	source VenueSource
}

// NewVenueMatcher constructs a VenueMatcher with its venue source injected.
func NewVenueMatcher(source VenueSource) *VenueMatcher {
	return &VenueMatcher{source: source}
}

// Scoring weights. Group-friendliness mismatch is the strongest signal, and
// a price mismatch is penalized harder than a hit is rewarded so an uncertain
// venue loses to omission.
const (
	groupFriendlyHit  = 2
	groupFriendlyMiss = -3
	tagHit            = 1
	priceHit          = 1
	priceMiss         = -2
	dressCodeHit      = 1
	areaHit           = 1
)

// ScoreVenue computes the additive match score of one venue against one set
// of requirements. Each signal contributes only when both the requirement and
// the venue attribute are present; nil or empty requirements score 0 for any
// venue.
func ScoreVenue(v venue.Venue, req *models.VenueRequirements) int {
	if req == nil {
		return 0
	}

	score := 0

	if req.GroupFriendly != nil && *req.GroupFriendly {
		if v.GroupFriendly {
			score += groupFriendlyHit
		} else {
			score += groupFriendlyMiss
		}
	}

	if len(req.Tags) > 0 {
		haystack := tagHaystack(v)
		seen := make(map[string]struct{}, len(req.Tags))
		for _, tag := range req.Tags {
			t := strings.ToLower(strings.TrimSpace(tag))
			if t == "" {
				continue
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			if strings.Contains(haystack, t) {
				score += tagHit
			}
		}
	}

	if req.PriceLevel != "" && v.PriceLevel != "" {
		if v.PriceLevel == req.PriceLevel {
			score += priceHit
		} else {
			score += priceMiss
		}
	}

	// Dress code is advisory: a venue with no summary cannot be evaluated and
	// is not penalized.
	if req.DressCode != "" && v.DressCodeSummary != "" {
		if strings.Contains(strings.ToLower(v.DressCodeSummary), strings.ToLower(req.DressCode)) {
			score += dressCodeHit
		}
	}

	if req.Area != "" {
		if strings.Contains(strings.ToLower(v.VenueAddress), strings.ToLower(req.Area)) {
			score += areaHit
		}
	}

	return score
}

// tagHaystack is the free text a tag can match against: venue name, explicit
// tags and the dress-code summary.
func tagHaystack(v venue.Venue) string {
	parts := make([]string, 0, len(v.Tags)+2)
	parts = append(parts, v.VenueName)
	parts = append(parts, v.Tags...)
	parts = append(parts, v.DressCodeSummary)
	return strings.ToLower(strings.Join(parts, " "))
}

type scoredVenue struct {
	venue venue.Venue
	score int
}

// FindBestMatches fetches the city pool, ranks it against the primary
// requirements and selects the primary plus up to backupTarget backups.
//
// The sort is stable with no secondary key, so ties fall back to the pool's
// original order and selection is reproducible for a fixed input pool. The
// top venue becomes primary only when its score is non-negative; backups are
// best-effort and carry no threshold.
func (m *VenueMatcher) FindBestMatches(
	ctx context.Context,
	city string,
	primaryReqs *models.VenueRequirements,
	backupReqsList []models.VenueRequirements,
	backupTarget int,
) (*models.MatchResult, error) {
	pool, err := m.source.FetchVenuesByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("venue lookup for city %q: %w", city, err)
	}

	result := &models.MatchResult{Backups: []venue.Venue{}}
	if len(pool) == 0 {
		return result, nil
	}
	if backupTarget < 0 {
		backupTarget = 0
	}

	ranked := make([]scoredVenue, len(pool))
	for i, v := range pool {
		ranked[i] = scoredVenue{venue: v, score: ScoreVenue(v, primaryReqs)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	used := make(map[string]struct{})
	if ranked[0].score >= 0 {
		primary := ranked[0].venue
		result.Primary = &primary
		used[primary.VenueID] = struct{}{}
	}

	// Dedicated backup requirements first, one venue each, in pool order for
	// ties.
	for _, breq := range backupReqsList {
		if len(result.Backups) >= backupTarget {
			break
		}
		req := breq
		var best *venue.Venue
		bestScore := 0
		for _, v := range pool {
			if _, taken := used[v.VenueID]; taken {
				continue
			}
			s := ScoreVenue(v, &req)
			if best == nil || s > bestScore {
				candidate := v
				best = &candidate
				bestScore = s
			}
		}
		if best != nil {
			result.Backups = append(result.Backups, *best)
			used[best.VenueID] = struct{}{}
		}
	}

	// Fill the remainder from the primary-scored order.
	for _, sv := range ranked {
		if len(result.Backups) >= backupTarget {
			break
		}
		if _, taken := used[sv.venue.VenueID]; taken {
			continue
		}
		result.Backups = append(result.Backups, sv.venue)
		used[sv.venue.VenueID] = struct{}{}
	}

	return result, nil
}
