package dating

import (
	"fmt"
	"strings"

	"github.com/imadgeboyega/kiekky-couples/internal/catalog"
	"github.com/imadgeboyega/kiekky-couples/internal/matching"
	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

// Point values of the additive score
const (
	pointsEnvironmentMatch    = 20
	pointsEnvironmentConflict = -10
	pointsBudgetMatch         = 15
	pointsPaceMatch           = 15
	pointsSharedInterest      = 25
	pointsOwnInterest         = 10
	pointsFavoriteCategory    = 15
)

// Adjustments of the deductive score
const (
	deductiveBaseline      = 100
	deductionPerNote       = 10
	deductionBudgetStretch = 10
	bonusSharedInterest    = 5
)

// ScoreWith scores a compatible template in the given mode
func ScoreWith(mode matching.ScoreMode, item *catalog.DateTemplate, pair profile.Pair, filtered FilteredResult) ScoreResult {
	if mode == matching.DeductiveScore {
		return DeductiveScore(item, pair, filtered)
	}
	return Score(item, pair)
}

// Score is the additive template match: it starts at 0 and every rule that
// contributes appends the reason shown to the couple.
func Score(item *catalog.DateTemplate, pair profile.Pair) ScoreResult {
	var score float64
	reasons := []string{}

	aEnv := pair.A.Personality.IndoorsOutdoors.Tolerates(item.Tags.Indoors, item.Tags.Outdoors)
	bEnv := pair.B.Personality.IndoorsOutdoors.Tolerates(item.Tags.Indoors, item.Tags.Outdoors)
	switch {
	case aEnv && bEnv:
		score += pointsEnvironmentMatch
		reasons = append(reasons, environmentReason(item))
	case !aEnv && !bEnv:
		score += pointsEnvironmentConflict
		reasons = append(reasons, "Neither of you usually prefers this setting")
	}

	if item.Tags.Budget == pair.A.Personality.Budget || item.Tags.Budget == pair.B.Personality.Budget {
		score += pointsBudgetMatch
		reasons = append(reasons, fmt.Sprintf("Fits your %s budget", item.Tags.Budget))
	}

	if item.Tags.Pace == profile.PaceBalanced ||
		item.Tags.Pace == pair.A.Personality.Pace || item.Tags.Pace == pair.B.Personality.Pace {
		score += pointsPaceMatch
		reasons = append(reasons, fmt.Sprintf("Matches your %s pace", item.Tags.Pace))
	}

	shared := make(map[string]bool)
	for _, interest := range pair.SharedInterests() {
		if shared[interest] {
			continue
		}
		shared[interest] = true
		if item.HasInterest(interest) {
			score += pointsSharedInterest * float64(item.Weight(interest))
			reasons = append(reasons, fmt.Sprintf("You both love %s", interest))
		}
	}

	for _, p := range pair.Both() {
		seen := make(map[string]bool)
		for _, interest := range p.Interests {
			interest = strings.ToLower(strings.TrimSpace(interest))
			if interest == "" || shared[interest] || seen[interest] {
				continue
			}
			seen[interest] = true
			if item.HasInterest(interest) {
				score += pointsOwnInterest
				reasons = append(reasons, fmt.Sprintf("%s loves %s", p.DisplayName(), interest))
			}
		}
	}

	if pair.A.LikesCategory(string(item.Category)) || pair.B.LikesCategory(string(item.Category)) {
		score += pointsFavoriteCategory
		reasons = append(reasons, fmt.Sprintf("One of your favorite kinds of date (%s)", item.Category))
	}

	return ScoreResult{Score: score, Reasons: reasons}
}

// DeductiveScore is the filter-derived score: a 100 baseline reduced for
// every advisory and a budget stretch, raised for shared interests.
// Incompatible templates score 0.
func DeductiveScore(item *catalog.DateTemplate, pair profile.Pair, filtered FilteredResult) ScoreResult {
	if !filtered.Compatible {
		return ScoreResult{Score: 0, Reasons: append([]string{}, filtered.Reasons...)}
	}

	score := float64(deductiveBaseline)
	reasons := []string{}

	if n := len(filtered.AccessibilityNotes); n > 0 {
		score -= float64(deductionPerNote * n)
		reasons = append(reasons, fmt.Sprintf("%d accessibility note(s) to review", n))
	}

	if filtered.BudgetTier != nil && tierRank(*filtered.BudgetTier) > preferredTierRank(pair) {
		score -= deductionBudgetStretch
		reasons = append(reasons, "Stretches your usual budget")
	}

	for _, interest := range pair.SharedInterests() {
		if item.HasInterest(interest) {
			score += bonusSharedInterest
			reasons = append(reasons, fmt.Sprintf("You both enjoy %s", interest))
		}
	}

	if score < 0 {
		score = 0
	}
	return ScoreResult{Score: score, Reasons: reasons}
}

func environmentReason(item *catalog.DateTemplate) string {
	switch {
	case item.Tags.Indoors && item.Tags.Outdoors:
		return "Works indoors or outdoors for you both"
	case item.Tags.Indoors:
		return "You both enjoy indoor activities"
	default:
		return "You both enjoy outdoor activities"
	}
}

func tierRank(tier profile.BudgetTier) int {
	for i, t := range profile.BudgetTiers {
		if t == tier {
			return i
		}
	}
	return 0
}

func preferredTierRank(pair profile.Pair) int {
	a, b := tierRank(pair.A.Personality.Budget), tierRank(pair.B.Personality.Budget)
	if a > b {
		return a
	}
	return b
}
