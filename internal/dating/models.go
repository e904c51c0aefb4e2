// internal/dating/models.go

package dating

import (
	"time"

	"github.com/google/uuid"

	"github.com/imadgeboyega/kiekky-couples/internal/catalog"
	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

// FilteredResult is the outcome of screening one template against a pair.
// Score is the filter-derived (deductive) score.
type FilteredResult struct {
	Compatible         bool                `json:"compatible"`
	Score              float64             `json:"score"`
	Reasons            []string            `json:"reasons"`
	AccessibilityNotes []string            `json:"accessibility_notes"`
	BudgetTier         *profile.BudgetTier `json:"budget_tier"`
	EstimatedCost      float64             `json:"estimated_cost"`
	TriggerVetoed      bool                `json:"trigger_vetoed"`
}

// ScoreResult is a numeric match score with the reasons behind it
type ScoreResult struct {
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// Suggestion is one date idea handed to the caller
type Suggestion struct {
	Template           catalog.DateTemplate `json:"template"`
	Score              float64              `json:"score"`
	Reasons            []string             `json:"reasons"`
	AccessibilityNotes []string             `json:"accessibility_notes"`
	BudgetTier         *profile.BudgetTier  `json:"budget_tier"`
	EstimatedCost      float64              `json:"estimated_cost"`
}

// SuggestionSet is the result of one generate or surprise call.
// Fallback is set when nothing passed the filter and the pick ignores preferences.
type SuggestionSet struct {
	ID          uuid.UUID    `json:"id"`
	CoupleID    string       `json:"couple_id"`
	Suggestions []Suggestion `json:"suggestions"`
	Fallback    bool         `json:"fallback"`
	Candidates  int          `json:"candidates"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// Explanation shows every intermediate result for one template
type Explanation struct {
	Template  catalog.DateTemplate `json:"template"`
	Filter    FilteredResult       `json:"filter"`
	Additive  ScoreResult          `json:"additive"`
	Deductive ScoreResult          `json:"deductive"`
	Recent    bool                 `json:"recently_used"`
}
