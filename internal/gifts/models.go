// internal/gifts/models.go

package gifts

import (
	"time"

	"github.com/google/uuid"

	"github.com/imadgeboyega/kiekky-couples/internal/catalog"
)

// Components are the weighted parts of a gift score, each on a 0-100 scale
// except the accessibility bonus which is added after weighting.
type Components struct {
	LoveLanguage       float64 `json:"love_language"`
	Budget             float64 `json:"budget"`
	TriggerSafety      float64 `json:"trigger_safety"`
	LongDistance       float64 `json:"long_distance"`
	AccessibilityBonus float64 `json:"accessibility_bonus"`
}

// Match is one gift scored for a receiver
type Match struct {
	Gift            catalog.GiftIdea `json:"gift"`
	Score           float64          `json:"score"`
	Components      Components       `json:"components"`
	Reasons         []string         `json:"reasons"`
	MatchedTriggers []string         `json:"matched_triggers,omitempty"`
}

// Set is the result of one suggest or surprise call
type Set struct {
	ID          uuid.UUID `json:"id"`
	CoupleID    string    `json:"couple_id"`
	GiverID     string    `json:"giver_id"`
	ReceiverID  string    `json:"receiver_id"`
	Matches     []Match   `json:"matches"`
	Fallback    bool      `json:"fallback"`
	Candidates  int       `json:"candidates"`
	GeneratedAt time.Time `json:"generated_at"`
}
