// internal/profile/models.go

package profile

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// LoveLanguage is one of the five fixed love-language keys
type LoveLanguage string

const (
	WordsOfAffirmation LoveLanguage = "words_of_affirmation"
	QualityTime        LoveLanguage = "quality_time"
	ReceivingGifts     LoveLanguage = "receiving_gifts"
	ActsOfService      LoveLanguage = "acts_of_service"
	PhysicalTouch      LoveLanguage = "physical_touch"
)

// LoveLanguages lists the keys in their canonical order
var LoveLanguages = []LoveLanguage{
	WordsOfAffirmation,
	QualityTime,
	ReceivingGifts,
	ActsOfService,
	PhysicalTouch,
}

var loveLanguageLabels = map[LoveLanguage]string{
	WordsOfAffirmation: "words of affirmation",
	QualityTime:        "quality time",
	ReceivingGifts:     "receiving gifts",
	ActsOfService:      "acts of service",
	PhysicalTouch:      "physical touch",
}

// Label returns the human-readable name used in reasons
func (l LoveLanguage) Label() string {
	if label, ok := loveLanguageLabels[l]; ok {
		return label
	}
	return strings.ReplaceAll(string(l), "_", " ")
}

// BudgetTier is the coarse spending tier used by profiles and catalog tags
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

// BudgetTiers lists the tiers in ascending order
var BudgetTiers = []BudgetTier{BudgetLow, BudgetMedium, BudgetHigh}

// Pace describes how packed a date should feel
type Pace string

const (
	PaceRelaxed     Pace = "relaxed"
	PaceBalanced    Pace = "balanced"
	PaceAdventurous Pace = "adventurous"
)

// Environment is the indoors/outdoors preference of a partner
type Environment string

const (
	EnvironmentIndoors  Environment = "indoors"
	EnvironmentOutdoors Environment = "outdoors"
	EnvironmentBoth     Environment = "both"
)

// SocialAbility is an ordinal from very shy to very outgoing
type SocialAbility string

const (
	VeryShy      SocialAbility = "very-shy"
	Shy          SocialAbility = "shy"
	Moderate     SocialAbility = "moderate"
	Outgoing     SocialAbility = "outgoing"
	VeryOutgoing SocialAbility = "very-outgoing"
)

var socialLevels = map[SocialAbility]int{
	VeryShy:      1,
	Shy:          2,
	Moderate:     3,
	Outgoing:     4,
	VeryOutgoing: 5,
}

// Level maps the ability onto 1..5. Unknown values count as moderate.
func (s SocialAbility) Level() int {
	if lvl, ok := socialLevels[s]; ok {
		return lvl
	}
	return 3
}

// IsShy reports whether the partner is shy or very shy
func (s SocialAbility) IsShy() bool {
	return s == VeryShy || s == Shy
}

// MobilityLevel describes physical mobility
type MobilityLevel string

const (
	MobilityFull       MobilityLevel = "full"
	MobilityLimited    MobilityLevel = "limited"
	MobilityWheelchair MobilityLevel = "wheelchair"
)

// Personality holds the personality axes collected at onboarding
type Personality struct {
	IntrovertExtrovert int         `json:"introvert_extrovert" yaml:"introvert_extrovert" validate:"omitempty,min=1,max=5"`
	IndoorsOutdoors    Environment `json:"indoors_outdoors" yaml:"indoors_outdoors" validate:"required,oneof=indoors outdoors both"`
	Budget             BudgetTier  `json:"budget" yaml:"budget" validate:"required,oneof=low medium high"`
	Pace               Pace        `json:"pace" yaml:"pace" validate:"required,oneof=relaxed balanced adventurous"`
}

// Scan implements the sql.Scanner interface for Personality
func (p *Personality) Scan(value interface{}) error {
	return scanJSON(value, p)
}

// Value implements the driver.Valuer interface for Personality
func (p Personality) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Tolerates reports whether this preference accepts an item's environment
func (e Environment) Tolerates(indoors, outdoors bool) bool {
	switch e {
	case EnvironmentIndoors:
		return indoors
	case EnvironmentOutdoors:
		return outdoors
	default:
		return true
	}
}

// BudgetCeilings are the numeric spend limits per tier
type BudgetCeilings struct {
	Low    float64 `json:"low" yaml:"low" validate:"gte=0"`
	Medium float64 `json:"medium" yaml:"medium" validate:"gte=0"`
	High   float64 `json:"high" yaml:"high" validate:"gte=0"`
}

// For returns the ceiling for a tier
func (b BudgetCeilings) For(tier BudgetTier) float64 {
	switch tier {
	case BudgetLow:
		return b.Low
	case BudgetMedium:
		return b.Medium
	case BudgetHigh:
		return b.High
	}
	return 0
}

// Max returns the largest ceiling across tiers
func (b BudgetCeilings) Max() float64 {
	m := b.Low
	if b.Medium > m {
		m = b.Medium
	}
	if b.High > m {
		m = b.High
	}
	return m
}

// Scan implements the sql.Scanner interface for BudgetCeilings
func (b *BudgetCeilings) Scan(value interface{}) error {
	return scanJSON(value, b)
}

// Value implements the driver.Valuer interface for BudgetCeilings
func (b BudgetCeilings) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// LoveLanguageScores maps each love language to a 1..5 score
type LoveLanguageScores map[LoveLanguage]int

// Scan implements the sql.Scanner interface for LoveLanguageScores
func (l *LoveLanguageScores) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Value implements the driver.Valuer interface for LoveLanguageScores
func (l LoveLanguageScores) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Ranked returns the languages by score descending. Ties keep canonical order.
func (l LoveLanguageScores) Ranked() []LoveLanguage {
	ranked := make([]LoveLanguage, 0, len(LoveLanguages))
	for _, lang := range LoveLanguages {
		if _, ok := l[lang]; ok {
			ranked = append(ranked, lang)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return l[ranked[i]] > l[ranked[j]]
	})
	return ranked
}

// Top returns up to n highest scoring languages
func (l LoveLanguageScores) Top(n int) []LoveLanguage {
	ranked := l.Ranked()
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Profile is one partner's preferences, constraints and love-language weights
type Profile struct {
	ID                string             `json:"id" db:"id" validate:"required"`
	CoupleID          string             `json:"couple_id" db:"couple_id" validate:"required"`
	Name              string             `json:"name" db:"name" validate:"required,max=100"`
	Interests         []string           `json:"interests" db:"interests" validate:"dive,min=1,max=50"`
	FavoriteDateTypes []string           `json:"favorite_date_types" db:"favorite_date_types" validate:"dive,oneof=quick medium special"`
	Personality       Personality        `json:"personality" db:"personality"`
	LoveLanguages     LoveLanguageScores `json:"love_languages" db:"love_languages" validate:"required,len=5,dive,keys,oneof=words_of_affirmation quality_time receiving_gifts acts_of_service physical_touch,endkeys,min=1,max=5"`
	Triggers          []string           `json:"triggers" db:"triggers"`
	Sensitivities     []string           `json:"sensitivities" db:"sensitivities"`
	SocialAbility     SocialAbility      `json:"social_ability" db:"social_ability" validate:"required,oneof=very-shy shy moderate outgoing very-outgoing"`
	MobilityLevel     MobilityLevel      `json:"mobility_level" db:"mobility_level" validate:"required,oneof=full limited wheelchair"`
	Disabilities      []string           `json:"disabilities" db:"disabilities"`
	Budget            BudgetCeilings     `json:"budget" db:"budget"`
	IsLongDistance    bool               `json:"is_long_distance" db:"is_long_distance"`
	CreatedAt         time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" db:"updated_at"`
}

// Avoid returns triggers and sensitivities together, lowercased and trimmed
func (p *Profile) Avoid() []string {
	out := make([]string, 0, len(p.Triggers)+len(p.Sensitivities))
	for _, list := range [][]string{p.Triggers, p.Sensitivities} {
		for _, s := range list {
			s = strings.ToLower(strings.TrimSpace(s))
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// HasInterest reports whether the profile lists the interest, case-insensitively
func (p *Profile) HasInterest(interest string) bool {
	return containsFold(p.Interests, interest)
}

// LikesCategory reports whether the category is one of the favorite date types
func (p *Profile) LikesCategory(category string) bool {
	return containsFold(p.FavoriteDateTypes, category)
}

// NeedsAccessibility reports whether the partner declared any accessibility need
func (p *Profile) NeedsAccessibility() bool {
	return len(p.Disabilities) > 0 || (p.MobilityLevel != "" && p.MobilityLevel != MobilityFull)
}

// DisplayName falls back to the id when no name is set
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// UpdateProfileRequest represents a settings edit
type UpdateProfileRequest struct {
	Name              *string            `json:"name" validate:"omitempty,min=1,max=100"`
	Interests         []string           `json:"interests" validate:"omitempty,max=10,dive,min=1,max=50"`
	FavoriteDateTypes []string           `json:"favorite_date_types" validate:"omitempty,dive,oneof=quick medium special"`
	Personality       *Personality       `json:"personality"`
	LoveLanguages     LoveLanguageScores `json:"love_languages" validate:"omitempty,dive,keys,oneof=words_of_affirmation quality_time receiving_gifts acts_of_service physical_touch,endkeys,min=1,max=5"`
	Triggers          []string           `json:"triggers" validate:"omitempty,dive,max=100"`
	Sensitivities     []string           `json:"sensitivities" validate:"omitempty,dive,max=100"`
	SocialAbility     *SocialAbility     `json:"social_ability" validate:"omitempty,oneof=very-shy shy moderate outgoing very-outgoing"`
	MobilityLevel     *MobilityLevel     `json:"mobility_level" validate:"omitempty,oneof=full limited wheelchair"`
	Disabilities      []string           `json:"disabilities" validate:"omitempty,dive,max=100"`
	Budget            *BudgetCeilings    `json:"budget"`
	IsLongDistance    *bool              `json:"is_long_distance"`
}

// Apply copies the set fields of the request onto p
func (r *UpdateProfileRequest) Apply(p *Profile) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Interests != nil {
		p.Interests = r.Interests
	}
	if r.FavoriteDateTypes != nil {
		p.FavoriteDateTypes = r.FavoriteDateTypes
	}
	if r.Personality != nil {
		p.Personality = *r.Personality
	}
	if r.LoveLanguages != nil {
		p.LoveLanguages = r.LoveLanguages
	}
	if r.Triggers != nil {
		p.Triggers = r.Triggers
	}
	if r.Sensitivities != nil {
		p.Sensitivities = r.Sensitivities
	}
	if r.SocialAbility != nil {
		p.SocialAbility = *r.SocialAbility
	}
	if r.MobilityLevel != nil {
		p.MobilityLevel = *r.MobilityLevel
	}
	if r.Disabilities != nil {
		p.Disabilities = r.Disabilities
	}
	if r.Budget != nil {
		p.Budget = *r.Budget
	}
	if r.IsLongDistance != nil {
		p.IsLongDistance = *r.IsLongDistance
	}
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	}
	return fmt.Errorf("unsupported type %T for json column", value)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(s)) {
			return true
		}
	}
	return false
}
