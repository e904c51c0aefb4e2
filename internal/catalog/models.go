package catalog

import (
	"strings"

	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

// DateCategory groups date templates by effort
type DateCategory string

const (
	CategoryQuick   DateCategory = "quick"
	CategoryMedium  DateCategory = "medium"
	CategorySpecial DateCategory = "special"
)

// GiftCategory groups gift ideas by form
type GiftCategory string

const (
	GiftPhysical   GiftCategory = "physical"
	GiftExperience GiftCategory = "experience"
	GiftDigital    GiftCategory = "digital"
	GiftHandmade   GiftCategory = "handmade"
)

// Mode says whether a date works in person, remotely, or both
type Mode string

const (
	ModeInPerson Mode = "in-person"
	ModeVirtual  Mode = "virtual"
	ModeBoth     Mode = "both"
)

// DateTags annotate a template for filtering and scoring
type DateTags struct {
	Interests     []string               `yaml:"interests" json:"interests"`
	Energy        string                 `yaml:"energy" json:"energy" validate:"required,oneof=low medium high"`
	Pace          profile.Pace           `yaml:"pace" json:"pace" validate:"required,oneof=relaxed balanced adventurous"`
	Budget        profile.BudgetTier     `yaml:"budget" json:"budget" validate:"required,oneof=low medium high"`
	Indoors       bool                   `yaml:"indoors" json:"indoors" validate:"required_without=Outdoors"`
	Outdoors      bool                   `yaml:"outdoors" json:"outdoors" validate:"required_without=Indoors"`
	LoveLanguages []profile.LoveLanguage `yaml:"love_languages" json:"love_languages" validate:"dive,oneof=words_of_affirmation quality_time receiving_gifts acts_of_service physical_touch"`
	Mode          Mode                   `yaml:"mode" json:"mode" validate:"oneof=in-person virtual both"`
}

// DateTemplate is one date-night idea
type DateTemplate struct {
	ID              string         `yaml:"id" json:"id" validate:"required"`
	Title           string         `yaml:"title" json:"title" validate:"required"`
	Description     string         `yaml:"description" json:"description" validate:"required"`
	LongDescription string         `yaml:"long_description" json:"long_description,omitempty"`
	Category        DateCategory   `yaml:"category" json:"category" validate:"required,oneof=quick medium special"`
	Duration        string         `yaml:"duration" json:"duration,omitempty"`
	Tags            DateTags       `yaml:"tags" json:"tags"`
	Weights         map[string]int `yaml:"weights" json:"weights,omitempty" validate:"dive,keys,required,endkeys,min=1"`
	Steps           []string       `yaml:"steps" json:"steps,omitempty"`
	Prompts         []string       `yaml:"prompts" json:"prompts,omitempty"`
}

// Weight returns the declared importance of a tag, 1 when unlisted
func (d *DateTemplate) Weight(tag string) int {
	if w, ok := d.Weights[strings.ToLower(tag)]; ok {
		return w
	}
	return 1
}

// HasInterest reports whether the template is tagged with the interest
func (d *DateTemplate) HasInterest(interest string) bool {
	return containsFold(d.Tags.Interests, interest)
}

// SupportsVirtual reports whether the date has a remote adaptation
func (d *DateTemplate) SupportsVirtual() bool {
	return d.Tags.Mode == ModeVirtual || d.Tags.Mode == ModeBoth
}

// IndoorsOnly reports whether the date happens only indoors
func (d *DateTemplate) IndoorsOnly() bool {
	return d.Tags.Indoors && !d.Tags.Outdoors
}

// SearchText is the lowercase blob of every free-text field scanned for triggers
func (d *DateTemplate) SearchText() string {
	parts := make([]string, 0, 3+len(d.Steps)+len(d.Prompts))
	parts = append(parts, d.Title, d.Description, d.LongDescription)
	parts = append(parts, d.Steps...)
	parts = append(parts, d.Prompts...)
	return strings.ToLower(strings.Join(parts, " "))
}

// GiftIdea is one gift suggestion
type GiftIdea struct {
	ID                    string                 `yaml:"id" json:"id" validate:"required"`
	Title                 string                 `yaml:"title" json:"title" validate:"required"`
	Description           string                 `yaml:"description" json:"description" validate:"required"`
	Category              GiftCategory           `yaml:"category" json:"category" validate:"required,oneof=physical experience digital handmade"`
	LoveLanguages         []profile.LoveLanguage `yaml:"love_languages" json:"love_languages" validate:"required,min=1,dive,oneof=words_of_affirmation quality_time receiving_gifts acts_of_service physical_touch"`
	Budget                profile.BudgetTier     `yaml:"budget" json:"budget" validate:"required,oneof=low medium high"`
	Price                 float64                `yaml:"price" json:"price" validate:"gte=0"`
	Interests             []string               `yaml:"interests" json:"interests,omitempty"`
	Tags                  []string               `yaml:"tags" json:"tags,omitempty"`
	Triggers              []string               `yaml:"triggers" json:"triggers,omitempty"`
	LongDistanceFriendly  bool                   `yaml:"long_distance_friendly" json:"long_distance_friendly"`
	AccessibilityFriendly bool                   `yaml:"accessibility_friendly" json:"accessibility_friendly"`
}

// HasTag reports whether the gift carries the tag
func (g *GiftIdea) HasTag(tag string) bool {
	return containsFold(g.Tags, tag)
}

// HasLoveLanguage reports whether the gift speaks the love language
func (g *GiftIdea) HasLoveLanguage(lang profile.LoveLanguage) bool {
	for _, l := range g.LoveLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func normalizeList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
