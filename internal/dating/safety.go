package dating

import (
	"fmt"
	"strings"

	"github.com/imadgeboyega/kiekky-couples/internal/catalog"
	"github.com/imadgeboyega/kiekky-couples/internal/matching"
	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

// Reasons and notes surfaced to the couple verbatim
const (
	ReasonBudgetTooHigh     = "Budget may be too high"
	ReasonTriggers          = "Contains potential triggers"
	ReasonNotWheelchair     = "Not wheelchair accessible"
	ReasonNeedsInPerson     = "Needs you to be together in person"
	ReasonTooSocial         = "Too socially intense for you both"
	ReasonTooIsolating      = "Too quiet and isolating for one of you"
	NoteReviewAccessibility = "Review accessibility needs before booking"
)

var (
	physicalKeywords   = []string{"hiking", "sports", "dance", "walking"}
	crowdKeywords      = []string{"crowd", "group", "party", "festival", "concert"}
	verySocialKeywords = []string{"party", "crowd", "networking", "performance"}
	veryQuietKeywords  = []string{"silent", "alone"}
)

// Surcharge adds to a date's estimated cost when any keyword appears
type Surcharge struct {
	Keywords []string
	Amount   float64
}

// CostModel estimates what a date costs from its budget tag and wording
type CostModel struct {
	Base       map[profile.BudgetTier]float64
	Default    float64
	Surcharges []Surcharge
}

// DefaultCostModel prices dates the way the app always has
var DefaultCostModel = CostModel{
	Base: map[profile.BudgetTier]float64{
		profile.BudgetLow:    50,
		profile.BudgetMedium: 80,
		profile.BudgetHigh:   150,
	},
	Default: 50,
	Surcharges: []Surcharge{
		{Keywords: []string{"restaurant"}, Amount: 50},
		{Keywords: []string{"show", "concert"}, Amount: 100},
		{Keywords: []string{"travel", "trip"}, Amount: 200},
	},
}

// Estimate returns the expected spend for a date
func (m CostModel) Estimate(d *catalog.DateTemplate) float64 {
	cost, ok := m.Base[d.Tags.Budget]
	if !ok {
		cost = m.Default
	}

	text := strings.ToLower(d.Title + " " + d.Description)
	for _, s := range m.Surcharges {
		if containsAny(text, s.Keywords) {
			cost += s.Amount
		}
	}
	return cost
}

// FilterOptions tune the compatibility filter
type FilterOptions struct {
	Costs *CostModel
}

func (o FilterOptions) costs() CostModel {
	if o.Costs != nil {
		return *o.Costs
	}
	return DefaultCostModel
}

// Filter decides whether a date template suits both partners. Every check
// runs; a trigger match always vetoes regardless of the others.
// Physical, crowd and social keywords are matched against the template text
// and its interest tags, so a "walking" tag marks a date physical. Triggers
// are matched against the text only.
func Filter(item *catalog.DateTemplate, pair profile.Pair, opts FilterOptions) FilteredResult {
	res := FilteredResult{
		Compatible:         true,
		Reasons:            []string{},
		AccessibilityNotes: []string{},
	}

	text := item.SearchText()
	keywords := text + " " + strings.Join(item.Tags.Interests, " ")

	checkBudget(&res, item, pair, opts.costs())
	checkAccessibility(&res, item, pair, keywords)
	checkTriggers(&res, text, pair)
	checkLongDistance(&res, item, pair)
	checkSocial(&res, item, pair, keywords)

	res.Score = DeductiveScore(item, pair, res).Score
	return res
}

func (r *FilteredResult) reject(reason string) {
	r.Compatible = false
	r.Reasons = append(r.Reasons, reason)
}

func (r *FilteredResult) note(format string, args ...interface{}) {
	r.AccessibilityNotes = append(r.AccessibilityNotes, fmt.Sprintf(format, args...))
}

func checkBudget(res *FilteredResult, item *catalog.DateTemplate, pair profile.Pair, costs CostModel) {
	res.EstimatedCost = costs.Estimate(item)

	for _, tier := range profile.BudgetTiers {
		if pair.MaxCeiling(tier) >= res.EstimatedCost {
			t := tier
			res.BudgetTier = &t
			return
		}
	}
	res.reject(ReasonBudgetTooHigh)
}

func checkAccessibility(res *FilteredResult, item *catalog.DateTemplate, pair profile.Pair, keywords string) {
	physical := item.Tags.Pace == profile.PaceAdventurous || containsAny(keywords, physicalKeywords)
	if physical {
		var wheelchair, limited []*profile.Profile
		for _, p := range pair.Both() {
			switch p.MobilityLevel {
			case profile.MobilityWheelchair:
				wheelchair = append(wheelchair, p)
			case profile.MobilityLimited:
				limited = append(limited, p)
			}
		}

		if len(wheelchair) > 0 {
			res.reject(ReasonNotWheelchair)
			for _, p := range wheelchair {
				res.note("This activity may not be wheelchair accessible for %s", p.DisplayName())
			}
		} else {
			for _, p := range limited {
				res.note("%s may need a gentler pace or extra breaks", p.DisplayName())
			}
		}
	}

	if containsAny(keywords, crowdKeywords) {
		for _, p := range pair.Both() {
			if p.SocialAbility.IsShy() {
				res.note("%s may find the crowds overwhelming", p.DisplayName())
			}
		}
	}

	if len(pair.A.Disabilities) > 0 || len(pair.B.Disabilities) > 0 {
		res.AccessibilityNotes = append(res.AccessibilityNotes, NoteReviewAccessibility)
	}
}

func checkTriggers(res *FilteredResult, text string, pair profile.Pair) {
	if hits := matching.MatchTriggers(text, matching.ExpandTriggers(pair.Avoid())); len(hits) > 0 {
		res.TriggerVetoed = true
		res.reject(ReasonTriggers)
	}
}

func checkLongDistance(res *FilteredResult, item *catalog.DateTemplate, pair profile.Pair) {
	if !pair.AnyLongDistance() || item.SupportsVirtual() {
		return
	}
	if !item.Tags.Indoors {
		res.reject(ReasonNeedsInPerson)
	}
}

func checkSocial(res *FilteredResult, item *catalog.DateTemplate, pair profile.Pair, keywords string) {
	a, b := pair.A.SocialAbility.Level(), pair.B.SocialAbility.Level()

	average := float64(a+b) / 2
	if containsAny(keywords, verySocialKeywords) && average < 3 {
		res.reject(ReasonTooSocial)
	}

	lowest := a
	if b < lowest {
		lowest = b
	}
	quiet := containsAny(keywords, veryQuietKeywords) ||
		(item.IndoorsOnly() && !strings.Contains(keywords, "conversation"))
	if quiet && lowest < 2 {
		res.reject(ReasonTooIsolating)
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
