package gifts

import (
	"fmt"
	"strings"

	"github.com/imadgeboyega/kiekky-couples/internal/catalog"
	"github.com/imadgeboyega/kiekky-couples/internal/matching"
	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

// Weights of the composite gift score
const (
	weightLoveLanguage  = 0.4
	weightBudget        = 0.3
	weightTriggerSafety = 0.2
	weightLongDistance  = 0.1

	accessibilityBonus = 10
	maxScore           = 100
)

// Love-language credit levels
const (
	creditTopLanguage       = 100
	creditSecondaryLanguage = 60
	creditUniversal         = 30

	secondaryLanguageScore = 3
)

// Score rates gift for receiver, bought by giver. The pair supplies the
// long-distance flag. The result is clamped to 0..100.
func Score(gift *catalog.GiftIdea, giver, receiver *profile.Profile, pair profile.Pair) Match {
	m := Match{Gift: *gift, Reasons: []string{}}

	m.Components.LoveLanguage = loveLanguageCredit(gift, receiver, &m)
	m.Components.Budget = budgetCredit(gift, giver, &m)

	m.MatchedTriggers = matching.OverlapTriggers(gift.Triggers, matching.ExpandTriggers(receiver.Avoid()))
	if len(m.MatchedTriggers) == 0 {
		m.Components.TriggerSafety = 100
	} else {
		m.Reasons = append(m.Reasons, fmt.Sprintf("May touch on %s's triggers (%s)",
			receiver.DisplayName(), strings.Join(m.MatchedTriggers, ", ")))
	}

	switch {
	case !pair.AnyLongDistance():
		m.Components.LongDistance = 100
	case gift.LongDistanceFriendly:
		m.Components.LongDistance = 100
		m.Reasons = append(m.Reasons, "Easy to send across the distance")
	default:
		m.Reasons = append(m.Reasons, "Hard to give while you're apart")
	}

	if gift.AccessibilityFriendly && receiver.NeedsAccessibility() {
		m.Components.AccessibilityBonus = accessibilityBonus
		m.Reasons = append(m.Reasons, "Accessibility friendly")
	}

	total := weightLoveLanguage*m.Components.LoveLanguage +
		weightBudget*m.Components.Budget +
		weightTriggerSafety*m.Components.TriggerSafety +
		weightLongDistance*m.Components.LongDistance +
		m.Components.AccessibilityBonus
	m.Score = clamp(total)

	return m
}

func loveLanguageCredit(gift *catalog.GiftIdea, receiver *profile.Profile, m *Match) float64 {
	for _, top := range receiver.LoveLanguages.Top(2) {
		if gift.HasLoveLanguage(top) {
			m.Reasons = append(m.Reasons, fmt.Sprintf("Speaks %s's love language: %s", receiver.DisplayName(), top.Label()))
			return creditTopLanguage
		}
	}

	for _, lang := range gift.LoveLanguages {
		if receiver.LoveLanguages[lang] >= secondaryLanguageScore {
			m.Reasons = append(m.Reasons, fmt.Sprintf("Matches a secondary love language: %s", lang.Label()))
			return creditSecondaryLanguage
		}
	}

	m.Reasons = append(m.Reasons, "A universal gift")
	return creditUniversal
}

func budgetCredit(gift *catalog.GiftIdea, giver *profile.Profile, m *Match) float64 {
	switch {
	case gift.Price <= giver.Budget.For(gift.Budget):
		m.Reasons = append(m.Reasons, fmt.Sprintf("Fits your %s budget", gift.Budget))
		return 100
	case gift.Price <= giver.Budget.Max():
		m.Reasons = append(m.Reasons, "Stretches your usual budget")
		return 50
	default:
		m.Reasons = append(m.Reasons, "Over your budget")
		return 0
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxScore {
		return maxScore
	}
	return v
}
