package gifts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadgeboyega/kiekky-couples/internal/catalog"
	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

func newProfile(id, name string) *profile.Profile {
	return &profile.Profile{
		ID:       id,
		CoupleID: "couple-1",
		Name:     name,
		Personality: profile.Personality{
			IndoorsOutdoors: profile.EnvironmentBoth,
			Budget:          profile.BudgetMedium,
			Pace:            profile.PaceBalanced,
		},
		LoveLanguages: profile.LoveLanguageScores{
			profile.WordsOfAffirmation: 3,
			profile.QualityTime:        5,
			profile.ReceivingGifts:     2,
			profile.ActsOfService:      4,
			profile.PhysicalTouch:      1,
		},
		SocialAbility: profile.Moderate,
		MobilityLevel: profile.MobilityFull,
		Budget:        profile.BudgetCeilings{Low: 100, Medium: 200, High: 500},
	}
}

func newPair(t *testing.T, a, b *profile.Profile) profile.Pair {
	t.Helper()
	pair, err := profile.NewPair(a, b)
	require.NoError(t, err)
	return pair
}

func newGift(id string, category catalog.GiftCategory, mods ...func(*catalog.GiftIdea)) catalog.GiftIdea {
	g := catalog.GiftIdea{
		ID:            id,
		Title:         id,
		Description:   "Something thoughtful",
		Category:      category,
		LoveLanguages: []profile.LoveLanguage{profile.QualityTime},
		Budget:        profile.BudgetLow,
		Price:         20,
	}
	for _, mod := range mods {
		mod(&g)
	}
	return g
}

func speaks(langs ...profile.LoveLanguage) func(*catalog.GiftIdea) {
	return func(g *catalog.GiftIdea) { g.LoveLanguages = langs }
}

func priced(price float64) func(*catalog.GiftIdea) {
	return func(g *catalog.GiftIdea) { g.Price = price }
}

func withTriggers(triggers ...string) func(*catalog.GiftIdea) {
	return func(g *catalog.GiftIdea) { g.Triggers = triggers }
}

func TestScoreComponents(t *testing.T) {
	tests := []struct {
		name string
		gift catalog.GiftIdea
		want float64
	}{
		{"top love language", newGift("g", catalog.GiftPhysical), 100},
		{"second of top two", newGift("g", catalog.GiftPhysical, speaks(profile.ActsOfService)), 100},
		{"secondary language", newGift("g", catalog.GiftPhysical, speaks(profile.WordsOfAffirmation)), 84},
		{"universal gift", newGift("g", catalog.GiftPhysical, speaks(profile.PhysicalTouch)), 72},
		{"budget stretch", newGift("g", catalog.GiftPhysical, priced(150)), 85},
		{"over budget", newGift("g", catalog.GiftPhysical, priced(1000)), 70},
	}

	giver, receiver := newProfile("a", "Alex"), newProfile("b", "Sam")
	pair := newPair(t, giver, receiver)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Score(&tt.gift, giver, receiver, pair)
			assert.InDelta(t, tt.want, m.Score, 1e-9)
		})
	}
}

func TestScoreReasons(t *testing.T) {
	giver, receiver := newProfile("a", "Alex"), newProfile("b", "Sam")
	pair := newPair(t, giver, receiver)

	g := newGift("g", catalog.GiftPhysical)
	m := Score(&g, giver, receiver, pair)
	assert.Equal(t, []string{"Speaks Sam's love language: quality time", "Fits your low budget"}, m.Reasons)

	g = newGift("g", catalog.GiftPhysical, speaks(profile.PhysicalTouch), priced(300))
	m = Score(&g, giver, receiver, pair)
	assert.Equal(t, []string{"A universal gift", "Stretches your usual budget"}, m.Reasons)
}

// A trigger overlap lowers the score but never removes the gift by itself
func TestScoreTriggerPenalty(t *testing.T) {
	giver, receiver := newProfile("a", "Alex"), newProfile("b", "Sam")
	receiver.Triggers = []string{"Heights"}
	pair := newPair(t, giver, receiver)

	g := newGift("balloon", catalog.GiftExperience, withTriggers("heights", "crowds"))
	m := Score(&g, giver, receiver, pair)

	assert.InDelta(t, 80.0, m.Score, 1e-9)
	assert.Equal(t, 0.0, m.Components.TriggerSafety)
	assert.Equal(t, []string{"heights"}, m.MatchedTriggers)
	assert.Contains(t, m.Reasons, "May touch on Sam's triggers (heights)")

	// the giver's own triggers do not matter
	m = Score(&g, receiver, giver, pair)
	assert.Equal(t, 100.0, m.Components.TriggerSafety)
}

func TestScoreTriggerUsesRelatedTerms(t *testing.T) {
	giver, receiver := newProfile("a", "Alex"), newProfile("b", "Sam")
	receiver.Sensitivities = []string{"heights"}
	pair := newPair(t, giver, receiver)

	g := newGift("zipline", catalog.GiftExperience, withTriggers("zipline"))
	assert.NotEmpty(t, Score(&g, giver, receiver, pair).MatchedTriggers)
}

func TestScoreLongDistance(t *testing.T) {
	giver, receiver := newProfile("a", "Alex"), newProfile("b", "Sam")
	giver.IsLongDistance = true
	pair := newPair(t, giver, receiver)

	local := newGift("local", catalog.GiftPhysical)
	m := Score(&local, giver, receiver, pair)
	assert.InDelta(t, 90.0, m.Score, 1e-9)
	assert.Contains(t, m.Reasons, "Hard to give while you're apart")

	sendable := newGift("sendable", catalog.GiftDigital, func(g *catalog.GiftIdea) { g.LongDistanceFriendly = true })
	m = Score(&sendable, giver, receiver, pair)
	assert.InDelta(t, 100.0, m.Score, 1e-9)
	assert.Contains(t, m.Reasons, "Easy to send across the distance")
}

func TestScoreAccessibilityBonusIsClamped(t *testing.T) {
	giver, receiver := newProfile("a", "Alex"), newProfile("b", "Sam")
	receiver.MobilityLevel = profile.MobilityWheelchair
	pair := newPair(t, giver, receiver)

	accessible := func(g *catalog.GiftIdea) { g.AccessibilityFriendly = true }

	best := newGift("best", catalog.GiftPhysical, accessible)
	m := Score(&best, giver, receiver, pair)
	assert.Equal(t, 100.0, m.Score)
	assert.Equal(t, 10.0, m.Components.AccessibilityBonus)

	universal := newGift("universal", catalog.GiftPhysical, accessible, speaks(profile.PhysicalTouch))
	assert.InDelta(t, 82.0, Score(&universal, giver, receiver, pair).Score, 1e-9)

	// no bonus when the receiver declared no needs
	m = Score(&universal, receiver, giver, pair)
	assert.Equal(t, 0.0, m.Components.AccessibilityBonus)
}

func TestScoreStaysInRangeAcrossCatalog(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	giver, receiver := newProfile("a", "Alex"), newProfile("b", "Sam")
	receiver.Triggers = []string{"crowds", "heights"}
	receiver.Disabilities = []string{"chronic pain"}
	giver.Budget = profile.BudgetCeilings{}
	giver.IsLongDistance = true
	pair := newPair(t, giver, receiver)

	for _, g := range c.Gifts() {
		g := g
		m := Score(&g, giver, receiver, pair)
		assert.GreaterOrEqual(t, m.Score, 0.0, g.ID)
		assert.LessOrEqual(t, m.Score, 100.0, g.ID)
	}
}
