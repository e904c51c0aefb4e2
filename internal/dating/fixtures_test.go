package dating

import (
	"testing"

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
			IntrovertExtrovert: 3,
			IndoorsOutdoors:    profile.EnvironmentBoth,
			Budget:             profile.BudgetMedium,
			Pace:               profile.PaceRelaxed,
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

func defaultPair(t *testing.T) profile.Pair {
	return newPair(t, newProfile("alex", "Alex"), newProfile("sam", "Sam"))
}

// newDate is a neutral template: cheap, balanced, indoors and outdoors
func newDate(id string, category catalog.DateCategory, mods ...func(*catalog.DateTemplate)) catalog.DateTemplate {
	d := catalog.DateTemplate{
		ID:          id,
		Title:       id,
		Description: "An evening together",
		Category:    category,
		Tags: catalog.DateTags{
			Energy:   "low",
			Pace:     profile.PaceBalanced,
			Budget:   profile.BudgetLow,
			Indoors:  true,
			Outdoors: true,
			Mode:     catalog.ModeInPerson,
		},
	}
	for _, mod := range mods {
		mod(&d)
	}
	return d
}

func newCatalog(t *testing.T, dates ...catalog.DateTemplate) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(dates, nil)
	require.NoError(t, err)
	return c
}

func withInterests(interests ...string) func(*catalog.DateTemplate) {
	return func(d *catalog.DateTemplate) { d.Tags.Interests = interests }
}

func withDescription(desc string) func(*catalog.DateTemplate) {
	return func(d *catalog.DateTemplate) { d.Description = desc }
}

func withBudget(tier profile.BudgetTier) func(*catalog.DateTemplate) {
	return func(d *catalog.DateTemplate) { d.Tags.Budget = tier }
}

func indoorsOnly(d *catalog.DateTemplate) {
	d.Tags.Indoors = true
	d.Tags.Outdoors = false
}

func outdoorsOnly(d *catalog.DateTemplate) {
	d.Tags.Indoors = false
	d.Tags.Outdoors = true
}

type scriptedRandom struct {
	floats []float64
	ints   []int
}

func (s *scriptedRandom) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRandom) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}
