package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(id, name string) *Profile {
	return &Profile{
		ID:       id,
		CoupleID: "c1",
		Name:     name,
		Personality: Personality{
			IndoorsOutdoors: EnvironmentBoth,
			Budget:          BudgetMedium,
			Pace:            PaceBalanced,
		},
		LoveLanguages: LoveLanguageScores{
			WordsOfAffirmation: 3,
			QualityTime:        5,
			ReceivingGifts:     2,
			ActsOfService:      4,
			PhysicalTouch:      1,
		},
		SocialAbility: Moderate,
		MobilityLevel: MobilityFull,
		Budget:        BudgetCeilings{Low: 50, Medium: 150, High: 400},
	}
}

type memoryRepo struct {
	profiles map[string]*Profile
	saved    int
	saveErr  error
}

func newMemoryRepo(profiles ...*Profile) *memoryRepo {
	m := &memoryRepo{profiles: make(map[string]*Profile)}
	for _, p := range profiles {
		m.profiles[p.ID] = p
	}
	return m
}

func (m *memoryRepo) GetProfile(_ context.Context, id string) (*Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (m *memoryRepo) GetCoupleProfiles(_ context.Context, coupleID string) ([]*Profile, error) {
	var out []*Profile
	for _, id := range []string{"a", "b", "c", "x"} {
		if p, ok := m.profiles[id]; ok && p.CoupleID == coupleID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryRepo) SaveProfile(_ context.Context, p *Profile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved++
	m.profiles[p.ID] = p
	return nil
}

func TestLoveLanguageScores_Ranked(t *testing.T) {
	scores := LoveLanguageScores{
		WordsOfAffirmation: 4,
		QualityTime:        4,
		ReceivingGifts:     1,
		ActsOfService:      5,
		PhysicalTouch:      2,
	}

	assert.Equal(t, []LoveLanguage{ActsOfService, WordsOfAffirmation, QualityTime, PhysicalTouch, ReceivingGifts}, scores.Ranked())
	assert.Equal(t, []LoveLanguage{ActsOfService, WordsOfAffirmation}, scores.Top(2))
	assert.Len(t, scores.Top(10), 5)
}

func TestLoveLanguage_Label(t *testing.T) {
	assert.Equal(t, "quality time", QualityTime.Label())
	assert.Equal(t, "love notes", LoveLanguage("love_notes").Label())
}

func TestBudgetCeilings(t *testing.T) {
	b := BudgetCeilings{Low: 30, Medium: 120, High: 90}

	assert.Equal(t, 30.0, b.For(BudgetLow))
	assert.Equal(t, 120.0, b.For(BudgetMedium))
	assert.Equal(t, 90.0, b.For(BudgetHigh))
	assert.Equal(t, 0.0, b.For("luxury"))
	assert.Equal(t, 120.0, b.Max())
}

func TestSocialAbility(t *testing.T) {
	assert.Equal(t, 1, VeryShy.Level())
	assert.Equal(t, 5, VeryOutgoing.Level())
	assert.Equal(t, 3, SocialAbility("unknown").Level())
	assert.True(t, Shy.IsShy())
	assert.False(t, Moderate.IsShy())
}

func TestEnvironment_Tolerates(t *testing.T) {
	assert.True(t, EnvironmentIndoors.Tolerates(true, false))
	assert.False(t, EnvironmentIndoors.Tolerates(false, true))
	assert.True(t, EnvironmentOutdoors.Tolerates(false, true))
	assert.False(t, EnvironmentOutdoors.Tolerates(true, false))
	assert.True(t, EnvironmentBoth.Tolerates(false, true))
}

func TestProfile_Helpers(t *testing.T) {
	p := newProfile("a", "")
	p.Interests = []string{" Art ", "hiking"}
	p.FavoriteDateTypes = []string{"quick"}
	p.Triggers = []string{" Heights", ""}
	p.Sensitivities = []string{"LOUD NOISES"}

	assert.True(t, p.HasInterest("art"))
	assert.False(t, p.HasInterest("music"))
	assert.True(t, p.LikesCategory("Quick"))
	assert.Equal(t, []string{"heights", "loud noises"}, p.Avoid())
	assert.Equal(t, "a", p.DisplayName())
	assert.False(t, p.NeedsAccessibility())

	p.MobilityLevel = MobilityWheelchair
	assert.True(t, p.NeedsAccessibility())

	p.MobilityLevel = MobilityFull
	p.Disabilities = []string{"low vision"}
	assert.True(t, p.NeedsAccessibility())
}

func TestProfile_Validate(t *testing.T) {
	require.NoError(t, newProfile("a", "Alex").Validate())

	var missing *Profile
	assert.ErrorIs(t, missing.Validate(), ErrInsufficientProfileData)

	noLanguages := newProfile("a", "Alex")
	noLanguages.LoveLanguages = nil
	assert.ErrorIs(t, noLanguages.Validate(), ErrInsufficientProfileData)

	partial := newProfile("a", "Alex")
	delete(partial.LoveLanguages, PhysicalTouch)
	assert.ErrorIs(t, partial.Validate(), ErrInsufficientProfileData)

	outOfRange := newProfile("a", "Alex")
	outOfRange.LoveLanguages[QualityTime] = 9
	assert.ErrorIs(t, outOfRange.Validate(), ErrInsufficientProfileData)

	badPace := newProfile("a", "Alex")
	badPace.Personality.Pace = "frantic"
	err := badPace.Validate()
	require.ErrorIs(t, err, ErrInsufficientProfileData)
	assert.Contains(t, err.Error(), "Pace")
}

func TestNewPair(t *testing.T) {
	a, b := newProfile("a", "Alex"), newProfile("b", "Sam")

	pair, err := NewPair(a, b)
	require.NoError(t, err)
	assert.Same(t, b, pair.Partner("a"))
	assert.Same(t, a, pair.Partner("b"))
	assert.Nil(t, pair.Partner("z"))
	assert.Same(t, b, pair.Get("b"))
	assert.Nil(t, pair.Get("z"))
	assert.Equal(t, [2]*Profile{a, b}, pair.Both())

	_, err = NewPair(a)
	assert.ErrorIs(t, err, ErrInsufficientProfileData)

	_, err = NewPair()
	assert.ErrorIs(t, err, ErrInsufficientProfileData)

	broken := newProfile("b", "Sam")
	broken.SocialAbility = ""
	_, err = NewPair(a, broken)
	assert.ErrorIs(t, err, ErrInsufficientProfileData)
}

func TestPair_Combined(t *testing.T) {
	a, b := newProfile("a", "Alex"), newProfile("b", "Sam")
	a.Interests = []string{"Art", "cooking", "hiking"}
	b.Interests = []string{"hiking", "art"}
	a.Triggers = []string{"heights"}
	b.Sensitivities = []string{"crowds"}
	b.Budget.High = 900
	b.IsLongDistance = true

	pair, err := NewPair(a, b)
	require.NoError(t, err)

	assert.Equal(t, []string{"art", "hiking"}, pair.SharedInterests())
	assert.Equal(t, []string{"heights", "crowds"}, pair.Avoid())
	assert.Equal(t, 900.0, pair.MaxCeiling(BudgetHigh))
	assert.Equal(t, 150.0, pair.MaxCeiling(BudgetMedium))
	assert.True(t, pair.AnyLongDistance())
}

func TestUpdateProfileRequest_Apply(t *testing.T) {
	p := newProfile("a", "Alex")
	name := "Alexandra"
	far := true
	req := &UpdateProfileRequest{
		Name:           &name,
		Triggers:       []string{"water"},
		IsLongDistance: &far,
	}

	req.Apply(p)

	assert.Equal(t, "Alexandra", p.Name)
	assert.Equal(t, []string{"water"}, p.Triggers)
	assert.True(t, p.IsLongDistance)
	assert.Equal(t, MobilityFull, p.MobilityLevel)
	assert.Equal(t, 5, p.LoveLanguages[QualityTime])
}

func TestService_GetProfile(t *testing.T) {
	other := newProfile("x", "Other")
	other.CoupleID = "c2"
	svc := NewService(newMemoryRepo(newProfile("a", "Alex"), other))

	p, err := svc.GetProfile(context.Background(), "c1", "a")
	require.NoError(t, err)
	assert.Equal(t, "Alex", p.Name)

	_, err = svc.GetProfile(context.Background(), "c1", "x")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.GetProfile(context.Background(), "c1", "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestService_GetCouple(t *testing.T) {
	svc := NewService(newMemoryRepo(newProfile("a", "Alex"), newProfile("b", "Sam")))

	pair, err := svc.GetCouple(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "a", pair.A.ID)
	assert.Equal(t, "b", pair.B.ID)

	_, err = svc.GetCouple(context.Background(), "c9")
	assert.ErrorIs(t, err, ErrInsufficientProfileData)
}

func TestService_UpdateProfile(t *testing.T) {
	repo := newMemoryRepo(newProfile("a", "Alex"))
	svc := NewService(repo)

	name := "Al"
	p, err := svc.UpdateProfile(context.Background(), "c1", "a", &UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Al", p.Name)
	assert.Equal(t, 1, repo.saved)

	bad := SocialAbility("chatty")
	_, err = svc.UpdateProfile(context.Background(), "c1", "a", &UpdateProfileRequest{SocialAbility: &bad})
	assert.ErrorIs(t, err, ErrInsufficientProfileData)
	assert.Equal(t, 1, repo.saved)
}

func TestService_CreateProfile(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, err := svc.CreateProfile(context.Background(), newProfile("a", "Alex"))
	require.NoError(t, err)
	assert.Contains(t, repo.profiles, "a")

	incomplete := newProfile("b", "")
	_, err = svc.CreateProfile(context.Background(), incomplete)
	assert.ErrorIs(t, err, ErrInsufficientProfileData)

	repo.saveErr = errors.New("disk full")
	_, err = svc.CreateProfile(context.Background(), newProfile("c", "Kim"))
	assert.EqualError(t, err, "disk full")
}
