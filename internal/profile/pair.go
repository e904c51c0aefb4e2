package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInsufficientProfileData = errors.New("insufficient profile data")
	ErrProfileNotFound         = errors.New("profile not found")
)

var validate = validator.New()

// Validate checks that every field the matching engines rely on is present
func (p *Profile) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: missing profile", ErrInsufficientProfileData)
	}
	if err := validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fe.Namespace())
			}
			return fmt.Errorf("%w: profile %s: invalid %s", ErrInsufficientProfileData, p.ID, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInsufficientProfileData, err)
	}
	return nil
}

// Pair is the two partners every scoring and filtering call works on
type Pair struct {
	A *Profile
	B *Profile
}

// NewPair builds a Pair from exactly the first two profiles.
// Fewer than two profiles, or an incomplete one, is ErrInsufficientProfileData.
func NewPair(profiles ...*Profile) (Pair, error) {
	if len(profiles) < 2 {
		return Pair{}, fmt.Errorf("%w: need 2 profiles, have %d", ErrInsufficientProfileData, len(profiles))
	}
	for _, p := range profiles[:2] {
		if err := p.Validate(); err != nil {
			return Pair{}, err
		}
	}
	return Pair{A: profiles[0], B: profiles[1]}, nil
}

// Both returns the two partners in order
func (p Pair) Both() [2]*Profile {
	return [2]*Profile{p.A, p.B}
}

// Partner returns the other profile of the pair, or nil when id matches neither
func (p Pair) Partner(id string) *Profile {
	switch id {
	case p.A.ID:
		return p.B
	case p.B.ID:
		return p.A
	}
	return nil
}

// Get returns the profile with the given id, or nil
func (p Pair) Get(id string) *Profile {
	switch id {
	case p.A.ID:
		return p.A
	case p.B.ID:
		return p.B
	}
	return nil
}

// AnyLongDistance reports whether either partner is long distance
func (p Pair) AnyLongDistance() bool {
	return p.A.IsLongDistance || p.B.IsLongDistance
}

// MaxCeiling is the larger of the two partners' ceilings for a tier
func (p Pair) MaxCeiling(tier BudgetTier) float64 {
	a, b := p.A.Budget.For(tier), p.B.Budget.For(tier)
	if a > b {
		return a
	}
	return b
}

// SharedInterests returns interests listed by both partners, in A's order
func (p Pair) SharedInterests() []string {
	var shared []string
	for _, interest := range p.A.Interests {
		if p.B.HasInterest(interest) {
			shared = append(shared, strings.ToLower(strings.TrimSpace(interest)))
		}
	}
	return shared
}

// Avoid returns the union of both partners' triggers and sensitivities
func (p Pair) Avoid() []string {
	return append(p.A.Avoid(), p.B.Avoid()...)
}
