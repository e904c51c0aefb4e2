// internal/dating/service.go

package dating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/imadgeboyega/kiekky-couples/internal/history"
	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

var ErrUnknownItem = errors.New("unknown date template")

// ProfileSource supplies both partners of a couple
type ProfileSource interface {
	GetCouple(ctx context.Context, coupleID string) (profile.Pair, error)
}

// Notifier pushes a surprise reveal to the couple's live connections
type Notifier interface {
	NotifyReveal(coupleID string, set *SuggestionSet)
}

type Service interface {
	Suggest(ctx context.Context, coupleID string) (*SuggestionSet, error)
	Surprise(ctx context.Context, coupleID string) (*SuggestionSet, error)
	Ranked(ctx context.Context, coupleID string) ([]Suggestion, error)
	Explain(ctx context.Context, coupleID, templateID string) (*Explanation, error)
}

type service struct {
	engine   *Engine
	profiles ProfileSource
	history  history.Store
	notifier Notifier
	lookback int
}

// NewService wires the engine to its collaborators. notifier may be nil.
func NewService(engine *Engine, profiles ProfileSource, store history.Store, notifier Notifier, lookback int) Service {
	if lookback <= 0 {
		lookback = history.DefaultLookback
	}
	return &service{
		engine:   engine,
		profiles: profiles,
		history:  store,
		notifier: notifier,
		lookback: lookback,
	}
}

func (s *service) load(ctx context.Context, coupleID string) (profile.Pair, []string, error) {
	pair, err := s.profiles.GetCouple(ctx, coupleID)
	if err != nil {
		return profile.Pair{}, nil, err
	}

	recent, err := s.history.Recent(ctx, coupleID, history.KindDate, s.lookback)
	if err != nil {
		return profile.Pair{}, nil, fmt.Errorf("failed to load recent dates: %w", err)
	}
	return pair, recent, nil
}

func (s *service) Suggest(ctx context.Context, coupleID string) (*SuggestionSet, error) {
	start := time.Now()
	defer func() { RecordResponseTime("suggest", time.Since(start)) }()

	pair, recent, err := s.load(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	set := s.engine.Generate(pair, recent)
	RecordSuggestionSet("suggest", set)
	return set, nil
}

func (s *service) Surprise(ctx context.Context, coupleID string) (*SuggestionSet, error) {
	start := time.Now()
	defer func() { RecordResponseTime("surprise", time.Since(start)) }()

	pair, recent, err := s.load(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	set := s.engine.Surprise(pair, recent)
	RecordSuggestionSet("surprise", set)

	if s.notifier != nil && len(set.Suggestions) > 0 {
		s.notifier.NotifyReveal(coupleID, set)
	}
	return set, nil
}

func (s *service) Ranked(ctx context.Context, coupleID string) ([]Suggestion, error) {
	start := time.Now()
	defer func() { RecordResponseTime("ranked", time.Since(start)) }()

	pair, recent, err := s.load(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	return s.engine.Rank(pair, recent), nil
}

func (s *service) Explain(ctx context.Context, coupleID, templateID string) (*Explanation, error) {
	pair, recent, err := s.load(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	return s.engine.Explain(pair, templateID, recent)
}
