// internal/gifts/service.go

package gifts

import (
	"context"
	"fmt"

	"github.com/imadgeboyega/kiekky-couples/internal/history"
	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

// ProfileSource supplies both partners of a couple
type ProfileSource interface {
	GetCouple(ctx context.Context, coupleID string) (profile.Pair, error)
}

// Service picks gifts for one partner. An empty receiverID means the
// caller's partner.
type Service interface {
	Suggest(ctx context.Context, coupleID, callerID, receiverID string) (*Set, error)
	Surprise(ctx context.Context, coupleID, callerID, receiverID string) (*Set, error)
	Explain(ctx context.Context, coupleID, callerID, receiverID, giftID string) (*Match, error)
}

type service struct {
	engine   *Engine
	profiles ProfileSource
	history  history.Store
	lookback int
}

func NewService(engine *Engine, profiles ProfileSource, store history.Store, lookback int) Service {
	if lookback <= 0 {
		lookback = history.DefaultLookback
	}
	return &service{
		engine:   engine,
		profiles: profiles,
		history:  store,
		lookback: lookback,
	}
}

func (s *service) load(ctx context.Context, coupleID, callerID, receiverID string) (profile.Pair, string, error) {
	pair, err := s.profiles.GetCouple(ctx, coupleID)
	if err != nil {
		return profile.Pair{}, "", err
	}

	if receiverID == "" {
		partner := pair.Partner(callerID)
		if partner == nil {
			return profile.Pair{}, "", ErrUnknownReceiver
		}
		receiverID = partner.ID
	}
	return pair, receiverID, nil
}

func (s *service) recent(ctx context.Context, coupleID string) ([]string, error) {
	recent, err := s.history.Recent(ctx, coupleID, history.KindGift, s.lookback)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent gifts: %w", err)
	}
	return recent, nil
}

func (s *service) Suggest(ctx context.Context, coupleID, callerID, receiverID string) (*Set, error) {
	pair, receiverID, err := s.load(ctx, coupleID, callerID, receiverID)
	if err != nil {
		return nil, err
	}
	recent, err := s.recent(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	set, err := s.engine.Suggest(pair, receiverID, recent)
	if err != nil {
		return nil, err
	}
	RecordSet("suggest", set)
	return set, nil
}

func (s *service) Surprise(ctx context.Context, coupleID, callerID, receiverID string) (*Set, error) {
	pair, receiverID, err := s.load(ctx, coupleID, callerID, receiverID)
	if err != nil {
		return nil, err
	}
	recent, err := s.recent(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	set, err := s.engine.Surprise(pair, receiverID, recent)
	if err != nil {
		return nil, err
	}
	RecordSet("surprise", set)
	return set, nil
}

func (s *service) Explain(ctx context.Context, coupleID, callerID, receiverID, giftID string) (*Match, error) {
	pair, receiverID, err := s.load(ctx, coupleID, callerID, receiverID)
	if err != nil {
		return nil, err
	}
	return s.engine.Explain(pair, receiverID, giftID)
}
