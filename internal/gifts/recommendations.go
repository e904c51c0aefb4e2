package gifts

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imadgeboyega/kiekky-couples/internal/catalog"
	"github.com/imadgeboyega/kiekky-couples/internal/matching"
	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

var (
	ErrUnknownGift     = errors.New("unknown gift idea")
	ErrUnknownReceiver = errors.New("receiver is not part of this couple")
)

const (
	DefaultSuggestionCount = 3
	DefaultSurprisePool    = 20
)

// EngineConfig configures the gift engine
type EngineConfig struct {
	Policy          matching.TriggerPolicy
	SuggestionCount int
	SurprisePool    int
	Random          matching.RandomSource
	Logger          *zap.Logger
}

// Engine scores and selects gift ideas for one partner of a couple
type Engine struct {
	catalog *catalog.Catalog
	policy  matching.TriggerPolicy
	count   int
	pool    int
	rnd     matching.RandomSource
	logger  *zap.Logger
}

func NewEngine(c *catalog.Catalog, cfg EngineConfig) *Engine {
	e := &Engine{
		catalog: c,
		policy:  cfg.Policy,
		count:   cfg.SuggestionCount,
		pool:    cfg.SurprisePool,
		rnd:     cfg.Random,
		logger:  cfg.Logger,
	}
	if e.policy == "" {
		e.policy = matching.WeightedPenalty
	}
	if e.count <= 0 {
		e.count = DefaultSuggestionCount
	}
	if e.pool <= 0 {
		e.pool = DefaultSurprisePool
	}
	if e.rnd == nil {
		e.rnd = matching.NewRandomSource(0)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

func (e *Engine) people(pair profile.Pair, receiverID string) (giver, receiver *profile.Profile, err error) {
	receiver = pair.Get(receiverID)
	if receiver == nil {
		return nil, nil, ErrUnknownReceiver
	}
	return pair.Partner(receiverID), receiver, nil
}

// rank scores every gift not used recently. Under HardVeto a gift with a
// trigger overlap is dropped; under WeightedPenalty it stays with a lower score.
func (e *Engine) rank(pair profile.Pair, receiverID string, recent []string) ([]matching.Candidate[Match], error) {
	giver, receiver, err := e.people(pair, receiverID)
	if err != nil {
		return nil, err
	}

	used := matching.NewRecentSet(recent)
	gifts := e.catalog.Gifts()

	cands := make([]matching.Candidate[Match], 0, len(gifts))
	for i := range gifts {
		g := &gifts[i]
		if used.Contains(g.ID) {
			continue
		}

		m := Score(g, giver, receiver, pair)
		if len(m.MatchedTriggers) > 0 {
			RecordTriggerMatch(e.policy)
			if e.policy == matching.HardVeto {
				continue
			}
		}

		cands = append(cands, matching.Candidate[Match]{
			Item:     m,
			ID:       g.ID,
			Category: string(g.Category),
			Score:    m.Score,
		})
	}

	matching.RankByScore(cands)
	return cands, nil
}

// Rank returns every eligible gift for the receiver by score
func (e *Engine) Rank(pair profile.Pair, receiverID string, recent []string) ([]Match, error) {
	cands, err := e.rank(pair, receiverID, recent)
	if err != nil {
		return nil, err
	}

	out := make([]Match, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Item)
	}
	return out, nil
}

// Suggest returns a top-N set diverse across gift categories
func (e *Engine) Suggest(pair profile.Pair, receiverID string, recent []string) (*Set, error) {
	cands, err := e.rank(pair, receiverID, recent)
	if err != nil {
		return nil, err
	}

	set := e.newSet(pair, receiverID, len(cands))
	if len(cands) == 0 {
		return e.empty(set, "suggest"), nil
	}

	for _, c := range matching.TopDiverse(cands, e.count) {
		set.Matches = append(set.Matches, c.Item)
	}

	e.logger.Info("gift suggestions generated",
		zap.String("couple_id", set.CoupleID),
		zap.String("receiver_id", receiverID),
		zap.Int("candidates", len(cands)),
		zap.Int("returned", len(set.Matches)),
	)
	return set, nil
}

// Surprise narrows the top of the ranking to handmade or experience gifts
// and unique or personalized ones, then draws one weighted by score.
// When the top holds none of those the whole top is drawn from.
func (e *Engine) Surprise(pair profile.Pair, receiverID string, recent []string) (*Set, error) {
	cands, err := e.rank(pair, receiverID, recent)
	if err != nil {
		return nil, err
	}

	set := e.newSet(pair, receiverID, len(cands))

	top := cands
	if len(top) > e.pool {
		top = top[:e.pool]
	}

	themed := make([]matching.Candidate[Match], 0, len(top))
	for _, c := range top {
		if isSurpriseWorthy(&c.Item.Gift) {
			themed = append(themed, c)
		}
	}
	if len(themed) == 0 {
		themed = top
	}

	picked, ok := matching.WeightedPick(themed, e.rnd)
	if !ok {
		return e.empty(set, "surprise"), nil
	}
	set.Matches = append(set.Matches, picked.Item)

	e.logger.Info("surprise gift drawn",
		zap.String("couple_id", set.CoupleID),
		zap.String("receiver_id", receiverID),
		zap.String("gift_id", picked.ID),
		zap.Int("pool", len(themed)),
	)
	return set, nil
}

// Explain scores one gift for the receiver regardless of history or policy
func (e *Engine) Explain(pair profile.Pair, receiverID, giftID string) (*Match, error) {
	giver, receiver, err := e.people(pair, receiverID)
	if err != nil {
		return nil, err
	}

	g, ok := e.catalog.Gift(giftID)
	if !ok {
		return nil, ErrUnknownGift
	}

	m := Score(&g, giver, receiver, pair)
	return &m, nil
}

func isSurpriseWorthy(g *catalog.GiftIdea) bool {
	switch g.Category {
	case catalog.GiftHandmade, catalog.GiftExperience:
		return true
	}
	return g.HasTag("unique") || g.HasTag("personalized")
}

// empty marks a set that had nothing left to offer. Recently used and
// vetoed gifts are never put back, so the set stays empty.
func (e *Engine) empty(set *Set, action string) *Set {
	set.Fallback = true
	e.logger.Warn("no eligible gifts",
		zap.String("couple_id", set.CoupleID),
		zap.String("set_id", set.ID.String()),
		zap.String("catalog", "gift"),
		zap.String("action", action),
		zap.String("policy", string(e.policy)),
	)
	return set
}

func (e *Engine) newSet(pair profile.Pair, receiverID string, candidates int) *Set {
	set := &Set{
		ID:          uuid.New(),
		CoupleID:    pair.A.CoupleID,
		ReceiverID:  receiverID,
		Matches:     []Match{},
		Candidates:  candidates,
		GeneratedAt: time.Now().UTC(),
	}
	if giver := pair.Partner(receiverID); giver != nil {
		set.GiverID = giver.ID
	}
	return set
}
