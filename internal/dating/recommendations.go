package dating

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imadgeboyega/kiekky-couples/internal/catalog"
	"github.com/imadgeboyega/kiekky-couples/internal/matching"
	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

// DefaultSuggestionCount is how many dates a generate call returns
const DefaultSuggestionCount = 3

// EngineConfig configures the date engine
type EngineConfig struct {
	ScoreMode       matching.ScoreMode
	SuggestionCount int
	Costs           *CostModel
	Random          matching.RandomSource
	Logger          *zap.Logger
}

// Engine runs exclusion, filtering, scoring and selection over the date catalog.
// It holds no per-couple state and is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	mode    matching.ScoreMode
	count   int
	opts    FilterOptions
	rnd     matching.RandomSource
	logger  *zap.Logger
}

// NewEngine creates a date engine over c
func NewEngine(c *catalog.Catalog, cfg EngineConfig) *Engine {
	e := &Engine{
		catalog: c,
		mode:    cfg.ScoreMode,
		count:   cfg.SuggestionCount,
		opts:    FilterOptions{Costs: cfg.Costs},
		rnd:     cfg.Random,
		logger:  cfg.Logger,
	}
	if e.mode == "" {
		e.mode = matching.AdditiveScore
	}
	if e.count <= 0 {
		e.count = DefaultSuggestionCount
	}
	if e.rnd == nil {
		e.rnd = matching.NewRandomSource(0)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

type evaluation struct {
	compatible []matching.Candidate[Suggestion]
	// rejected holds filtered-out templates that were not trigger vetoed
	rejected []matching.Candidate[Suggestion]
}

func (e *Engine) evaluate(pair profile.Pair, recent matching.RecentSet) evaluation {
	var ev evaluation

	dates := e.catalog.Dates()
	for i := range dates {
		d := &dates[i]
		if recent.Contains(d.ID) {
			continue
		}

		filtered := Filter(d, pair, e.opts)
		if filtered.TriggerVetoed {
			continue
		}

		s := Suggestion{
			Template:           *d,
			AccessibilityNotes: filtered.AccessibilityNotes,
			BudgetTier:         filtered.BudgetTier,
			EstimatedCost:      filtered.EstimatedCost,
		}

		if !filtered.Compatible {
			s.Reasons = filtered.Reasons
			ev.rejected = append(ev.rejected, candidate(s))
			continue
		}

		scored := ScoreWith(e.mode, d, pair, filtered)
		s.Score = scored.Score
		s.Reasons = scored.Reasons
		ev.compatible = append(ev.compatible, candidate(s))
	}

	matching.RankByScore(ev.compatible)
	return ev
}

func candidate(s Suggestion) matching.Candidate[Suggestion] {
	return matching.Candidate[Suggestion]{
		Item:     s,
		ID:       s.Template.ID,
		Category: string(s.Template.Category),
		Score:    s.Score,
	}
}

// Rank returns every compatible, not recently used template by score
func (e *Engine) Rank(pair profile.Pair, recent []string) []Suggestion {
	ev := e.evaluate(pair, matching.NewRecentSet(recent))

	out := make([]Suggestion, 0, len(ev.compatible))
	for _, c := range ev.compatible {
		out = append(out, c.Item)
	}
	return out
}

// Generate returns a category-diverse top-N set. With nothing compatible it
// falls back to one uniform pick and marks the set as a fallback.
func (e *Engine) Generate(pair profile.Pair, recent []string) *SuggestionSet {
	ev := e.evaluate(pair, matching.NewRecentSet(recent))
	set := newSuggestionSet(pair, len(ev.compatible))

	if len(ev.compatible) == 0 {
		return e.fallback(set, ev, "generate")
	}

	for _, c := range matching.TopDiverse(ev.compatible, e.count) {
		set.Suggestions = append(set.Suggestions, c.Item)
	}

	e.logger.Info("date suggestions generated",
		zap.String("couple_id", set.CoupleID),
		zap.String("set_id", set.ID.String()),
		zap.Int("candidates", len(ev.compatible)),
		zap.Int("returned", len(set.Suggestions)),
	)
	return set
}

// Surprise draws a single template with probability proportional to its score
func (e *Engine) Surprise(pair profile.Pair, recent []string) *SuggestionSet {
	ev := e.evaluate(pair, matching.NewRecentSet(recent))
	set := newSuggestionSet(pair, len(ev.compatible))

	picked, ok := matching.WeightedPick(ev.compatible, e.rnd)
	if !ok {
		return e.fallback(set, ev, "surprise")
	}
	set.Suggestions = append(set.Suggestions, picked.Item)

	e.logger.Info("surprise date drawn",
		zap.String("couple_id", set.CoupleID),
		zap.String("set_id", set.ID.String()),
		zap.String("template_id", picked.ID),
		zap.Int("candidates", len(ev.compatible)),
	)
	return set
}

// Explain evaluates one template without selection
func (e *Engine) Explain(pair profile.Pair, templateID string, recent []string) (*Explanation, error) {
	d, ok := e.catalog.Date(templateID)
	if !ok {
		return nil, ErrUnknownItem
	}

	filtered := Filter(&d, pair, e.opts)
	return &Explanation{
		Template:  d,
		Filter:    filtered,
		Additive:  Score(&d, pair),
		Deductive: DeductiveScore(&d, pair, filtered),
		Recent:    matching.NewRecentSet(recent).Contains(templateID),
	}, nil
}

func (e *Engine) fallback(set *SuggestionSet, ev evaluation, action string) *SuggestionSet {
	set.Fallback = true

	picked, ok := matching.UniformPick(ev.rejected, e.rnd)
	if ok {
		set.Suggestions = append(set.Suggestions, picked.Item)
	}

	e.logger.Warn("no compatible dates, returning unfiltered pick",
		zap.String("couple_id", set.CoupleID),
		zap.String("set_id", set.ID.String()),
		zap.String("catalog", "date"),
		zap.String("action", action),
		zap.Int("pool", len(ev.rejected)),
		zap.Bool("picked", ok),
	)
	return set
}

func newSuggestionSet(pair profile.Pair, candidates int) *SuggestionSet {
	return &SuggestionSet{
		ID:          uuid.New(),
		CoupleID:    pair.A.CoupleID,
		Suggestions: []Suggestion{},
		Candidates:  candidates,
		GeneratedAt: time.Now().UTC(),
	}
}
