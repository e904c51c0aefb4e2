// Package matching holds the pieces shared by the date and gift pipelines:
// trigger matching, veto policies, score modes, randomness and selection.
package matching

import (
	"fmt"
	"strings"
)

// TriggerPolicy decides what a trigger match does to an item
type TriggerPolicy string

const (
	// HardVeto excludes the item outright
	HardVeto TriggerPolicy = "hard-veto"
	// WeightedPenalty zeroes the trigger-safety term but keeps the item
	WeightedPenalty TriggerPolicy = "weighted-penalty"
)

// ParseTriggerPolicy accepts the config spelling of a policy
func ParseTriggerPolicy(s string) (TriggerPolicy, error) {
	switch TriggerPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case HardVeto:
		return HardVeto, nil
	case WeightedPenalty:
		return WeightedPenalty, nil
	}
	return "", fmt.Errorf("unknown trigger policy %q", s)
}

// ScoreMode selects the scoring baseline for the date pipeline
type ScoreMode string

const (
	// AdditiveScore starts at 0 and adds bonuses
	AdditiveScore ScoreMode = "additive"
	// DeductiveScore starts at 100 and subtracts for advisories
	DeductiveScore ScoreMode = "deductive"
)

// ParseScoreMode accepts the config spelling of a mode
func ParseScoreMode(s string) (ScoreMode, error) {
	switch ScoreMode(strings.ToLower(strings.TrimSpace(s))) {
	case AdditiveScore:
		return AdditiveScore, nil
	case DeductiveScore:
		return DeductiveScore, nil
	}
	return "", fmt.Errorf("unknown score mode %q", s)
}
