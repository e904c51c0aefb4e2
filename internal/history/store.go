// internal/history/store.go
// Recently-used catalog ids per couple

package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultLookback is how many completed items count as recent
const DefaultLookback = 14

var ErrUnknownKind = errors.New("unknown history kind")

// Kind names the catalog a history list belongs to
type Kind string

const (
	KindDate Kind = "date"
	KindGift Kind = "gift"
)

// ParseKind accepts singular or plural spellings ("dates", "gift")
func ParseKind(s string) (Kind, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s") {
	case string(KindDate):
		return KindDate, nil
	case string(KindGift):
		return KindGift, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Store records completions and answers the recently-used query.
// Recent returns ids newest first.
type Store interface {
	Record(ctx context.Context, coupleID string, kind Kind, itemID string) error
	Recent(ctx context.Context, coupleID string, kind Kind, limit int) ([]string, error)
}
