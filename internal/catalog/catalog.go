// internal/catalog/catalog.go
// Static date and gift content, validated once at startup

package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imadgeboyega/kiekky-couples/internal/common/utils"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed data/catalog.yaml
var defaultCatalog []byte

// Catalog is the read-only set of date templates and gift ideas.
// It is safe for concurrent use once built.
type Catalog struct {
	dates     []DateTemplate
	gifts     []GiftIdea
	dateIndex map[string]int
	giftIndex map[string]int
}

type document struct {
	Dates []DateTemplate `yaml:"dates"`
	Gifts []GiftIdea     `yaml:"gifts"`
}

// New validates the items and builds a Catalog.
// Any missing required field or duplicate id is ErrInvalidCatalog.
func New(dates []DateTemplate, gifts []GiftIdea) (*Catalog, error) {
	c := &Catalog{
		dates:     make([]DateTemplate, 0, len(dates)),
		gifts:     make([]GiftIdea, 0, len(gifts)),
		dateIndex: make(map[string]int, len(dates)),
		giftIndex: make(map[string]int, len(gifts)),
	}

	for i := range dates {
		d := normalizeDate(dates[i])
		if err := utils.ValidateStruct(d); err != nil {
			return nil, fmt.Errorf("%w: date %d (%s): %v", ErrInvalidCatalog, i, d.ID, err)
		}
		if _, dup := c.dateIndex[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate date id %q", ErrInvalidCatalog, d.ID)
		}
		c.dateIndex[d.ID] = len(c.dates)
		c.dates = append(c.dates, d)
	}

	for i := range gifts {
		g := normalizeGift(gifts[i])
		if err := utils.ValidateStruct(g); err != nil {
			return nil, fmt.Errorf("%w: gift %d (%s): %v", ErrInvalidCatalog, i, g.ID, err)
		}
		if _, dup := c.giftIndex[g.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate gift id %q", ErrInvalidCatalog, g.ID)
		}
		c.giftIndex[g.ID] = len(c.gifts)
		c.gifts = append(c.gifts, g)
	}

	return c, nil
}

// Load decodes a YAML catalog document
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return New(doc.Dates, doc.Gifts)
}

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// Dates returns every date template in catalog order
func (c *Catalog) Dates() []DateTemplate {
	out := make([]DateTemplate, len(c.dates))
	copy(out, c.dates)
	return out
}

// Gifts returns every gift idea in catalog order
func (c *Catalog) Gifts() []GiftIdea {
	out := make([]GiftIdea, len(c.gifts))
	copy(out, c.gifts)
	return out
}

// Date looks up a template by id
func (c *Catalog) Date(id string) (DateTemplate, bool) {
	i, ok := c.dateIndex[id]
	if !ok {
		return DateTemplate{}, false
	}
	return c.dates[i], true
}

// Gift looks up a gift idea by id
func (c *Catalog) Gift(id string) (GiftIdea, bool) {
	i, ok := c.giftIndex[id]
	if !ok {
		return GiftIdea{}, false
	}
	return c.gifts[i], true
}

func normalizeDate(d DateTemplate) DateTemplate {
	d.Tags.Interests = normalizeList(d.Tags.Interests)
	if d.Tags.Mode == "" {
		d.Tags.Mode = ModeInPerson
	}
	if len(d.Weights) > 0 {
		weights := make(map[string]int, len(d.Weights))
		for k, v := range d.Weights {
			weights[normalizeKey(k)] = v
		}
		d.Weights = weights
	}
	return d
}

func normalizeGift(g GiftIdea) GiftIdea {
	g.Interests = normalizeList(g.Interests)
	g.Tags = normalizeList(g.Tags)
	g.Triggers = normalizeList(g.Triggers)
	return g
}

func normalizeKey(s string) string {
	if n := normalizeList([]string{s}); len(n) == 1 {
		return n[0]
	}
	return ""
}
