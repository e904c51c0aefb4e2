package matching

import (
	"strings"
)

// relatedTerms widens common trigger categories to the words that describe
// them in catalog text.
var relatedTerms = map[string][]string{
	"heights":         {"cliff", "rooftop", "climb", "tower", "balloon", "altitude", "zipline", "skydiv"},
	"water":           {"swim", "boat", "kayak", "ocean", "lake", "beach", "pool"},
	"crowds":          {"crowd", "festival", "concert", "party", "stadium"},
	"loud noises":     {"concert", "fireworks", "nightclub", "stadium"},
	"alcohol":         {"wine", "beer", "cocktail", "brewery", "bar crawl"},
	"enclosed spaces": {"cave", "escape room", "elevator", "tunnel"},
	"animals":         {"zoo", "farm", "horse", "petting"},
}

// ExpandTriggers lowercases the terms and adds the related words of any
// known category. The result always contains every input term.
func ExpandTriggers(terms []string) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]bool, len(terms))
	add := func(t string) {
		if t != "" && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}

	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		add(term)
		for _, related := range relatedTerms[term] {
			add(related)
		}
	}
	return out
}

// MatchTriggers returns every avoid term found as a substring of text.
// text is compared lowercased; avoid terms are expected lowercased.
func MatchTriggers(text string, avoid []string) []string {
	text = strings.ToLower(text)
	var hits []string
	seen := make(map[string]bool, len(avoid))
	for _, term := range avoid {
		if term == "" || seen[term] {
			continue
		}
		if strings.Contains(text, term) {
			seen[term] = true
			hits = append(hits, term)
		}
	}
	return hits
}

// OverlapTriggers reports terms shared between two trigger lists, where
// either side containing the other counts as a match ("crowd" and "crowds").
func OverlapTriggers(declared, avoid []string) []string {
	var hits []string
	for _, d := range declared {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		for _, a := range avoid {
			if a == "" {
				continue
			}
			if strings.Contains(d, a) || strings.Contains(a, d) {
				hits = append(hits, d)
				break
			}
		}
	}
	return hits
}
