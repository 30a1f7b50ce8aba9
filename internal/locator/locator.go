// Package locator resolves free-text city names against the gazetteer.
package locator

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/mr1hm/go-crisis-finder/internal/gazetteer"
	"github.com/mr1hm/go-crisis-finder/internal/models"
	"github.com/mr1hm/go-crisis-finder/internal/normalize"
)

// MinPrefixLen is the shortest normalized query that may match by prefix.
const MinPrefixLen = 3

const maxFuzzyDistance = 2

type Options struct {
	// FuzzyDistance enables typo-tolerant matching within this edit
	// distance. Zero disables it.
	FuzzyDistance int
}

type Locator struct {
	gaz  *gazetteer.Gazetteer
	opts Options
}

func New(gaz *gazetteer.Gazetteer, opts Options) *Locator {
	if opts.FuzzyDistance > maxFuzzyDistance {
		opts.FuzzyDistance = maxFuzzyDistance
	}
	if opts.FuzzyDistance < 0 {
		opts.FuzzyDistance = 0
	}
	return &Locator{gaz: gaz, opts: opts}
}

// Resolve matches query against the gazetteer. Matching order: exact alias,
// unique prefix, fuzzy (if enabled), then the default center.
func (l *Locator) Resolve(query string) Outcome {
	key := normalize.City(query)
	out := Outcome{Query: query, Normalized: key, Match: MatchNone}

	if key == "" {
		out.Kind = KindInvalid
		out.Err = ErrEmptyQuery
		return out
	}

	if a, ok := l.gaz.Lookup(key); ok {
		return l.found(out, a, MatchExact)
	}

	if utf8.RuneCountInString(key) >= MinPrefixLen {
		matches := l.collect(func(a gazetteer.Alias) bool {
			return strings.HasPrefix(a.Key, key)
		})
		if res, done := l.decide(out, matches, MatchPrefix); done {
			return res
		}
	}

	if l.opts.FuzzyDistance > 0 {
		matches := l.collect(func(a gazetteer.Alias) bool {
			return levenshtein.ComputeDistance(key, a.Key) <= l.opts.FuzzyDistance
		})
		if res, done := l.decide(out, matches, MatchFuzzy); done {
			return res
		}
	}

	out.Kind = KindFallback
	out.Center = l.gaz.Default()
	out.Place = models.Place{Name: query, CenterID: out.Center.ID}
	return out
}

func (l *Locator) collect(match func(gazetteer.Alias) bool) []gazetteer.Alias {
	var matches []gazetteer.Alias
	for _, a := range l.gaz.Aliases() {
		if match(a) {
			matches = append(matches, a)
		}
	}
	return matches
}

// decide turns a set of alias matches into an outcome. Matches spread over
// more than one center are ambiguous; the locator never picks one of them.
func (l *Locator) decide(out Outcome, matches []gazetteer.Alias, mt MatchType) (Outcome, bool) {
	if len(matches) == 0 {
		return out, false
	}

	seen := make(map[string]bool)
	var centers []models.CrisisCenter
	for _, a := range matches {
		if seen[a.Place.CenterID] {
			continue
		}
		seen[a.Place.CenterID] = true
		if c, ok := l.gaz.CenterByID(a.Place.CenterID); ok {
			centers = append(centers, c)
		}
	}

	if len(centers) > 1 {
		out.Kind = KindNotFound
		out.Match = mt
		out.Candidates = centers
		out.Err = ErrAmbiguous
		return out, true
	}

	return l.found(out, matches[0], mt), true
}

func (l *Locator) found(out Outcome, a gazetteer.Alias, mt MatchType) Outcome {
	center, ok := l.gaz.CenterByID(a.Place.CenterID)
	if !ok {
		// New guarantees every alias points at a known center.
		out.Kind = KindFallback
		out.Center = l.gaz.Default()
		out.Place = models.Place{Name: out.Query, CenterID: out.Center.ID}
		return out
	}
	out.Kind = KindFound
	out.Match = mt
	out.Center = center
	out.Place = a.Place
	return out
}
