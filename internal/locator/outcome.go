package locator

import (
	"errors"

	"github.com/mr1hm/go-crisis-finder/internal/models"
)

var (
	ErrEmptyQuery = errors.New("city is required")
	ErrAmbiguous  = errors.New("city matches more than one crisis center")
)

type Kind int

const (
	KindInvalid Kind = iota
	KindFound
	KindFallback
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindFound:
		return "found"
	case KindFallback:
		return "fallback"
	case KindNotFound:
		return "ambiguous"
	default:
		return "invalid"
	}
}

type MatchType string

const (
	MatchExact  MatchType = "exact"
	MatchPrefix MatchType = "prefix"
	MatchFuzzy  MatchType = "fuzzy"
	MatchNone   MatchType = "none"
)

// Outcome is the result of resolving a query. Center and Place are set for
// KindFound and KindFallback; Err is set for KindInvalid and KindNotFound.
type Outcome struct {
	Kind       Kind
	Query      string
	Normalized string
	Match      MatchType
	Center     models.CrisisCenter
	Place      models.Place
	Candidates []models.CrisisCenter // centers an ambiguous query matched
	Err        error
}

func (o Outcome) HasCenter() bool {
	return o.Kind == KindFound || o.Kind == KindFallback
}
