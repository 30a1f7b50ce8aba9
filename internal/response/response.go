// Package response projects a lookup outcome and its distances onto the
// JSON shapes returned by the API.
package response

import (
	"net/http"

	"github.com/mr1hm/go-crisis-finder/internal/distance"
	"github.com/mr1hm/go-crisis-finder/internal/geo"
	"github.com/mr1hm/go-crisis-finder/internal/locator"
	"github.com/mr1hm/go-crisis-finder/internal/models"
	"github.com/mr1hm/go-crisis-finder/internal/travel"
)

const (
	CodeInvalidCity   = "invalid_city"
	CodeAmbiguousCity = "ambiguous_city"
	CodeUnavailable   = "unavailable"
	CodeInternal      = "internal"
)

const (
	SourceGazetteer = "gazetteer"
	SourceFallback  = "fallback"
	SourceNone      = "none" // known city without a stored position
)

type Response struct {
	NearestCenter     Center                   `json:"nearest_center"`
	EmergencyContacts models.EmergencyContacts `json:"emergency_contacts"`
	Lookup            Lookup                   `json:"lookup"`
	CoordinatesSource string                   `json:"coordinates_source"`
}

type Center struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Region    string   `json:"region"`
	Phone     string   `json:"phone"`
	Languages []string `json:"languages,omitempty"`
	Distance  Distance `json:"distance"`
}

type Distance struct {
	StraightLineKm    float64 `json:"straight_line_km"`
	StraightLineKnown bool    `json:"straight_line_known"`
	Driving           *Leg    `json:"driving,omitempty"`
	Transit           *Leg    `json:"transit,omitempty"`
}

type Leg struct {
	Duration        string  `json:"duration"`
	DurationSeconds int64   `json:"duration_seconds"`
	Distance        string  `json:"distance"`
	DistanceKm      float64 `json:"distance_km"`
}

type Lookup struct {
	Query     string `json:"query"`
	Matched   string `json:"matched"`
	MatchType string `json:"match_type"`
	Fallback  bool   `json:"fallback"`
}

type ErrorResponse struct {
	Status            int                      `json:"-"`
	Error             string                   `json:"error"`
	Code              string                   `json:"code"`
	Candidates        []string                 `json:"candidates,omitempty"`
	EmergencyContacts models.EmergencyContacts `json:"emergency_contacts"`
}

// Assemble builds the success payload for found and fallback outcomes and an
// error payload for everything else. Exactly one of the results is non-nil.
func Assemble(out locator.Outcome, d distance.Result) (*Response, *ErrorResponse) {
	switch out.Kind {
	case locator.KindFound, locator.KindFallback:
		return success(out, d), nil
	case locator.KindInvalid:
		return nil, &ErrorResponse{
			Status:            http.StatusBadRequest,
			Error:             "City parameter is required",
			Code:              CodeInvalidCity,
			EmergencyContacts: models.DefaultEmergencyContacts,
		}
	case locator.KindNotFound:
		names := make([]string, 0, len(out.Candidates))
		for _, c := range out.Candidates {
			names = append(names, c.Name)
		}
		return nil, &ErrorResponse{
			Status:            http.StatusBadRequest,
			Error:             "City is ambiguous, please use the full name",
			Code:              CodeAmbiguousCity,
			Candidates:        names,
			EmergencyContacts: models.DefaultEmergencyContacts,
		}
	default:
		return nil, Internal()
	}
}

func Unavailable() *ErrorResponse {
	return &ErrorResponse{
		Status:            http.StatusServiceUnavailable,
		Error:             "Crisis center data is not available",
		Code:              CodeUnavailable,
		EmergencyContacts: models.DefaultEmergencyContacts,
	}
}

func Internal() *ErrorResponse {
	return &ErrorResponse{
		Status:            http.StatusInternalServerError,
		Error:             "Internal server error",
		Code:              CodeInternal,
		EmergencyContacts: models.DefaultEmergencyContacts,
	}
}

func success(out locator.Outcome, d distance.Result) *Response {
	fallback := out.Kind == locator.KindFallback

	source := SourceGazetteer
	switch {
	case fallback:
		source = SourceFallback
	case !d.StraightLineKnown:
		source = SourceNone
	}

	matched := out.Place.Name
	if fallback {
		matched = ""
	}

	return &Response{
		NearestCenter: Center{
			ID:        out.Center.ID,
			Name:      out.Center.Name,
			Region:    out.Center.Region,
			Phone:     out.Center.Phone,
			Languages: out.Center.Languages,
			Distance: Distance{
				StraightLineKm:    geo.Round2(d.StraightLineKm),
				StraightLineKnown: d.StraightLineKnown,
				Driving:           toLeg(d.Driving),
				Transit:           toLeg(d.Transit),
			},
		},
		EmergencyContacts: models.DefaultEmergencyContacts,
		Lookup: Lookup{
			Query:     out.Query,
			Matched:   matched,
			MatchType: string(out.Match),
			Fallback:  fallback,
		},
		CoordinatesSource: source,
	}
}

func toLeg(l *travel.Leg) *Leg {
	if l == nil {
		return nil
	}
	return &Leg{
		Duration:        l.DurationText,
		DurationSeconds: int64(l.Duration.Seconds()),
		Distance:        l.DistanceText,
		DistanceKm:      geo.Round2(float64(l.DistanceM) / 1000),
	}
}
