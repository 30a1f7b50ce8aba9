// Package gazetteer holds the static table of crisis centers and the city
// aliases that point at them. A Gazetteer is immutable once built and is
// safe for concurrent reads without locking.
package gazetteer

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mr1hm/go-crisis-finder/internal/models"
	"github.com/mr1hm/go-crisis-finder/internal/normalize"
)

var ErrInvalidDefinition = errors.New("invalid gazetteer definition")

type Definition struct {
	DefaultCenter string      `yaml:"default_center"`
	Centers       []CenterDef `yaml:"centers"`
	Cities        []CityDef   `yaml:"cities"`
}

type CenterDef struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Region      string             `yaml:"region"`
	Phone       string             `yaml:"phone"`
	Coordinates models.Coordinates `yaml:"coordinates"`
	Languages   []string           `yaml:"languages"`
	Aliases     []string           `yaml:"aliases"`
}

type CityDef struct {
	Name        string              `yaml:"name"`
	Center      string              `yaml:"center"`
	Aliases     []string            `yaml:"aliases"`
	Coordinates *models.Coordinates `yaml:"coordinates"`
}

// Alias is a normalized lookup key and the place it resolves to.
type Alias struct {
	Key   string
	Place models.Place
}

type Gazetteer struct {
	centers   []models.CrisisCenter
	byID      map[string]int
	aliases   []Alias
	byAlias   map[string]int
	defaultID string
}

// New validates def and builds an immutable gazetteer from it.
func New(def Definition) (*Gazetteer, error) {
	if len(def.Centers) == 0 {
		return nil, fmt.Errorf("%w: no centers", ErrInvalidDefinition)
	}

	g := &Gazetteer{
		centers: make([]models.CrisisCenter, 0, len(def.Centers)),
		byID:    make(map[string]int, len(def.Centers)),
		byAlias: make(map[string]int),
	}

	for i, cd := range def.Centers {
		id := strings.TrimSpace(cd.ID)
		switch {
		case id == "":
			return nil, fmt.Errorf("%w: center %d has no id", ErrInvalidDefinition, i)
		case strings.TrimSpace(cd.Phone) == "":
			return nil, fmt.Errorf("%w: center %q has no phone", ErrInvalidDefinition, id)
		case strings.TrimSpace(cd.Name) == "":
			return nil, fmt.Errorf("%w: center %q has no name", ErrInvalidDefinition, id)
		case !cd.Coordinates.Valid():
			return nil, fmt.Errorf("%w: center %q has invalid coordinates %v", ErrInvalidDefinition, id, cd.Coordinates)
		}
		if _, dup := g.byID[id]; dup {
			return nil, fmt.Errorf("%w: duplicate center id %q", ErrInvalidDefinition, id)
		}

		center := models.CrisisCenter{
			ID:          id,
			Name:        cd.Name,
			Region:      cd.Region,
			Phone:       cd.Phone,
			Coordinates: cd.Coordinates,
			Languages:   slices.Clone(cd.Languages),
		}
		g.byID[id] = len(g.centers)
		g.centers = append(g.centers, center)

		seatName := cd.Region
		if seatName == "" {
			seatName = cd.Name
		}
		coords := cd.Coordinates
		seat := models.Place{Name: seatName, CenterID: id, Coordinates: &coords}

		g.register(cd.Name, seat)
		g.register(cd.Region, seat)
		for _, a := range cd.Aliases {
			g.register(a, seat)
		}
	}

	for i, city := range def.Cities {
		if strings.TrimSpace(city.Name) == "" {
			return nil, fmt.Errorf("%w: city %d has no name", ErrInvalidDefinition, i)
		}
		if _, ok := g.byID[city.Center]; !ok {
			return nil, fmt.Errorf("%w: city %q points to unknown center %q", ErrInvalidDefinition, city.Name, city.Center)
		}

		var coords *models.Coordinates
		if city.Coordinates != nil {
			if !city.Coordinates.Valid() {
				return nil, fmt.Errorf("%w: city %q has invalid coordinates %v", ErrInvalidDefinition, city.Name, *city.Coordinates)
			}
			c := *city.Coordinates
			coords = &c
		}

		place := models.Place{Name: city.Name, CenterID: city.Center, Coordinates: coords}
		g.register(city.Name, place)
		for _, a := range city.Aliases {
			g.register(a, place)
		}
	}

	g.defaultID = def.DefaultCenter
	if g.defaultID == "" {
		g.defaultID = g.centers[0].ID
	}
	if _, ok := g.byID[g.defaultID]; !ok {
		return nil, fmt.Errorf("%w: unknown default center %q", ErrInvalidDefinition, g.defaultID)
	}

	return g, nil
}

// register adds name under its normalized key. An alias that is already
// taken keeps its first registration.
func (g *Gazetteer) register(name string, place models.Place) {
	key := normalize.City(name)
	if key == "" {
		return
	}
	if i, taken := g.byAlias[key]; taken {
		if g.aliases[i].Place.CenterID != place.CenterID {
			slog.Debug("alias already registered, keeping first",
				"alias", key, "kept", g.aliases[i].Place.CenterID, "ignored", place.CenterID)
		}
		return
	}
	g.byAlias[key] = len(g.aliases)
	g.aliases = append(g.aliases, Alias{Key: key, Place: place})
}

func (g *Gazetteer) CenterByID(id string) (models.CrisisCenter, bool) {
	i, ok := g.byID[id]
	if !ok {
		return models.CrisisCenter{}, false
	}
	return g.centers[i], true
}

// Centers returns every center in definition order.
func (g *Gazetteer) Centers() []models.CrisisCenter {
	return slices.Clone(g.centers)
}

// Default is the central-Finland center used when a city is not recognized.
func (g *Gazetteer) Default() models.CrisisCenter {
	return g.centers[g.byID[g.defaultID]]
}

// Lookup finds an alias by its normalized key.
func (g *Gazetteer) Lookup(key string) (Alias, bool) {
	i, ok := g.byAlias[key]
	if !ok {
		return Alias{}, false
	}
	return g.aliases[i], true
}

// Aliases returns every alias in registration order.
func (g *Gazetteer) Aliases() []Alias {
	return slices.Clone(g.aliases)
}

func (g *Gazetteer) Len() int {
	return len(g.centers)
}
