package gazetteer

import (
	"errors"
	"testing"

	"github.com/mr1hm/go-crisis-finder/internal/models"
)

func TestBuiltin_Loads(t *testing.T) {
	g, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	if g.Len() != 5 {
		t.Errorf("expected 5 centers, got %d", g.Len())
	}

	c, ok := g.CenterByID("helsinki")
	if !ok {
		t.Fatal("expected helsinki center")
	}
	if c.Name != "Helsingin kriisikeskus" || c.Region != "Helsinki" || c.Phone != "09 4135 0510" {
		t.Errorf("unexpected helsinki center: %+v", c)
	}

	if def := g.Default(); def.ID != "jyvaskyla" {
		t.Errorf("expected default jyvaskyla, got %s", def.ID)
	}
}

func TestBuiltin_EveryCenterHasOwnNameAlias(t *testing.T) {
	g, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	for _, c := range g.Centers() {
		if c.Phone == "" {
			t.Errorf("center %s has empty phone", c.ID)
		}
		if !c.Coordinates.Valid() {
			t.Errorf("center %s has invalid coordinates", c.ID)
		}

		found := false
		for _, a := range g.Aliases() {
			if a.Place.CenterID == c.ID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("center %s has no alias", c.ID)
		}
	}
}

func TestCenterByID_Unknown(t *testing.T) {
	g, _ := Builtin()

	if _, ok := g.CenterByID("tampere"); ok {
		t.Error("expected no center for unknown id")
	}
	if _, ok := g.CenterByID(""); ok {
		t.Error("expected no center for empty id")
	}
}

func TestCenters_DefinitionOrderAndCopy(t *testing.T) {
	g, _ := Builtin()

	want := []string{"helsinki", "jyvaskyla", "kuopio", "oulu", "rovaniemi"}
	got := g.Centers()
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}

	got[0].Name = "mutated"
	if c, _ := g.CenterByID("helsinki"); c.Name == "mutated" {
		t.Error("Centers must return a copy")
	}
}

func TestLookup_NormalizedKeys(t *testing.T) {
	g, _ := Builtin()

	tests := []struct {
		key    string
		center string
	}{
		{"helsinki", "helsinki"},
		{"helsingfors", "helsinki"},
		{"helsingin kriisikeskus", "helsinki"},
		{"jyvaskyla", "jyvaskyla"},
		{"abo", "helsinki"},
		{"uleaborg", "oulu"},
		{"s t michel", "jyvaskyla"},
		{"inari", "rovaniemi"},
	}

	for _, tt := range tests {
		a, ok := g.Lookup(tt.key)
		if !ok {
			t.Errorf("expected alias %q", tt.key)
			continue
		}
		if a.Place.CenterID != tt.center {
			t.Errorf("alias %q: expected center %s, got %s", tt.key, tt.center, a.Place.CenterID)
		}
	}
}

func TestLookup_CityWithoutCoordinates(t *testing.T) {
	g, _ := Builtin()

	a, ok := g.Lookup("kauniainen")
	if !ok {
		t.Fatal("expected kauniainen alias")
	}
	if a.Place.Coordinates != nil {
		t.Errorf("expected no coordinates, got %v", *a.Place.Coordinates)
	}
}

func TestNew_FirstAliasWins(t *testing.T) {
	g, err := New(Definition{
		Centers: []CenterDef{
			{ID: "a", Name: "Center A", Region: "A", Phone: "1", Aliases: []string{"Shared"}},
			{ID: "b", Name: "Center B", Region: "B", Phone: "2", Aliases: []string{"shared"}},
		},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	a, ok := g.Lookup("shared")
	if !ok {
		t.Fatal("expected shared alias")
	}
	if a.Place.CenterID != "a" {
		t.Errorf("expected first center to win, got %s", a.Place.CenterID)
	}
	if g.Default().ID != "a" {
		t.Errorf("expected first center as implicit default, got %s", g.Default().ID)
	}
}

func TestNew_Invalid(t *testing.T) {
	valid := CenterDef{ID: "a", Name: "A", Region: "A", Phone: "1", Coordinates: models.Coordinates{Latitude: 60, Longitude: 25}}

	tests := []struct {
		name string
		def  Definition
	}{
		{"no centers", Definition{}},
		{"missing id", Definition{Centers: []CenterDef{{Name: "A", Phone: "1"}}}},
		{"missing phone", Definition{Centers: []CenterDef{{ID: "a", Name: "A"}}}},
		{"bad latitude", Definition{Centers: []CenterDef{{ID: "a", Name: "A", Phone: "1", Coordinates: models.Coordinates{Latitude: 91}}}}},
		{"duplicate id", Definition{Centers: []CenterDef{valid, valid}}},
		{"unknown city center", Definition{Centers: []CenterDef{valid}, Cities: []CityDef{{Name: "X", Center: "zz"}}}},
		{"bad city coordinates", Definition{Centers: []CenterDef{valid}, Cities: []CityDef{{Name: "X", Center: "a", Coordinates: &models.Coordinates{Longitude: 200}}}}},
		{"unknown default", Definition{DefaultCenter: "zz", Centers: []CenterDef{valid}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.def)
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("expected ErrInvalidDefinition, got %v", err)
			}
		})
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	data := []byte(`
centers:
  - id: a
    name: A
    phone: "1"
    telephone: "2"
`)
	if _, err := Parse(data); err == nil {
		t.Error("expected error for unknown field")
	}
}
