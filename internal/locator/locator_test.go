package locator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr1hm/go-crisis-finder/internal/gazetteer"
)

func builtin(t *testing.T) *gazetteer.Gazetteer {
	t.Helper()
	g, err := gazetteer.Builtin()
	require.NoError(t, err)
	return g
}

func TestResolve_EveryAliasFound(t *testing.T) {
	g := builtin(t)
	l := New(g, Options{})

	for _, a := range g.Aliases() {
		variants := []string{a.Key, strings.ToUpper(a.Key), "  " + a.Key + "\t"}
		for _, q := range variants {
			out := l.Resolve(q)
			require.Equal(t, KindFound, out.Kind, "query %q", q)
			assert.Equal(t, MatchExact, out.Match, "query %q", q)
			assert.Equal(t, a.Place.CenterID, out.Center.ID, "query %q", q)
			assert.NoError(t, out.Err)
		}
	}
}

func TestResolve_CaseAndDiacritics(t *testing.T) {
	l := New(builtin(t), Options{})

	for _, q := range []string{"Helsinki", "helsinki", "HELSINKI", " Helsinki "} {
		out := l.Resolve(q)
		require.Equal(t, KindFound, out.Kind)
		assert.Equal(t, "helsinki", out.Center.ID)
		assert.Equal(t, "Helsingin kriisikeskus", out.Center.Name)
	}

	for _, q := range []string{"Jyväskylä", "JYVÄSKYLÄ", "jyvaskyla"} {
		out := l.Resolve(q)
		require.Equal(t, KindFound, out.Kind, "query %q", q)
		assert.Equal(t, "jyvaskyla", out.Center.ID)
	}

	out := l.Resolve("Åbo")
	require.Equal(t, KindFound, out.Kind)
	assert.Equal(t, "helsinki", out.Center.ID)
	assert.Equal(t, "Turku", out.Place.Name)
}

func TestResolve_EmptyIsInvalid(t *testing.T) {
	l := New(builtin(t), Options{})

	for _, q := range []string{"", "   ", "\t\n", "--"} {
		out := l.Resolve(q)
		assert.Equal(t, KindInvalid, out.Kind, "query %q", q)
		assert.ErrorIs(t, out.Err, ErrEmptyQuery)
		assert.False(t, out.HasCenter())
	}
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	g := builtin(t)
	l := New(g, Options{})

	for _, q := range []string{"Tukholma", "Nowhereville", "Springfield", "xyz"} {
		out := l.Resolve(q)
		require.Equal(t, KindFallback, out.Kind, "query %q", q)
		assert.Equal(t, g.Default().ID, out.Center.ID)
		assert.Nil(t, out.Place.Coordinates)
		assert.Equal(t, q, out.Place.Name)
		assert.NoError(t, out.Err)
	}
}

func TestResolve_Prefix(t *testing.T) {
	l := New(builtin(t), Options{})

	tests := []struct {
		query  string
		center string
		place  string
	}{
		{"Tam", "jyvaskyla", "Tampere"},
		{"hel", "helsinki", "Helsinki"},
		{"Rovan", "rovaniemi", "Rovaniemi"},
		{"Joen", "kuopio", "Joensuu"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			out := l.Resolve(tt.query)
			require.Equal(t, KindFound, out.Kind)
			assert.Equal(t, MatchPrefix, out.Match)
			assert.Equal(t, tt.center, out.Center.ID)
			assert.Equal(t, tt.place, out.Place.Name)
		})
	}
}

func TestResolve_ShortQueryNeverPrefixMatches(t *testing.T) {
	l := New(builtin(t), Options{})

	out := l.Resolve("ke")
	assert.Equal(t, KindFallback, out.Kind)
}

func TestResolve_AmbiguousPrefix(t *testing.T) {
	l := New(builtin(t), Options{})

	out := l.Resolve("Kem")
	require.Equal(t, KindNotFound, out.Kind)
	assert.ErrorIs(t, out.Err, ErrAmbiguous)
	assert.False(t, out.HasCenter())

	var ids []string
	for _, c := range out.Candidates {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"oulu", "rovaniemi"}, ids)

	// The exact alias still wins over the ambiguous prefix.
	out = l.Resolve("Kemi")
	require.Equal(t, KindFound, out.Kind)
	assert.Equal(t, "oulu", out.Center.ID)
}

func TestResolve_Fuzzy(t *testing.T) {
	g := builtin(t)

	out := New(g, Options{}).Resolve("Helsinky")
	assert.Equal(t, KindFallback, out.Kind, "fuzzy matching must be off by default")

	out = New(g, Options{FuzzyDistance: 1}).Resolve("Helsinky")
	require.Equal(t, KindFound, out.Kind)
	assert.Equal(t, MatchFuzzy, out.Match)
	assert.Equal(t, "helsinki", out.Center.ID)
}

func TestResolve_TieBreakIsDefinitionOrder(t *testing.T) {
	g, err := gazetteer.New(gazetteer.Definition{
		Centers: []gazetteer.CenterDef{
			{ID: "first", Name: "First Center", Region: "North", Phone: "1", Aliases: []string{"Twin"}},
			{ID: "second", Name: "Second Center", Region: "South", Phone: "2", Aliases: []string{"twin"}},
		},
	})
	require.NoError(t, err)

	l := New(g, Options{})
	for i := 0; i < 100; i++ {
		out := l.Resolve("TWIN")
		require.Equal(t, KindFound, out.Kind)
		require.Equal(t, "first", out.Center.ID)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "found", KindFound.String())
	assert.Equal(t, "fallback", KindFallback.String())
	assert.Equal(t, "ambiguous", KindNotFound.String())
	assert.Equal(t, "invalid", KindInvalid.String())
}
