package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThinkIsDeterministicForASeed(t *testing.T) {
	pick := func() string {
		a := New("Katniss", 12, "she")
		b := New("Peeta", 12, "he")
		w, _ := testWorld(21, a, b)
		w.Phase = Bloodbath
		a.Think(w)
		require.NotNil(t, a.Strategy())
		return a.Strategy().Name
	}
	first := pick()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, pick())
	}
}

func TestTrappedAgentMustFreeItselfFirst(t *testing.T) {
	p := New("Juniper", 6, "she")
	w, _ := testWorld(23, p)
	p.AddStatus(StatusTrapped)

	p.Think(w)
	require.NotNil(t, p.Strategy())
	assert.Equal(t, "free from trap", p.Strategy().Name)
}

func TestAllianceNeverProposedAcrossAreas(t *testing.T) {
	a := New("Seeder", 11, "she")
	b := New("Chaff", 11, "he")
	w, _ := testWorld(25, a, b)
	w.Map.MovePlayer(b, w.Map.Areas[1])

	for _, s := range CatalogFor(w, a) {
		if s.Target == b {
			assert.LessOrEqual(t, s.Pref(w, a), -100.0)
		}
	}
}

func TestHuntGatedToEndgame(t *testing.T) {
	roster := []*Player{
		New("Cato", 2, "he"), New("Clove", 2, "she"),
		New("Thresh", 11, "he"), New("Katniss", 12, "she"),
	}
	w, _ := testWorld(27, roster...)

	for _, s := range CatalogFor(w, roster[0]) {
		if s.Name == "hunt" {
			assert.LessOrEqual(t, s.Pref(w, roster[0]), -100.0,
				"hunt must stay off the table with 4 players alive")
		}
	}
}

func TestCollapseOverridesStrategy(t *testing.T) {
	p := New("Dorian", 5, "he")
	w, _ := testWorld(29, p)
	w.Map.MovePlayer(p, w.Map.Areas[1]) // away from the bloodbath redirect

	p.Body.energy = -0.1
	p.Think(w)
	p.Act(w)
	assert.True(t, p.Has(StatusSleeping))
}

func TestAcceptedAllianceIsTransitive(t *testing.T) {
	a := New("Glimmer", 1, "she")
	b := New("Marvel", 1, "he")
	c := New("Cato", 2, "he")
	w, _ := testWorld(31, a, b, c)

	a.NewAlly(w, b)
	b.NewAlly(w, c)
	assert.True(t, a.Relation(c).Allied(), "allying merges both cliques")
	assert.True(t, c.Relation(a).Allied())
}

func TestBetrayalSplitsTheClique(t *testing.T) {
	a := New("Enobaria", 2, "she")
	b := New("Brutus", 2, "he")
	w, _ := testWorld(33, a, b)
	a.NewAlly(w, b)

	a.Betray(w, b)
	assert.False(t, a.Relation(b).Allied())
	assert.False(t, b.Relation(a).Allied())
}
