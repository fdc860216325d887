package narrate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/arena-sim/internal/entropy"
)

func newTestNarrator() (*Narrator, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewNarrator(entropy.NewSource(1), out), out
}

func TestRepeatedSubjectCollapsesToAnd(t *testing.T) {
	n, out := newTestNarrator()
	n.Add([]string{"Rue", "hides", "at the forest"})
	n.Add([]string{"Rue", "eats", "berries"})
	n.Tell()
	assert.Equal(t, "Rue hides in the forest and eats berries.\n", out.String())
}

func TestNewSubjectGetsComma(t *testing.T) {
	n, out := newTestNarrator()
	n.Add([]string{"Rue", "hides"})
	n.Add([]string{"Thresh", "forages"})
	n.Tell()
	assert.Equal(t, "Rue hides, Thresh forages.\n", out.String())
}

func TestRepeatedPlaceDropped(t *testing.T) {
	n, out := newTestNarrator()
	n.Add([]string{"Cato", "shouts", "at the hill"})
	n.Add([]string{"Clove", "laughs", "at the hill"})
	n.Tell()
	assert.Equal(t, "Cato shouts on the hill, Clove laughs.\n", out.String())
}

func TestPlaceSwitchRewrites(t *testing.T) {
	n, out := newTestNarrator()
	n.Add([]string{"Finn", "rests", "at the river"})
	n.Tell()
	assert.Equal(t, "Finn rests by the river.\n", out.String())
}

func TestKillSwitchUsesWeaponTable(t *testing.T) {
	n, out := newTestNarrator()
	n.New([]string{"Cato", "kills", "Marvel", "with", "his sword"})
	n.Tell()
	got := strings.TrimSpace(out.String())
	assert.Contains(t, []string{
		"Cato decapitates Marvel with his sword.",
		"Cato stabs Marvel with his sword.",
		"Cato kills Marvel with his sword.",
	}, got)
}

func TestStockDefersUntilApplied(t *testing.T) {
	n, out := newTestNarrator()
	n.Stock([]string{"Wren", "misses", "Lila"})
	n.Tell()
	assert.Empty(t, out.String())

	n.ApplyStock()
	n.Tell()
	assert.Equal(t, "Wren misses Lila.\n", out.String())
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "", FormatList(nil))
	assert.Equal(t, "Rue", FormatList([]string{"Rue"}))
	assert.Equal(t, "Rue and Thresh", FormatList([]string{"Thresh", "Rue"}))
	assert.Equal(t, "Cato, Clove and Marvel", FormatList([]string{"Marvel", "Cato", "Clove"}))
}

func TestSentencesEndWithPeriods(t *testing.T) {
	n, out := newTestNarrator()
	n.New([]string{"the cannon sounds!"})
	n.New([]string{"Peeta", "waits"})
	n.Tell()
	assert.Equal(t, "the cannon sounds!\nPeeta waits.\n", out.String())
}
