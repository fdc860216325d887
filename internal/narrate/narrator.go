// Package narrate turns ordered token fragments into printed prose.
// Components queue sentences as token lists; Tell renders the buffer to
// the output, collapsing repeated subjects, verbs, tools and locations
// and substituting weapon-flavored kill verbs.
package narrate

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/talgya/arena-sim/internal/entropy"
)

// Comma is the sentinel token that glues the next fragment to the
// previous one with a comma instead of a space.
const Comma = ","

var placeSwitch = map[string]string{
	"at the ruins":  "in the ruins",
	"at the plain":  "in the plain",
	"at the jungle": "in the jungle",
	"at the forest": "in the forest",
	"at the hill":   "on the hill",
	"at the river":  "by the river",
}

var killWords = map[string][]string{
	"axe":        {"decapitates", "kills"},
	"sword":      {"decapitates", "stabs", "kills"},
	"machete":    {"stabs", "kills"},
	"knife":      {"stabs", "kills"},
	"hatchet":    {"stabs", "kills"},
	"trident":    {"stabs", "kills"},
	"spear":      {"stabs", "kills"},
	"club":       {"knocks out", "kills"},
	"mace":       {"knocks out", "kills"},
	"bare hands": {"strangles", "kills"},
}

// FormatList joins names into prose: "a", "a and b", "a, b and c".
func FormatList(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	switch len(sorted) {
	case 0:
		return ""
	case 1:
		return sorted[0]
	}
	return strings.Join(sorted[:len(sorted)-1], ", ") + " and " + sorted[len(sorted)-1]
}

// Narrator buffers sentences until Tell flushes them as prose.
type Narrator struct {
	rng *entropy.Source
	out io.Writer

	current       []string
	activeSubject string
	lines         [][]string
	stocked       [][]string
}

// NewNarrator creates a narrator writing rendered prose to out.
func NewNarrator(rng *entropy.Source, out io.Writer) *Narrator {
	return &Narrator{rng: rng, out: out}
}

// Add appends token fragments to the current sentence, de-duplicating
// the subject, the "with ..." tool, the "at ..." place and a repeated
// verb against what the sentence already says.
func (n *Narrator) Add(tokens []string) {
	sentence := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			sentence = append(sentence, t)
		}
	}
	if len(sentence) == 0 {
		return
	}

	if sentence[0] == n.activeSubject {
		sentence[0] = "and"
	} else {
		n.activeSubject = sentence[0]
		if len(n.current) > 0 && n.current[len(n.current)-1] != "and" {
			n.Comma()
		}
	}

	sentence = n.dropRepeatedTool(sentence)
	sentence = n.dropRepeatedPlace(sentence)

	if len(sentence) > 1 && sentence[0] == "and" && contains(n.current, sentence[1]) {
		sentence = append(sentence[:1], sentence[2:]...)
	}

	n.current = append(n.current, sentence...)
}

func (n *Narrator) dropRepeatedTool(sentence []string) []string {
	for i, t := range sentence {
		if !strings.HasPrefix(t, "with ") {
			continue
		}
		his := strings.ReplaceAll(t, "her", "his")
		her := strings.ReplaceAll(t, "his", "her")
		if contains(n.current, t) || contains(n.current, his) || contains(n.current, her) {
			return append(sentence[:i:i], sentence[i+1:]...)
		}
		break
	}
	return sentence
}

func (n *Narrator) dropRepeatedPlace(sentence []string) []string {
	for i, t := range sentence {
		if strings.HasPrefix(t, "at ") && contains(n.current, t) {
			return append(sentence[:i:i], sentence[i+1:]...)
		}
	}
	return sentence
}

// New cuts the current sentence and starts a fresh one from tokens.
func (n *Narrator) New(tokens []string) {
	n.Cut()
	n.Add(tokens)
}

// Stock defers a sentence; ApplyStock later appends all deferred
// sentences, so consecutive "misses" can collapse into one clause.
func (n *Narrator) Stock(tokens []string) {
	n.stocked = append(n.stocked, tokens)
}

// ApplyStock flushes every deferred sentence into the buffer.
func (n *Narrator) ApplyStock() {
	for _, s := range n.stocked {
		n.Add(s)
	}
	n.stocked = nil
}

// ClearStock drops the deferred sentences unused.
func (n *Narrator) ClearStock() {
	n.stocked = nil
}

// HasStock reports whether deferred sentences are pending.
func (n *Narrator) HasStock() bool {
	return len(n.stocked) > 0
}

// Comma appends the comma sentinel to a non-empty sentence.
func (n *Narrator) Comma() {
	if len(n.current) > 0 {
		n.current = append(n.current, Comma)
	}
}

// Cut flushes the current sentence into the line buffer.
func (n *Narrator) Cut() {
	if len(n.current) > 0 {
		n.lines = append(n.lines, n.current)
	}
	n.current = nil
	n.activeSubject = ""
}

// Replace swaps a token of the current sentence in place.
func (n *Narrator) Replace(old, new string) {
	for i, t := range n.current {
		if t == old {
			n.current[i] = new
		}
	}
}

// Tell renders all buffered sentences as punctuated prose, skipping
// tokens listed in filters.
func (n *Narrator) Tell(filters ...string) {
	n.Cut()
	for _, line := range n.lines {
		rendered := n.renderLine(line, filters)
		if rendered != "" {
			fmt.Fprintln(n.out, rendered)
		}
	}
	n.lines = nil
}

func (n *Narrator) renderLine(line []string, filters []string) string {
	var b strings.Builder
	for _, t := range line {
		if containsStr(filters, t) {
			continue
		}
		if t == Comma {
			out := strings.TrimSuffix(b.String(), " ")
			b.Reset()
			b.WriteString(out)
		}
		t = n.killSwitch(t, line)
		if s, ok := placeSwitch[t]; ok {
			t = s
		}
		b.WriteString(t)
		b.WriteString(" ")
	}
	out := strings.TrimSuffix(b.String(), " ")
	if out == "" {
		return ""
	}
	switch out[len(out)-1] {
	case '=', '-', '.', '!':
	default:
		out += "."
	}
	return out
}

// killSwitch replaces a bare "kills" with a verb flavored by the single
// "with <tool>" fragment of the sentence, when the tool has a table.
func (n *Narrator) killSwitch(token string, line []string) string {
	if token != "kills" {
		return token
	}
	var tools []string
	for _, t := range line {
		if strings.HasPrefix(t, "with ") {
			parts := strings.Split(t, " ")
			tools = append(tools, parts[len(parts)-1])
		}
	}
	if len(tools) != 1 {
		return token
	}
	tool := tools[0]
	if tool == "hands" {
		tool = "bare hands"
	}
	verbs, ok := killWords[tool]
	if !ok {
		return token
	}
	return verbs[n.rng.Intn(len(verbs))]
}

func contains(tokens []string, t string) bool {
	for _, x := range tokens {
		if x == t {
			return true
		}
	}
	return false
}

func containsStr(xs []string, t string) bool {
	for _, x := range xs {
		if x == t {
			return true
		}
	}
	return false
}
