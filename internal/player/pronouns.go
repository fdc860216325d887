package player

// Pronouns carries the fragments narration needs for one agent.
type Pronouns struct {
	He  string // subject: he / she / they
	Him string // object: him / her / them
	His string // possessive: his / her / their
}

// PronounsFor maps a subject pronoun to a full set; anything not
// recognized falls back to they/them/their.
func PronounsFor(he string) Pronouns {
	switch he {
	case "he":
		return Pronouns{He: "he", Him: "him", His: "his"}
	case "she":
		return Pronouns{He: "she", Him: "her", His: "her"}
	case "it":
		return Pronouns{He: "it", Him: "it", His: "its"}
	default:
		return Pronouns{He: "they", Him: "them", His: "their"}
	}
}

// Self returns the reflexive form: himself, herself, themself.
func (p Pronouns) Self() string {
	if p.Him == "them" {
		return "themself"
	}
	return p.Him + "self"
}
