package player

// Relation tracks one directed pair's social state. Lazily created,
// neutral by default, never destroyed.
type Relation struct {
	friendship float64 // -1..1
	trust      float64 // -1..1
	allied     bool
}

// Friendship returns the friendship scalar in [-1, 1].
func (r *Relation) Friendship() float64 { return r.friendship }

// AddFriendship shifts friendship, clamped to [-1, 1].
func (r *Relation) AddFriendship(v float64) {
	r.friendship = clamp(r.friendship+v, -1, 1)
}

// Trust returns the trust scalar in [-1, 1].
func (r *Relation) Trust() float64 { return r.trust }

// AddTrust shifts trust, clamped to [-1, 1].
func (r *Relation) AddTrust(v float64) {
	r.trust = clamp(r.trust+v, -1, 1)
}

// Allied reports whether the pair is in an alliance.
func (r *Relation) Allied() bool { return r.allied }

// SetAllied flips the alliance bit.
func (r *Relation) SetAllied(v bool) { r.allied = v }

// GroupRelation aggregates several pairwise relations when a party is
// judged as one entity: mean friendship/trust, AND of allied.
type GroupRelation struct {
	subs []*Relation
}

// NewGroupRelation aggregates the given pairwise relations.
func NewGroupRelation(subs []*Relation) *GroupRelation {
	return &GroupRelation{subs: subs}
}

// Friendship returns the mean friendship over the pairs.
func (g *GroupRelation) Friendship() float64 {
	if len(g.subs) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range g.subs {
		sum += r.Friendship()
	}
	return sum / float64(len(g.subs))
}

// Trust returns the mean trust over the pairs.
func (g *GroupRelation) Trust() float64 {
	if len(g.subs) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range g.subs {
		sum += r.Trust()
	}
	return sum / float64(len(g.subs))
}

// Allied reports whether every pair is allied.
func (g *GroupRelation) Allied() bool {
	for _, r := range g.subs {
		if !r.Allied() {
			return false
		}
	}
	return len(g.subs) > 0
}

// AddFriendship shifts every pair.
func (g *GroupRelation) AddFriendship(v float64) {
	for _, r := range g.subs {
		r.AddFriendship(v)
	}
}

// AddTrust shifts every pair.
func (g *GroupRelation) AddTrust(v float64) {
	for _, r := range g.subs {
		r.AddTrust(v)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
