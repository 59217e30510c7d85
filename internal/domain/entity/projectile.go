package entity

import "time"

// SpellData is the payload of a spell entity (projectile or melee strike)
type SpellData struct {
	Ability  string
	Owner    string
	Element  Element
	Damage   float64
	Cooldown time.Duration // applied to the caster when the spell is emitted
	Lifetime time.Duration // remaining time before the spell despawns
	Melee    bool          // strikes hit every overlapped target once and never travel

	hits map[string]struct{}
}

// NewSpellData creates spell data with an empty hit set
func NewSpellData(ability, owner string, element Element, damage float64, cooldown, lifetime time.Duration, melee bool) *SpellData {
	return &SpellData{
		Ability:  ability,
		Owner:    owner,
		Element:  element,
		Damage:   damage,
		Cooldown: cooldown,
		Lifetime: lifetime,
		Melee:    melee,
		hits:     make(map[string]struct{}),
	}
}

// MarkHit records a target. Returns false if it was already hit.
func (s *SpellData) MarkHit(name string) bool {
	if s.hits == nil {
		s.hits = make(map[string]struct{})
	}
	if _, ok := s.hits[name]; ok {
		return false
	}
	s.hits[name] = struct{}{}
	return true
}

// Expired returns true once the lifetime has run out
func (s *SpellData) Expired() bool {
	return s.Lifetime <= 0
}

// PickupData is the payload of a collectible (item or experience orb)
type PickupData struct {
	Item   string // empty for experience orbs
	Amount int
	Exp    int
}
