package entity

import "time"

// SocketCount is the number of ability sockets the player has
const SocketCount = 5

// Form selects which dialogue variant NPCs use
type Form int

const (
	FormPrimary Form = iota
	FormAlternate
)

// Progression is the player-owned state that outlives a single entity:
// socketed abilities and their cooldowns, inventory, experience and form.
type Progression struct {
	Sockets         [SocketCount]string
	SocketCooldowns [SocketCount]time.Duration
	SpellLevels     map[string]int
	Inventory       map[string]int
	Exp             int
	Form            Form
}

// NewProgression creates a progression with the given abilities socketed in order
func NewProgression(sockets ...string) *Progression {
	p := &Progression{
		SpellLevels: make(map[string]int),
		Inventory:   make(map[string]int),
	}
	for i, s := range sockets {
		if i >= SocketCount {
			break
		}
		p.Sockets[i] = s
	}
	return p
}

// Socket returns the ability in socket i, or "" if empty or out of range
func (p *Progression) Socket(i int) string {
	if i < 0 || i >= SocketCount {
		return ""
	}
	return p.Sockets[i]
}

// Cooling returns true if socket i is on cooldown
func (p *Progression) Cooling(i int) bool {
	if i < 0 || i >= SocketCount {
		return false
	}
	return p.SocketCooldowns[i] > 0
}

// StartCooldown puts socket i on cooldown
func (p *Progression) StartCooldown(i int, d time.Duration) {
	if i < 0 || i >= SocketCount {
		return
	}
	p.SocketCooldowns[i] = d
}

// Tick advances socket cooldowns
func (p *Progression) Tick(dt time.Duration) {
	for i := range p.SocketCooldowns {
		if p.SocketCooldowns[i] > 0 {
			p.SocketCooldowns[i] -= dt
			if p.SocketCooldowns[i] < 0 {
				p.SocketCooldowns[i] = 0
			}
		}
	}
}

// SpellLevel returns the mastery level of an ability (at least 1)
func (p *Progression) SpellLevel(ability string) int {
	if lvl := p.SpellLevels[ability]; lvl > 0 {
		return lvl
	}
	return 1
}

// AddItem adds n of an item to the inventory
func (p *Progression) AddItem(item string, n int) {
	p.Inventory[item] += n
}

// AddExp adds experience
func (p *Progression) AddExp(n int) {
	p.Exp += n
}

// ToggleForm switches between the primary and alternate form
func (p *Progression) ToggleForm() {
	if p.Form == FormPrimary {
		p.Form = FormAlternate
	} else {
		p.Form = FormPrimary
	}
}
