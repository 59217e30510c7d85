// Package snapshot captures the simulated state in a compact, ordered form
// so that two runs can be compared by digest.
package snapshot

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/younwookim/sidescroll/internal/domain/entity"
)

// EntityState is the digest-relevant part of an entity
type EntityState struct {
	Name     string  `msgpack:"n"`
	Faction  string  `msgpack:"fc,omitempty"`
	X        int     `msgpack:"x"`
	Y        int     `msgpack:"y"`
	VX       int     `msgpack:"vx"`
	VY       int     `msgpack:"vy"`
	Facing   int     `msgpack:"f"`
	Grounded bool    `msgpack:"g,omitempty"`
	Crouched bool    `msgpack:"c,omitempty"`
	Strip    int     `msgpack:"sp"`
	Stage    int     `msgpack:"st"`
	Health   float64 `msgpack:"h"`
	Alive    bool    `msgpack:"a"`
	Alerted  bool    `msgpack:"al,omitempty"`
	Patrol   int     `msgpack:"pd,omitempty"`
	Pending  string  `msgpack:"ps,omitempty"`
	Talking  bool    `msgpack:"t,omitempty"`
}

// ProgressionState is the digest-relevant part of the player progression
type ProgressionState struct {
	Sockets   []string       `msgpack:"s"`
	Inventory map[string]int `msgpack:"i"`
	Exp       int            `msgpack:"e"`
	Form      int            `msgpack:"f"`
}

// State is a full world snapshot, entities in registry order
type State struct {
	Tick        uint64            `msgpack:"tick"`
	Entities    []EntityState     `msgpack:"ents"`
	Progression *ProgressionState `msgpack:"prog,omitempty"`
}

// Capture builds a snapshot of the registry and progression
func Capture(tick uint64, reg *entity.Registry, prog *entity.Progression) State {
	st := State{
		Tick:     tick,
		Entities: make([]EntityState, 0, reg.Len()),
	}
	for _, e := range reg.Entities() {
		st.Entities = append(st.Entities, entityState(e))
	}
	if prog != nil {
		st.Progression = &ProgressionState{
			Sockets:   prog.Sockets[:],
			Inventory: prog.Inventory,
			Exp:       prog.Exp,
			Form:      int(prog.Form),
		}
	}
	return st
}

func entityState(e *entity.Entity) EntityState {
	es := EntityState{
		Name:     e.Name,
		Faction:  e.Faction,
		X:        e.Pos.X,
		Y:        e.Pos.Y,
		VX:       e.Vel.X,
		VY:       e.Vel.Y,
		Facing:   int(e.Facing),
		Grounded: e.Grounded,
		Crouched: e.Crouched,
		Strip:    e.Strip,
		Stage:    e.Stage,
		Health:   e.Health,
		Alive:    e.Alive,
		Talking:  e.Talking,
	}
	if e.Mind != nil {
		es.Alerted = e.Mind.Alerted()
		es.Patrol = e.Mind.PatrolDistance
	}
	if e.PendingSpell != nil {
		es.Pending = e.PendingSpell.Name
	}
	return es
}

// Encode serializes a snapshot with sorted map keys so equal states encode
// to equal bytes.
func Encode(st State) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(&st); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses bytes produced by Encode
func Decode(data []byte) (State, error) {
	var st State
	if err := msgpack.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return st, nil
}

// Digest returns the hex sha256 of the encoded snapshot
func Digest(st State) (string, error) {
	data, err := Encode(st)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
