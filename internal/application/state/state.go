// Package state tracks what the play screen is doing
package state

import (
	"context"

	"github.com/looplab/fsm"
)

// GameState represents the current state of the play screen
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

var names = map[GameState]string{
	StatePlaying:  "Playing",
	StatePaused:   "Paused",
	StateGameOver: "GameOver",
}

// String returns the string representation of the game state
func (s GameState) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return "Unknown"
}

func parse(name string) GameState {
	for s, n := range names {
		if n == name {
			return s
		}
	}
	return StatePlaying
}

// Events accepted by Machine
const (
	EventPause   = "pause"
	EventResume  = "resume"
	EventDie     = "die"
	EventRestart = "restart"
)

// Machine guards the transitions between play screen states.
// Events that do not apply to the current state are ignored.
type Machine struct {
	fsm *fsm.FSM
}

// NewMachine starts in StatePlaying. onChange, if set, is called after
// every transition.
func NewMachine(onChange func(from, to GameState)) *Machine {
	callbacks := fsm.Callbacks{}
	if onChange != nil {
		callbacks["enter_state"] = func(_ context.Context, e *fsm.Event) {
			onChange(parse(e.Src), parse(e.Dst))
		}
	}

	playing := StatePlaying.String()
	paused := StatePaused.String()
	over := StateGameOver.String()
	return &Machine{
		fsm: fsm.NewFSM(
			playing,
			fsm.Events{
				{Name: EventPause, Src: []string{playing}, Dst: paused},
				{Name: EventResume, Src: []string{paused}, Dst: playing},
				{Name: EventDie, Src: []string{playing}, Dst: over},
				{Name: EventRestart, Src: []string{over, paused}, Dst: playing},
			},
			callbacks,
		),
	}
}

// Current returns the current state
func (m *Machine) Current() GameState {
	return parse(m.fsm.Current())
}

// Fire applies an event and reports whether the state changed
func (m *Machine) Fire(event string) bool {
	return m.fsm.Event(context.Background(), event) == nil
}
