package entity

import (
	"context"

	"github.com/looplab/fsm"
)

// Alert states of a simple enemy
const (
	StatePatrolling = "patrolling"
	StateAlerted    = "alerted"
)

const (
	eventAlert = "alert"
	eventCalm  = "calm"
)

// DefaultPatrolDistance is the patrol budget a fresh enemy starts with
const DefaultPatrolDistance = 300

// Mind holds the perception state of a simple enemy
type Mind struct {
	fsm *fsm.FSM

	PatrolDistance  int
	Target          string
	LastKnownTarget Point
}

// NewMind creates a patrolling mind with the given patrol budget
func NewMind(patrolDistance int) *Mind {
	return &Mind{
		fsm: fsm.NewFSM(
			StatePatrolling,
			fsm.Events{
				{Name: eventAlert, Src: []string{StatePatrolling}, Dst: StateAlerted},
				{Name: eventCalm, Src: []string{StateAlerted}, Dst: StatePatrolling},
			},
			fsm.Callbacks{},
		),
		PatrolDistance: patrolDistance,
	}
}

// State returns the current alert state
func (m *Mind) State() string {
	return m.fsm.Current()
}

// Alerted returns true while the enemy is chasing a target
func (m *Mind) Alerted() bool {
	return m.fsm.Is(StateAlerted)
}

// Alert records the target and enters the alerted state.
// Returns true if the state changed.
func (m *Mind) Alert(target string, pos Point) bool {
	m.Target = target
	m.LastKnownTarget = pos
	return m.fsm.Event(context.Background(), eventAlert) == nil
}

// Calm drops back to patrolling. Returns true if the state changed.
func (m *Mind) Calm() bool {
	m.Target = ""
	return m.fsm.Event(context.Background(), eventCalm) == nil
}
