package session

import "github.com/younwookim/sidescroll/internal/application/system"

// Script produces the input for a tick
type Script func(tick int) system.InputSnapshot

// Idle never presses anything
func Idle(int) system.InputSnapshot {
	return system.InputSnapshot{}
}

// Wander walks back and forth in 4 second legs, jumps every 1.5 seconds,
// cycles through the ability sockets and talks to whatever is in front
// every 10 seconds. Timings assume 60 ticks per second.
func Wander(tick int) system.InputSnapshot {
	var in system.InputSnapshot

	leg := (tick / 240) % 2
	in.Right = leg == 0
	in.Left = leg == 1
	in.Up = tick%90 < 6

	if tick%45 == 0 {
		in.Abilities[(tick/45)%len(in.Abilities)] = true
	}
	in.Enter = tick%600 == 300
	return in
}

// Run steps the session n times with script input and returns the ticks run.
// It stops early once the player has died.
func (s *Session) Run(n int, script Script) int {
	if script == nil {
		script = Idle
	}
	for i := 0; i < n; i++ {
		if s.PlayerDead() {
			return i
		}
		s.Step(script(i))
	}
	return n
}
