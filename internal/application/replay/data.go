package replay

import (
	"github.com/younwookim/sidescroll/internal/application/system"
	"github.com/younwookim/sidescroll/internal/domain/entity"
)

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F int  `json:"f"`           // Tick number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	E bool `json:"e,omitempty"` // Enter (edge)
	S bool `json:"s,omitempty"` // Space (edge)
	A int  `json:"a,omitempty"` // Ability sockets, bit i = socket i
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Digest    string       `json:"digest,omitempty"` // state digest after the last frame
	Frames    []FrameInput `json:"frames"`
}

// NewFrame converts an input snapshot into a recorded frame
func NewFrame(f int, in system.InputSnapshot) FrameInput {
	fi := FrameInput{
		F: f,
		L: in.Left,
		R: in.Right,
		U: in.Up,
		D: in.Down,
		E: in.Enter,
		S: in.Space,
	}
	for i, held := range in.Abilities {
		if held {
			fi.A |= 1 << i
		}
	}
	return fi
}

// Snapshot converts a recorded frame back into an input snapshot
func (fi FrameInput) Snapshot() system.InputSnapshot {
	in := system.InputSnapshot{
		Left:  fi.L,
		Right: fi.R,
		Up:    fi.U,
		Down:  fi.D,
		Enter: fi.E,
		Space: fi.S,
	}
	for i := 0; i < entity.SocketCount; i++ {
		in.Abilities[i] = fi.A&(1<<i) != 0
	}
	return in
}
