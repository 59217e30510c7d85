package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/sidescroll/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadReplay(file)
}

// ReadReplay decodes replay data from r
func ReadReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Stage == "" {
		return nil, fmt.Errorf("replay has no stage")
	}
	return &data, nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (system.InputSnapshot, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputSnapshot{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Snapshot(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Digest returns the recorded final digest, empty if none was stored
func (r *Replayer) Digest() string {
	return r.data.Digest
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
