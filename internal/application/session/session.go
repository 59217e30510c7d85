// Package session assembles a runnable simulation from loaded configs and
// drives it tick by tick, for both the window host and headless tools.
package session

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/sidescroll/internal/application/replay"
	"github.com/younwookim/sidescroll/internal/application/snapshot"
	"github.com/younwookim/sidescroll/internal/application/system"
	"github.com/younwookim/sidescroll/internal/domain/entity"
	"github.com/younwookim/sidescroll/internal/infrastructure/catalog"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
)

// Session owns one stage run
type Session struct {
	Sim       *system.Simulation
	World     *system.World
	Stage     *entity.TileMap
	StageName string
	Seed      int64

	dt time.Duration
}

// New loads the stage, populates it and wires the simulation. A nil
// Content falls back to the built-in catalog.
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, seed int64, log *logrus.Entry) (*Session, error) {
	if cfg == nil || cfg.Entities == nil {
		return nil, fmt.Errorf("failed to start session: no entity templates")
	}
	if stageCfg.Size.TileSize <= 0 {
		return nil, fmt.Errorf("failed to start session: stage %s has no tile size", stageCfg.ID)
	}

	sim := cfg.Sim
	if sim == nil {
		sim = config.DefaultSim()
	}

	var cat *catalog.Catalog
	if cfg.Content != nil {
		cat = catalog.New(cfg.Content)
	} else {
		cat = catalog.Default()
	}

	stage := system.LoadStage(stageCfg)
	w := system.NewWorld(sim, stage, seed, log)
	w.Abilities = cat
	w.Items = cat
	w.Orbs = cat

	if err := system.Populate(w, stageCfg, cfg.Entities); err != nil {
		return nil, fmt.Errorf("failed to populate stage %s: %w", stageCfg.ID, err)
	}

	return &Session{
		Sim:       system.NewSimulation(w),
		World:     w,
		Stage:     stage,
		StageName: stageCfg.ID,
		Seed:      seed,
		dt:        sim.Display.TickDuration(),
	}, nil
}

// TickDuration returns the simulated time of one step
func (s *Session) TickDuration() time.Duration {
	return s.dt
}

// Step advances one tick with the given input
func (s *Session) Step(in system.InputSnapshot) {
	s.Sim.Step(&in, s.dt)
}

// Play feeds every remaining replay frame and returns the number of ticks run
func (s *Session) Play(r *replay.Replayer) int {
	n := 0
	for {
		in, ok := r.Next()
		if !ok {
			return n
		}
		s.Step(in)
		n++
	}
}

// PlayerDead reports whether the player entity exists and has died
func (s *Session) PlayerDead() bool {
	p, ok := s.World.Player()
	return ok && !p.Alive
}

// Snapshot captures the current state
func (s *Session) Snapshot() snapshot.State {
	return snapshot.Capture(s.Sim.Tick(), s.World.Registry, s.World.Progression)
}

// Digest hashes the current state
func (s *Session) Digest() (string, error) {
	return snapshot.Digest(s.Snapshot())
}
