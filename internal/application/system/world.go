package system

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/sidescroll/internal/domain/entity"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
)

// CollisionOracle answers occupancy queries against static level geometry.
// Anything outside Bounds must be reported as occupied.
type CollisionOracle interface {
	IsOccupied(x, y int) bool
	Bounds() (width, height int)
}

// AbilityCatalog builds spell entities from ability ids
type AbilityCatalog interface {
	Instantiate(id string, level int, spawn entity.Point, facing entity.Facing, owner, faction string) (*entity.Entity, bool)
}

// ItemCatalog builds loot entities from item ids
type ItemCatalog interface {
	InstantiateItem(id string, spawn entity.Point) (*entity.Entity, bool)
}

// OrbFactory builds experience orbs
type OrbFactory interface {
	NewOrb(spawn entity.Point, exp int) *entity.Entity
}

// Broadcast is a world-wide notice, like a death announcement
type Broadcast struct {
	Text      string
	Remaining time.Duration
}

// World is the context every behavior runs against
type World struct {
	Registry    *entity.Registry
	Oracle      CollisionOracle
	Rng         *rand.Rand
	Abilities   AbilityCatalog
	Items       ItemCatalog
	Orbs        OrbFactory
	Progression *entity.Progression
	Config      *config.SimConfig
	Log         *logrus.Entry
	Input       *InputSnapshot

	PlayerName string
	Broadcasts []Broadcast

	seq uint64
}

// NewWorld creates a world with an empty registry and a seeded rng
func NewWorld(cfg *config.SimConfig, oracle CollisionOracle, seed int64, log *logrus.Entry) *World {
	if cfg == nil {
		cfg = config.DefaultSim()
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = logrus.NewEntry(l)
	}
	return &World{
		Registry:    entity.NewRegistry(),
		Oracle:      oracle,
		Rng:         rand.New(rand.NewSource(seed)),
		Progression: entity.NewProgression(),
		Config:      cfg,
		Log:         log,
		Input:       &InputSnapshot{},
	}
}

// Spawn registers e. A name already in use gets a "#n" suffix so that
// spawning never replaces a live entity.
func (w *World) Spawn(e *entity.Entity) *entity.Entity {
	if e.Name == "" {
		e.Name = "entity"
	}
	if _, taken := w.Registry.Get(e.Name); taken {
		base := e.Name
		for {
			w.seq++
			e.Name = fmt.Sprintf("%s#%d", base, w.seq)
			if _, taken := w.Registry.Get(e.Name); !taken {
				break
			}
		}
	}
	w.Registry.Put(e)
	return e
}

// Despawn removes an entity from the registry
func (w *World) Despawn(name string) {
	if w.Registry.Remove(name) {
		w.Log.WithField("entity", name).Debug("despawned")
	}
}

// Player returns the player-controlled entity, if any
func (w *World) Player() (*entity.Entity, bool) {
	if w.PlayerName == "" {
		return nil, false
	}
	return w.Registry.Get(w.PlayerName)
}

// Broadcast pushes a world-wide notice
func (w *World) Broadcast(text string, d time.Duration) {
	w.Broadcasts = append(w.Broadcasts, Broadcast{Text: text, Remaining: d})
}

func (w *World) isPlayer(e *entity.Entity) bool {
	return w.PlayerName != "" && e.Name == w.PlayerName
}

func (w *World) tickBroadcasts(dt time.Duration) {
	kept := w.Broadcasts[:0]
	for _, b := range w.Broadcasts {
		b.Remaining -= dt
		if b.Remaining > 0 {
			kept = append(kept, b)
		}
	}
	w.Broadcasts = kept
}
