package config

import "time"

// SimConfig is the root config for sim.json
type SimConfig struct {
	Display    DisplayConfig    `json:"display"`
	Physics    PhysicsSettings  `json:"physics"`
	Jump       JumpConfig       `json:"jump"`
	Perception PerceptionConfig `json:"perception"`
	Cast       CastConfig       `json:"cast"`
	Combat     CombatConfig     `json:"combat"`
	Dialogue   DialogueConfig   `json:"dialogue"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// TickDuration returns the simulated time of one tick
func (d DisplayConfig) TickDuration() time.Duration {
	if d.Framerate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(d.Framerate)
}

// PhysicsSettings holds integrator constants (pixels and pixels per tick)
type PhysicsSettings struct {
	Gravity      int    `json:"gravity"`
	MaxFallSpeed int    `json:"maxFallSpeed"`
	MaxRunSpeed  int    `json:"maxRunSpeed"`
	Integrator   string `json:"integrator"` // "refined" or "basic"
}

type JumpConfig struct {
	Velocity int `json:"velocity"`
	GraceMs  int `json:"graceMs"` // jump allowed this long after leaving the ground
}

func (j JumpConfig) Grace() time.Duration {
	return time.Duration(j.GraceMs) * time.Millisecond
}

// PerceptionConfig tunes the simple enemy loop
type PerceptionConfig struct {
	SightRange        int `json:"sightRange"`        // pixels, compared squared
	EngageRangeSq     int `json:"engageRangeSq"`     // squared pixels
	DisengageDistance int `json:"disengageDistance"` // horizontal pixels
	HopChance         int `json:"hopChance"`         // 1 in N per grounded tick
	HopVelocity       int `json:"hopVelocity"`
	ChaseBonus        int `json:"chaseBonus"` // added to speed while alerted
	PatrolStep        int `json:"patrolStep"`
	PatrolMin         int `json:"patrolMin"`
	PatrolMax         int `json:"patrolMax"`
	PatrolUnit        int `json:"patrolUnit"`
}

// CastConfig places spawned spells relative to the caster
type CastConfig struct {
	PlayerTriggerFrame int   `json:"playerTriggerFrame"`
	EnemyTriggerFrame  int   `json:"enemyTriggerFrame"`
	SpawnGap           int   `json:"spawnGap"`   // pixels in front of the shape
	SocketLift         []int `json:"socketLift"` // pixels above shape center, per socket
}

// Lift returns the vertical lift for a socket
func (c CastConfig) Lift(socket int) int {
	if socket < 0 || socket >= len(c.SocketLift) {
		return 0
	}
	return c.SocketLift[socket]
}

type CombatConfig struct {
	MessageMs int `json:"messageMs"`
	FlinchMs  int `json:"flinchMs"`
	OrbCount  int `json:"orbCount"`
	NoticeMs  int `json:"noticeMs"` // death broadcast lifetime
}

func (c CombatConfig) Message() time.Duration {
	return time.Duration(c.MessageMs) * time.Millisecond
}

func (c CombatConfig) Flinch() time.Duration {
	return time.Duration(c.FlinchMs) * time.Millisecond
}

func (c CombatConfig) Notice() time.Duration {
	return time.Duration(c.NoticeMs) * time.Millisecond
}

type DialogueConfig struct {
	FadeMs         int `json:"fadeMs"`
	FadeDurationMs int `json:"fadeDurationMs"`
}

func (d DialogueConfig) Fade() time.Duration {
	return time.Duration(d.FadeMs) * time.Millisecond
}

func (d DialogueConfig) FadeDuration() time.Duration {
	return time.Duration(d.FadeDurationMs) * time.Millisecond
}
