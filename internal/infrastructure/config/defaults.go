package config

// DefaultSim returns the built-in simulation constants
func DefaultSim() *SimConfig {
	return &SimConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:      2,
			MaxFallSpeed: 40,
			MaxRunSpeed:  30,
			Integrator:   "refined",
		},
		Jump: JumpConfig{
			Velocity: 32,
			GraceMs:  500,
		},
		Perception: PerceptionConfig{
			SightRange:        250,
			EngageRangeSq:     10000,
			DisengageDistance: 50,
			HopChance:         340,
			HopVelocity:       15,
			ChaseBonus:        2,
			PatrolStep:        3,
			PatrolMin:         3,
			PatrolMax:         5,
			PatrolUnit:        100,
		},
		Cast: CastConfig{
			PlayerTriggerFrame: 5,
			EnemyTriggerFrame:  2,
			SpawnGap:           10,
			SocketLift:         []int{50, 45, 45, 15, 15},
		},
		Combat: CombatConfig{
			MessageMs: 3000,
			FlinchMs:  250,
			OrbCount:  5,
			NoticeMs:  10000,
		},
		Dialogue: DialogueConfig{
			FadeMs:         5000,
			FadeDurationMs: 1000,
		},
	}
}
