package catalog

import "github.com/younwookim/sidescroll/internal/infrastructure/config"

// Default returns a small built-in content set for headless runs and tests
func Default() *Catalog {
	return New(&config.ContentConfig{
		Abilities: []config.AbilityConfig{
			DefaultStrike,
			{
				ID:             "Fireball",
				Kind:           "projectile",
				Element:        "fire",
				Damage:         20,
				DamagePerLevel: 5,
				Speed:          12,
				LifetimeMs:     1500,
				CooldownMs:     1200,
				Shape:          config.Rect{Width: 16, Height: 16},
				AnimateMs:      80,
				Stages:         4,
			},
			{
				ID:         "Gust",
				Kind:       "projectile",
				Element:    "air",
				Damage:     12,
				Speed:      18,
				LifetimeMs: 800,
				CooldownMs: 600,
				Shape:      config.Rect{Width: 24, Height: 12},
				Stages:     1,
			},
		},
		Items: []config.ItemConfig{
			{ID: "Potion", Amount: 1, Shape: config.Rect{Width: 10, Height: 12}},
			{ID: "Gem", Amount: 1, Shape: config.Rect{Width: 8, Height: 8}},
		},
		Orb: config.OrbConfig{Weight: 1, Shape: config.Rect{Width: 8, Height: 8}},
	})
}
