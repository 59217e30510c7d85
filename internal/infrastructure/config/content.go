package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ContentConfig holds the ability and item tables
type ContentConfig struct {
	Abilities []AbilityConfig `yaml:"abilities"`
	Items     []ItemConfig    `yaml:"items"`
	Orb       OrbConfig       `yaml:"orb"`
}

// AbilityConfig is one row of abilities.yaml
type AbilityConfig struct {
	ID             string  `yaml:"id"`
	Kind           string  `yaml:"kind"` // "projectile" or "melee"
	Element        string  `yaml:"element"`
	Damage         float64 `yaml:"damage"`
	DamagePerLevel float64 `yaml:"damagePerLevel"`
	Speed          int     `yaml:"speed"`
	LifetimeMs     int     `yaml:"lifetimeMs"`
	CooldownMs     int     `yaml:"cooldownMs"`
	Shape          Rect    `yaml:"shape"`
	AnimateMs      int     `yaml:"animateMs"`
	Stages         int     `yaml:"stages"`
}

// ItemConfig is one row of items.yaml
type ItemConfig struct {
	ID     string `yaml:"id"`
	Amount int    `yaml:"amount"`
	Weight int    `yaml:"weight"`
	Shape  Rect   `yaml:"shape"`
}

// OrbConfig describes experience orbs
type OrbConfig struct {
	Weight int  `yaml:"weight"`
	Shape  Rect `yaml:"shape"`
}

type abilitiesFile struct {
	Abilities []AbilityConfig `yaml:"abilities"`
}

type itemsFile struct {
	Items []ItemConfig `yaml:"items"`
	Orb   OrbConfig    `yaml:"orb"`
}

// ParseAbilities parses abilities.yaml
func ParseAbilities(data []byte) ([]AbilityConfig, error) {
	var f abilitiesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	seen := make(map[string]bool, len(f.Abilities))
	for _, a := range f.Abilities {
		if a.ID == "" {
			return nil, fmt.Errorf("ability without id")
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate ability %q", a.ID)
		}
		seen[a.ID] = true
		if a.Kind != "projectile" && a.Kind != "melee" {
			return nil, fmt.Errorf("ability %q: unknown kind %q", a.ID, a.Kind)
		}
	}
	return f.Abilities, nil
}

// ParseItems parses items.yaml
func ParseItems(data []byte) ([]ItemConfig, OrbConfig, error) {
	var f itemsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, OrbConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	for _, it := range f.Items {
		if it.ID == "" {
			return nil, OrbConfig{}, fmt.Errorf("item without id")
		}
	}
	return f.Items, f.Orb, nil
}
