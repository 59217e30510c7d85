package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Sim      *SimConfig
	Entities *EntitiesConfig
	Content  *ContentConfig
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSim loads sim.json on top of the defaults, so a partial file is valid
func (l *Loader) LoadSim() (*SimConfig, error) {
	data, err := fs.ReadFile(l.fsys, "sim.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read sim.json: %w", err)
	}

	cfg := DefaultSim()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sim.json: %w", err)
	}

	return cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	return &cfg, nil
}

// LoadContent loads abilities.yaml and items.yaml
func (l *Loader) LoadContent() (*ContentConfig, error) {
	data, err := fs.ReadFile(l.fsys, "abilities.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read abilities.yaml: %w", err)
	}
	abilities, err := ParseAbilities(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse abilities.yaml: %w", err)
	}

	data, err = fs.ReadFile(l.fsys, "items.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read items.yaml: %w", err)
	}
	items, orb, err := ParseItems(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse items.yaml: %w", err)
	}

	return &ContentConfig{
		Abilities: abilities,
		Items:     items,
		Orb:       orb,
	}, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (sim, entities, content)
func (l *Loader) LoadAll() (*GameConfig, error) {
	sim, err := l.LoadSim()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	content, err := l.LoadContent()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Sim:      sim,
		Entities: entities,
		Content:  content,
	}, nil
}
