package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/younwookim/sidescroll/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// loader reads from --configs when set, otherwise from the embedded set
func (o *options) loader() (*config.Loader, error) {
	if o.configDir != "" {
		return config.NewLoader(o.configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// load reads the base configs and the named stage
func (o *options) load(stage string) (*config.GameConfig, *config.StageConfig, error) {
	loader, err := o.loader()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	stageCfg, err := loader.LoadStage(stage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load stage: %w", err)
	}
	return cfg, stageCfg, nil
}
