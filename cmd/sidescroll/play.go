package main

import (
	"github.com/spf13/cobra"

	"github.com/younwookim/sidescroll/internal/application/game"
	"github.com/younwookim/sidescroll/internal/application/scene/playing"
	"github.com/younwookim/sidescroll/internal/infrastructure/logging"
)

func newPlayCmd(opts *options) *cobra.Command {
	var record string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a stage in a window",
		Long: `Open a window and play the selected stage.

Controls:
  Arrows/WASD - Move, jump (up) and crouch (down)
  1-5         - Cast the ability in that socket
  Enter       - Talk to whoever stands in front
  Space       - Toggle form
  Esc         - Pause
  F5          - Save the recording (with --record)
  R           - Restart (paused or after game over)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, stageCfg, err := opts.load(opts.stage)
			if err != nil {
				return err
			}

			scene, err := playing.New(cfg, stageCfg, playing.Options{
				Seed:       opts.seed,
				RecordPath: record,
				Log:        logging.Component(opts.log, "play"),
			})
			if err != nil {
				return err
			}

			g := game.New(scene, cfg.Sim.Display, logging.Component(opts.log, "host"))
			return g.Run("sidescroll - " + stageCfg.Name)
		},
	}

	cmd.Flags().StringVar(&record, "record", "", "Record input to file (e.g. --record replay.json)")
	return cmd
}
