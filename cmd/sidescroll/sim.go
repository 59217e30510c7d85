package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/younwookim/sidescroll/internal/application/replay"
	"github.com/younwookim/sidescroll/internal/application/session"
	"github.com/younwookim/sidescroll/internal/application/system"
	"github.com/younwookim/sidescroll/internal/infrastructure/logging"
)

var scripts = map[string]session.Script{
	"idle":   session.Idle,
	"wander": session.Wander,
}

func newSimCmd(opts *options) *cobra.Command {
	var (
		ticks      int
		script     string
		record     string
		replayPath string
	)

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the simulation headless and print the state digest",
		Long: `Run the selected stage without a window for a number of ticks using a
scripted input, then print the final state digest.

Scripts:
  idle   - no input
  wander - walk back and forth, jump, cast and talk on a fixed schedule

With --record the scripted input is saved as a replay that 'verify' accepts.
With --replay the recorded input is played instead, on the recorded stage
and seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if replayPath != "" {
				res, err := opts.replay(replayPath)
				if err != nil {
					return err
				}
				return res.print(cmd.OutOrStdout())
			}

			fn, ok := scripts[script]
			if !ok {
				return fmt.Errorf("unknown script %q (idle, wander)", script)
			}
			if ticks <= 0 {
				return fmt.Errorf("ticks must be positive, got %d", ticks)
			}

			cfg, stageCfg, err := opts.load(opts.stage)
			if err != nil {
				return err
			}

			seed := opts.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			log := logging.Component(opts.log, "sim")
			sess, err := session.New(cfg, stageCfg, seed, log)
			if err != nil {
				return err
			}

			var rec *replay.Recorder
			if record != "" {
				rec = replay.NewRecorder(seed, sess.StageName)
				fn = recording(fn, rec)
			}

			ran := sess.Run(ticks, fn)
			digest, err := sess.Digest()
			if err != nil {
				return err
			}

			if rec != nil {
				rec.SetDigest(digest)
				if err := rec.Save(record); err != nil {
					return err
				}
			}

			log.WithFields(logrus.Fields{
				"seed":     seed,
				"ticks":    ran,
				"entities": sess.World.Registry.Len(),
			}).Info("simulation finished")

			res := result{sess: sess, ticks: ran, digest: digest}
			return res.print(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 600, "Number of ticks to run")
	cmd.Flags().StringVar(&script, "script", "wander", "Input script: idle, wander")
	cmd.Flags().StringVar(&record, "record", "", "Save the scripted input as a replay")
	cmd.Flags().StringVar(&replayPath, "replay", "", "Play a recorded replay instead of a script")
	return cmd
}

// recording wraps a script so every produced input is also recorded
func recording(script session.Script, rec *replay.Recorder) session.Script {
	return func(tick int) system.InputSnapshot {
		in := script(tick)
		rec.RecordFrame(in)
		return in
	}
}
