package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/younwookim/sidescroll/internal/application/replay"
	"github.com/younwookim/sidescroll/internal/application/session"
	"github.com/younwookim/sidescroll/internal/infrastructure/logging"
)

// result is the outcome of a headless run
type result struct {
	sess   *session.Session
	ticks  int
	digest string
	data   *replay.ReplayData
}

func (r result) print(out io.Writer) error {
	if _, err := fmt.Fprintf(out, "stage=%s seed=%d ticks=%d entities=%d\n",
		r.sess.StageName, r.sess.Seed, r.ticks, r.sess.World.Registry.Len()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, r.digest)
	return err
}

// replay re-runs a recording on its own stage and seed
func (o *options) replay(path string) (result, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return result{}, err
	}

	cfg, stageCfg, err := o.load(data.Stage)
	if err != nil {
		return result{}, err
	}

	log := logging.Component(o.log, "replay")
	sess, err := session.New(cfg, stageCfg, data.Seed, log)
	if err != nil {
		return result{}, err
	}

	ticks := sess.Play(replay.NewReplayer(*data))
	digest, err := sess.Digest()
	if err != nil {
		return result{}, err
	}

	log.WithFields(logrus.Fields{
		"path":  path,
		"seed":  data.Seed,
		"ticks": ticks,
	}).Debug("replay finished")
	return result{sess: sess, ticks: ticks, digest: digest, data: data}, nil
}

func newVerifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <replay.json>",
		Short: "Check a recording reproduces its digest",
		Long: `Re-run a recording made by 'play --record' or 'sim --record' and compare
the final state digest against the one stored in the file. A mismatch means
the simulation is no longer deterministic for that input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.replay(args[0])
			if err != nil {
				return err
			}
			if res.data.Digest == "" {
				return fmt.Errorf("replay %s has no digest", args[0])
			}
			if res.digest != res.data.Digest {
				return fmt.Errorf("digest mismatch after %d ticks: recorded %s, got %s",
					res.ticks, res.data.Digest, res.digest)
			}

			opts.log.WithField("ticks", res.ticks).Info("replay verified")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok %d ticks %s\n", res.ticks, res.digest)
			return err
		},
	}
}
