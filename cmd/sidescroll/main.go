// sidescroll runs the side-scroller simulation.
//
// Usage:
//
//	sidescroll play                 - Open a window and play a stage
//	sidescroll sim                  - Run ticks headless and print the state digest
//	sidescroll verify <replay.json> - Re-run a recording and check its digest
//
// Global flags:
//
//	--configs <dir> - Read configs from a directory instead of the built-in set
//	--stage <name>  - Stage to load (default: demo)
//	--seed <value>  - RNG seed (0 = random based on time)
//
// LOG_LEVEL and LOG_FORMAT (text or json) control logging.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/younwookim/sidescroll/internal/infrastructure/logging"
)

// options are the global flags shared by every command
type options struct {
	configDir string
	stage     string
	seed      int64
	log       *logrus.Logger
}

func main() {
	log := logging.FromEnv(os.Stderr)
	if err := newRootCmd(log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	opts := &options{log: log}

	root := &cobra.Command{
		Use:   "sidescroll",
		Short: "Side-scrolling action simulation",
		Long: `sidescroll runs a deterministic 2D side-scroller simulation.

Available commands:
  play     - Play a stage in a window
  sim      - Run the simulation headless
  verify   - Check a recording reproduces its digest

Examples:
  sidescroll play --record run.json
  sidescroll sim --ticks 1200 --script wander --seed 7
  sidescroll verify run.json`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configDir, "configs", "", "Config directory (default: built-in)")
	root.PersistentFlags().StringVar(&opts.stage, "stage", "demo", "Stage name")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = random based on time)")

	root.AddCommand(newPlayCmd(opts))
	root.AddCommand(newSimCmd(opts))
	root.AddCommand(newVerifyCmd(opts))
	return root
}
