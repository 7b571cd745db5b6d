// Package commands wires the kstable CLI's verbs onto cobra, grounded on
// the teacher's cmd/mcs-mcp/commands/root.go persistent-flag shell.
package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bbak/kstable/internal/config"
	"github.com/bbak/kstable/internal/logging"
)

var (
	seedFlag    uint32
	verboseFlag bool
	logDirFlag  string

	cfg *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "kstable",
	Short: "kstable explores k-stability in house allocation, marriage, and roommates matching",
	Long: `kstable verifies and searches for k-stable matchings across the house
allocation, marriage, and roommates matching models, and drives empirical
studies of how existence probability varies with n and k/n.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(seedFlag, verboseFlag, logDirFlag)
		if err != nil {
			return err
		}
		logging.Init(cfg.LogDir, cfg.Verbose)
		log.Debug().Uint32("seed", cfg.Seed).Bool("verbose", cfg.Verbose).Msg("kstable starting")
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Uint32Var(&seedFlag, "seed", 1, "seed for the random instance generator")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&logDirFlag, "log-dir", "", "directory for the rotating log file (defaults to KSTABLE_LOG_DIR or ./logs)")
}
