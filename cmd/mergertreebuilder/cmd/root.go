package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/galform/mergertree/pkg/utils"
)

var (
	// Global flags
	verbose bool
	logger  utils.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mergertreebuilder",
	Short: "Build merger trees from a simulation halo catalog",
	Long: `mergertreebuilder constructs merger trees from a snapshot-by-snapshot
halo and subhalo catalog: it links descendant references into a forest,
promotes central subhalos along main-progenitor branches, enforces monotonic
mass growth, and computes each halo's baryonic accretion rate.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := utils.LevelInfo
		if verbose {
			logLevel = utils.LevelDebug
		}
		logger = utils.NewDefaultLogger(logLevel, os.Stdout)
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	binName := BinName()
	rootCmd.Example = `  # Build trees from a JSON catalog using a config file
  ` + binName + ` build -c ./config.yaml -i ./catalog.json

  # Print version information
  ` + binName + ` version`
}

// GetLogger returns the configured logger.
func GetLogger() utils.Logger {
	return logger
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
