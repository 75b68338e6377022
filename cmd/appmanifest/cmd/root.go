// Package cmd implements the appmanifest CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (generate, inputs, plist, validate). Each
// subcommand lives in its own file and registers itself from init.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Global flags.
var (
	verbose    bool
	projectDir string
	configFile string
	envFile    string
)

var (
	logger = zap.NewNop()

	// lookupEnv reads the process environment; tests replace it.
	lookupEnv = os.LookupEnv
)

var rootCmd = &cobra.Command{
	Use:   "appmanifest",
	Short: "appmanifest - assemble the mobile app manifest",
	Long: `appmanifest assembles the app manifest consumed by the mobile build
toolchain. Optional sections (credentials files, crash reporting) are included
only when their inputs are set.

Inputs are read from appmanifest.yaml, then a dotenv file, then the process
environment; later sources override earlier ones.

Use "appmanifest <command> --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "V", false, "enable debug logging")
	flags.StringVarP(&projectDir, "dir", "C", "", "project directory (default: current directory)")
	flags.StringVar(&configFile, "config", "", "configuration file (default: <dir>/appmanifest.yaml if present)")
	flags.StringVar(&envFile, "env-file", "", "dotenv file (default: <dir>/.env if present)")
}

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", Version, BuildTime)
	return rootCmd.Execute()
}
