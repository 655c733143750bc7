package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yourusername/arpalette/host"
	"github.com/yourusername/arpalette/store"
)

var (
	configPath string
	verbose    bool

	cfg    *host.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "arpalette",
	Short: "AR Palette parameter service",
	Long: `arpalette hosts the AR Palette usermod: it loads the palette parameters
from the configured store, serves the live JSON state API and saves
edits back to the store.

Run without a subcommand to start the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		zc := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)

		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Boot the usermod and serve the JSON state API",
	RunE:  runServe,
}

var describeCmd = &cobra.Command{
	Use:   "describe [key]",
	Short: "Print the settings-page help for one or all parameters",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDescribe,
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the stored configuration merged over defaults",
	RunE:  runDump,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(dumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --config when given. PORT and REDIS_ADDR override the
// file, as they do in container deployments.
func loadConfig() (*host.Config, error) {
	config := host.NewConfig()
	if configPath != "" {
		var err error
		if config, err = host.LoadConfigFromFile(configPath); err != nil {
			return nil, err
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		config.Listen = ":" + port
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		config.Storage.Backend = store.BackendRedis
		config.Storage.Redis.Addr = addr
		config.Storage.Redis.Password = os.Getenv("REDIS_PASSWORD")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
