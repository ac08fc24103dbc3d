// ladders is a terminal snakes and ladders game against a computer opponent
// that follows a fixed action table.
//
// Usage:
//
//	ladders play              - Play a match in the terminal
//	ladders serve             - Start SSH server for remote play
//	ladders history           - Show past matches and statistics
//	ladders policy            - Print the computer's action table
//	ladders simulate          - Play many computer games and summarize them
//	ladders turn <pos> <act>  - Resolve a single turn
//	ladders config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible matches
//	--db <path>         - Set database path (default: ~/.ladders/ladders.db)
//	--config <path>     - Use a custom board configuration YAML
//	--log-level <level> - debug, info, warn or error
//	--otel              - Export turn traces over OTLP HTTP
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/game"
	"github.com/vovakirdan/tui-ladders/internal/telemetry"
)

var version = "dev"

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagOTel     bool

	// Set up by the root command before any subcommand runs.
	cfg       config.LaddersConfig
	logger    *log.Logger
	otelStop  telemetry.Shutdown
	tracingOn bool
)

func main() {
	err := rootCmd.Execute()
	shutdownTelemetry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladders",
	Short: "Snakes & Ladders - play against the computer in your terminal",
	Long: `Snakes & Ladders is a terminal game where you race a computer opponent
to the last cell of the board. Each turn you pick one of three moves, each
with its own cost; landing exactly on the goal earns a bonus, overshooting
sends you back to the start.

Available commands:
  play      - Play a match
  serve     - Start SSH server for remote play
  history   - View past matches
  policy    - Show the computer's action table
  simulate  - Run many computer games and report statistics
  turn      - Resolve a single turn from the command line
  config    - Show the effective configuration

Examples:
  ladders play
  ladders play --seed 42
  ladders serve --ssh :2222
  ladders policy --solve
  ladders simulate --games 10000`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ladders/ladders.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagOTel, "otel", false, "Export traces to the OTLP endpoint from the environment")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(policyCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(turnCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the environment, logger, configuration and telemetry.
func setup(cmd *cobra.Command, _ []string) error {
	// .env is optional; variables may be set directly
	envErr := godotenv.Load()

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ladders",
		Level:           level,
	})
	if envErr != nil && !os.IsNotExist(envErr) {
		logger.Warn(".env file not loaded", "err", envErr)
	}

	cfg, err = config.LoadLadders(flagConfig)
	if err != nil {
		return err
	}

	if flagOTel {
		if !telemetry.Configured() {
			logger.Warn("--otel set but no endpoint configured", "env", telemetry.EndpointEnv)
		}
		stop, err := telemetry.Setup(cmd.Context(), version)
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without traces", "err", err)
		} else {
			otelStop = stop
			tracingOn = true
		}
	}
	return nil
}

func shutdownTelemetry() {
	if otelStop == nil {
		return
	}
	if err := otelStop(context.Background()); err != nil && logger != nil {
		logger.Error("telemetry shutdown", "err", err)
	}
}

// sessionOptions returns the match options shared by play and serve.
func sessionOptions() []game.Option {
	opts := []game.Option{game.WithColumns(cfg.Display.Columns)}
	if tracingOn {
		opts = append(opts, game.WithTracer(telemetry.Tracer("game")))
	}
	return opts
}

// fileLogger returns a logger writing to ~/.ladders/ladders.log, for use while
// the terminal is owned by the UI. It falls back to discarding output.
func fileLogger() (*log.Logger, io.Closer) {
	discard := log.New(io.Discard)
	home, err := os.UserHomeDir()
	if err != nil {
		return discard, io.NopCloser(nil)
	}
	dir := filepath.Join(home, ".ladders")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, io.NopCloser(nil)
	}
	f, err := os.OpenFile(filepath.Join(dir, "ladders.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, io.NopCloser(nil)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "ladders",
		Level:           logger.GetLevel(),
	})
	return l, f
}
