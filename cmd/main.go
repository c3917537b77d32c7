package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/latestcomment/ballot-export/internal/config"
	"github.com/latestcomment/ballot-export/internal/services"
	"github.com/latestcomment/ballot-export/internal/sources"
)

var (
	// Global flags
	verbose             bool
	source              string
	literalStatements   bool
	sequentialWitnesses bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ballots",
	Short: "Render and export mock-trial ballots",
	Long: `ballots reads the judging ballots published for a mock-trial tournament,
finds the ones for a team, and renders a ballot as HTML or PDF.

Ballots can be read from the results page itself (the inline
"var ballots = [...]" script) or from a JSON or YAML array.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("source") {
			cfg.Source = source
		}
		if cmd.Flags().Changed("literal-statements") {
			cfg.LiteralStatements = literalStatements
		}
		if cmd.Flags().Changed("sequential-witnesses") {
			cfg.SequentialWitnesses = sequentialWitnesses
		}

		zcfg := zap.NewProductionConfig()
		if verbose || cfg.Debug {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
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
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVarP(&source, "source", "s", "", "ballot source (.html, .json, .yaml)")
	rootCmd.PersistentFlags().BoolVar(&literalStatements, "literal-statements", false, "read the defense statements from the plaintiff fields")
	rootCmd.PersistentFlags().BoolVar(&sequentialWitnesses, "sequential-witnesses", false, "number witness characters 1 to 6")

	rootCmd.AddCommand(serveCmd, exportCmd, listCmd)
}

// newBallotService wires the configured source into the pipeline.
func newBallotService() (*services.BallotService, error) {
	src, err := sources.Open(cfg.Source)
	if err != nil {
		return nil, err
	}
	opts := services.RenderOptions{
		LiteralStatements:   cfg.LiteralStatements,
		SequentialWitnesses: cfg.SequentialWitnesses,
	}
	return services.NewBallotService(src, opts, logger), nil
}

func exportOptions() services.ExportOptions {
	return services.ExportOptions{
		PageBreak: cfg.PageBreak,
		MarginMM:  cfg.MarginMM,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
