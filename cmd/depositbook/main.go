package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"deposit_book/internal/config"
	"deposit_book/internal/domain"
	"deposit_book/internal/ledger"
	"deposit_book/internal/menu"
	"deposit_book/internal/repository/memory"
	"deposit_book/pkg/metrics"
)

const appName = "depositbook"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          appName,
		Short:        "Interactive depositor bookkeeping ledger",
		Long:         "Register depositors with a deposit calculation strategy, credit deposits, and review per-depositor and total amounts from an interactive console menu.",
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().String("config", "", "path to YAML config file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg)
	logger.Info("Starting application",
		slog.String("name", appName))

	collector := metrics.NewMetricsCollector(logger)

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = collector.StartMetricsServer(cfg.Metrics.Addr)
	}

	repo := memory.NewDepositorRepository()
	book := ledger.NewLedger(repo, collector, logger)

	rules := menu.RuleSet{
		Normal: domain.NormalRule(),
		Fixed:  domain.FixedRule(cfg.Rules.FixedBonus, cfg.Rules.FixedCeiling),
	}

	m := menu.New(book, rules, os.Stdin, os.Stdout, os.Stderr)
	runErr := m.Run(cmd.Context())

	if metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := metricsServer.Shutdown(ctx); err != nil {
			logger.Error("Metrics server shutdown failed", slog.String("error", err.Error()))
		}
		if err := collector.Shutdown(ctx); err != nil {
			logger.Error("Metrics collector shutdown failed", slog.String("error", err.Error()))
		}
	}

	logger.Info("Application shutdown complete")
	return runErr
}

// setupLogger writes the operational record to stderr so it never mixes
// with the interactive stream on stdout.
func setupLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.Logging.SlogLevel(),
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}
