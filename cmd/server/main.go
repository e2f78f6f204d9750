package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	pg "backstage/internal/adapters/postgres"
	"backstage/internal/config"
	"backstage/internal/ports"
	"backstage/internal/services/licensing"
	"backstage/internal/workers/contractrunner"
)

var cfgPath string

func main() {
	rootCmd := &cobra.Command{
		Use:          "backstage",
		Short:        "Label back office: insights and sync licensing",
		RunE:         runServe,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to an optional config file")

	rootCmd.AddCommand(
		&cobra.Command{Use: "serve", Short: "Start the HTTP server and background workers", RunE: runServe},
		&cobra.Command{Use: "migrate", Short: "Apply database migrations", RunE: runMigrate},
		&cobra.Command{Use: "sweep", Short: "Expire active licenses past their end date once", RunE: runSweep},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// app holds what every command needs: config, a logger in ctx, the database.
type app struct {
	cfg    config.Config
	logger zerolog.Logger
	db     *pg.DB
	closer io.Closer
}

func setup(ctx context.Context) (context.Context, *app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return ctx, nil, err
	}
	logger, closer, err := config.NewLogger(cfg.Log, os.Stdout)
	if err != nil {
		return ctx, nil, err
	}
	logger = logger.With().Str("env", cfg.Env).Logger()
	ctx = logger.WithContext(ctx)

	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		_ = closer.Close()
		return ctx, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return ctx, &app{cfg: cfg, logger: logger, db: db, closer: closer}, nil
}

func (a *app) Close() {
	a.db.Close()
	_ = a.closer.Close()
}

func (a *app) licensing(clock clockwork.Clock) (*licensing.Service, contractrunner.ContractProcessor, error) {
	tables, err := licensing.LoadTables(a.cfg.FeeTables)
	if err != nil {
		return nil, contractrunner.ContractProcessor{}, fmt.Errorf("failed to load fee tables: %w", err)
	}
	processor := contractrunner.ContractProcessor{Licenses: a.db, Contracts: a.db}

	var followUps ports.FollowUps = contractrunner.Inline{Processor: processor}
	if a.cfg.FollowUpWorkers > 0 {
		followUps = contractrunner.Queue{Jobs: a.db}
	}
	svc := licensing.New(a.db, a.db, followUps, licensing.NewCalculator(tables), clock)
	return svc, processor, nil
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signalContext(cmd)
	defer cancel()
	ctx, a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	a.logger.Info().Msg("migrations applied")
	return nil
}

func runSweep(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signalContext(cmd)
	defer cancel()
	ctx, a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	svc, _, err := a.licensing(clockwork.NewRealClock())
	if err != nil {
		return err
	}
	n, err := svc.DeactivateExpired(ctx)
	if err != nil {
		return err
	}
	a.logger.Info().Int("deactivated", n).Msg("sweep finished")
	return nil
}
