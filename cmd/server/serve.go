package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	httpadapter "backstage/internal/adapters/http"
	"backstage/internal/ports"
	"backstage/internal/services/insights"
	"backstage/internal/workers/contractrunner"
	"backstage/internal/workers/expiry"
)

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signalContext(cmd)
	defer cancel()
	ctx, a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	if a.cfg.JWTSecret == "" {
		return errors.New("jwt_secret is required to serve")
	}

	var (
		_ ports.CatalogReader     = a.db
		_ ports.LicenseRepository = a.db
		_ ports.JobRepository     = a.db
		_ ports.RoleRepository    = a.db
	)

	clock := clockwork.NewRealClock()
	licenses, processor, err := a.licensing(clock)
	if err != nil {
		return err
	}
	analyzer := insights.New(a.db, clock)

	if a.cfg.FollowUpWorkers > 0 {
		go contractrunner.Run(ctx, a.db, processor, a.cfg.FollowUpWorkers, a.cfg.PollInterval, clock)
		a.logger.Info().Int("workers", a.cfg.FollowUpWorkers).Msg("follow-up workers started")
	}
	go expiry.Run(ctx, licenses, a.cfg.SweepInterval, clock)

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           httpadapter.New(analyzer, licenses, a.db, a.cfg.JWTSecret, a.logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	a.logger.Info().Msgf("listening on %s", a.cfg.ListenAddr)

	select {
	case <-ctx.Done():
		a.logger.Info().Msg("shutting down")
		shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer stop()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}
