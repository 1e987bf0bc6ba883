package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaedonvisva/folio/internal/server"
	"github.com/jaedonvisva/folio/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve runs the portfolio HTTP server until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if host := cmd.String("host"); host != "" {
		r.config.Server.Host = host
	}
	if port := cmd.Int("port"); port != 0 {
		r.config.Server.Port = port
	}

	router := server.NewBasicRouter()
	router.Use(
		server.WithRequestID(),
		server.WithRecovery(r.logger),
		server.WithLogging(r.logger),
	)

	router.Handler(server.NewPinsHandler(r.agg, r.logger))
	router.Handler(server.NewMusicHandler(r.agg))
	router.Handler(server.NewActivityHandler(r.agg, r.logger))
	router.Handler(server.NewProfileHandler(r.config))
	router.Handler(&server.HealthHandler{})

	shell, err := web.NewShellHandler(r.config)
	if err != nil {
		return fmt.Errorf("failed to build page shell: %w", err)
	}
	router.Handler(shell)

	srv := &http.Server{
		Addr:    r.config.Server.Addr(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("serving portfolio", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	r.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// serveCommand runs the HTTP server hosting the page shell and /api endpoints.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the portfolio web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Bind host (overrides config)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Bind port (overrides config)",
			},
		},
		Action: r.Serve,
	}
}
