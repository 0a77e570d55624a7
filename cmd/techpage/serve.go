package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/3-lines-studio/techpage"
	"github.com/3-lines-studio/techpage/internal/adapters/env"
	"github.com/3-lines-studio/techpage/internal/adapters/log"
	"github.com/3-lines-studio/techpage/internal/core"
	"github.com/3-lines-studio/techpage/internal/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(output usecase.CLIOutput) *cobra.Command {
	var (
		addr string
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the technologies page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := env.DetectMode()
			if dev {
				mode = core.ModeDev
			}

			logger, err := log.New(mode)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			app, err := techpage.New(nil, techpage.WithLogger(logger), techpage.WithMode(mode))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			output.PrintHeader("Techpage")
			for _, route := range app.Routes() {
				output.PrintStep("http://%s%s", displayAddr(addr), route)
			}

			if err := serve(ctx, addr, app.Handler(), logger); err != nil {
				return err
			}
			output.PrintDone("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", env.DetectAddr(), "listen address (env "+env.AddrVar+")")
	cmd.Flags().BoolVar(&dev, "dev", false, "development mode: verbose logs and error details (env "+env.DevVar+"=1)")
	return cmd
}

func serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
