package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/cli/config"
	controller "github.com/m-mizutani/shipnote/pkg/controller/http"
	"github.com/m-mizutani/shipnote/pkg/usecase"
	"github.com/m-mizutani/shipnote/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		githubCfg config.GitHub
		deltaCfg  config.Delta
		geminiCfg config.Gemini
		slackCfg  config.Slack
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, deltaCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server receiving workflow_run webhooks",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if githubCfg.WebhookSecret == "" {
				return goerr.New("--github-webhook-secret is required")
			}

			logger.Info("Starting shipnote server",
				slog.String("addr", serverCfg.Addr),
				slog.Bool("async", serverCfg.Async),
				slog.Any("github", githubCfg),
			)

			client, cred, err := githubCfg.NewClient(ctx)
			if err != nil {
				return err
			}
			releaseDeltaUC, err := newReleaseDelta(ctx, client, cred, &deltaCfg, &geminiCfg, &slackCfg)
			if err != nil {
				return err
			}

			var dispatcher async.Dispatcher
			var webhookOpts []usecase.WebhookOption
			if serverCfg.Async {
				webhookOpts = append(webhookOpts, usecase.WithDispatcher(&dispatcher))
			}
			webhookUC := usecase.NewWebhook(releaseDeltaUC, webhookOpts...)

			serverOpts := []controller.Option{
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(githubCfg.WebhookSecret),
			}
			if check := deltaCfg.RepoDirCheck(); check != nil {
				serverOpts = append(serverOpts, controller.WithHealthCheck("repo_dir", check))
			}

			server, err := controller.NewServer(ctx, webhookUC, serverOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), serverCfg.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}
			if err := dispatcher.Wait(shutdownCtx); err != nil {
				return goerr.Wrap(err, "background jobs did not finish before shutdown")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
