// Command ctxkit-static serves a directory, or an S3 bucket, over HTTP
// using a ctxkit App. Configuration comes from the environment and an
// optional .env file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/ctxkit"
	"github.com/dmitrymomot/ctxkit/core/config"
	"github.com/dmitrymomot/ctxkit/core/logger"
	"github.com/dmitrymomot/ctxkit/core/server"
	"github.com/dmitrymomot/ctxkit/core/static"
	"github.com/dmitrymomot/ctxkit/integration/storage/s3"
)

// Config is the full environment configuration of the command.
type Config struct {
	App    ctxkit.Config
	Server server.Config
	Static static.Config
	S3     s3.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("ctxkit-static failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	app, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.Logger()))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(ctx, app))
	return g.Wait()
}

// newApp builds an App whose handler sends the requested file. With a
// bucket configured, files are read from S3 below S3_PREFIX instead of
// STATIC_ROOT.
func newApp(ctx context.Context, cfg Config) (*ctxkit.App, error) {
	opts := cfg.Static.Options()

	if cfg.S3.Enabled() {
		src, err := s3.New(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("s3 source: %w", err)
		}
		opts.Source = src
		opts.Root = cfg.S3.Prefix
		if opts.Root == "" {
			opts.Root = "/"
		}
	}

	return ctxkit.NewFromConfig(cfg.App, sendFile(opts)), nil
}

func sendFile(opts static.Options) ctxkit.HandlerFunc {
	return func(c *ctxkit.Context) error {
		_, err := c.Send(opts)
		return err
	}
}
