package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/tutorias/internal/buildinfo"
	"github.com/dmitrijs2005/tutorias/internal/client/api"
	"github.com/dmitrijs2005/tutorias/internal/client/cli"
	"github.com/dmitrijs2005/tutorias/internal/client/client"
	"github.com/dmitrijs2005/tutorias/internal/client/config"
	"github.com/dmitrijs2005/tutorias/internal/client/services"
	"github.com/dmitrijs2005/tutorias/internal/client/session"
	"github.com/dmitrijs2005/tutorias/internal/client/storage"
	"github.com/dmitrijs2005/tutorias/internal/logging"
)

func newLogger(cfg config.LogConfig) (logging.Logger, func()) {
	if cfg.Backend == config.LogBackendZap {
		zl, err := logging.NewJSONZapLogger(cfg.Level)
		if err != nil {
			log.Fatalf("zap logger: %v", err)
		}
		return zl, func() { _ = zl.Sync() }
	}
	return logging.NewTextSlogLogger(os.Stderr, cfg.Level), func() {}
}

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.MustLoad(ctx)
	logger, flush := newLogger(cfg.Log)
	defer flush()

	h, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer h.Close()

	store := session.NewStore(h.Repo)
	if h.DB != nil {
		store = session.NewSQLiteStore(h.DB)
	}

	// The app is the navigator of the client it drives.
	var app *cli.App
	nav := client.NavigatorFunc(func(ctx context.Context, route string) { app.Navigate(ctx, route) })

	c, err := client.New(cfg.APIBaseURL, store, nav,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger.With("component", "client")),
		client.WithUserAgent(buildinfo.UserAgent()),
	)
	if err != nil {
		log.Fatalf("%v", err)
	}

	a := api.New(c)
	auth := services.NewAuthService(a, store, logger.With("component", "auth"))
	app = cli.NewApp(auth, a, cfg.DownloadDir, logger)

	logger.Info(ctx, "starting", "api", c.BaseURL(), "storage", cfg.Storage.Driver)
	app.Run(ctx)
}
