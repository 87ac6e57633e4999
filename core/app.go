package core

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/api"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/auth"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/config"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/dm"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/logger"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/monitoring"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/resolver"
)

type App struct {
	api      *api.API
	profiler *monitoring.Profiler
	resolver *resolver.Resolver
	client   dm.Client
	logFile  io.Closer
	home     string
}

type Option func(*App)

// WithClient replaces the data management client, e.g. with a fake in tests.
func WithClient(c dm.Client) Option {
	return func(app *App) {
		app.client = c
	}
}

// NewApp loads the config from home and wires the resolver, API server and
// profiler. Nothing is started until Start is called.
func NewApp(home string, opts ...Option) (*App, error) {
	cfg, err := config.Init(home)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logFile, err := logger.Setup(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	app := &App{
		home:    home,
		logFile: logFile,
		client:  dm.NewHTTPClient(cfg.ForgeCfg.BaseURL, cfg.UpstreamTimeout()),
	}

	for _, opt := range opts {
		opt(app)
	}

	app.resolver = resolver.NewResolver(app.client, resolver.NewTimeFormatter(loc, cfg.LocaleCfg.DefaultLocale))

	source := auth.Chain{
		auth.BearerSource{ClientID: cfg.ForgeCfg.ClientID},
		auth.StaticSource{Token: cfg.ForgeCfg.AccessToken, ClientID: cfg.ForgeCfg.ClientID},
	}
	app.api = api.NewAPI(&cfg.APICfg, app.resolver, source)
	app.profiler = monitoring.NewProfiler(cfg.PProfAddr)

	log.Debug().Object("config", cfg).Msg("forgedash config")

	return app, nil
}

func (a *App) Resolver() *resolver.Resolver {
	return a.resolver
}

// Start serves until SIGINT or SIGTERM.
func (a *App) Start() error {
	a.profiler.Start()
	go a.api.Serve()

	done := make(chan os.Signal, 1)
	defer signal.Stop(done)

	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	<-done

	log.Info().Msg("Shutting forgedash down safely...")

	return a.Stop()
}

func (a *App) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return errors.Join(
		a.api.Shutdown(ctx),
		a.profiler.Stop(ctx),
		a.logFile.Close(),
	)
}
