package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/api/types"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/auth"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/config"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/dashboard"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type API struct {
	cfg *config.APIConfig
	srv *http.Server
}

func NewAPI(cfg *config.APIConfig, res TreeResolver, source auth.Source) *API {
	a := &API{
		cfg: cfg,
	}
	a.srv = &http.Server{
		Handler:      a.Handler(res, source),
		Addr:         fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		ErrorLog:     logger.ErrorLog(),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}
	return a
}

func (a *API) Close() error {
	if a.srv == nil {
		return fmt.Errorf("no server available")
	}
	return a.srv.Close()
}

func (a *API) Shutdown(ctx context.Context) error {
	if a.srv == nil {
		return fmt.Errorf("no server available")
	}
	return a.srv.Shutdown(ctx)
}

// Handler builds the routed, logged and CORS-wrapped handler.
func (a *API) Handler(res TreeResolver, source auth.Source) http.Handler {
	r := mux.NewRouter()

	outline := types.NewOutline()

	outline.RegisterGetRoute(r, "/status", IndexHandler())
	if a.cfg.StaticDir == "" {
		outline.RegisterGetRoute(r, "/", IndexHandler())
	}
	outline.RegisterGetRoute(r, "/version", VersionHandler())

	outline.RegisterGetRoute(r, "/datamanagement", DataManagementHandler(res, source))
	outline.RegisterGetRoute(r, "/api/forge/datamanagement", DataManagementHandler(res, source))

	outline.RegisterGetRoute(r, "/api", outline.OutlineHandler())

	r.Handle("/metrics", promhttp.Handler())

	if a.cfg.StaticDir != "" {
		r.PathPrefix("/").Handler(dashboard.Handler(a.cfg.StaticDir))
	}

	r.Use(loggingMiddleware)

	origins := a.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Accept-Language", "Content-Type", requestIDHeader},
	}).Handler(r)
}

// Serve blocks until the server is closed.
func (a *API) Serve() {
	defer log.Info().Msg("API module stopped")

	log.Info().Str("addr", a.srv.Addr).Msg("Forgedash API now listening")
	err := a.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("API server failed")
	}
}
