package monitoring

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Profiler serves the runtime profiling endpoints on a separate listener so
// they are never exposed next to the public tree API.
type Profiler struct {
	srv     *http.Server
	started atomic.Bool
}

// NewProfiler returns nil when addr is empty; a nil Profiler is a no-op.
func NewProfiler(addr string) *Profiler {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return &Profiler{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (p *Profiler) Start() {
	if p == nil || !p.started.CompareAndSwap(false, true) {
		return
	}

	go func() {
		log.Info().Str("addr", p.srv.Addr).Msg("Starting pprof server")
		err := p.srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("pprof server failed")
		}
	}()
}

func (p *Profiler) Stop(ctx context.Context) error {
	if p == nil || !p.started.Load() {
		return nil
	}
	log.Info().Msg("Shutting down pprof server")
	return p.srv.Shutdown(ctx)
}
