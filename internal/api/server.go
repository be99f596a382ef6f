package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staker/internal/config"
	"github.com/babylonlabs-io/nft-staker/internal/db"
	"github.com/babylonlabs-io/nft-staker/internal/registry"
	"github.com/babylonlabs-io/nft-staker/internal/services"
)

type Server struct {
	httpServer *http.Server
}

// NewRouter builds the caller-facing routes. Dev routes are mounted only when
// memory is non-nil.
func NewRouter(service *services.Service, store db.DbInterface, memory *registry.Memory) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(traceMiddleware)
	r.Use(metricsMiddleware)

	r.Get("/healthcheck", WrapHandlerFunc(func(w http.ResponseWriter, req *http.Request) error {
		if err := store.Ping(req.Context()); err != nil {
			return err
		}
		return WriteJSON(w, HealthResponse{Status: "ok", Custody: service.Custody()})
	}))

	r.Route("/v1", func(r chi.Router) {
		NewHandlers(service).Mount(r)
		if memory != nil {
			r.Route("/dev", NewDevHandlers(memory, service.Custody()).Mount)
		}
	})

	return r
}

func NewServer(cfg *config.ServerConfig, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Start blocks until the server is shut down.
func (s *Server) Start() error {
	log.Info().Str("addr", s.httpServer.Addr).Msg("Starting API server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down API server")
	return s.httpServer.Shutdown(ctx)
}
