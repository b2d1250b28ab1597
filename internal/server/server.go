package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/GrowPot_Go/internal/clock"
	"github.com/osse101/GrowPot_Go/internal/handler"
	"github.com/osse101/GrowPot_Go/internal/metrics"
)

// Options configures the HTTP server
type Options struct {
	Addr           string
	APIKey         string
	TrustedProxies []string
	// Clock drives rate-limit windows; nil means the system clock
	Clock clock.Clock

	Garden handler.Garden
	// Store gates /readyz; nil means always ready
	Store handler.Pinger
	// Stream serves /ws when set
	Stream      http.HandlerFunc
	Idempotency *IdempotencyCache
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Exposed for tests.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	guard := NewRequestGuard(opts.Clock, opts.TrustedProxies)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, guard))
	r.Use(RateLimitMiddleware(guard))

	// The stream hijacks the connection, so it sits outside the wrapping
	// writers below
	if opts.Stream != nil {
		r.Get(StreamPath, opts.Stream)
	}

	r.Group(func(r chi.Router) {
		r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
		r.Use(metrics.Middleware)

		r.Get("/healthz", handler.HandleHealthz())
		r.Get("/readyz", handler.HandleReadyz(opts.Store))
		r.Get("/version", handler.HandleVersion())
		r.Handle("/metrics", promhttp.Handler())

		gardenHandler := handler.NewGardenHandler(opts.Garden)

		r.Route("/api/v1", func(r chi.Router) {
			r.Use(IdempotencyMiddleware(opts.Idempotency))

			r.Get("/catalog", gardenHandler.HandleGetCatalog)

			r.Route("/garden", func(r chi.Router) {
				r.Get("/", gardenHandler.HandleGetGarden)
				r.Post("/water", gardenHandler.HandleWater)
				r.Post("/harvest", gardenHandler.HandleHarvest)
				r.Post("/plant", gardenHandler.HandlePlant)
				r.Post("/pot", gardenHandler.HandleChangePot)
				r.Post("/pest/catch", gardenHandler.HandleCatchPest)
				r.Post("/reset", gardenHandler.HandleResetSlot)
			})

			r.Route("/shop", func(r chi.Router) {
				r.Post("/seeds", gardenHandler.HandleBuySeeds)
				r.Post("/pet-food", gardenHandler.HandleBuyPetFood)
				r.Post("/pest-tools", gardenHandler.HandleBuyPestTools)
				r.Post("/pots", gardenHandler.HandleUnlockPot)
				r.Post("/pets", gardenHandler.HandleUnlockPet)
			})

			r.Post("/warehouse/sell", gardenHandler.HandleSell)

			r.Route("/pet", func(r chi.Router) {
				r.Post("/activate", gardenHandler.HandleActivatePet)
				r.Post("/deactivate", gardenHandler.HandleDeactivatePet)
				r.Post("/feed", gardenHandler.HandleFeedPet)
			})

			r.Route("/quests", func(r chi.Router) {
				r.Get("/", gardenHandler.HandleGetQuests)
				r.Post("/{id}/claim", gardenHandler.HandleClaimQuest)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", gardenHandler.HandleGetProfile)
				r.Put("/", gardenHandler.HandleUpdateProfile)
			})
		})
	})

	return r
}

// Start serves until Stop is called. A graceful stop returns nil.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
