package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jekabolt/lottery-manager/internal/lottery"
	"github.com/jekabolt/lottery-manager/internal/middleware"
	"github.com/jekabolt/lottery-manager/internal/notify"
	"github.com/jekabolt/lottery-manager/internal/ratelimit"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Config is the configuration for the http server
type Config struct {
	Port           string        `mapstructure:"port"`
	Address        string        `mapstructure:"address"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Pinger reports the health of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the http server
type Server struct {
	hs       *http.Server
	c        *Config
	lottery  *lottery.Engine
	notifier *notify.Notifier
	limiter  *ratelimit.MultiKeyLimiter
	db       Pinger
	done     chan struct{}
}

// New creates a new server. notifier and db may be nil.
func New(c *Config, engine *lottery.Engine, notifier *notify.Notifier, limiter *ratelimit.MultiKeyLimiter, db Pinger) *Server {
	if limiter == nil {
		limiter = ratelimit.NewMultiKeyLimiter(nil)
	}
	return &Server{
		c:        c,
		lottery:  engine,
		notifier: notifier,
		limiter:  limiter,
		db:       db,
		done:     make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler returns the routed API handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(middleware.ClientIdentifier)
	r.Use(s.rateLimit)
	if s.c.RequestTimeout > 0 {
		r.Use(chimw.Timeout(s.c.RequestTimeout))
	}

	r.Get("/health", s.health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/events/{eventId}", func(r chi.Router) {
			r.Post("/entries", s.join)
			r.Get("/entries", s.listEntries)
			r.Get("/count", s.count)
			r.Get("/entrants/{entrantId}", s.entrantEntry)
			r.Post("/draw", s.draw)
			r.Post("/replenish", s.replenish)
			r.Post("/notify", s.notifyEntrants)
		})
		r.Get("/entrants/{entrantId}/entries", s.entrantEntries)
		r.Route("/entries/{entryId}", func(r chi.Router) {
			r.Get("/", s.getEntry)
			r.Get("/deadline", s.entryDeadline)
			r.Post("/accept", s.accept)
			r.Post("/decline", s.decline)
			r.Post("/cancel", s.cancel)
			r.Post("/enroll", s.enroll)
			r.Post("/expire", s.expire)
		})
		r.Get("/users/{userId}/notifications", s.userNotifications)
		r.Post("/notifications/{id}/read", s.markRead)
	})

	return otelhttp.NewHandler(r, "lottery-http")
}

// Start starts the http server in the background.
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "lottery-manager new listener", slog.String("addr", "http://"+listenerAddr))
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
			return
		}
		slog.Default().ErrorContext(ctx, "http server exited with an error", slog.String("err", err.Error()))
	}()

	return nil
}

// Stop gracefully shuts the server down and releases the rate limiters.
func (s *Server) Stop(ctx context.Context) error {
	defer s.limiter.Close()
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if err := s.limiter.CheckRequest(middleware.GetClientIP(r.Context())); err != nil {
			writeMessage(w, http.StatusTooManyRequests, err.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}
	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == "*" || origin == allowedOrigin {
			return true
		}
	}
	return false
}
