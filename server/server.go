// Package server exposes the focus session over a local HTTP API for the
// browser new-tab page
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ayoisaiah/focustab/focusmode"
	"github.com/ayoisaiah/focustab/internal/models"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
	historyTimeout    = 5 * time.Second

	// defaultHistoryDays is the reporting period used when no range is given.
	defaultHistoryDays = 7
)

// History reads finished sessions.
type History interface {
	Sessions(ctx context.Context, start, end time.Time) ([]*models.SessionRecord, error)
}

// Server serves the focus session API.
type Server struct {
	ctrl    *focusmode.Controller
	history History
	log     *slog.Logger
	now     func() time.Time
	origins []string
}

// Option configures a Server.
type Option func(*Server)

// WithHistory sets the session history backing /api/history.
func WithHistory(h History) Option {
	return func(s *Server) {
		s.history = h
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// WithAllowedOrigins sets the origins permitted by CORS.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// New returns a Server for ctrl.
func New(ctrl *focusmode.Controller, opts ...Option) *Server {
	s := &Server{
		ctrl: ctrl,
		log:  slog.Default(),
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Routes returns the API handler.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(middleware.Recoverer)
	mux.Use(s.logRequests)

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	mux.Use(middleware.Heartbeat("/ping"))

	mux.Route("/api", func(r chi.Router) {
		r.Get("/session", s.getSession)
		r.Post("/session/enter", s.enter)
		r.Post("/session/exit", s.exit)
		r.Put("/session/phase", s.setPhase)

		r.Route("/timer", func(r chi.Router) {
			r.Post("/start", s.control(s.ctrl.StartTimer))
			r.Post("/pause", s.control(s.ctrl.PauseTimer))
			r.Post("/reset", s.control(s.ctrl.ResetTimer))
			r.Post("/complete", s.control(s.ctrl.CompleteCurrentTimer))
			r.Post("/complete-session", s.control(s.ctrl.CompletePomodoroSession))
			r.Post("/add", s.addMinutes)
			r.Put("/mode", s.setTimerMode)
			r.Put("/pomodoro-phase", s.setPomodoroPhase)
		})

		r.Patch("/settings", s.updateSettings)
		r.Get("/quote", s.quote)
		r.Get("/celebration", s.celebration)
		r.Get("/history", s.getHistory)
		r.Get("/events", s.events)
	})

	return mux
}

// logRequests logs each request at debug level once it has been served.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.log.Debug(
			"request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
		)
	})
}

// ListenAndServe serves the API on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("serving focus API", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errServe.Wrap(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		shutdownTimeout,
	)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errServe.Wrap(err)
	}

	return nil
}
