package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/toastkit/pkg/dom"
	"github.com/vango-dev/toastkit/pkg/loop"
	"github.com/vango-dev/toastkit/pkg/middleware"
	"github.com/vango-dev/toastkit/pkg/render"
	"github.com/vango-dev/toastkit/pkg/timer"
	"github.com/vango-dev/toastkit/pkg/toast"
)

// Server is the live preview server.
type Server struct {
	config   Config
	loop     *loop.Loop
	doc      *dom.Document
	toaster  *toast.Toaster
	renderer *render.Renderer
	hub      *Hub
	router   chi.Router
	logger   *slog.Logger

	mu         sync.Mutex
	httpServer *http.Server
	stopLoop   context.CancelFunc
}

// New creates a Server and starts its event loop.
func New(config Config) *Server {
	config = config.withDefaults()
	logger := config.Logger.With("component", "server")

	s := &Server{
		config:   config,
		loop:     loop.New(loop.DefaultQueueSize, config.Logger),
		doc:      dom.NewDocument(),
		renderer: render.NewRenderer(render.RendererConfig{Pretty: config.Pretty}),
		logger:   logger,
	}
	s.hub = newHub(s, logger)

	opts := []toast.Option{
		toast.WithConfig(config.Toast),
		toast.WithLogger(config.Logger),
		toast.WithObserver(toast.NewMetrics(toast.MetricsConfig{Registry: config.Registry})),
		toast.WithObserver(toast.ObserverFunc(s.broadcast)),
	}
	opts = append(opts, config.ToastOptions...)
	s.toaster = toast.New(s.doc, timer.NewReal(s.loop.Post), opts...)

	ctx, cancel := context.WithCancel(context.Background())
	s.stopLoop = cancel
	go s.loop.Run(ctx)

	mutations := promauto.With(config.Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "toastkit",
		Subsystem: "dom",
		Name:      "mutations_total",
		Help:      "Total number of document mutations by type",
	}, []string{"type"})

	// The container exists before the first page render.
	s.loop.Post(func() {
		s.doc.Observe(func(m dom.Mutation) {
			mutations.WithLabelValues(m.Type.String()).Inc()
		})
		s.toaster.Container()
	})

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.OpenTelemetry(
		middleware.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/metrics" && r.URL.Path != "/healthz"
		}),
	))
	r.Use(middleware.Prometheus(middleware.WithRegistry(s.config.Registry)))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))
	r.Get("/ws", s.hub.ServeHTTP)

	r.Route("/api/toasts", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Delete("/{id}", s.handleDelete)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Toaster returns the toaster bound to the shared document. Its methods
// must only be called through Do.
func (s *Server) Toaster() *toast.Toaster {
	return s.toaster
}

// Clients returns the number of connected WebSocket clients.
func (s *Server) Clients() int {
	return s.hub.Len()
}

// Do runs fn on the event loop and waits for it.
func (s *Server) Do(ctx context.Context, fn func(*toast.Toaster)) error {
	return s.loop.Call(ctx, func() { fn(s.toaster) })
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// server fails.
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.httpServer != nil {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	srv := &http.Server{
		Addr:    s.config.Address,
		Handler: s,
	}
	s.httpServer = srv
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully stops the HTTP server, disconnects WebSocket clients
// and stops the event loop.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	var err error
	if srv != nil {
		if err = srv.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
		}
	}
	s.Close()

	s.logger.Info("server shutdown complete")
	return err
}

// Close disconnects WebSocket clients and stops the event loop without
// waiting for HTTP requests.
func (s *Server) Close() {
	s.hub.Close()
	s.stopLoop()
	s.loop.Close()
}
