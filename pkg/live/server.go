package live

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/accordion/pkg/accordion"
	"github.com/vango-dev/accordion/pkg/render"
	"github.com/vango-dev/accordion/pkg/telemetry"
	"github.com/vango-dev/accordion/pkg/vdom"
)

// Config configures a live Server.
type Config struct {
	// Page returns a fresh copy of the document for every page load and
	// every session. It must build the same markup each time.
	Page func() (*vdom.VNode, error)

	// ContainerID selects the accordion container by id. Empty uses the
	// whole document.
	ContainerID string

	// Options are passed to every group.
	Options []accordion.Option

	// InitialWidth is the viewport width assumed before a client reports
	// its own (default: 1024).
	InitialWidth float64

	// ReducedMotion is the reduced-motion preference assumed before a
	// client reports its own.
	ReducedMotion bool

	// FrameInterval is the server frame period (default: 16ms).
	FrameInterval time.Duration

	// Metrics, when set, observes every group and live message.
	Metrics *telemetry.Metrics

	// Gatherer, when set, is served on /metrics.
	Gatherer prometheus.Gatherer

	// Tracer, when set, wraps every client message in a span.
	Tracer *telemetry.Tracer

	// Logger receives server logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Server serves an accordion page and keeps one group per websocket session
// in sync with the browser.
type Server struct {
	config   Config
	logger   *slog.Logger
	upgrader websocket.Upgrader
	router   chi.Router

	mu       sync.Mutex
	closed   bool
	options  []accordion.Option
	sessions map[*session]struct{}
	wg       sync.WaitGroup
}

// NewServer creates a live server.
func NewServer(config Config) *Server {
	if config.InitialWidth <= 0 {
		config.InitialWidth = 1024
	}
	if config.FrameInterval <= 0 {
		config.FrameInterval = 16 * time.Millisecond
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Tracer == nil {
		config.Tracer = telemetry.NewTracer(nil)
	}

	s := &Server{
		config:   config,
		logger:   config.Logger.With("component", "live"),
		options:  config.Options,
		sessions: make(map[*session]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handlePage)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if s.config.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// SessionCount returns the number of open sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Reconfigure replaces the group options for new sessions and applies them
// to every open one. Breakpoints, duration and auto-close take effect
// immediately; other options only affect new sessions.
func (s *Server) Reconfigure(opts []accordion.Option) {
	s.mu.Lock()
	s.options = opts
	sessions := make([]*session, 0, len(s.sessions))
	for sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.reconfigure(opts)
	}
}

// Close closes every session and waits for their loops to exit. Later
// websocket requests are refused.
func (s *Server) Close() {
	s.mu.Lock()
	s.closed = true
	for sess := range s.sessions {
		sess.conn.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Close()
	return err
}

// bind builds a document and binds a group to it. Ids are counted per
// document so the page and its session agree on them.
func (s *Server) bind(h *host, obs accordion.Observer) (*vdom.VNode, *accordion.Group, error) {
	doc, err := s.config.Page()
	if err != nil {
		return nil, nil, fmt.Errorf("build page: %w", err)
	}

	container := doc
	if s.config.ContainerID != "" {
		container = vdom.Query(doc, vdom.ByID(s.config.ContainerID))
		if container == nil {
			return nil, nil, fmt.Errorf("container #%s not found", s.config.ContainerID)
		}
	}

	s.mu.Lock()
	opts := append([]accordion.Option{}, s.options...)
	s.mu.Unlock()
	opts = append(opts,
		accordion.WithDocument(doc),
		accordion.WithIDSource(accordion.CountingIDs("acc")),
		accordion.WithLogger(s.config.Logger),
	)
	if obs != nil {
		opts = append(opts, accordion.WithObserver(obs))
	}
	return doc, accordion.New(container, h, opts...), nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	doc, group, err := s.bind(newHost(s.config.InitialWidth, s.config.ReducedMotion), nil)
	if err != nil {
		s.logger.Error("page failed", "error", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	defer group.Release()

	script := vdom.Script(vdom.Text(ClientScript))
	if body := vdom.Query(doc, vdom.ByTag("body")); body != nil {
		vdom.Append(body, script)
	} else {
		vdom.Append(doc, script)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	renderer := render.NewRenderer(render.RendererConfig{})
	if err := renderer.RenderToWriter(w, doc); err != nil {
		s.logger.Error("render failed", "error", err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.isClosed() {
		http.Error(w, "server closed", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	sess, err := s.newSession(conn)
	if err != nil {
		s.logger.Error("session failed", "error", err)
		conn.Close()
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		sess.close()
		return
	}
	s.sessions[sess] = struct{}{}
	s.wg.Add(1)
	s.mu.Unlock()
	if s.config.Metrics != nil {
		s.config.Metrics.SessionOpened()
	}

	sess.run(context.WithoutCancel(r.Context()))

	s.mu.Lock()
	delete(s.sessions, sess)
	s.mu.Unlock()
	if s.config.Metrics != nil {
		s.config.Metrics.SessionClosed()
	}
	s.wg.Done()
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// logRequests logs each request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
