// Package server serves a sidebar over HTTP: full pages, htmx fragments, the
// collapse toggle and a JSON view of the navigation tree.
package server

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	g "maragu.dev/gomponents"

	"github.com/xraph/sidenav/config"
	"github.com/xraph/sidenav/errors"
	"github.com/xraph/sidenav/link"
	"github.com/xraph/sidenav/logger"
	"github.com/xraph/sidenav/manifest"
	"github.com/xraph/sidenav/sidebar"
)

const (
	// CollapsedCookie persists the collapsed state between requests.
	CollapsedCookie = "sidenav_collapsed"

	fragmentPath = "/_sidebar"
	togglePath   = "/_sidebar/toggle"
	treePath     = "/_sidebar/tree"
	healthPath   = "/_/health"

	tracerName = "github.com/xraph/sidenav/server"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Server renders a sidebar for every request.
type Server struct {
	cfg      config.Config
	nav      *sidebar.Sidebar
	manifest *manifest.Manifest
	logger   logger.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	linker   link.Linker
	router   chi.Router
	started  time.Time

	mu         sync.Mutex
	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithManifest exposes m on the tree endpoint.
func WithManifest(m *manifest.Manifest) Option {
	return func(s *Server) { s.manifest = m }
}

// WithTracerProvider sets the provider render spans are started on.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) { s.tracer = tp.Tracer(tracerName) }
}

// WithMetrics replaces the metrics collectors.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLinker replaces the linker built from the content target.
func WithLinker(l link.Linker) Option {
	return func(s *Server) { s.linker = l }
}

// New creates a server for nav.
func New(cfg config.Config, nav *sidebar.Sidebar, l logger.Logger, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if nav == nil {
		return nil, errors.ErrConfigError("sidebar is required", nil)
	}

	if l == nil {
		l = logger.NewNoopLogger()
	}

	s := &Server{
		cfg:     cfg,
		nav:     nav,
		logger:  l.Named("server"),
		tracer:  otel.Tracer(tracerName),
		linker:  link.Router(link.WithTarget(cfg.ContentTarget)),
		started: time.Now(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.metrics == nil {
		s.metrics = NewMetrics()
	}

	s.router = s.routes()

	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID, s.instrument, s.recoverer)

	if s.cfg.EnableMetrics {
		r.Method(http.MethodGet, s.cfg.MetricsPath, s.metrics.Handler())
	}

	r.Get(fragmentPath, s.handleFragment)
	r.Post(togglePath, s.handleToggle)
	r.Get(treePath, s.handleTree)
	r.Get(healthPath, s.handleHealth)
	r.Get("/*", s.handlePage)

	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Scope builds the render scope for a location and collapsed state.
func (s *Server) Scope(location string, collapsed bool) sidebar.Scope {
	return sidebar.NewScope(location,
		sidebar.WithCollapsed(collapsed),
		sidebar.WithLinker(s.linker),
	)
}

// collapsed resolves the collapsed state: query, then cookie, then config.
func (s *Server) collapsed(r *http.Request) bool {
	if v := r.URL.Query().Get("collapsed"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	if c, err := r.Cookie(CollapsedCookie); err == nil {
		if b, err := strconv.ParseBool(c.Value); err == nil {
			return b
		}
	}

	return s.cfg.DefaultCollapsed
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	scope := s.Scope(r.URL.Path, s.collapsed(r))

	node := s.page(scope)
	kind := "page"

	if isHTMX(r) {
		node = s.partial(scope)
		kind = "partial"
	}

	s.render(w, r, kind, scope, node)
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		location = "/"
	}

	scope := s.Scope(location, s.collapsed(r))
	s.render(w, r, "fragment", scope, s.sidebarFragment(scope, false))
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	collapsed := !s.collapsed(r)

	http.SetCookie(w, &http.Cookie{
		Name:     CollapsedCookie,
		Value:    strconv.FormatBool(collapsed),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.metrics.observeToggle(collapsed)

	location := localPath(r.FormValue("location"))

	if isHTMX(r) {
		scope := s.Scope(location, collapsed)
		s.render(w, r, "fragment", scope, s.sidebarFragment(scope, false))

		return
	}

	http.Redirect(w, r, location, http.StatusSeeOther)
}

// localPath returns location when it is a path on this host, and "/"
// otherwise.
func localPath(location string) string {
	if !strings.HasPrefix(location, "/") || strings.HasPrefix(location, "//") ||
		strings.Contains(location, "\\") {
		return "/"
	}

	u, err := url.Parse(location)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}

	return location
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	if s.manifest == nil {
		http.NotFound(w, r)
		return
	}

	data, err := json.Marshal(s.manifest)
	if err != nil {
		logger.LoggerFromContext(r.Context()).Error("failed to encode navigation tree", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// HealthReport is the body of the health endpoint.
type HealthReport struct {
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime"`
	Groups    int       `json:"groups"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := HealthReport{
		Status:    "healthy",
		StartedAt: s.started.UTC(),
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		Groups:    len(s.nav.Groups),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
}

// render writes node inside a span. A failed write is reported as a render
// error and answered with 500 when the response has not started.
func (s *Server) render(w http.ResponseWriter, r *http.Request, kind string, scope sidebar.Scope, node g.Node) {
	_, span := s.tracer.Start(r.Context(), "sidenav.render."+kind,
		trace.WithAttributes(
			attribute.String("sidenav.location", scope.Location),
			attribute.Bool("sidenav.collapsed", scope.Collapsed),
			attribute.Bool("sidenav.current", s.nav.Current(scope)),
		),
	)
	defer span.End()

	s.metrics.observeRender(kind, scope.Collapsed)

	rw := newResponseWriter(w)
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := node.Render(rw); err != nil {
		rerr := errors.ErrRenderError(kind, err)

		span.RecordError(rerr)
		span.SetStatus(codes.Error, rerr.Error())
		s.metrics.observeRenderError()
		logger.LoggerFromContext(r.Context()).Error("render failed",
			logger.String("code", errors.CodeRenderError),
			logger.String("kind", kind),
			logger.Error(rerr),
		)

		if !rw.wroteHeader {
			http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// Start serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.ErrConfigError("failed to listen on "+s.cfg.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("server started", logger.String("addr", ln.Addr().String()))

		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}

		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting requests and waits for active ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	s.logger.Info("starting graceful shutdown", logger.Duration("timeout", s.cfg.ShutdownTimeout))

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error("http server shutdown error", logger.Error(err))
		return err
	}

	s.logger.Info("graceful shutdown complete")

	return nil
}
