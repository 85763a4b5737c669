// Package preview serves the current document as a live HTML page on a
// loopback address, alongside the download and export actions.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"contextmd/internal/config"
	"contextmd/internal/document"
	"contextmd/internal/i18n"
	"contextmd/internal/render"
)

// colorSchemeHint is the client hint browsers send when asked via Accept-CH.
const colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// Snapshot is an immutable view of editor state published to the server.
type Snapshot struct {
	Text     string
	Theme    config.ThemeMode
	Lang     config.Language
	Revision uint64
}

type Server struct {
	rd  *render.Renderer
	log *zap.Logger

	mu   sync.RWMutex
	snap Snapshot

	reg       *prometheus.Registry
	renders   prometheus.Counter
	renderDur prometheus.Histogram
	downloads prometheus.Counter
}

func New(rd *render.Renderer, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		rd:  rd,
		log: log,
		reg: prometheus.NewRegistry(),
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contextmd",
			Subsystem: "preview",
			Name:      "renders_total",
			Help:      "Markdown documents rendered to HTML.",
		}),
		renderDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "contextmd",
			Subsystem: "preview",
			Name:      "render_seconds",
			Help:      "Time spent rendering one document.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		downloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contextmd",
			Subsystem: "preview",
			Name:      "downloads_total",
			Help:      "document.md downloads served.",
		}),
	}
	s.reg.MustRegister(s.renders, s.renderDur, s.downloads)
	return s
}

// Publish replaces the served snapshot. Snapshots older than the current
// one are ignored.
func (s *Server) Publish(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Revision < s.snap.Revision {
		return
	}
	s.snap = snap
}

func (s *Server) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Handler returns the preview routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Get("/", s.handlePage)
	r.Get("/fragment", s.handleFragment)
	r.Get("/download", s.handleDownload)
	r.Get("/export", s.handleExport)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
	return r
}

// Start listens on addr and serves until ctx is cancelled. It returns the
// base URL actually bound, which matters when addr asks for port 0.
func (s *Server) Start(ctx context.Context, addr string) (string, error) {
	if err := loopbackOnly(addr); err != nil {
		return "", err
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("preview listen: %w", err)
	}
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("preview server stopped", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()
	url := "http://" + ln.Addr().String() + "/"
	s.log.Info("preview listening", zap.String("url", url))
	return url, nil
}

// loopbackOnly rejects addresses that would serve beyond this machine.
func loopbackOnly(addr string) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("preview address %q: %w", addr, err)
	}
	if host == "localhost" {
		return nil
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return nil
	}
	return fmt.Errorf("preview address %q is not a loopback address", addr)
}

func (s *Server) render(text string) []byte {
	start := time.Now()
	out, err := s.rd.Render([]byte(text))
	s.renders.Inc()
	s.renderDur.Observe(time.Since(start).Seconds())
	if err != nil {
		s.log.Warn("render failed, serving literal text", zap.Error(err))
		return render.Literal([]byte(text))
	}
	return out
}

// prefersDark reads the browser's color-scheme hint for r.
func prefersDark(r *http.Request) func() bool {
	return func() bool {
		return strings.Contains(strings.ToLower(r.Header.Get(colorSchemeHint)), "dark")
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshot()
	root := config.NewRoot("md-root")
	root.Apply(snap.Theme, prefersDark(r))

	w.Header().Set("Accept-CH", colorSchemeHint)
	w.Header().Set("Vary", colorSchemeHint)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	var buf bytes.Buffer
	err := render.Page(&buf, s.render(snap.Text), render.PageOptions{
		Title:    i18n.For(string(snap.Lang)).Title,
		Lang:     string(snap.Lang),
		Class:    root.Class(),
		Revision: snap.Revision,
		Poll:     true,
	})
	if err != nil {
		s.log.Error("page", zap.Error(err))
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshot()
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Vary", colorSchemeHint)
	if rev, err := strconv.ParseUint(r.URL.Query().Get("rev"), 10, 64); err == nil && rev == snap.Revision {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Revision", strconv.FormatUint(snap.Revision, 10))
	w.Header().Set("X-Theme", string(config.EffectiveTheme(snap.Theme, prefersDark(r))))
	_, _ = w.Write(s.render(snap.Text))
}

func (s *Server) handleDownload(w http.ResponseWriter, _ *http.Request) {
	snap := s.Snapshot()
	s.downloads.Inc()
	w.Header().Set("Content-Type", document.MediaType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+document.FileName+`"`)
	_, _ = w.Write([]byte(snap.Text))
}

func (s *Server) handleExport(w http.ResponseWriter, _ *http.Request) {
	snap := s.Snapshot()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(document.EscapeLine(snap.Text)))
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("preview request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
		)
	})
}
