package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/randalmurphal/culinary/generator"
	"github.com/randalmurphal/culinary/normalize"
	"github.com/randalmurphal/culinary/parser"
)

// Server serves the menu API. It is safe for concurrent use.
type Server struct {
	generator  atomic.Pointer[generator.Generator]
	parser     atomic.Pointer[parser.Parser]
	normalizer *normalize.Normalizer
	session    *generator.Session

	itemsPerSection int
	publicURL       string
	allowedOrigins  []string
	readTimeout     time.Duration
	writeTimeout    time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithParser sets the parser used by the parse endpoint.
func WithParser(p *parser.Parser) Option {
	return func(s *Server) { s.parser.Store(p) }
}

// WithNormalizer sets the normalizer applied when the parse endpoint is
// asked to normalize.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(s *Server) { s.normalizer = n }
}

// WithSession sets the store of the last generated result.
func WithSession(sess *generator.Session) Option {
	return func(s *Server) { s.session = sess }
}

// WithItemsPerSection sets the item count used when a request omits it.
func WithItemsPerSection(n int) Option {
	return func(s *Server) { s.itemsPerSection = n }
}

// WithPublicURL sets the base URL encoded in QR codes.
func WithPublicURL(url string) Option {
	return func(s *Server) { s.publicURL = url }
}

// WithAllowedOrigins restricts CORS to the given origins.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) { s.allowedOrigins = origins }
}

// WithTimeouts sets the HTTP read and write timeouts. Zero values keep the
// defaults.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) {
		if read > 0 {
			s.readTimeout = read
		}
		if write > 0 {
			s.writeTimeout = write
		}
	}
}

// New creates a server around gen.
func New(gen *generator.Generator, opts ...Option) *Server {
	s := &Server{
		normalizer:      normalize.New(),
		session:         &generator.Session{},
		itemsPerSection: generator.DefaultItemsPerSection,
		readTimeout:     30 * time.Second,
		writeTimeout:    3 * time.Minute,
	}
	s.generator.Store(gen)
	s.parser.Store(parser.NewParser())
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetGenerator replaces the generator used by new requests.
func (s *Server) SetGenerator(g *generator.Generator) {
	s.generator.Store(g)
}

// SetParser replaces the parser used by new requests.
func (s *Server) SetParser(p *parser.Parser) {
	s.parser.Store(p)
}

// Session returns the store of the last generated result.
func (s *Server) Session() *generator.Session {
	return s.session
}

// RegisterRoutes adds the API routes to r.
func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	r.HandleFunc("/api/menus", s.generate).Methods(http.MethodPost)
	r.HandleFunc("/api/menus/last", s.last).Methods(http.MethodGet)
	r.HandleFunc("/api/menus/last", s.clear).Methods(http.MethodDelete)
	r.HandleFunc("/api/menus/last/download", s.download).Methods(http.MethodGet)
	r.HandleFunc("/api/menus/last/qrcode", s.qrcode).Methods(http.MethodGet)
	r.HandleFunc("/api/menus/parse", s.parse).Methods(http.MethodPost)
	r.HandleFunc("/api/menus/format", s.format).Methods(http.MethodPost)
	r.HandleFunc("/api/menus/schema", s.schema).Methods(http.MethodGet)
}

// Handler returns the routed handler with logging and CORS applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(logRequests)
	s.RegisterRoutes(r)

	if len(s.allowedOrigins) == 0 {
		return cors.Default().Handler(r)
	}
	return cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       s.readTimeout,
		WriteTimeout:      s.writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)))
	})
}
