// Package server exposes the layout pipeline over HTTP.
//
// Routes:
//
//	GET    /healthz
//	GET    /v1/categories
//	GET    /v1/products?category=
//	POST   /v1/layouts
//	GET    /v1/layouts/{id}
//	DELETE /v1/layouts/{id}
//	PUT    /v1/layouts/{id}/nodes/{nodeID}
//	GET    /v1/layouts/{id}/render.{format}
//
// Layouts created through the API are stored by the pipeline runner under a
// UUID and can be repositioned node by node. Errors are JSON objects with a
// machine-readable code and a message.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/matzehuels/catgraph/pkg/catalog"
	"github.com/matzehuels/catgraph/pkg/pipeline"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 8 << 20

// Option configures optional Server behavior.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSource sets the catalog used when a request carries no products.
func WithSource(src catalog.Source) Option {
	return func(s *Server) { s.source = src }
}

// WithDefaults sets the options each request starts from.
func WithDefaults(opts pipeline.Options) Option {
	return func(s *Server) { s.defaults = opts }
}

// WithTimeout bounds every request. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// WithAllowedOrigins enables CORS for the given origins.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// Server holds the chi router and the pipeline runner.
type Server struct {
	router   chi.Router
	runner   *pipeline.Runner
	source   catalog.Source
	defaults pipeline.Options
	logger   *log.Logger
	timeout  time.Duration
	origins  []string
}

// New creates a Server with all routes configured. Without WithSource the
// built-in sample catalog is served.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner: runner,
		source: catalog.StaticSource(catalog.Sample()),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.defaults.Config = pipeline.WithDefaults(s.defaults.Config)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))
	if len(s.origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}
	if s.timeout > 0 {
		r.Use(chimiddleware.Timeout(s.timeout))
	}

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/categories", s.handleCategories)
		r.Get("/products", s.handleProducts)

		r.Route("/layouts", func(r chi.Router) {
			r.Post("/", s.handleCreateLayout)
			r.Get("/{id}", s.handleGetLayout)
			r.Delete("/{id}", s.handleDeleteLayout)
			r.Put("/{id}/nodes/{nodeID}", s.handleMoveNode)
			r.Get("/{id}/render.{format}", s.handleRender)
		})
	})

	s.router = r
	return s
}

// ServeHTTP implements the http.Handler interface, delegating to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
