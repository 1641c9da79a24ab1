// Package api exposes the composition engine over a small JSON HTTP
// surface. The handlers are thin: they decode the request, call the
// editor store or gesture controller, and return the updated state.
package api

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/framecraft/framecraft/pkg/editor"
	"github.com/framecraft/framecraft/pkg/export"
)

// Service wires the store, gesture controller, and renderer behind HTTP.
type Service struct {
	store      *editor.Store
	controller *editor.Controller
	renderer   *export.Renderer
	logger     *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRenderer enables GET /v1/export.png. Without it the route
// responds 501.
func WithRenderer(r *export.Renderer) Option {
	return func(s *Service) { s.renderer = r }
}

// WithLogger sets the request logger. A nil logger silences the service.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates the HTTP service over store.
func NewService(store *editor.Store, opts ...Option) *Service {
	s := &Service{
		store:      store,
		controller: editor.NewController(store),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi router with all composition routes mounted.
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/v1/composition", s.handleComposition)
	r.Delete("/v1/composition", s.handleClear)

	r.Post("/v1/items", s.handleAddItem)
	r.Post("/v1/embed", s.handleEmbed)
	r.Patch("/v1/items/{id}", s.handlePatchItem)
	r.Delete("/v1/items/{id}", s.handleRemoveItem)
	r.Post("/v1/items/{id}/drag-end", s.handleDragEnd)
	r.Post("/v1/items/{id}/resize-end", s.handleResizeEnd)

	r.Put("/v1/selection", s.handleSelect)
	r.Delete("/v1/selection", s.handleDeselect)

	r.Get("/v1/export.png", s.handleExport)

	return r
}
