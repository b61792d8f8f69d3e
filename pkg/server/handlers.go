package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/catgraph/pkg/buildinfo"
	"github.com/matzehuels/catgraph/pkg/catalog"
	"github.com/matzehuels/catgraph/pkg/errors"
	"github.com/matzehuels/catgraph/pkg/graph"
	"github.com/matzehuels/catgraph/pkg/pipeline"
	"github.com/matzehuels/catgraph/pkg/render/nodelink"
)

// =============================================================================
// Request / Response Types
// =============================================================================

// CreateLayoutRequest is the body of POST /v1/layouts. Products take
// precedence over Sample; with neither, the server catalog is used.
type CreateLayoutRequest struct {
	Products []catalog.Product `json:"products,omitempty"`
	Sample   bool              `json:"sample,omitempty"`
	Options  pipeline.Options  `json:"options"`
}

// CreateLayoutResponse is returned by POST /v1/layouts.
type CreateLayoutResponse struct {
	ID     string       `json:"id"`
	Cached bool         `json:"cached"`
	Layout graph.Layout `json:"layout"`
}

// MoveNodeRequest is the body of PUT /v1/layouts/{id}/nodes/{nodeID}.
type MoveNodeRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// Category describes one catalog category.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	products, err := s.source.Products(r.Context())
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "load catalog"))
		return
	}
	counts := catalog.CategoryCounts(products)
	names := catalog.Categories(products)
	out := make([]Category, len(names))
	for i, name := range names {
		out[i] = Category{Name: name, Count: counts[name], Color: nodelink.CategoryColor(name)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if err := errors.ValidateCategory(category); err != nil {
		s.writeError(w, err)
		return
	}
	products, err := s.source.Products(r.Context())
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "load catalog"))
		return
	}
	filtered := catalog.Filter(products, category)
	if filtered == nil {
		filtered = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, filtered)
}

func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	req := CreateLayoutRequest{Options: s.defaults}
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	products := req.Products
	switch {
	case len(products) > 0:
	case req.Sample:
		products = catalog.Sample()
	default:
		var err error
		if products, err = s.source.Products(r.Context()); err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "load catalog"))
			return
		}
	}

	opts := req.Options
	opts.Logger = s.logger
	layout, cached, err := s.runner.GenerateLayoutWithCacheInfo(r.Context(), products, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	stored, err := s.runner.Store(r.Context(), layout)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Location", "/v1/layouts/"+stored.ID)
	writeJSON(w, http.StatusCreated, CreateLayoutResponse{ID: stored.ID, Cached: cached, Layout: stored})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	layout, err := s.runner.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layout)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.runner.Load(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.runner.Delete(r.Context(), id); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "delete layout %s", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMoveNode(w http.ResponseWriter, r *http.Request) {
	var req MoveNodeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.X == nil || req.Y == nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "x and y are required"))
		return
	}
	nodeID := chi.URLParam(r, "nodeID")
	if err := errors.ValidateID(nodeID); err != nil {
		s.writeError(w, err)
		return
	}

	layout, err := s.runner.Move(r.Context(), chi.URLParam(r, "id"), nodeID, *req.X, *req.Y)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layout)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}
	layout, err := s.runner.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts := s.defaults
	opts.Logger = s.logger
	opts.Formats = []string{format}
	q := r.URL.Query()
	opts.Detailed = q.Get("detailed") == "true"
	opts.Labels = q.Get("labels") == "true"
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 || scale > 10 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v))
			return
		}
		opts.Scale = scale
	}

	artifacts, err := s.runner.Render(r.Context(), layout, opts)
	if err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// =============================================================================
// Helpers
// =============================================================================

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, ErrorResponse{Code: code, Message: message(err)})
}

func message(err error) string {
	msg := errors.UserMessage(err)
	var e *errors.Error
	if errors.As(err, &e) && e.Cause != nil && errors.HTTPStatus(err) < http.StatusInternalServerError {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}
