package product

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ProductCatalog/pkg/kit"
)

const (
	basePath     = "/api/product"
	maxBodyBytes = 1 << 20
	readyTimeout = 1 * time.Second
)

type Server struct {
	Service Service
	Log     *zap.Logger

	// Submissions counts accepted POST bodies. Optional.
	Submissions prometheus.Counter
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.ready)

	r.Route(basePath, func(rr chi.Router) {
		rr.Get("/", s.list)
		rr.Post("/", s.create)
		rr.Get("/{id}", s.get)
	})

	return r
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if _, err := s.Service.ListAll(ctx); err != nil {
		s.logger().Warn("readyz failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Service.ListAll(r.Context())
	if err != nil {
		s.logger().Error("list products failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid id", map[string]any{"id": raw})
		return
	}
	id := int32(n)

	p, err := s.Service.GetByID(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		kit.WriteStatus(w, http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger().Error("get product failed", zap.Error(err), zap.Int32("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	p, err := decodeProduct(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	if err := s.Service.Add(r.Context(), p); err != nil {
		s.logger().Error("add product failed", zap.Error(err), zap.Int32("id", p.ID))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if s.Submissions != nil {
		s.Submissions.Inc()
	}

	w.Header().Set("Location", Location(p.ID))
	kit.WriteJSON(w, http.StatusCreated, p)
}

// Location is the canonical URL path of a product.
func Location(id int32) string {
	return basePath + "/" + strconv.FormatInt(int64(id), 10)
}

func decodeProduct(w http.ResponseWriter, r *http.Request) (Product, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	var p *Product
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&p); err != nil {
		return Product{}, err
	}
	if p == nil {
		return Product{}, errors.New("product object required")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return Product{}, errors.New("extra data after json object")
	}
	return *p, nil
}
