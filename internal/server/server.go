// Package server exposes the catalog and the matching pipeline over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/pipeline"
	"github.com/spigell/career-compass/internal/profile"
)

const maxRequestBodySize = 1 << 20 // 1MB

type matchRequest struct {
	Interests     []string `json:"interests"`
	CurrentSkills []string `json:"current_skills"`
	DesiredSkills []string `json:"desired_skills"`
	SDGs          []int    `json:"sdgs"`
}

type matchResponse struct {
	*pipeline.Result
	Recommendations []pipeline.Recommendation `json:"recommendations"`
}

type taxonomiesResponse struct {
	Interests catalog.Taxonomy  `json:"interests"`
	Skills    catalog.Taxonomy  `json:"skills"`
	SDGs      []catalog.SDGGoal `json:"sdgs"`
}

// NewHandler returns the JSON API over the orchestrator and its catalog.
func NewHandler(o *pipeline.Orchestrator, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/health", handleHealth)
	r.Get("/v1/catalog", handleCatalog(o.Catalog()))
	r.Get("/v1/taxonomies", handleTaxonomies(o.Catalog()))
	r.Post("/v1/matches", handleMatches(o, log))

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func handleCatalog(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, c.Careers())
	}
}

func handleTaxonomies(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, taxonomiesResponse{
			Interests: c.Interests(),
			Skills:    c.Skills(),
			SDGs:      catalog.SDGs(),
		})
	}
}

func handleMatches(o *pipeline.Orchestrator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		p, err := profile.New(req.Interests, req.CurrentSkills, req.DesiredSkills, req.SDGs)
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid profile: %v", err)
			return
		}

		result, err := o.Run(r.Context(), p)
		if err != nil {
			if r.Context().Err() != nil {
				log.Info("client went away", zap.Error(err))
				return
			}
			httpError(w, http.StatusInternalServerError, "api_error", "matching failed: %v", err)
			return
		}

		writeJSON(w, http.StatusOK, matchResponse{
			Result:          result,
			Recommendations: result.Recommendations(),
		})
	}
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
