// Package http exposes the generation pipeline over a JSON REST API.
package http

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flowforge/flowforge"
	"github.com/flowforge/flowforge/api"
	"github.com/flowforge/flowforge/internal/logging"
	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/emit"
	"github.com/flowforge/flowforge/pkg/ports"
	"github.com/flowforge/flowforge/pkg/registry"
	"github.com/flowforge/flowforge/pkg/report"
	"github.com/flowforge/flowforge/pkg/schema"
	"github.com/flowforge/flowforge/pkg/templates"
)

// Service is the slice of the generator the HTTP adapter needs.
type Service interface {
	Generate(description string) (*flowforge.Result, error)
	FromTemplate(name string) (*flowforge.Result, error)
	Validate(s *domain.Scenario) []domain.Diagnostic
	Templates() []templates.Template
	Registry() *registry.Registry
}

// Server routes REST requests to the generation pipeline.
type Server struct {
	service Service
	store   ports.ArtifactStore
	metrics *Metrics
	logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithStore enables the artifact endpoints backed by the given store.
func WithStore(store ports.ArtifactStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler builds the complete HTTP handler, routes and middleware
// included.
func NewHandler(service Service, opts ...Option) http.Handler {
	server := &Server{
		service: service,
		metrics: NewMetrics(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()

	r.Post("/generate", server.Generate)
	r.Post("/validate", server.Validate)
	r.Get("/registry", server.GetRegistry)
	r.Get("/templates", server.GetTemplates)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)

	if server.store != nil {
		r.Get("/artifacts", server.ListArtifacts)
		r.Get("/artifacts/{key}", server.GetArtifact)
		r.Delete("/artifacts/{key}", server.DeleteArtifact)
	}

	r.Handle("/metrics", promhttp.HandlerFor(server.metrics.registry, promhttp.HandlerOpts{}))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(api.Spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type generateRequest struct {
	Description string `json:"description"`
	Template    string `json:"template,omitempty"`
	Save        bool   `json:"save,omitempty"`
}

type generateResponse struct {
	Blueprint   *emit.Blueprint     `json:"blueprint"`
	Diagnostics []domain.Diagnostic `json:"diagnostics"`
	Summary     report.Summary      `json:"summary"`
	Artifact    string              `json:"artifact,omitempty"`
}

// Generate handles the POST /generate request.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("generate: invalid request body", "err", err)
		return
	}

	var result *flowforge.Result
	var err error
	if body.Template != "" {
		result, err = s.service.FromTemplate(body.Template)
	} else {
		result, err = s.service.Generate(body.Description)
	}
	if err != nil {
		s.metrics.observeFailure()
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrEmptyDescription) || errors.Is(err, domain.ErrUnknownTemplate) {
			status = http.StatusBadRequest
		}
		http.Error(w, fmt.Sprintf("Generate error: %v", err), status)
		s.logger.Warn("generate failed", "err", err)
		return
	}
	s.metrics.observeGeneration(result.Diagnostics)

	resp := generateResponse{
		Blueprint:   result.Blueprint,
		Diagnostics: result.Diagnostics,
		Summary:     report.Summarize(result.Diagnostics),
	}

	if body.Save && s.store != nil {
		key := artifactKey(body.Template + body.Description)
		if err := s.store.Save(r.Context(), key, result.Generation()); err != nil {
			http.Error(w, fmt.Sprintf("Save error: %v", err), http.StatusInternalServerError)
			s.logger.Error("artifact save failed", "key", key, "err", err)
			return
		}
		resp.Artifact = key
	}

	writeJSON(w, s.logger, resp)
}

type validateResponse struct {
	Summary report.Summary      `json:"summary"`
	Results []domain.Diagnostic `json:"results"`
}

// Validate handles the POST /validate request. The body is a
// blueprint document; the response lists every finding.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := emit.ValidateDocument(data); err != nil {
		http.Error(w, fmt.Sprintf("Invalid blueprint: %v", err), http.StatusBadRequest)
		s.logger.Warn("validate: document rejected", "err", err)
		return
	}

	blueprint, err := emit.Parse(data)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid blueprint: %v", err), http.StatusBadRequest)
		return
	}

	diagnostics := s.service.Validate(blueprint.Scenario())
	results := diagnostics
	if results == nil {
		results = []domain.Diagnostic{}
	}
	writeJSON(w, s.logger, validateResponse{
		Summary: report.Summarize(diagnostics),
		Results: results,
	})
}

type registryEntry struct {
	Kind         string         `json:"kind"`
	Category     string         `json:"category"`
	Summary      string         `json:"summary"`
	Params       schema.Schema  `json:"params,omitempty"`
	Required     []string       `json:"required,omitempty"`
	Defaults     map[string]any `json:"defaults,omitempty"`
	Capabilities []string       `json:"capabilities,omitempty"`
	Service      string         `json:"service,omitempty"`
}

// GetRegistry handles the GET /registry request.
func (s *Server) GetRegistry(w http.ResponseWriter, r *http.Request) {
	reg := s.service.Registry()
	entries := make([]registryEntry, 0, reg.Len())
	for _, kind := range reg.Kinds() {
		d, ok := reg.Lookup(kind)
		if !ok {
			continue
		}
		entries = append(entries, registryEntry{
			Kind:         d.Kind,
			Category:     string(d.Category),
			Summary:      d.Summary,
			Params:       d.Params,
			Required:     d.Required,
			Defaults:     d.Defaults,
			Capabilities: d.Capabilities,
			Service:      d.Service,
		})
	}
	writeJSON(w, s.logger, entries)
}

// GetTemplates handles the GET /templates request.
func (s *Server) GetTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, s.service.Templates())
}

// ListArtifacts handles the GET /artifacts request.
func (s *Server) ListArtifacts(w http.ResponseWriter, r *http.Request) {
	keys, err := s.store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.logger.Error("artifact list failed", "err", err)
		return
	}
	if keys == nil {
		keys = []string{}
	}
	writeJSON(w, s.logger, keys)
}

// GetArtifact handles the GET /artifacts/{key} request.
func (s *Server) GetArtifact(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	generation, err := s.store.Load(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) {
			http.Error(w, "Artifact not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.logger.Error("artifact load failed", "key", key, "err", err)
		return
	}
	writeJSON(w, s.logger, generation)
}

// DeleteArtifact handles the DELETE /artifacts/{key} request.
func (s *Server) DeleteArtifact(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := s.store.Delete(r.Context(), key); err != nil {
		http.Error(w, fmt.Sprintf("Delete error: %v", err), http.StatusInternalServerError)
		s.logger.Error("artifact delete failed", "key", key, "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{
		"app":     "flowforge-http",
		"version": flowforge.Version,
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "err", err)
	}
}

// artifactKey derives a stable store key from the request text, so
// repeated generations of the same description share one artifact.
func artifactKey(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:8])
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>FlowForge API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`
