package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowforge/flowforge"
	"github.com/flowforge/flowforge/internal/adapters/memory"
	"github.com/flowforge/flowforge/pkg/domain"
)

func newTestHandler(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	return NewHandler(flowforge.New(), opts...)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestGenerate(t *testing.T) {
	handler := newTestHandler(t)

	w := postJSON(t, handler, "/generate", generateRequest{
		Description: "When an email arrives in Gmail, analyze it with AI and reply",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Blueprint)
	assert.NotEmpty(t, resp.Blueprint.Flow)
	assert.Equal(t, len(resp.Diagnostics), resp.Summary.Total)
}

func TestGenerate_EmptyDescription(t *testing.T) {
	handler := newTestHandler(t)

	w := postJSON(t, handler, "/generate", generateRequest{Description: ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerate_FromTemplate(t *testing.T) {
	handler := newTestHandler(t)

	w := postJSON(t, handler, "/generate", generateRequest{Template: "database-sync"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "trigger.excel-watch", resp.Blueprint.Flow[0].Module)

	w = postJSON(t, handler, "/generate", generateRequest{Template: "missing"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerate_SavesArtifact(t *testing.T) {
	store := memory.NewStore()
	handler := newTestHandler(t, WithStore(store))

	w := postJSON(t, handler, "/generate", generateRequest{
		Description: "When an email arrives in Gmail, reply",
		Save:        true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Artifact)

	w = get(handler, "/artifacts/"+resp.Artifact)
	require.Equal(t, http.StatusOK, w.Code)

	var generation domain.Generation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &generation))
	assert.Equal(t, resp.Blueprint.Name, generation.Scenario.Name)

	w = get(handler, "/artifacts")
	require.Equal(t, http.StatusOK, w.Code)
	var keys []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &keys))
	assert.Contains(t, keys, resp.Artifact)

	req := httptest.NewRequest(http.MethodDelete, "/artifacts/"+resp.Artifact, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	w = get(handler, "/artifacts/"+resp.Artifact)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidate(t *testing.T) {
	handler := newTestHandler(t)

	gen := flowforge.New()
	result, err := gen.Generate("Every hour, delete records from the database")
	require.NoError(t, err)
	doc, err := result.Blueprint.Marshal()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/validate", bytes.NewReader(doc))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp validateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, resp.Summary.Total, len(resp.Results))

	var destructive bool
	for _, d := range resp.Results {
		if d.Code == "heuristic.destructive-operation" {
			destructive = true
		}
	}
	assert.True(t, destructive)
}

func TestValidate_RejectsMalformedDocument(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/validate", bytes.NewReader([]byte(`{"flow": []}`)))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRegistry(t *testing.T) {
	handler := newTestHandler(t)

	w := get(handler, "/registry")
	require.Equal(t, http.StatusOK, w.Code)

	var entries []registryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.NotEmpty(t, entries)

	byKind := make(map[string]registryEntry, len(entries))
	for _, e := range entries {
		byKind[e.Kind] = e
	}
	require.Contains(t, byKind, "trigger.gmail-watch")
	require.Contains(t, byKind, "action.send-email")

	// Parameter schemas travel as field-to-type-name maps and decode
	// back into typed entries.
	watch := byKind["trigger.gmail-watch"]
	require.Contains(t, watch.Params, "maxResults")
	assert.Equal(t, "int", watch.Params["maxResults"].Name())
	assert.NoError(t, watch.Params["maxResults"].Validate(10))
	assert.Error(t, watch.Params["maxResults"].Validate("ten"))
	assert.Equal(t, "INBOX", watch.Defaults["folder"])

	email := byKind["action.send-email"]
	require.Contains(t, email.Params, "body")
	assert.Equal(t, "template", email.Params["body"].Name())
}

func TestGetTemplates(t *testing.T) {
	handler := newTestHandler(t)

	w := get(handler, "/templates")
	require.Equal(t, http.StatusOK, w.Code)

	var entries []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.NotEmpty(t, entries)
}

func TestGetHealthAndInfo(t *testing.T) {
	handler := newTestHandler(t)

	w := get(handler, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = get(handler, "/info")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), flowforge.Version)
}

func TestGetOpenAPISpec(t *testing.T) {
	handler := newTestHandler(t)

	w := get(handler, "/openapi.yaml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	postJSON(t, handler, "/generate", generateRequest{
		Description: "When an email arrives in Gmail, reply",
	})

	w := get(handler, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "flowforge_generations_total")
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/generate", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
