// Package mcp exposes the generation pipeline as Model Context
// Protocol tools, so LLM agents can build and validate automations.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/flowforge/flowforge"
	"github.com/flowforge/flowforge/internal/logging"
	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/emit"
	"github.com/flowforge/flowforge/pkg/report"
)

// GenerateResponse is the structured result of the generation tools.
type GenerateResponse struct {
	Blueprint   *emit.Blueprint     `json:"blueprint" jsonschema_description:"The generated blueprint document"`
	Diagnostics []domain.Diagnostic `json:"diagnostics" jsonschema_description:"Validation findings for the generated scenario"`
	Summary     report.Summary      `json:"summary" jsonschema_description:"Finding counts by severity"`
}

// ValidateResponse is the structured result of the validation tool.
type ValidateResponse struct {
	Summary report.Summary      `json:"summary" jsonschema_description:"Finding counts by severity"`
	Results []domain.Diagnostic `json:"results" jsonschema_description:"Every validation finding"`
}

// Server wraps a Generator and exposes it as an MCP server.
type Server struct {
	generator *flowforge.Generator
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(generator *flowforge.Generator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		generator: generator,
		logger:    logger,
		mcpServer: server.NewMCPServer("flowforge-mcp", flowforge.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	generateTool := mcp.NewTool("generate_automation",
		mcp.WithDescription("Compile a natural-language automation description into a blueprint with validation findings."),
		mcp.WithString("description", mcp.Required(), mcp.Description("What the automation should do, in plain language")),
		mcp.WithOutputSchema[GenerateResponse](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleGenerate))

	templateTool := mcp.NewTool("generate_from_template",
		mcp.WithDescription("Build a blueprint from a named template instead of free-form text."),
		mcp.WithString("template", mcp.Required(), mcp.Description("Template name, see list_templates")),
		mcp.WithOutputSchema[GenerateResponse](),
	)
	s.mcpServer.AddTool(templateTool, mcp.NewStructuredToolHandler(s.handleGenerateFromTemplate))

	validateTool := mcp.NewTool("validate_blueprint",
		mcp.WithDescription("Validate an existing blueprint document and report findings by severity."),
		mcp.WithString("blueprint", mcp.Required(), mcp.Description("The blueprint JSON document")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	s.mcpServer.AddTool(mcp.NewTool("list_templates",
		mcp.WithDescription("List the available automation templates."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.generator.Templates())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	s.mcpServer.AddTool(mcp.NewTool("list_modules",
		mcp.WithDescription("List the module kinds the generator can place in a scenario."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.generator.Registry().Kinds())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GenerateResponse, error) {
	description, _ := args["description"].(string)

	result, err := s.generator.Generate(description)
	if err != nil {
		s.logger.Warn("MCP generate rejected", "err", err)
		return GenerateResponse{}, fmt.Errorf("generate failed: %w", err)
	}
	return toGenerateResponse(result), nil
}

func (s *Server) handleGenerateFromTemplate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GenerateResponse, error) {
	name, _ := args["template"].(string)

	result, err := s.generator.FromTemplate(name)
	if err != nil {
		s.logger.Warn("MCP template rejected", "template", name, "err", err)
		return GenerateResponse{}, fmt.Errorf("template failed: %w", err)
	}
	return toGenerateResponse(result), nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	document, _ := args["blueprint"].(string)

	if err := emit.ValidateDocument([]byte(document)); err != nil {
		return ValidateResponse{}, fmt.Errorf("invalid blueprint: %w", err)
	}
	blueprint, err := emit.Parse([]byte(document))
	if err != nil {
		return ValidateResponse{}, fmt.Errorf("invalid blueprint: %w", err)
	}

	diagnostics := s.generator.Validate(blueprint.Scenario())
	results := diagnostics
	if results == nil {
		results = []domain.Diagnostic{}
	}
	return ValidateResponse{
		Summary: report.Summarize(diagnostics),
		Results: results,
	}, nil
}

func toGenerateResponse(result *flowforge.Result) GenerateResponse {
	return GenerateResponse{
		Blueprint:   result.Blueprint,
		Diagnostics: result.Diagnostics,
		Summary:     report.Summarize(result.Diagnostics),
	}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("flowforge://registry", "Module Catalogue",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		reg := s.generator.Registry()
		catalogue := make(map[string]any, reg.Len())
		for _, kind := range reg.Kinds() {
			if d, ok := reg.Lookup(kind); ok {
				catalogue[kind] = map[string]any{
					"category":     d.Category,
					"summary":      d.Summary,
					"params":       d.Params,
					"required":     d.Required,
					"capabilities": d.Capabilities,
					"service":      d.Service,
				}
			}
		}
		jsonBytes, err := json.Marshal(catalogue)
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalogue: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "flowforge://registry",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
