// Package server provides the HTTP handlers and routing for the MCP server.
package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"hyperliquid-mcp/internal/catalog"
	"hyperliquid-mcp/internal/hyperliquid"
	"hyperliquid-mcp/internal/invoke"
)

const version = "1.0.0"

// Config contains server configuration values such as port and upstream URL.
type Config struct {
	Port        string
	UpstreamURL string
	HTTPTimeout time.Duration
}

// Server contains the configured router and the invocation adapter.
type Server struct {
	cfg     Config
	router  *chi.Mux
	adapter *invoke.Adapter
}

// New constructs a Server with middleware and routes configured.
func New(cfg Config) *Server {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := hyperliquid.New(cfg.UpstreamURL, &http.Client{Timeout: timeout})
	s := &Server{
		cfg:     cfg,
		router:  chi.NewRouter(),
		adapter: invoke.New(client),
	}
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/mcp", func(r chi.Router) {
		r.Get("/tools", s.handleListTools)
		r.Post("/call", s.handleCall)
	})

	return s
}

// Router exposes the root HTTP handler for the server.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]interface{}{
		"message": "Hyperliquid MCP Server",
		"version": version,
		"endpoints": map[string]string{
			"health": "/health",
			"tools":  "/mcp/tools",
			"call":   "/mcp/call",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// toolListing is the discovery view of one catalogue entry.
type toolListing struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema catalog.Schema `json:"inputSchema"`
}

func (s *Server) handleListTools(w http.ResponseWriter, _ *http.Request) {
	all := catalog.List()
	out := make([]toolListing, 0, len(all))
	for i := range all {
		out = append(out, toolListing{
			Name:        all[i].Name,
			Description: all[i].Description,
			InputSchema: all[i].InputSchema(),
		})
	}
	writeJSON(w, map[string]interface{}{"tools": out})
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	var req CallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	env := s.adapter.Invoke(r.Context(), req.Name, req.Args)
	writeJSON(w, renderResult(env))
}

// renderResult converts an envelope into the MCP content-block shape.
func renderResult(env invoke.Envelope) CallResult {
	if !env.Success {
		return CallResult{
			Content: []ContentBlock{{Type: "text", Text: "Error: " + env.Error}},
			IsError: true,
		}
	}
	text := string(env.Data)
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, env.Data, "", "  "); err == nil {
		text = pretty.String()
	}
	return CallResult{Content: []ContentBlock{{Type: "text", Text: text}}}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
