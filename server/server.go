// Package server is the HTTP transport: JSON API, live scouting over SSE and the MCP endpoint.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"showdown-teambuilder/build"
	"showdown-teambuilder/config"
	"showdown-teambuilder/data"
	"showdown-teambuilder/logger"
	"showdown-teambuilder/mcpserver"
	"showdown-teambuilder/service"
	"showdown-teambuilder/store"
	"showdown-teambuilder/typechart"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const maxBodyBytes = 1 << 20

type Server struct {
	svc   *service.Service
	cfg   config.Config
	mux   *http.ServeMux
	tools []mcpserver.ToolInfo

	// retryDelay is the pause between Showdown reconnect attempts.
	retryDelay time.Duration
	// pingInterval is how often an SSE comment is sent to keep proxies from closing the stream.
	pingInterval time.Duration
}

func New(svc *service.Service, cfg config.Config, version string) *Server {
	s := &Server{
		svc:          svc,
		cfg:          cfg,
		mux:          http.NewServeMux(),
		retryDelay:   2 * time.Second,
		pingInterval: 20 * time.Second,
	}

	mcpServer, tools := mcpserver.New(svc, version)
	s.tools = tools
	mcpPath := cfg.MCPPath
	if mcpPath == "" {
		mcpPath = "/mcp"
	}
	s.cfg.MCPPath = mcpPath
	s.mux.Handle(mcpPath, mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{JSONResponse: true}))

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /connect", s.handleConnect)

	s.mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	s.mux.HandleFunc("POST /api/advise", s.handleAdvise)
	s.mux.HandleFunc("POST /api/matchup", s.handleMatchup)
	s.mux.HandleFunc("GET /api/chart", s.handleChart)
	s.mux.HandleFunc("GET /api/effectiveness", s.handleEffectiveness)
	s.mux.HandleFunc("POST /api/share", s.handleShareEncode)
	s.mux.HandleFunc("GET /api/share/{code}", s.handleShareDecode)

	s.mux.HandleFunc("POST /api/teams", s.handleSaveTeam)
	s.mux.HandleFunc("GET /api/teams", s.handleListTeams)
	s.mux.HandleFunc("GET /api/teams/{id}", s.handleGetTeam)
	s.mux.HandleFunc("DELETE /api/teams/{id}", s.handleDeleteTeam)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// HTTPServer wraps the handler with the listener settings. There is no write timeout since
// the SSE stream lives as long as the battle.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	err := templates.ExecuteTemplate(w, "index.html", map[string]any{
		"Generation": typechart.Lookup(s.svc.DefaultGen),
		"Tools":      s.tools,
		"MCPPath":    s.cfg.MCPPath,
	})
	if err != nil {
		logger.Error("rendering index", "error", err)
		http.Error(w, "error rendering template", http.StatusInternalServerError)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "tools": s.tools})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("writing response", "error", err)
	}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, data.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrBadRequest), errors.Is(err, build.ErrInvalid), errors.Is(err, store.ErrInvalid):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		logger.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return errors.Join(service.ErrBadRequest, err)
	}
	return nil
}
