package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tinymark/tinymark"
	"github.com/tinymark/tinymark/internal/config"
	"github.com/tinymark/tinymark/internal/logger"
)

// Server is the HTTP API for tinymark. Every request is parsed and
// rendered independently.
type Server struct {
	router chi.Router
	log    *log.Logger
	cfg    *config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(cfg *config.Config, log *log.Logger) *Server {
	s := &Server{
		log: log,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Post("/parse", s.handleParse)
	r.Post("/tokens", s.handleTokens)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok","version":"` + tinymark.Version + `"}`))
}

// handleRender answers with the HTML for the markdown request body.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	input, ok := s.readBody(w, r)
	if !ok {
		return
	}

	result := tinymark.ParseOptions(input, s.options(r))
	if len(result.Errors) > 0 {
		s.log.Warn("parse errors", "request_id", middleware.GetReqID(r.Context()), "count", len(result.Errors))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, s.cfg.Renderer().Render(result.AST))
}

// handleParse answers with the JSON encoded parse result.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	input, ok := s.readBody(w, r)
	if !ok {
		return
	}

	result := tinymark.ParseOptions(input, s.options(r))
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		s.log.Error("encode parse result", "error", err)
	}
}

// handleTokens answers with the JSON encoded token sequence.
func (s *Server) handleTokens(w http.ResponseWriter, r *http.Request) {
	input, ok := s.readBody(w, r)
	if !ok {
		return
	}

	data, err := tinymark.TokensJSON(tinymark.NewScanner(input, s.options(r)).Tokenize())
	if err != nil {
		jsonError(w, "failed to encode tokens", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) options(r *http.Request) tinymark.Options {
	l := logger.Tracer(s.log)
	if l != nil {
		l = l.With("request_id", middleware.GetReqID(r.Context()))
	}
	return s.cfg.Options(l)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return "", false
		}
		jsonError(w, "failed to read request body", http.StatusBadRequest)
		return "", false
	}
	return string(body), true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
