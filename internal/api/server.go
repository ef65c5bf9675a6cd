package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mjc-ai/haksabot/internal/pipeline"
)

// ChatProcessor handles one chat request. Satisfied by pipeline.Pipeline.
type ChatProcessor interface {
	Process(ctx context.Context, message, sessionID string) pipeline.Result
}

type Server struct {
	router   *chi.Mux
	pipeline ChatProcessor
	port     int
}

func NewServer(port int, proc ChatProcessor) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	// The chat frontend is served from a different origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	s := &Server{
		router:   router,
		pipeline: proc,
		port:     port,
	}

	router.Get("/", s.root)
	router.Get("/health", s.health)
	router.Post("/api/chat", s.chat)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "명지전문대학 학사 챗봇 API",
		"status":  "ok",
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
