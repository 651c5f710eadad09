// Package api exposes the engine over HTTP. Routes are versioned under
// /api/v1; all request and response bodies are JSON.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/ascentlearn/ascent/internal/engine"
)

// Server is the HTTP transport over an Engine.
type Server struct {
	engine *engine.Engine
	log    *slog.Logger
}

// NewServer creates a Server. logger may be nil for the default logger.
func NewServer(e *engine.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: e, log: logger}
}

// Handler builds the routed handler with CORS applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	v1 := r.PathPrefix("/api/v1").Subrouter()

	v1.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	// Institution track: chapters and level assessments.
	v1.HandleFunc("/sessions/{sessionID}/chapters", s.handleAddChapter).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{sessionID}/chapters", s.handleListChapters).Methods(http.MethodGet)
	v1.HandleFunc("/sessions/{sessionID}/assessments/{level:[0-9]+}", s.handleRequestAssessment).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{sessionID}/assessments/{level:[0-9]+}/submit", s.handleSubmitAssessment).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{sessionID}/remedial", s.handleCompleteRemedial).Methods(http.MethodPost)

	// Shared: progress, XP, mistakes.
	v1.HandleFunc("/sessions/{sessionID}/progress", s.handleGetProgress).Methods(http.MethodGet)
	v1.HandleFunc("/sessions/{sessionID}/xp/spend", s.handleSpendXP).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{sessionID}/mistakes", s.handleListMistakes).Methods(http.MethodGet)
	v1.HandleFunc("/sessions/{sessionID}/mistakes", s.handleCommentMistake).Methods(http.MethodPatch)

	// Individual track: roadmaps.
	v1.HandleFunc("/sessions/{sessionID}/roadmaps", s.handleCreateRoadmap).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{sessionID}/roadmaps", s.handleListRoadmaps).Methods(http.MethodGet)
	v1.HandleFunc("/roadmaps/{roadmapID}", s.handleGetRoadmap).Methods(http.MethodGet)
	v1.HandleFunc("/roadmaps/{roadmapID}/weeks/{week:[0-9]+}/content", s.handleGenerateWeekContent).Methods(http.MethodPost)
	v1.HandleFunc("/roadmaps/{roadmapID}/days/{day:[0-9]+}/resources", s.handleMarkResource).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{sessionID}/roadmaps/{roadmapID}/days/{day:[0-9]+}/complete", s.handleCompleteDay).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.logRequests(r))
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		s.log.Info("request", "method", r.Method, "path", r.URL.Path)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
