package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ascentlearn/ascent/internal/assessment"
	"github.com/ascentlearn/ascent/internal/engine"
	"github.com/ascentlearn/ascent/internal/llm"
	"github.com/ascentlearn/ascent/internal/roadmap"
	"github.com/ascentlearn/ascent/internal/store"
)

func (s *Server) handleAddChapter(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !s.readJSON(w, r, &body) {
		return
	}
	c, err := s.engine.AddChapter(r.Context(), mux.Vars(r)["sessionID"], body.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListChapters(w http.ResponseWriter, r *http.Request) {
	chapters, err := s.engine.ListChapters(r.Context(), mux.Vars(r)["sessionID"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"chapters": chapters})
}

func (s *Server) handleRequestAssessment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	level, _ := strconv.Atoi(vars["level"])
	view, err := s.engine.RequestAssessment(r.Context(), vars["sessionID"], level)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	level, _ := strconv.Atoi(vars["level"])
	var body struct {
		Answers []string `json:"answers"`
	}
	if !s.readJSON(w, r, &body) {
		return
	}
	res, err := s.engine.SubmitAssessment(r.Context(), vars["sessionID"], level, body.Answers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleCompleteRemedial(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Answer string `json:"answer"`
	}
	if !s.readJSON(w, r, &body) {
		return
	}
	out, err := s.engine.CompleteRemedial(r.Context(), mux.Vars(r)["sessionID"], body.Answer)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	track := r.URL.Query().Get("track")
	if track == "" {
		track = store.TrackInstitution
	}
	if track != store.TrackInstitution && track != store.TrackIndividual {
		s.writeErrorCode(w, http.StatusBadRequest, "invalid_track", "track must be institution or individual", nil)
		return
	}
	view, err := s.engine.GetProgress(r.Context(), mux.Vars(r)["sessionID"], track)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSpendXP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Track  string `json:"track"`
		Amount int    `json:"amount"`
	}
	if !s.readJSON(w, r, &body) {
		return
	}
	if body.Track == "" {
		body.Track = store.TrackInstitution
	}
	balance, err := s.engine.SpendXP(r.Context(), mux.Vars(r)["sessionID"], body.Track, body.Amount)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"balance": balance})
}

func (s *Server) handleListMistakes(w http.ResponseWriter, r *http.Request) {
	got, err := s.engine.Mistakes(r.Context(), mux.Vars(r)["sessionID"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"mistakes": got})
}

func (s *Server) handleCommentMistake(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Question string `json:"question"`
		Comment  string `json:"comment"`
	}
	if !s.readJSON(w, r, &body) {
		return
	}
	if err := s.engine.CommentMistake(r.Context(), mux.Vars(r)["sessionID"], body.Question, body.Comment); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleCreateRoadmap(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Goal      string `json:"goal"`
		TotalDays int    `json:"total_days"`
	}
	if !s.readJSON(w, r, &body) {
		return
	}
	if body.Goal == "" {
		s.writeErrorCode(w, http.StatusBadRequest, "invalid_goal", "goal is required", nil)
		return
	}
	rm, err := s.engine.Roadmaps().Create(r.Context(), mux.Vars(r)["sessionID"], body.Goal, body.TotalDays)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, rm)
}

func (s *Server) handleListRoadmaps(w http.ResponseWriter, r *http.Request) {
	rms, err := s.engine.Roadmaps().List(r.Context(), mux.Vars(r)["sessionID"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"roadmaps": rms})
}

func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	rm, err := s.engine.Roadmaps().Get(r.Context(), mux.Vars(r)["roadmapID"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rm)
}

func (s *Server) handleGenerateWeekContent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	week, _ := strconv.Atoi(vars["week"])
	rm, err := s.engine.Roadmaps().GenerateWeekContent(r.Context(), vars["roadmapID"], week)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rm)
}

func (s *Server) handleMarkResource(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	day, _ := strconv.Atoi(vars["day"])
	var body struct {
		Name string `json:"name"`
	}
	if !s.readJSON(w, r, &body) {
		return
	}
	rm, err := s.engine.Roadmaps().MarkResourceComplete(r.Context(), vars["roadmapID"], day, body.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rm)
}

func (s *Server) handleCompleteDay(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	day, _ := strconv.Atoi(vars["day"])
	var body struct {
		Answers []string `json:"answers"`
	}
	if !s.readJSON(w, r, &body) {
		return
	}
	out, err := s.engine.CompleteRoadmapDay(r.Context(), vars["sessionID"], vars["roadmapID"], day, body.Answers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

// --- helpers ---

func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeErrorCode(w, http.StatusBadRequest, "invalid_body", "request body is not valid JSON", nil)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("encode response", "error", err)
	}
}

func (s *Server) writeErrorCode(w http.ResponseWriter, status int, code, message string, extra map[string]any) {
	body := map[string]any{"code": code, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	s.writeJSON(w, status, map[string]any{"error": body})
}

// writeError maps domain errors onto HTTP statuses: bad input 400, locked
// level 403, missing records 404, active cooldown 429, provider trouble 502.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var cdErr *engine.CooldownError
	if errors.As(err, &cdErr) {
		s.writeErrorCode(w, http.StatusTooManyRequests, "cooldown_active", err.Error(), map[string]any{
			"remaining_seconds": int(cdErr.Remaining.Seconds()),
		})
		return
	}

	var genErr *assessment.GenerationError
	if errors.As(err, &genErr) {
		s.writeErrorCode(w, http.StatusBadGateway, "generation_failed", err.Error(), nil)
		return
	}
	var unavailable *llm.ErrProviderUnavailable
	var rateLimited *llm.ErrRateLimit
	if errors.As(err, &unavailable) || errors.As(err, &rateLimited) {
		s.writeErrorCode(w, http.StatusBadGateway, "provider_unavailable", err.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, engine.ErrInvalidLevel),
		errors.Is(err, engine.ErrAnswerCount),
		errors.Is(err, engine.ErrInvalidAmount),
		errors.Is(err, engine.ErrInsufficientXP),
		errors.Is(err, engine.ErrNoRemedial),
		errors.Is(err, roadmap.ErrDayOutOfRange),
		errors.Is(err, roadmap.ErrWeekOutOfRange),
		errors.Is(err, roadmap.ErrDayLocked),
		errors.Is(err, roadmap.ErrResourcesIncomplete),
		errors.Is(err, roadmap.ErrNoContent):
		s.writeErrorCode(w, http.StatusBadRequest, "invalid_request", err.Error(), nil)
	case errors.Is(err, engine.ErrLevelLocked):
		s.writeErrorCode(w, http.StatusForbidden, "level_locked", err.Error(), nil)
	case errors.Is(err, engine.ErrNoContent):
		s.writeErrorCode(w, http.StatusNotFound, "no_content", err.Error(), nil)
	case errors.Is(err, engine.ErrNotFound),
		errors.Is(err, roadmap.ErrNotFound),
		errors.Is(err, roadmap.ErrResourceNotFound),
		errors.Is(err, store.ErrNotFound):
		s.writeErrorCode(w, http.StatusNotFound, "not_found", err.Error(), nil)
	default:
		s.log.Error("internal error", "error", err)
		s.writeErrorCode(w, http.StatusInternalServerError, "internal", "internal server error", nil)
	}
}
