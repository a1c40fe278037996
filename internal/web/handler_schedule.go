package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yutarok/tabinote/internal/domain"
)

func (s *Server) handleListSchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"schedule": s.service.Schedule()})
}

func (s *Server) handleUpdateDay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title    string          `json:"title"`
		IconType domain.IconType `json:"iconType"`
		Content  string          `json:"content"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	schedule, err := s.service.UpdateDay(chi.URLParam(r, "id"), body.Title, body.IconType, body.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"schedule": schedule})
}

func (s *Server) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	var body domain.ScheduleEvent
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	schedule, err := s.service.AddEvent(chi.URLParam(r, "id"), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"schedule": schedule})
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	schedule, err := s.service.DeleteEvent(chi.URLParam(r, "id"), chi.URLParam(r, "eventID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"schedule": schedule})
}

func (s *Server) handleSwapDays(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FromID string `json:"fromId"`
		ToID   string `json:"toId"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	schedule, err := s.service.SwapDays(body.FromID, body.ToID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"schedule": schedule})
}
