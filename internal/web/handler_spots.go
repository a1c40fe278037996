package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yutarok/tabinote/internal/domain"
	"github.com/yutarok/tabinote/internal/suggest"
)

func (s *Server) handleListSpots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"spots": s.service.Spots()})
}

func (s *Server) handleAddSpot(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title       string              `json:"title"`
		Description string              `json:"description"`
		Category    domain.SpotCategory `json:"category"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if body.Category == "" {
		body.Category = domain.SpotSightseeing
	}
	spots, err := s.service.AddSpot(body.Title, body.Description, body.Category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"spots": spots})
}

func (s *Server) handleUpdateSpot(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Description string `json:"description"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	spots, err := s.service.UpdateSpotDescription(chi.URLParam(r, "id"), body.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"spots": spots})
}

func (s *Server) handleDeleteSpot(w http.ResponseWriter, r *http.Request) {
	spots := s.service.DeleteSpot(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]any{"spots": spots})
}

func (s *Server) handleAddLink(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	spots, err := s.service.AddLink(chi.URLParam(r, "id"), body.Title, body.URL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"spots": spots})
}

func (s *Server) handleDeleteLink(w http.ResponseWriter, r *http.Request) {
	spots, err := s.service.DeleteLink(chi.URLParam(r, "id"), chi.URLParam(r, "linkID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"spots": spots})
}

func (s *Server) handleSuggestSpots(w http.ResponseWriter, r *http.Request) {
	suggestions := s.service.SuggestSpots(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *Server) handleAcceptSpotSuggestion(w http.ResponseWriter, r *http.Request) {
	var body suggest.SpotSuggestion
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if !domain.ValidSpotCategory(body.Category) {
		body.Category = domain.SpotOther
	}
	spots, err := s.service.AcceptSpotSuggestion(body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"spots": spots})
}
