package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yutarok/tabinote/internal/domain"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      s.service.Items(),
		"completion": s.service.Completion(),
	})
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text     string              `json:"text"`
		Category domain.ItemCategory `json:"category"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if body.Category == "" {
		body.Category = domain.ItemEssential
	}
	items, err := s.service.AddItem(body.Text, body.Category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"items": items})
}

func (s *Server) handleToggleItem(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.ToggleItem(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      items,
		"completion": s.service.Completion(),
	})
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	items := s.service.DeleteItem(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleSuggestItems(w http.ResponseWriter, r *http.Request) {
	suggestions := s.service.SuggestPacking(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *Server) handleAcceptItemSuggestion(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	items, err := s.service.AcceptPackingSuggestion(body.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"items": items})
}
