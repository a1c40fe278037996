package web

import (
	"net/http"

	"github.com/yutarok/tabinote/internal/domain"
)

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Status())
}

func (s *Server) handleFlights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"flights": s.service.Flights()})
}

// handleTrip returns the full document view: every collection plus the
// derived packing completion.
func (s *Server) handleTrip(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      s.service.Items(),
		"spots":      s.service.Spots(),
		"schedule":   s.service.Schedule(),
		"expenses":   s.service.Expenses(),
		"completion": s.service.Completion(),
		"activeTab":  s.service.ActiveTab(),
	})
}

func (s *Server) handleSetTab(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tab domain.Tab `json:"tab"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if !domain.ValidTab(body.Tab) {
		writeBadRequest(w, "unknown tab")
		return
	}
	s.service.SetActiveTab(body.Tab)
	writeJSON(w, http.StatusOK, map[string]any{"activeTab": s.service.ActiveTab()})
}
