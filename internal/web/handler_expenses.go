package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yutarok/tabinote/internal/domain"
)

// defaultEurRate is the JPY conversion applied when the client does not
// send its own rate.
const defaultEurRate = 165

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	rate := float64(defaultEurRate)
	if raw := r.URL.Query().Get("rate"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			writeBadRequest(w, "rate must be a positive number")
			return
		}
		rate = parsed
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"expenses": s.service.Expenses(),
		"balance":  s.service.Balance(rate),
	})
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var body domain.Expense
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	expenses, err := s.service.AddExpense(body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"expenses": expenses})
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenses := s.service.DeleteExpense(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]any{"expenses": expenses})
}
