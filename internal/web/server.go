// Package web implements the JSON HTTP surface of the planner: one
// route group per tab, all backed by the trip service.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/yutarok/tabinote/internal/service"
)

type Server struct {
	service *service.TripService
	router  chi.Router
}

func NewServer(svc *service.TripService, corsOrigins []string, logger *slog.Logger) *Server {
	s := &Server{service: svc}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/flights", s.handleFlights)
		r.Get("/trip", s.handleTrip)
		r.Put("/tab", s.handleSetTab)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", s.handleListItems)
			r.Post("/", s.handleAddItem)
			r.Post("/{id}/toggle", s.handleToggleItem)
			r.Delete("/{id}", s.handleDeleteItem)
			r.Post("/suggest", s.handleSuggestItems)
			r.Post("/suggest/accept", s.handleAcceptItemSuggestion)
		})

		r.Route("/spots", func(r chi.Router) {
			r.Get("/", s.handleListSpots)
			r.Post("/", s.handleAddSpot)
			r.Put("/{id}", s.handleUpdateSpot)
			r.Delete("/{id}", s.handleDeleteSpot)
			r.Post("/{id}/links", s.handleAddLink)
			r.Delete("/{id}/links/{linkID}", s.handleDeleteLink)
			r.Post("/suggest", s.handleSuggestSpots)
			r.Post("/suggest/accept", s.handleAcceptSpotSuggestion)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", s.handleListSchedule)
			r.Put("/{id}", s.handleUpdateDay)
			r.Post("/{id}/events", s.handleAddEvent)
			r.Delete("/{id}/events/{eventID}", s.handleDeleteEvent)
			r.Post("/swap", s.handleSwapDays)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", s.handleListExpenses)
			r.Post("/", s.handleAddExpense)
			r.Delete("/{id}", s.handleDeleteExpense)
		})
	})

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger writes one structured log line per request, including
// the id set by chi's RequestID middleware.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.InfoContext(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
		})
	}
}
