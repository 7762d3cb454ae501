package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/patricioibar/olist-dashboard/filter"
)

type Server struct {
	engine    *Engine
	publisher *Publisher
}

// NewServer exposes engine over HTTP. publisher may be nil.
func NewServer(engine *Engine, publisher *Publisher) *Server {
	return &Server{engine: engine, publisher: publisher}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/range", s.dateRange)
		r.Get("/dashboard", s.dashboard)
		r.Get("/charts", s.chartNames)
		r.Get("/charts/{name}", s.chart)
	})

	return r
}

type rangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) dateRange(w http.ResponseWriter, r *http.Request) {
	bounds := s.engine.Bounds()
	respondJSON(w, http.StatusOK, rangeResponse{
		Start: bounds.Start.Format(filter.DayLayout),
		End:   bounds.End.Format(filter.DayLayout),
	})
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	dateRange, err := s.resolveRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	dashboard, err := s.engine.Compute(dateRange)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(dashboard); err != nil {
			log.Errorf("Run %s: %v", dashboard.RunID, err)
		}
	}

	respondJSON(w, http.StatusOK, dashboard)
}

func (s *Server) chartNames(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ChartNames())
}

func (s *Server) chart(w http.ResponseWriter, r *http.Request) {
	dateRange, err := s.resolveRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	chart, err := s.engine.ComputeChart(chi.URLParam(r, "name"), dateRange)
	switch {
	case errors.Is(err, ErrUnknownChart):
		respondError(w, http.StatusNotFound, err.Error())
	case err != nil:
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondJSON(w, http.StatusOK, chart)
	}
}

// resolveRange reads either date, or start and end, from the query string.
// Missing ends default to the observed bounds.
func (s *Server) resolveRange(r *http.Request) (filter.DateRange, error) {
	query := r.URL.Query()
	if date := query.Get("date"); date != "" {
		return filter.ParseDays(date)
	}

	bounds := s.engine.Bounds()
	start := query.Get("start")
	if start == "" {
		start = bounds.Start.Format(filter.DayLayout)
	}
	end := query.Get("end")
	if end == "" {
		end = bounds.End.Format(filter.DayLayout)
	}
	return filter.ParseDays(start, end)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
