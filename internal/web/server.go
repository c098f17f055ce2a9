// Package web exposes the sprint and backlog engine over HTTP as a JSON
// API.
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/akyairhashvil/sprintline/internal/config"
	"github.com/akyairhashvil/sprintline/internal/engine"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server handles HTTP requests.
type Server struct {
	Router *chi.Mux
	engine *engine.Engine
}

// NewServer creates a web server over the given engine.
func NewServer(eng *engine.Engine) *Server {
	s := &Server{engine: eng}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(config.RequestTimeout))

	r.Get("/health", s.healthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects/{projectID}", func(r chi.Router) {
			r.Get("/sprints", s.listSprints)
			r.Post("/sprints", s.createSprint)
			r.Get("/sprints/active", s.getActiveSprint)
			r.Get("/sprints/overlapping", s.findOverlapping)

			r.Get("/backlog", s.listBacklog)
			r.Put("/backlog/order", s.prioritizeBacklog)
			r.Put("/backlog/{issueID}/position", s.repositionBacklogIssue)
		})

		r.Route("/sprints/{sprintID}", func(r chi.Router) {
			r.Get("/", s.getSprint)
			r.Delete("/", s.deleteSprint)
			r.Put("/dates", s.updateSprintDates)
			r.Put("/status", s.transitionSprint)
			r.Post("/complete", s.completeSprint)
			r.Get("/burndown", s.getBurndown)

			r.Get("/issues", s.listSprintIssues)
			r.Post("/issues", s.addSprintIssue)
			r.Delete("/issues/{issueID}", s.removeSprintIssue)
			r.Put("/issues/order", s.reorderSprintIssues)
		})
	})

	s.Router = r
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   config.AppName,
	})
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) {
	log.Printf("starting %s API server on %s", config.AppName, addr)
	if err := http.ListenAndServe(addr, s.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
