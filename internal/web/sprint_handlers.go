package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/akyairhashvil/sprintline/internal/engine"
	"github.com/akyairhashvil/sprintline/internal/models"
	"github.com/go-chi/chi/v5"
)

func urlID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type sprintDraftRequest struct {
	Name      string `json:"name"`
	Goal      string `json:"goal"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

func (s *Server) createSprint(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		writeBadRequest(w, "invalid project ID")
		return
	}
	var req sprintDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		writeBadRequest(w, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeBadRequest(w, "end_date must be YYYY-MM-DD")
		return
	}

	sprint, err := s.engine.Lifecycle.Create(r.Context(), engine.SprintDraft{
		ProjectID: projectID,
		Name:      req.Name,
		Goal:      req.Goal,
		StartDate: start,
		EndDate:   end,
		Status:    models.SprintStatus(req.Status),
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSprintJSON(sprint))
}

func (s *Server) listSprints(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		writeBadRequest(w, "invalid project ID")
		return
	}
	sprints, err := s.engine.Lifecycle.ListByProject(r.Context(), projectID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSprintListJSON(sprints))
}

func (s *Server) getSprint(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := urlID(r, "sprintID")
	if !ok {
		writeBadRequest(w, "invalid sprint ID")
		return
	}
	sprint, err := s.engine.Lifecycle.Get(r.Context(), sprintID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSprintJSON(sprint))
}

func (s *Server) deleteSprint(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := urlID(r, "sprintID")
	if !ok {
		writeBadRequest(w, "invalid sprint ID")
		return
	}
	if err := s.engine.Lifecycle.Delete(r.Context(), sprintID); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": sprintID})
}

func (s *Server) getActiveSprint(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		writeBadRequest(w, "invalid project ID")
		return
	}
	sprint, err := s.engine.Lifecycle.ActiveSprint(r.Context(), projectID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSprintJSON(sprint))
}

func (s *Server) findOverlapping(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		writeBadRequest(w, "invalid project ID")
		return
	}
	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil || start == nil {
		writeBadRequest(w, "start must be YYYY-MM-DD")
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil || end == nil {
		writeBadRequest(w, "end must be YYYY-MM-DD")
		return
	}
	var excludeID int64
	if v := r.URL.Query().Get("exclude"); v != "" {
		excludeID, _ = strconv.ParseInt(v, 10, 64)
	}

	sprints, err := s.engine.Lifecycle.FindOverlapping(r.Context(), projectID, *start, *end, excludeID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSprintListJSON(sprints))
}

type sprintDatesRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (s *Server) updateSprintDates(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := urlID(r, "sprintID")
	if !ok {
		writeBadRequest(w, "invalid sprint ID")
		return
	}
	var req sprintDatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		writeBadRequest(w, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeBadRequest(w, "end_date must be YYYY-MM-DD")
		return
	}
	if err := s.engine.Lifecycle.UpdateDates(r.Context(), sprintID, start, end); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": sprintID})
}

type sprintStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) transitionSprint(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := urlID(r, "sprintID")
	if !ok {
		writeBadRequest(w, "invalid sprint ID")
		return
	}
	var req sprintStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	sprint, err := s.engine.Lifecycle.Transition(r.Context(), sprintID, models.SprintStatus(req.Status))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSprintJSON(sprint))
}

type completeSprintRequest struct {
	MoveIncompleteToBacklog bool `json:"move_incomplete_to_backlog"`
}

func (s *Server) completeSprint(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := urlID(r, "sprintID")
	if !ok {
		writeBadRequest(w, "invalid sprint ID")
		return
	}
	var req completeSprintRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
	}
	result, err := s.engine.Completion.Complete(r.Context(), sprintID, req.MoveIncompleteToBacklog)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sprint_id":               result.SprintID,
		"metrics":                 toMetricsJSON(result.Metrics),
		"incomplete_issues_moved": result.IncompleteIssuesMoved,
	})
}

func (s *Server) getBurndown(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := urlID(r, "sprintID")
	if !ok {
		writeBadRequest(w, "invalid sprint ID")
		return
	}
	metrics, series, err := s.engine.Completion.Burndown(r.Context(), sprintID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"metrics": toMetricsJSON(metrics),
		"series":  toBurndownJSON(series),
	})
}

func (s *Server) listSprintIssues(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := urlID(r, "sprintID")
	if !ok {
		writeBadRequest(w, "invalid sprint ID")
		return
	}
	members, err := s.engine.Memberships.ListMembers(r.Context(), sprintID)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]membershipJSON, 0, len(members))
	for _, m := range members {
		out = append(out, membershipJSON{SprintID: m.SprintID, IssueID: m.IssueID, Order: m.Order})
	}
	writeJSON(w, http.StatusOK, out)
}

type addIssueRequest struct {
	IssueID int64 `json:"issue_id"`
	Order   int   `json:"order"`
}

func (s *Server) addSprintIssue(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := urlID(r, "sprintID")
	if !ok {
		writeBadRequest(w, "invalid sprint ID")
		return
	}
	var req addIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := s.engine.Memberships.AddIssue(r.Context(), sprintID, req.IssueID, req.Order); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, membershipJSON{SprintID: sprintID, IssueID: req.IssueID, Order: req.Order})
}

func (s *Server) removeSprintIssue(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := urlID(r, "sprintID")
	if !ok {
		writeBadRequest(w, "invalid sprint ID")
		return
	}
	issueID, ok := urlID(r, "issueID")
	if !ok {
		writeBadRequest(w, "invalid issue ID")
		return
	}
	if err := s.engine.Memberships.RemoveIssue(r.Context(), sprintID, issueID); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"removed": issueID})
}

type reorderRequest struct {
	Orders map[int64]int `json:"orders"`
}

func (s *Server) reorderSprintIssues(w http.ResponseWriter, r *http.Request) {
	sprintID, ok := urlID(r, "sprintID")
	if !ok {
		writeBadRequest(w, "invalid sprint ID")
		return
	}
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := s.engine.Memberships.Reorder(r.Context(), sprintID, req.Orders); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"reordered": sprintID})
}
