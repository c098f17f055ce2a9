package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/akyairhashvil/sprintline/internal/engine"
	"github.com/akyairhashvil/sprintline/internal/models"
)

func (s *Server) listBacklog(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		writeBadRequest(w, "invalid project ID")
		return
	}

	q := r.URL.Query()
	req := engine.ListRequest{ProjectID: projectID}
	if v := q.Get("page"); v != "" {
		req.Page, _ = strconv.Atoi(v)
	}
	if v := q.Get("limit"); v != "" {
		req.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("sort"); v != "" {
		sort, ok := models.ParseBacklogSort(v)
		if !ok {
			writeBadRequest(w, "unknown sort "+strconv.Quote(v))
			return
		}
		req.Sort = sort
	}
	req.Filter.Type = q.Get("type")
	req.Filter.Priority = models.Priority(q.Get("priority"))
	if v := q.Get("assignee_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeBadRequest(w, "assignee_id must be an integer")
			return
		}
		req.Filter.AssigneeID = &id
	}

	page, err := s.engine.Backlog.List(r.Context(), req)
	if err != nil {
		writeErr(w, err)
		return
	}

	issues := make([]issueJSON, 0, len(page.Issues))
	for _, is := range page.Issues {
		issues = append(issues, toIssueJSON(is))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"issues": issues,
		"total":  page.Total,
		"pages":  page.Pages,
		"page":   page.Page,
		"limit":  page.Limit,
	})
}

type prioritizeRequest struct {
	IssueIDs []int64 `json:"issue_ids"`
}

func (s *Server) prioritizeBacklog(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		writeBadRequest(w, "invalid project ID")
		return
	}
	var req prioritizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := s.engine.Backlog.Prioritize(r.Context(), projectID, req.IssueIDs); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"ranked": len(req.IssueIDs)})
}

type repositionRequest struct {
	Index int `json:"index"`
}

func (s *Server) repositionBacklogIssue(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		writeBadRequest(w, "invalid project ID")
		return
	}
	issueID, ok := urlID(r, "issueID")
	if !ok {
		writeBadRequest(w, "invalid issue ID")
		return
	}
	var req repositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := s.engine.Backlog.Reposition(r.Context(), projectID, issueID, req.Index); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"issue_id": issueID, "index": req.Index})
}
