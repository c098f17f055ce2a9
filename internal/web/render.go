package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/akyairhashvil/sprintline/internal/engine"
	"github.com/akyairhashvil/sprintline/internal/models"
	"github.com/akyairhashvil/sprintline/internal/util"
)

const dateLayout = "2006-01-02"

// sprintJSON is the wire shape of a sprint. Dates render as YYYY-MM-DD.
type sprintJSON struct {
	ID        int64   `json:"id"`
	ProjectID int64   `json:"project_id"`
	Name      string  `json:"name"`
	Goal      *string `json:"goal,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

func toSprintJSON(s models.Sprint) sprintJSON {
	out := sprintJSON{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		Name:      s.Name,
		Goal:      s.Goal,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
	if s.StartDate != nil {
		out.StartDate = util.Ptr(s.StartDate.UTC().Format(dateLayout))
	}
	if s.EndDate != nil {
		out.EndDate = util.Ptr(s.EndDate.UTC().Format(dateLayout))
	}
	return out
}

func toSprintListJSON(sprints []models.Sprint) []sprintJSON {
	out := make([]sprintJSON, 0, len(sprints))
	for _, s := range sprints {
		out = append(out, toSprintJSON(s))
	}
	return out
}

type issueJSON struct {
	ID           int64  `json:"id"`
	ProjectID    int64  `json:"project_id"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	Type         string `json:"type"`
	AssigneeID   *int64 `json:"assignee_id,omitempty"`
	StoryPoints  *int   `json:"story_points,omitempty"`
	BacklogOrder *int   `json:"backlog_order,omitempty"`
}

func toIssueJSON(is models.Issue) issueJSON {
	return issueJSON{
		ID:           is.ID,
		ProjectID:    is.ProjectID,
		Title:        is.Title,
		Status:       string(is.Status),
		Priority:     string(is.Priority),
		Type:         is.Type,
		AssigneeID:   is.AssigneeID,
		StoryPoints:  is.StoryPoints,
		BacklogOrder: is.BacklogOrder,
	}
}

type membershipJSON struct {
	SprintID int64 `json:"sprint_id"`
	IssueID  int64 `json:"issue_id"`
	Order    int   `json:"order"`
}

type metricsJSON struct {
	TotalPoints     int            `json:"total_points"`
	CompletedPoints int            `json:"completed_points"`
	RemainingPoints int            `json:"remaining_points"`
	CompletionPct   float64        `json:"completion_pct"`
	Velocity        float64        `json:"velocity"`
	IssueCounts     map[string]int `json:"issue_counts"`
}

func toMetricsJSON(m models.SprintMetrics) metricsJSON {
	counts := make(map[string]int, len(m.IssueCounts))
	for status, n := range m.IssueCounts {
		counts[string(status)] = n
	}
	return metricsJSON{
		TotalPoints:     m.TotalPoints,
		CompletedPoints: m.CompletedPoints,
		RemainingPoints: m.RemainingPoints,
		CompletionPct:   m.CompletionPct,
		Velocity:        m.Velocity,
		IssueCounts:     counts,
	}
}

type burndownPointJSON struct {
	Date            string  `json:"date"`
	IdealRemaining  float64 `json:"ideal_remaining"`
	ActualRemaining float64 `json:"actual_remaining"`
}

func toBurndownJSON(points []models.BurndownPoint) []burndownPointJSON {
	out := make([]burndownPointJSON, 0, len(points))
	for _, p := range points {
		out = append(out, burndownPointJSON{
			Date:            p.Date.Format(dateLayout),
			IdealRemaining:  p.IdealRemaining,
			ActualRemaining: p.ActualRemaining,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "success",
		"data":      data,
		"timestamp": time.Now().UTC(),
	})
}

// writeErr maps engine error kinds onto HTTP statuses. Internal errors are
// logged server-side and reported without detail.
func writeErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"
	switch engine.KindOf(err) {
	case engine.KindNotFound:
		status = http.StatusNotFound
		msg = err.Error()
	case engine.KindConflict:
		status = http.StatusConflict
		msg = err.Error()
	case engine.KindValidation:
		status = http.StatusBadRequest
		msg = err.Error()
	default:
		util.LogError("request failed", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "error",
		"error":     msg,
		"kind":      engine.KindOf(err).String(),
		"timestamp": time.Now().UTC(),
	})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "error",
		"error":     msg,
		"kind":      "validation",
		"timestamp": time.Now().UTC(),
	})
}
