package engine

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akyairhashvil/sprintline/internal/config"
	"github.com/akyairhashvil/sprintline/internal/database"
	"github.com/akyairhashvil/sprintline/internal/models"
)

// Lifecycle owns sprint creation, date edits and status transitions.
type Lifecycle struct {
	sprints database.SprintStore
}

func NewLifecycle(sprints database.SprintStore) *Lifecycle {
	return &Lifecycle{sprints: sprints}
}

// SprintDraft is the input to Create. Zero-value Status means planned.
type SprintDraft struct {
	ProjectID int64
	Name      string
	Goal      string
	StartDate *time.Time
	EndDate   *time.Time
	Status    models.SprintStatus
}

// Create validates and persists a new sprint. Cross-sprint date overlap is
// deliberately not checked here; callers that care use FindOverlapping.
func (l *Lifecycle) Create(ctx context.Context, draft SprintDraft) (models.Sprint, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return models.Sprint{}, validationf("sprint name is required")
	}
	if utf8.RuneCountInString(name) > config.MaxSprintNameLength {
		return models.Sprint{}, validationf("sprint name exceeds %d characters", config.MaxSprintNameLength)
	}
	goal := strings.TrimSpace(draft.Goal)
	if utf8.RuneCountInString(goal) > config.MaxSprintGoalLength {
		return models.Sprint{}, validationf("sprint goal exceeds %d characters", config.MaxSprintGoalLength)
	}
	if err := validateDates(draft.StartDate, draft.EndDate); err != nil {
		return models.Sprint{}, err
	}

	status := draft.Status
	if status == "" {
		status = models.SprintPlanned
	}
	if !validStatus(status) {
		return models.Sprint{}, validationf("unknown sprint status %q", status)
	}

	s := models.Sprint{
		ProjectID: draft.ProjectID,
		Name:      name,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
		Status:    status,
	}
	if goal != "" {
		s.Goal = &goal
	}

	id, err := l.sprints.CreateSprint(ctx, s)
	if err != nil {
		return models.Sprint{}, storeErr(err)
	}
	created, err := l.sprints.GetSprint(ctx, id)
	if err != nil {
		return models.Sprint{}, storeErr(err)
	}
	return created, nil
}

// Get retrieves a sprint by ID.
func (l *Lifecycle) Get(ctx context.Context, sprintID int64) (models.Sprint, error) {
	s, err := l.sprints.GetSprint(ctx, sprintID)
	if err != nil {
		return models.Sprint{}, storeErr(err)
	}
	return s, nil
}

// ListByProject returns the non-deleted sprints of a project.
func (l *Lifecycle) ListByProject(ctx context.Context, projectID int64) ([]models.Sprint, error) {
	sprints, err := l.sprints.SprintsByProject(ctx, projectID)
	if err != nil {
		return nil, storeErr(err)
	}
	return sprints, nil
}

// Delete soft-deletes a sprint. Sprints with member issues cannot be
// deleted.
func (l *Lifecycle) Delete(ctx context.Context, sprintID int64) error {
	return storeErr(l.sprints.SoftDeleteSprint(ctx, sprintID))
}

// UpdateDates replaces a sprint's date range. When both dates are supplied
// the new range must not overlap another sprint of the same project.
func (l *Lifecycle) UpdateDates(ctx context.Context, sprintID int64, start, end *time.Time) error {
	if err := validateDates(start, end); err != nil {
		return err
	}
	s, err := l.sprints.GetSprint(ctx, sprintID)
	if err != nil {
		return storeErr(err)
	}
	if start != nil && end != nil {
		overlapping, err := l.sprints.FindOverlappingSprints(ctx, s.ProjectID, *start, *end, sprintID)
		if err != nil {
			return storeErr(err)
		}
		if len(overlapping) > 0 {
			return conflictf("dates overlap sprint %q", overlapping[0].Name)
		}
	}
	return storeErr(l.sprints.UpdateSprintDates(ctx, sprintID, start, end))
}

// Transition moves a sprint along its lifecycle. Completed is terminal.
func (l *Lifecycle) Transition(ctx context.Context, sprintID int64, to models.SprintStatus) (models.Sprint, error) {
	if !validStatus(to) {
		return models.Sprint{}, validationf("unknown sprint status %q", to)
	}
	s, err := l.sprints.GetSprint(ctx, sprintID)
	if err != nil {
		return models.Sprint{}, storeErr(err)
	}
	if !allowedTransition(s.Status, to) {
		return models.Sprint{}, validationf("cannot transition sprint from %s to %s", s.Status, to)
	}
	if err := l.sprints.UpdateSprintStatus(ctx, sprintID, to); err != nil {
		return models.Sprint{}, storeErr(err)
	}
	s.Status = to
	return s, nil
}

// FindOverlapping exposes date-overlap detection as a query for callers
// that want to warn before creating or activating a sprint.
func (l *Lifecycle) FindOverlapping(ctx context.Context, projectID int64, start, end time.Time, excludeID int64) ([]models.Sprint, error) {
	if !start.Before(end) {
		return nil, validationf("start date must precede end date")
	}
	sprints, err := l.sprints.FindOverlappingSprints(ctx, projectID, start, end, excludeID)
	if err != nil {
		return nil, storeErr(err)
	}
	return sprints, nil
}

// ActiveSprint returns the project's active sprint, if any. Activating a
// second sprint while one is running is permitted; this returns the most
// recently activated one.
func (l *Lifecycle) ActiveSprint(ctx context.Context, projectID int64) (models.Sprint, error) {
	s, err := l.sprints.GetActiveSprint(ctx, projectID)
	if err != nil {
		return models.Sprint{}, storeErr(err)
	}
	return s, nil
}

func validateDates(start, end *time.Time) error {
	if start != nil && end != nil && !start.Before(*end) {
		return validationf("start date must precede end date")
	}
	return nil
}

func validStatus(s models.SprintStatus) bool {
	switch s {
	case models.SprintPlanned, models.SprintActive, models.SprintCompleted:
		return true
	}
	return false
}

// allowedTransition encodes the lifecycle edges: planned to active,
// planned to completed, active to completed.
func allowedTransition(from, to models.SprintStatus) bool {
	switch from {
	case models.SprintPlanned:
		return to == models.SprintActive || to == models.SprintCompleted
	case models.SprintActive:
		return to == models.SprintCompleted
	default:
		return false
	}
}
