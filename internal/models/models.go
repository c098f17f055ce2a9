package models

import "time"

// SprintStatus enumerates the lifecycle states of a sprint.
type SprintStatus string

const (
	SprintPlanned   SprintStatus = "planned"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

// IssueStatus enumerates the workflow states an issue can be in.
type IssueStatus string

const (
	IssueTodo       IssueStatus = "todo"
	IssueInProgress IssueStatus = "in_progress"
	IssueDone       IssueStatus = "done"
	IssueCancelled  IssueStatus = "cancelled"
)

// Priority is the urgency bucket of an issue.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank maps a priority to its sort position. Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Sprint represents a time-boxed container of issues.
type Sprint struct {
	ID        int64
	ProjectID int64
	Name      string
	Goal      *string
	StartDate *time.Time
	EndDate   *time.Time
	Status    SprintStatus
	CreatedAt time.Time
	DeletedAt *time.Time
}

// Membership links an issue to a sprint at a rank. An issue has at most
// one membership in an active sprint at any time.
type Membership struct {
	SprintID int64
	IssueID  int64
	Order    int
}

// Issue carries the fields this engine reads or writes. Full issue CRUD
// lives elsewhere; Title exists only so the surfaces have something to show.
type Issue struct {
	ID           int64
	ProjectID    int64
	Title        string
	Status       IssueStatus
	Priority     Priority
	Type         string
	AssigneeID   *int64
	StoryPoints  *int
	BacklogOrder *int // nil means unranked, sorts last
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// StatusEvent records a single issue status transition. The burndown
// series prefers these over updated_at when they exist.
type StatusEvent struct {
	ID      int64
	IssueID int64
	From    IssueStatus
	To      IssueStatus
	At      time.Time
}

// BurndownPoint is one day of the ideal-vs-actual remaining-points series.
type BurndownPoint struct {
	Date            time.Time
	IdealRemaining  float64
	ActualRemaining float64
}

// SprintMetrics is the aggregate snapshot of a sprint's story points.
type SprintMetrics struct {
	TotalPoints     int
	CompletedPoints int
	RemainingPoints int
	CompletionPct   float64
	Velocity        float64
	IssueCounts     map[IssueStatus]int
}

// CompletionResult is returned by sprint completion.
type CompletionResult struct {
	SprintID              int64
	Metrics               SprintMetrics
	IncompleteIssuesMoved int
}

// BacklogFilter holds the optional equality filters for backlog listing.
type BacklogFilter struct {
	Type       string
	AssigneeID *int64
	Priority   Priority
}

// BacklogPage is one page of the ranked backlog.
type BacklogPage struct {
	Issues []Issue
	Total  int
	Pages  int
	Page   int
	Limit  int
}
