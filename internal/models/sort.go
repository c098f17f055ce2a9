package models

// BacklogSort enumerates the supported backlog orderings. Each variant has
// an explicit comparator and tie-break rather than free-form column names.
type BacklogSort int

const (
	// SortBacklogOrder ranks by backlog_order ascending, unranked issues
	// last, ties broken by created_at ascending. The default.
	SortBacklogOrder BacklogSort = iota
	// SortCreatedAt ranks newest first.
	SortCreatedAt
	// SortUpdatedAt ranks most recently touched first.
	SortUpdatedAt
	// SortPriority ranks critical before high before medium before low,
	// unknown last, ties broken by created_at ascending.
	SortPriority
)

// ParseBacklogSort maps the wire name of a sort to its variant. The empty
// string selects the default.
func ParseBacklogSort(s string) (BacklogSort, bool) {
	switch s {
	case "", "backlog_order":
		return SortBacklogOrder, true
	case "created_at":
		return SortCreatedAt, true
	case "updated_at":
		return SortUpdatedAt, true
	case "priority":
		return SortPriority, true
	default:
		return SortBacklogOrder, false
	}
}

func (s BacklogSort) String() string {
	switch s {
	case SortCreatedAt:
		return "created_at"
	case SortUpdatedAt:
		return "updated_at"
	case SortPriority:
		return "priority"
	default:
		return "backlog_order"
	}
}
