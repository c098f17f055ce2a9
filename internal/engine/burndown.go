package engine

import (
	"math"
	"time"

	"github.com/akyairhashvil/sprintline/internal/models"
)

// Calculator computes burndown metrics. It is pure: callers fetch the
// member issues and completion times, the calculator only does arithmetic.
type Calculator struct{}

// Aggregate sums story points over the member issues. Issues without an
// estimate count as zero. Velocity is the completed points as a float.
func (Calculator) Aggregate(issues []models.Issue) models.SprintMetrics {
	m := models.SprintMetrics{
		IssueCounts: make(map[models.IssueStatus]int),
	}
	for _, is := range issues {
		points := 0
		if is.StoryPoints != nil {
			points = *is.StoryPoints
		}
		m.TotalPoints += points
		if is.Status == models.IssueDone {
			m.CompletedPoints += points
		}
		m.IssueCounts[is.Status]++
	}
	m.RemainingPoints = m.TotalPoints - m.CompletedPoints
	if m.TotalPoints > 0 {
		m.CompletionPct = round2(float64(m.CompletedPoints) / float64(m.TotalPoints) * 100)
	}
	m.Velocity = float64(m.CompletedPoints)
	return m
}

// Series produces the per-day ideal and actual remaining-points curve over
// the sprint's date range, inclusive. Empty when the sprint has no date
// range or no estimated points.
//
// The completion date of a done issue comes from doneAt (the status event
// log) when present, falling back to the issue's updated_at. The fallback
// overstates lateness when an issue is edited after being marked done; the
// event log exists to avoid that.
func (Calculator) Series(sprint models.Sprint, issues []models.Issue, doneAt map[int64]time.Time) []models.BurndownPoint {
	if sprint.StartDate == nil || sprint.EndDate == nil {
		return []models.BurndownPoint{}
	}

	total := 0
	for _, is := range issues {
		if is.StoryPoints != nil {
			total += *is.StoryPoints
		}
	}
	if total == 0 {
		return []models.BurndownPoint{}
	}

	start := dateOf(*sprint.StartDate)
	end := dateOf(*sprint.EndDate)
	dayCount := int(end.Sub(start).Hours()/24) + 1
	dailyBurn := float64(total) / float64(dayCount)

	points := make([]models.BurndownPoint, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		day := start.AddDate(0, 0, i)

		completed := 0
		for _, is := range issues {
			if is.Status != models.IssueDone || is.StoryPoints == nil {
				continue
			}
			completedOn := is.UpdatedAt
			if at, ok := doneAt[is.ID]; ok {
				completedOn = at
			}
			if !dateOf(completedOn).After(day) {
				completed += *is.StoryPoints
			}
		}

		points = append(points, models.BurndownPoint{
			Date:            day,
			IdealRemaining:  round2(math.Max(0, float64(total)-dailyBurn*float64(i))),
			ActualRemaining: round2(math.Max(0, float64(total-completed))),
		})
	}
	return points
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
