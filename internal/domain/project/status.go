package project

import "time"

// Status is a project's workflow state. Any status may transition to any
// other; the admin picks freely.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusInReview   Status = "in-review"
	StatusRevision   Status = "revision"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"
	StatusCancelled  Status = "cancelled"
)

// statusRank orders statuses for sorting. This is a workflow ordering, not
// alphabetical: on-hold and cancelled sort after completed.
var statusRank = map[Status]int{
	StatusNotStarted: 1,
	StatusInProgress: 2,
	StatusInReview:   3,
	StatusRevision:   4,
	StatusCompleted:  5,
	StatusOnHold:     6,
	StatusCancelled:  7,
}

var priorityRank = map[Priority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
	PriorityUrgent: 4,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank returns the workflow sort position of s. Unknown statuses rank last.
func (s Status) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return len(statusRank) + 1
}

// Rank returns the sort position of p. Unknown priorities rank last.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank) + 1
}

// SetStatus moves the project to a new status and applies the progress
// conveniences tied to the transition: completing forces progress to 100 and
// stamps the completion date; starting work bumps zero progress to 25;
// entering review raises progress to at least 80. These are applied only at
// transition time; progress remains freely editable afterwards.
func (p *Project) SetStatus(status Status, now time.Time) {
	p.Status = status
	switch status {
	case StatusCompleted:
		p.Progress = 100
		p.CompletedDate = now.Format(dateLayout)
	case StatusInProgress:
		if p.Progress == 0 {
			p.Progress = 25
		}
	case StatusInReview:
		if p.Progress < 80 {
			p.Progress = 80
		}
	}
}

// EstimatedProgress derives a progress figure from status alone, used when a
// project has no hand-set progress worth trusting. On hold keeps whatever
// progress the project had.
func (p *Project) EstimatedProgress() int {
	switch p.Status {
	case StatusNotStarted, StatusCancelled:
		return 0
	case StatusInProgress:
		return 50
	case StatusInReview:
		return 80
	case StatusRevision:
		return 65
	case StatusCompleted:
		return 100
	default:
		return p.Progress
	}
}
