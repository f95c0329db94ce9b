package project

import (
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange bounds a due-date filter. Both bounds are inclusive.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Filter narrows a project listing. Every present dimension must match
// (AND across dimensions); multi-value dimensions match by membership.
type Filter struct {
	Statuses     []Status      `json:"status,omitempty"`
	ServiceTypes []ServiceType `json:"serviceType,omitempty"`
	Priorities   []Priority    `json:"priority,omitempty"`
	AssignedTeam []string      `json:"assignedTeam,omitempty"`
	Clients      []string      `json:"client,omitempty"`
	DueBetween   *DateRange    `json:"dateRange,omitempty"`
}

// SortKey selects the field a project listing is ordered by.
type SortKey string

const (
	SortByDueDate  SortKey = "dueDate"
	SortByPriority SortKey = "priority"
	SortByStatus   SortKey = "status"
	SortByProgress SortKey = "progress"
	SortByBudget   SortKey = "budget"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Apply runs the full listing pipeline: free-text search (OR across a fixed
// field set), filters (AND across dimensions), then an order-preserving
// stable sort. The input slice is never mutated; the result is a fresh
// slice. Equal sort keys keep their input order in both directions.
func Apply(projects []Project, term string, f Filter, key SortKey, dir SortDirection) []Project {
	out := make([]Project, 0, len(projects))

	needle := strings.ToLower(strings.TrimSpace(term))
	for _, p := range projects {
		if !matchesSearch(p, needle) {
			continue
		}
		if !matchesFilter(p, f) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		less, greater := compare(out[i], out[j], key)
		if dir == SortDesc {
			return greater
		}
		return less
	})

	return out
}

// matchesSearch reports whether any searchable field contains needle. An
// empty needle matches everything.
func matchesSearch(p Project, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Client.Name), needle) ||
		strings.Contains(strings.ToLower(p.Client.Company), needle) {
		return true
	}
	for _, member := range p.AssignedTeam {
		if strings.Contains(strings.ToLower(member.Name), needle) {
			return true
		}
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func matchesFilter(p Project, f Filter) bool {
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, p.Status) {
		return false
	}
	if len(f.ServiceTypes) > 0 && !containsServiceType(f.ServiceTypes, p.ServiceType) {
		return false
	}
	if len(f.Priorities) > 0 && !containsPriority(f.Priorities, p.Priority) {
		return false
	}
	if len(f.AssignedTeam) > 0 && !assignedToAny(p, f.AssignedTeam) {
		return false
	}
	if len(f.Clients) > 0 && !containsString(f.Clients, p.Client.ID) {
		return false
	}
	if f.DueBetween != nil {
		due := parseDate(p.DueDate)
		if start := parseDate(f.DueBetween.Start); !start.IsZero() && due.Before(start) {
			return false
		}
		if end := parseDate(f.DueBetween.End); !end.IsZero() && due.After(end) {
			return false
		}
	}
	return true
}

// compare returns whether a sorts before b and whether a sorts after b under
// key. Both false means the keys are equal and the stable sort keeps input
// order.
func compare(a, b Project, key SortKey) (less, greater bool) {
	switch key {
	case SortByDueDate:
		ad, bd := parseDate(a.DueDate), parseDate(b.DueDate)
		return ad.Before(bd), ad.After(bd)
	case SortByPriority:
		ar, br := a.Priority.Rank(), b.Priority.Rank()
		return ar < br, ar > br
	case SortByStatus:
		ar, br := a.Status.Rank(), b.Status.Rank()
		return ar < br, ar > br
	case SortByProgress:
		return a.Progress < b.Progress, a.Progress > b.Progress
	case SortByBudget:
		return a.Budget < b.Budget, a.Budget > b.Budget
	default:
		return a.Title < b.Title, a.Title > b.Title
	}
}

// parseDate reads a date-only string, accepting a full timestamp as a
// fallback. Unparsable dates sort as the zero time.
func parseDate(s string) time.Time {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func containsStatus(haystack []Status, s Status) bool {
	for _, v := range haystack {
		if v == s {
			return true
		}
	}
	return false
}

func containsServiceType(haystack []ServiceType, t ServiceType) bool {
	for _, v := range haystack {
		if v == t {
			return true
		}
	}
	return false
}

func containsPriority(haystack []Priority, p Priority) bool {
	for _, v := range haystack {
		if v == p {
			return true
		}
	}
	return false
}

func containsString(haystack []string, s string) bool {
	for _, v := range haystack {
		if v == s {
			return true
		}
	}
	return false
}

func assignedToAny(p Project, userIDs []string) bool {
	for _, member := range p.AssignedTeam {
		if containsString(userIDs, member.ID) {
			return true
		}
	}
	return false
}
