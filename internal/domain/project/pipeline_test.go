package project

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farvue/cms/internal/domain/client"
)

func pipelineFixture() []Project {
	return []Project{
		{
			ID:          "a",
			Title:       "Channel Trailer Edit",
			Description: "Hook-focused channel trailer",
			Client:      client.Client{ID: "c1", Name: "Acme Media", Company: "Acme"},
			AssignedTeam: []StaffUser{
				{ID: "1", Name: "Rehmanmesud"},
			},
			ServiceType: ServiceVideoEditing,
			Status:      StatusInProgress,
			Priority:    PriorityHigh,
			Budget:      2000,
			DueDate:     "2025-01-05",
			Progress:    40,
			Tags:        []string{"YouTube"},
		},
		{
			ID:          "b",
			Title:       "Logo Refresh",
			Description: "Updated brand mark",
			Client:      client.Client{ID: "c2", Name: "Beta Corp", Company: "Beta"},
			AssignedTeam: []StaffUser{
				{ID: "2", Name: "Fazal Mesud"},
			},
			ServiceType: ServiceDesign,
			Status:      StatusNotStarted,
			Priority:    PriorityLow,
			Budget:      1500,
			DueDate:     "2025-01-01",
			Progress:    0,
			Tags:        []string{"Branding"},
		},
		{
			ID:          "c",
			Title:       "Shorts Batch",
			Description: "Ten vertical cuts",
			Client:      client.Client{ID: "c1", Name: "Acme Media", Company: "Acme"},
			AssignedTeam: []StaffUser{
				{ID: "3", Name: "Sarah Johnson"},
			},
			ServiceType: ServiceShortForm,
			Status:      StatusInReview,
			Priority:    PriorityHigh,
			Budget:      1500,
			DueDate:     "2025-01-10",
			Progress:    85,
			Tags:        []string{"YouTube", "Shorts"},
		},
	}
}

func ids(projects []Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestApplyNoTermNoFilterKeepsEveryProject(t *testing.T) {
	in := pipelineFixture()
	out := Apply(in, "", Filter{}, SortByDueDate, SortAsc)

	require.Len(t, out, len(in))
	require.ElementsMatch(t, ids(in), ids(out))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := pipelineFixture()
	Apply(in, "", Filter{}, SortByDueDate, SortDesc)

	require.Equal(t, []string{"a", "b", "c"}, ids(in))
}

func TestApplySortByDueDate(t *testing.T) {
	in := pipelineFixture()

	asc := Apply(in, "", Filter{}, SortByDueDate, SortAsc)
	require.Equal(t, []string{"b", "a", "c"}, ids(asc))

	desc := Apply(in, "", Filter{}, SortByDueDate, SortDesc)
	require.Equal(t, []string{"c", "a", "b"}, ids(desc))
}

func TestApplySortByBudgetDescReversesAscModuloTies(t *testing.T) {
	in := pipelineFixture()

	asc := Apply(in, "", Filter{}, SortByBudget, SortAsc)
	require.Equal(t, []string{"b", "c", "a"}, ids(asc))

	// b and c share a budget; both directions keep their input order.
	desc := Apply(in, "", Filter{}, SortByBudget, SortDesc)
	require.Equal(t, []string{"a", "b", "c"}, ids(desc))
}

func TestApplySortByPriorityAndStatus(t *testing.T) {
	in := pipelineFixture()

	byPriority := Apply(in, "", Filter{}, SortByPriority, SortAsc)
	require.Equal(t, []string{"b", "a", "c"}, ids(byPriority))

	byStatus := Apply(in, "", Filter{}, SortByStatus, SortAsc)
	require.Equal(t, []string{"b", "a", "c"}, ids(byStatus))
}

func TestApplySearchMatchesAnyField(t *testing.T) {
	in := pipelineFixture()

	// Tag on a and c.
	require.ElementsMatch(t, []string{"a", "c"}, ids(Apply(in, "youtube", Filter{}, SortByDueDate, SortAsc)))

	// Client name.
	require.ElementsMatch(t, []string{"a", "c"}, ids(Apply(in, "acme", Filter{}, SortByDueDate, SortAsc)))

	// Team member name.
	require.Equal(t, []string{"c"}, ids(Apply(in, "sarah", Filter{}, SortByDueDate, SortAsc)))

	// Title.
	require.Equal(t, []string{"b"}, ids(Apply(in, "LOGO", Filter{}, SortByDueDate, SortAsc)))

	require.Empty(t, Apply(in, "no such thing", Filter{}, SortByDueDate, SortAsc))
}

func TestApplyFilterDimensionsAreANDed(t *testing.T) {
	in := pipelineFixture()

	f := Filter{Priorities: []Priority{PriorityHigh}}
	require.ElementsMatch(t, []string{"a", "c"}, ids(Apply(in, "", f, SortByDueDate, SortAsc)))

	f.Statuses = []Status{StatusInReview}
	require.Equal(t, []string{"c"}, ids(Apply(in, "", f, SortByDueDate, SortAsc)))

	f.ServiceTypes = []ServiceType{ServiceVideoEditing}
	require.Empty(t, Apply(in, "", f, SortByDueDate, SortAsc))
}

func TestApplyMultiValueFilterMatchesByMembership(t *testing.T) {
	in := pipelineFixture()

	f := Filter{Statuses: []Status{StatusNotStarted, StatusInReview}}
	require.ElementsMatch(t, []string{"b", "c"}, ids(Apply(in, "", f, SortByDueDate, SortAsc)))

	f = Filter{AssignedTeam: []string{"1", "3"}}
	require.ElementsMatch(t, []string{"a", "c"}, ids(Apply(in, "", f, SortByDueDate, SortAsc)))

	f = Filter{Clients: []string{"c2"}}
	require.Equal(t, []string{"b"}, ids(Apply(in, "", f, SortByDueDate, SortAsc)))
}

func TestApplyDateRangeBoundsAreInclusive(t *testing.T) {
	in := pipelineFixture()

	f := Filter{DueBetween: &DateRange{Start: "2025-01-01", End: "2025-01-05"}}
	require.ElementsMatch(t, []string{"a", "b"}, ids(Apply(in, "", f, SortByDueDate, SortAsc)))

	f = Filter{DueBetween: &DateRange{Start: "2025-01-02", End: "2025-01-09"}}
	require.Equal(t, []string{"a"}, ids(Apply(in, "", f, SortByDueDate, SortAsc)))
}

func TestApplySearchAndFilterCompose(t *testing.T) {
	in := pipelineFixture()

	f := Filter{Priorities: []Priority{PriorityHigh}}
	out := Apply(in, "shorts", f, SortByDueDate, SortAsc)
	require.Equal(t, []string{"c"}, ids(out))
}
