package project

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/farvue/cms/internal/domain/client"
	"github.com/farvue/cms/internal/store"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(store.NewMemory(), nil)
	m.now = func() time.Time {
		return time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	}
	return m
}

func TestListReturnsDefaultsWhenStoreIsEmpty(t *testing.T) {
	m := newTestManager(t)

	projects, err := m.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 5)
	require.Equal(t, "High-Retention YouTube Video Editing - Tech Reviews Q1", projects[0].Title)
}

func TestAddAssignsIDAndDefaults(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	p, err := m.Add(ctx, AddRequest{
		Title:  "Podcast Edit",
		Client: client.Client{ID: "c9", Name: "Podfolk"},
		Budget: 900,
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, StatusNotStarted, p.Status)
	require.Equal(t, PriorityMedium, p.Priority)
	require.False(t, p.CreatedAt.IsZero())

	got, err := m.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Podcast Edit", got.Title)
}

func TestAddRejectsBlankTitleAndBadStatus(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	_, err := m.Add(ctx, AddRequest{Title: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.Add(ctx, AddRequest{Title: "x", Status: Status("bogus")})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAddRejectsDuplicateID(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	_, err := m.Add(ctx, AddRequest{ID: "1", Title: "Clash"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	title := "Renamed"
	progress := 60
	p, err := m.Update(ctx, "1", UpdateRequest{Title: &title, Progress: &progress})
	require.NoError(t, err)
	require.Equal(t, "Renamed", p.Title)
	require.Equal(t, 60, p.Progress)
	require.Equal(t, StatusInProgress, p.Status)

	bad := 140
	_, err = m.Update(ctx, "1", UpdateRequest{Progress: &bad})
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	m := newTestManager(t)

	title := "x"
	_, err := m.Update(context.Background(), "nope", UpdateRequest{Title: &title})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddThenDeleteIsNetZero(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	before, err := m.List(ctx)
	require.NoError(t, err)

	p, err := m.Add(ctx, AddRequest{Title: "Ephemeral"})
	require.NoError(t, err)

	removed, err := m.Delete(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Ephemeral", removed.Title)

	after, err := m.List(ctx)
	require.NoError(t, err)
	require.Equal(t, ids(before), ids(after))
}

func TestSetStatusPersistsProgressSideEffects(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	p, err := m.SetStatus(ctx, "1", StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, 100, p.Progress)
	require.Equal(t, "2025-01-20", p.CompletedDate)

	got, err := m.Get(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, got.Status)
	require.Equal(t, 100, got.Progress)

	_, err = m.SetStatus(ctx, "1", Status("bogus"))
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestFilteredRunsThePipelineOverStoredProjects(t *testing.T) {
	m := newTestManager(t)

	out, err := m.Filtered(context.Background(), "", Filter{Statuses: []Status{StatusInProgress}}, SortByDueDate, SortAsc)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "4"}, ids(out))
}

func TestAddRevisionNumbersPastHighestVersion(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	// Project 1 ships with revisions v1 and v2.
	p, err := m.AddRevision(ctx, "1", RevisionRequest{
		Description: "Audio level fixes",
		CreatedBy:   "3",
	})
	require.NoError(t, err)
	require.Len(t, p.Revisions, 3)

	last := p.Revisions[len(p.Revisions)-1]
	require.Equal(t, 3, last.Version)
	require.Equal(t, RevisionPending, last.Status)
	require.NotEmpty(t, last.ID)

	_, err = m.AddRevision(ctx, "1", RevisionRequest{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddDeliverableFillsIDAndTimestamp(t *testing.T) {
	m := newTestManager(t)

	p, err := m.AddDeliverable(context.Background(), "2", Deliverable{
		Name: "Reel_01.mp4",
		Type: DeliverableVideo,
	})
	require.NoError(t, err)
	require.Len(t, p.Deliverables, 1)
	require.NotEmpty(t, p.Deliverables[0].ID)
	require.False(t, p.Deliverables[0].UploadedAt.IsZero())
}

func TestOverdueSkipsCompletedAndCancelled(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	// With now fixed at 2025-01-20: project 1 is due 01-15 and in progress,
	// project 3 is due 01-10 but completed.
	overdue, err := m.Overdue(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, ids(overdue))

	_, err = m.SetStatus(ctx, "1", StatusCancelled)
	require.NoError(t, err)

	overdue, err = m.Overdue(ctx)
	require.NoError(t, err)
	require.Empty(t, overdue)
}

func TestStatsAggregatesTheDashboardFigures(t *testing.T) {
	m := newTestManager(t)

	stats, err := m.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 5, stats.TotalProjects)
	require.Equal(t, 4, stats.ActiveProjects)
	require.Equal(t, 1, stats.CompletedProjects)
	require.Equal(t, 1, stats.OverdueProjects)
	require.InDelta(t, 1500, stats.TotalRevenue, 0.001)
}

func TestExportImportRoundTrip(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	payload, err := m.Export(ctx)
	require.NoError(t, err)

	fresh := newTestManager(t)
	require.NoError(t, fresh.Import(ctx, payload))

	projects, err := fresh.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 5)
}

func TestImportRejectsMalformedPayloadsAtomically(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	_, err := m.Add(ctx, AddRequest{ID: "keep", Title: "Keep Me"})
	require.NoError(t, err)

	for _, payload := range []string{
		"not json",
		`{"projects": []}`,
		`[{"id": "x"}]`,
	} {
		err := m.Import(ctx, payload)
		require.ErrorIs(t, err, ErrInvalidInput, "payload %q", payload)
	}

	got, err := m.Get(ctx, "keep")
	require.NoError(t, err)
	require.Equal(t, "Keep Me", got.Title)
}

func TestExportCSVEscapesCommasAndQuotes(t *testing.T) {
	out, err := ExportCSV([]Project{
		{
			ID:     "1",
			Title:  `Launch "Alpha", Phase 1`,
			Client: client.Client{Name: "Acme, Inc."},
			Status: StatusInProgress,
			AssignedTeam: []StaffUser{
				{Name: "Rehmanmesud"},
				{Name: "Sarah Johnson"},
			},
			Priority: PriorityHigh,
			Budget:   2500.5,
			Progress: 40,
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "ID,Title,Client,Status,Priority,Budget,Progress,Start Date,Due Date,Assigned Team,Service Type", lines[0])
	require.Contains(t, lines[1], `"Launch ""Alpha"", Phase 1"`)
	require.Contains(t, lines[1], `"Acme, Inc."`)
	require.Contains(t, lines[1], "Rehmanmesud; Sarah Johnson")
}

func TestLoadRejectsCorruptStoredRecords(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, StorageKey, []Project{
		{ID: "1", Title: "ok", Status: StatusInProgress, Priority: PriorityLow},
		{ID: "1", Title: "dup", Status: StatusInProgress, Priority: PriorityLow},
	}))

	m := NewManager(st, nil)
	_, err := m.List(ctx)
	require.True(t, errors.Is(err, ErrInvalidRecord))
}
