package client_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farvue/cms/internal/domain/client"
	"github.com/farvue/cms/internal/store"
)

func newManager(t *testing.T) *client.Manager {
	t.Helper()
	return client.NewManager(store.NewMemory(), nil)
}

func TestSearchMatchesNameEmailCompany(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	matched, err := m.Search(ctx, "TECHREVIEWER", "")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "1", matched[0].ID)

	matched, err = m.Search(ctx, "hello@fitnesspro", "")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "2", matched[0].ID)

	matched, err = m.Search(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, matched, 2)
}

func TestSearchFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	status := client.StatusInactive
	_, err := m.Update(ctx, "2", client.UpdateRequest{Status: &status})
	require.NoError(t, err)

	matched, err := m.Search(ctx, "", client.StatusActive)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "1", matched[0].ID)
}

func TestAddUpdateDeleteNetZero(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	before, err := m.List(ctx)
	require.NoError(t, err)

	added, err := m.Add(ctx, client.AddRequest{
		Name:    "Business Growth Channel",
		Email:   "team@businessgrowth.com",
		Company: "Business Growth Media",
		Status:  client.StatusActive,
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	company := "Business Growth Media LLC"
	updated, err := m.Update(ctx, added.ID, client.UpdateRequest{Company: &company})
	require.NoError(t, err)
	require.Equal(t, company, updated.Company)

	_, err = m.Delete(ctx, added.ID)
	require.NoError(t, err)

	after, err := m.List(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestAddDefaultsToPendingStatus(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	added, err := m.Add(ctx, client.AddRequest{Name: "New Lead"})
	require.NoError(t, err)
	require.Equal(t, client.StatusPending, added.Status)
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	_, err := m.Delete(ctx, "no-such-id")
	require.ErrorIs(t, err, client.ErrNotFound)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	stats, err := m.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalClients)
	require.Equal(t, 2, stats.ActiveClients)
	require.Equal(t, 20, stats.TotalProjects)
	require.Equal(t, 43600.0, stats.TotalRevenue)
}

func TestExportCSVEscapesEmbeddedQuotesAndCommas(t *testing.T) {
	clients := []client.Client{{
		ID:      "9",
		Name:    `Agency "Prime", Inc.`,
		Email:   "ops@prime.example",
		Company: "Prime, Inc.",
		Status:  client.StatusActive,
	}}

	out, err := client.ExportCSV(clients)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "Total Revenue")
	// RFC 4180: embedded quotes doubled, comma-bearing fields quoted.
	require.Contains(t, lines[1], `"Agency ""Prime"", Inc."`)
	require.Contains(t, lines[1], `"Prime, Inc."`)
}
