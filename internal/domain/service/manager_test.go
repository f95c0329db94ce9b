package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farvue/cms/internal/domain/service"
	"github.com/farvue/cms/internal/store"
)

func newManager(t *testing.T) *service.Manager {
	t.Helper()
	return service.NewManager(store.NewMemory(), nil)
}

func TestListReturnsDefaultsOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	services, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 4)
	require.Equal(t, "Video Editing", services[0].Name)
}

func TestAddUpdateDeleteNetZero(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	before, err := m.List(ctx)
	require.NoError(t, err)

	added, err := m.Add(ctx, service.AddRequest{
		Name:      "Podcast Production",
		Category:  service.CategoryEditing,
		Pricing:   service.Pricing{Starter: 400, Pro: 900},
		IsVisible: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)
	require.False(t, added.UpdatedAt.Before(added.CreatedAt))

	name := "Podcast Post-Production"
	updated, err := m.Update(ctx, added.ID, service.UpdateRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, name, updated.Name)
	require.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	removed, err := m.Delete(ctx, added.ID)
	require.NoError(t, err)
	require.Equal(t, name, removed.Name)

	after, err := m.List(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	name := "x"
	_, err := m.Update(ctx, "no-such-id", service.UpdateRequest{Name: &name})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteMissingLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	before, err := m.List(ctx)
	require.NoError(t, err)

	_, err = m.Delete(ctx, "no-such-id")
	require.ErrorIs(t, err, service.ErrNotFound)

	after, err := m.List(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestToggleVisibility(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	svc, err := m.ToggleVisibility(ctx, "1")
	require.NoError(t, err)
	require.False(t, svc.IsVisible)

	visible, err := m.Visible(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 3)

	svc, err = m.ToggleVisibility(ctx, "1")
	require.NoError(t, err)
	require.True(t, svc.IsVisible)
}

func TestByCategory(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	matched, err := m.ByCategory(ctx, service.CategoryDesign)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "Graphic Design", matched[0].Name)
}

func TestUpdatePricingRejectsNegative(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	_, err := m.UpdatePricing(ctx, "1", service.Pricing{Starter: -5, Pro: 100})
	require.ErrorIs(t, err, service.ErrInvalidRecord)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	_, err := m.ToggleVisibility(ctx, "4")
	require.NoError(t, err)

	stats, err := m.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, stats.TotalServices)
	require.Equal(t, 3, stats.VisibleServices)
	require.Equal(t, 1, stats.HiddenServices)
	require.Equal(t, 82, stats.AverageDemand) // (85+78+92+73)/4 = 82
	require.Equal(t, 7500.0, stats.TotalRevenue)
	require.Equal(t, "AI Automation", stats.TopPerforming.Name)
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	payload, err := m.Export(ctx)
	require.NoError(t, err)

	other := newManager(t)
	_, err = other.Delete(ctx, "1")
	require.NoError(t, err)

	require.NoError(t, other.Import(ctx, payload))

	want, err := m.List(ctx)
	require.NoError(t, err)
	got, err := other.List(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestImportRejectsNonArray(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	before, err := m.List(ctx)
	require.NoError(t, err)

	for _, payload := range []string{
		`{"services": []}`, // valid object, wrong shape
		`"just a string"`,
		`not json at all`,
	} {
		require.ErrorIs(t, m.Import(ctx, payload), service.ErrInvalidImport, payload)
	}

	after, err := m.List(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestImportRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	err := m.Import(ctx, `[{"id": "", "name": "Nameless", "category": "editing"}]`)
	require.ErrorIs(t, err, service.ErrInvalidImport)
}
