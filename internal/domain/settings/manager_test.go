package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farvue/cms/internal/store"
)

func TestGetReturnsDefaultsWhenStoreIsEmpty(t *testing.T) {
	m := NewManager(store.NewMemory(), nil)

	s, err := m.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Farvue Media", s.Branding.SiteName)
	require.True(t, s.Notifications.EmailOnInquiry)
	require.False(t, s.MaintenanceMode)
}

func TestUpdateMergesSectionsAndPersists(t *testing.T) {
	m := NewManager(store.NewMemory(), nil)
	ctx := context.Background()

	maintenance := true
	s, err := m.Update(ctx, UpdateRequest{
		Branding:        &Branding{SiteName: "Farvue Studio", PrimaryColor: "#000000"},
		MaintenanceMode: &maintenance,
	})
	require.NoError(t, err)
	require.Equal(t, "Farvue Studio", s.Branding.SiteName)
	require.True(t, s.MaintenanceMode)

	// Untouched sections keep their default values.
	require.Equal(t, "hello@farvue.media", s.Integrations.ContactEmail)

	got, err := m.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "Farvue Studio", got.Branding.SiteName)
}

func TestResetRestoresDefaults(t *testing.T) {
	m := NewManager(store.NewMemory(), nil)
	ctx := context.Background()

	maintenance := true
	_, err := m.Update(ctx, UpdateRequest{MaintenanceMode: &maintenance})
	require.NoError(t, err)

	s, err := m.Reset(ctx)
	require.NoError(t, err)
	require.False(t, s.MaintenanceMode)

	got, err := m.Get(ctx)
	require.NoError(t, err)
	require.False(t, got.MaintenanceMode)
}

func TestExportImportRoundTrip(t *testing.T) {
	m := NewManager(store.NewMemory(), nil)
	ctx := context.Background()

	payload, err := m.Export(ctx)
	require.NoError(t, err)

	fresh := NewManager(store.NewMemory(), nil)
	require.NoError(t, fresh.Import(ctx, payload))

	got, err := fresh.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "Farvue Media", got.Branding.SiteName)
}

func TestImportRejectsMalformedPayload(t *testing.T) {
	m := NewManager(store.NewMemory(), nil)

	err := m.Import(context.Background(), "not json")
	require.ErrorIs(t, err, ErrInvalidImport)
}
