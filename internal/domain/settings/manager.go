package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/farvue/cms/internal/store"
)

// ErrInvalidImport indicates a settings payload that could not be applied.
var ErrInvalidImport = errors.New("invalid settings payload")

// Manager reads and writes the single site settings document.
type Manager struct {
	store  store.Store
	logger *slog.Logger
}

// NewManager creates a settings manager.
func NewManager(st store.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{store: st, logger: logger}
}

// UpdateRequest carries partial updates; nil sections are left unchanged.
type UpdateRequest struct {
	Branding        *Branding
	SEO             *SEO
	Integrations    *Integrations
	Notifications   *Notifications
	MaintenanceMode *bool
}

// Get returns the current settings, falling back to the defaults when none
// are stored.
func (m *Manager) Get(ctx context.Context) (Settings, error) {
	var s Settings
	err := m.store.Load(ctx, StorageKey, &s)
	if errors.Is(err, store.ErrNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return s, nil
}

// Update merges partial sections over the current settings and persists the
// result.
func (m *Manager) Update(ctx context.Context, req UpdateRequest) (Settings, error) {
	s, err := m.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	if req.Branding != nil {
		s.Branding = *req.Branding
	}
	if req.SEO != nil {
		s.SEO = *req.SEO
	}
	if req.Integrations != nil {
		s.Integrations = *req.Integrations
	}
	if req.Notifications != nil {
		s.Notifications = *req.Notifications
	}
	if req.MaintenanceMode != nil {
		s.MaintenanceMode = *req.MaintenanceMode
	}
	if err := m.store.Save(ctx, StorageKey, s); err != nil {
		return Settings{}, fmt.Errorf("saving settings: %w", err)
	}
	m.logger.Info("settings updated")
	return s, nil
}

// Reset restores the default settings, discarding any stored document.
func (m *Manager) Reset(ctx context.Context) (Settings, error) {
	if err := m.store.Delete(ctx, StorageKey); err != nil {
		return Settings{}, fmt.Errorf("resetting settings: %w", err)
	}
	m.logger.Info("settings reset to defaults")
	return Defaults(), nil
}

// Export serializes the settings to pretty-printed JSON.
func (m *Manager) Export(ctx context.Context) (string, error) {
	s, err := m.Get(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding export: %w", err)
	}
	return string(data), nil
}

// Import replaces the settings with a previously exported document.
// Malformed payloads are rejected without touching stored data.
func (m *Manager) Import(ctx context.Context, payload string) error {
	var s Settings
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidImport)
	}
	if err := m.store.Save(ctx, StorageKey, s); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	m.logger.Info("settings imported")
	return nil
}
