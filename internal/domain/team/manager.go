package team

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/farvue/cms/internal/store"
)

// Manager is the CRUD facade over team members and the team section
// settings. Members and settings live under separate store keys but are
// exported and imported together as one bundle.
type Manager struct {
	store  store.Store
	logger *slog.Logger
}

// NewManager creates a team manager.
func NewManager(st store.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{store: st, logger: logger}
}

// AddRequest describes a new team member. ID is optional; a UUID is
// assigned when empty.
type AddRequest struct {
	ID        string
	Name      string
	Role      string
	Image     string
	Bio       string
	Skills    []string
	Social    SocialLinks
	Order     int
	IsVisible bool
}

// UpdateRequest carries partial updates; nil fields are left unchanged.
type UpdateRequest struct {
	Name      *string
	Role      *string
	Image     *string
	Bio       *string
	Skills    []string
	Social    *SocialLinks
	Order     *int
	IsVisible *bool
}

// SettingsUpdate carries partial team section settings updates.
type SettingsUpdate struct {
	SectionLabel *string
	Heading      *string
	Description  *string
	ButtonText   *string
	ButtonURL    *string
	ShowStats    *bool
	IsVisible    *bool
}

// List returns all members, hidden included, in display order. Members with
// equal order values keep their insertion order.
func (m *Manager) List(ctx context.Context) ([]Member, error) {
	members, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	sortByOrder(members)
	return members, nil
}

// Visible returns the members shown on the public site, in display order.
func (m *Manager) Visible(ctx context.Context) ([]Member, error) {
	members, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]Member, 0, len(members))
	for _, member := range members {
		if member.IsVisible {
			visible = append(visible, member)
		}
	}
	sortByOrder(visible)
	return visible, nil
}

// Search returns members whose name, role, bio, or skills contain term,
// case-insensitive, in display order. An empty term matches everyone.
func (m *Manager) Search(ctx context.Context, term string) ([]Member, error) {
	members, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	matched := make([]Member, 0, len(members))
	for _, member := range members {
		if memberMatches(member, needle) {
			matched = append(matched, member)
		}
	}
	sortByOrder(matched)
	return matched, nil
}

func memberMatches(member Member, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(member.Name), needle) ||
		strings.Contains(strings.ToLower(member.Role), needle) ||
		strings.Contains(strings.ToLower(member.Bio), needle) {
		return true
	}
	for _, skill := range member.Skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

// Get fetches a member by ID.
func (m *Manager) Get(ctx context.Context, id string) (*Member, error) {
	members, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == id {
			return &members[i], nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a new member to the roster.
func (m *Manager) Add(ctx context.Context, req AddRequest) (*Member, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	members, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}
	for _, member := range members {
		if member.ID == id {
			return nil, fmt.Errorf("duplicate member id %s: %w", id, ErrInvalidInput)
		}
	}

	now := time.Now().UTC()
	member := Member{
		ID:        id,
		Name:      req.Name,
		Role:      req.Role,
		Image:     req.Image,
		Bio:       req.Bio,
		Skills:    req.Skills,
		Social:    req.Social,
		Order:     req.Order,
		IsVisible: req.IsVisible,
		CreatedAt: now,
		UpdatedAt: now,
	}

	members = append(members, member)
	if err := m.persist(ctx, members); err != nil {
		return nil, err
	}

	m.logger.Info("team member added", "id", member.ID, "name", member.Name)
	return &member, nil
}

// Update merges partial fields over an existing member and stamps UpdatedAt.
func (m *Manager) Update(ctx context.Context, id string, req UpdateRequest) (*Member, error) {
	return m.mutate(ctx, id, func(member *Member) error {
		if req.Name != nil {
			member.Name = *req.Name
		}
		if req.Role != nil {
			member.Role = *req.Role
		}
		if req.Image != nil {
			member.Image = *req.Image
		}
		if req.Bio != nil {
			member.Bio = *req.Bio
		}
		if req.Skills != nil {
			member.Skills = req.Skills
		}
		if req.Social != nil {
			member.Social = *req.Social
		}
		if req.Order != nil {
			member.Order = *req.Order
		}
		if req.IsVisible != nil {
			member.IsVisible = *req.IsVisible
		}
		return member.Validate()
	})
}

// Delete removes a member and returns the removed record.
func (m *Manager) Delete(ctx context.Context, id string) (*Member, error) {
	members, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID != id {
			continue
		}
		removed := members[i]
		members = append(members[:i], members[i+1:]...)
		if err := m.persist(ctx, members); err != nil {
			return nil, err
		}
		m.logger.Info("team member deleted", "id", id)
		return &removed, nil
	}
	return nil, ErrNotFound
}

// ToggleVisibility flips whether a member appears on the public site.
func (m *Manager) ToggleVisibility(ctx context.Context, id string) (*Member, error) {
	return m.mutate(ctx, id, func(member *Member) error {
		member.IsVisible = !member.IsVisible
		return nil
	})
}

// Reorder sets a member's order value directly. Peers are not renumbered, so
// two members can share an order; display sort then falls back to insertion
// order. Use Renumber afterwards when contiguous ordering matters.
func (m *Manager) Reorder(ctx context.Context, id string, order int) (*Member, error) {
	return m.mutate(ctx, id, func(member *Member) error {
		member.Order = order
		return nil
	})
}

// Renumber re-indexes all members to contiguous 1..n order values following
// the current display sequence, clearing any collisions Reorder left behind.
func (m *Manager) Renumber(ctx context.Context) ([]Member, error) {
	members, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	sortByOrder(members)
	now := time.Now().UTC()
	for i := range members {
		if members[i].Order != i+1 {
			members[i].Order = i + 1
			members[i].UpdatedAt = now
		}
	}
	if err := m.persist(ctx, members); err != nil {
		return nil, err
	}
	return members, nil
}

// Settings returns the team section settings.
func (m *Manager) Settings(ctx context.Context) (Settings, error) {
	return m.loadSettings(ctx)
}

// UpdateSettings merges partial settings and persists the result.
func (m *Manager) UpdateSettings(ctx context.Context, req SettingsUpdate) (Settings, error) {
	settings, err := m.loadSettings(ctx)
	if err != nil {
		return Settings{}, err
	}
	if req.SectionLabel != nil {
		settings.SectionLabel = *req.SectionLabel
	}
	if req.Heading != nil {
		settings.Heading = *req.Heading
	}
	if req.Description != nil {
		settings.Description = *req.Description
	}
	if req.ButtonText != nil {
		settings.ButtonText = *req.ButtonText
	}
	if req.ButtonURL != nil {
		settings.ButtonURL = *req.ButtonURL
	}
	if req.ShowStats != nil {
		settings.ShowStats = *req.ShowStats
	}
	if req.IsVisible != nil {
		settings.IsVisible = *req.IsVisible
	}
	if err := m.store.Save(ctx, SettingsStorageKey, settings); err != nil {
		return Settings{}, fmt.Errorf("saving team settings: %w", err)
	}
	return settings, nil
}

// Stats counts the roster for the dashboard.
func (m *Manager) Stats(ctx context.Context) (Stats, error) {
	members, err := m.load(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{TotalMembers: len(members)}
	for _, member := range members {
		if member.IsVisible {
			stats.VisibleMembers++
		} else {
			stats.HiddenMembers++
		}
	}
	return stats, nil
}

// Export serializes members and settings to one pretty-printed JSON bundle.
func (m *Manager) Export(ctx context.Context) (string, error) {
	members, err := m.load(ctx)
	if err != nil {
		return "", err
	}
	settings, err := m.loadSettings(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(ExportBundle{Members: members, Settings: &settings}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding export: %w", err)
	}
	return string(data), nil
}

// Import replaces the roster (and, when present, the settings) with a
// previously exported bundle. Malformed payloads are rejected without
// touching stored data.
func (m *Manager) Import(ctx context.Context, payload string) error {
	var bundle ExportBundle
	if err := json.Unmarshal([]byte(payload), &bundle); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidImport)
	}
	if bundle.Members == nil {
		return ErrInvalidImport
	}
	if err := validateAll(bundle.Members); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidImport)
	}
	if err := m.persist(ctx, bundle.Members); err != nil {
		return err
	}
	if bundle.Settings != nil {
		if err := m.store.Save(ctx, SettingsStorageKey, *bundle.Settings); err != nil {
			return fmt.Errorf("saving team settings: %w", err)
		}
	}
	m.logger.Info("team bundle imported", "members", len(bundle.Members))
	return nil
}

func (m *Manager) mutate(ctx context.Context, id string, apply func(*Member) error) (*Member, error) {
	members, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID != id {
			continue
		}
		if err := apply(&members[i]); err != nil {
			return nil, err
		}
		members[i].UpdatedAt = time.Now().UTC()
		if err := m.persist(ctx, members); err != nil {
			return nil, err
		}
		return &members[i], nil
	}
	return nil, ErrNotFound
}

func (m *Manager) load(ctx context.Context) ([]Member, error) {
	var members []Member
	err := m.store.Load(ctx, StorageKey, &members)
	if errors.Is(err, store.ErrNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading team members: %w", err)
	}
	if err := validateAll(members); err != nil {
		return nil, err
	}
	return members, nil
}

func (m *Manager) loadSettings(ctx context.Context) (Settings, error) {
	var settings Settings
	err := m.store.Load(ctx, SettingsStorageKey, &settings)
	if errors.Is(err, store.ErrNotFound) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("loading team settings: %w", err)
	}
	return settings, nil
}

func (m *Manager) persist(ctx context.Context, members []Member) error {
	if err := m.store.Save(ctx, StorageKey, members); err != nil {
		return fmt.Errorf("saving team members: %w", err)
	}
	return nil
}

func sortByOrder(members []Member) {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Order < members[j].Order
	})
}

func validateAll(members []Member) error {
	seen := make(map[string]struct{}, len(members))
	for i := range members {
		if err := members[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[members[i].ID]; dup {
			return fmt.Errorf("duplicate member id %s: %w", members[i].ID, ErrInvalidRecord)
		}
		seen[members[i].ID] = struct{}{}
	}
	return nil
}
