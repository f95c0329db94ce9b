package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/farvue/cms/internal/store"
)

// ImageSlot selects which of a service's two image URLs to update.
type ImageSlot string

const (
	SlotIcon  ImageSlot = "icon"
	SlotImage ImageSlot = "image"
)

// Manager is the CRUD facade over the service catalog. Every operation loads
// the collection fresh from the store, mutates it, and persists the result,
// so two managers sharing one store always observe each other's writes.
type Manager struct {
	store  store.Store
	logger *slog.Logger
}

// NewManager creates a service catalog manager.
func NewManager(st store.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{store: st, logger: logger}
}

// AddRequest describes a new service. ID is optional; a UUID is assigned
// when empty.
type AddRequest struct {
	ID             string
	Name           string
	Description    string
	Category       Category
	Pricing        Pricing
	Features       []string
	IsVisible      bool
	Demand         int
	CompletionRate int
	AverageRating  float64
	IconURL        string
	ImageURL       string
	SubServices    []string
}

// UpdateRequest carries partial updates; nil fields are left unchanged.
type UpdateRequest struct {
	Name           *string
	Description    *string
	Category       *Category
	Pricing        *Pricing
	Features       []string
	IsVisible      *bool
	Demand         *int
	CompletionRate *int
	AverageRating  *float64
	IconURL        *string
	ImageURL       *string
	SubServices    []string
}

// List returns the full catalog, hidden services included.
func (m *Manager) List(ctx context.Context) ([]Service, error) {
	return m.load(ctx)
}

// Visible returns only the services shown on the public site.
func (m *Manager) Visible(ctx context.Context) ([]Service, error) {
	services, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]Service, 0, len(services))
	for _, svc := range services {
		if svc.IsVisible {
			visible = append(visible, svc)
		}
	}
	return visible, nil
}

// ByCategory returns the services in a category.
func (m *Manager) ByCategory(ctx context.Context, cat Category) ([]Service, error) {
	services, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]Service, 0, len(services))
	for _, svc := range services {
		if svc.Category == cat {
			matched = append(matched, svc)
		}
	}
	return matched, nil
}

// Get fetches a service by ID.
func (m *Manager) Get(ctx context.Context, id string) (*Service, error) {
	services, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a new service to the catalog.
func (m *Manager) Add(ctx context.Context, req AddRequest) (*Service, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}
	if !req.Category.Valid() {
		return nil, ErrInvalidInput
	}

	services, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}
	for _, svc := range services {
		if svc.ID == id {
			return nil, fmt.Errorf("duplicate service id %s: %w", id, ErrInvalidInput)
		}
	}

	now := time.Now().UTC()
	svc := Service{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Pricing:        req.Pricing,
		Features:       req.Features,
		IsVisible:      req.IsVisible,
		Demand:         req.Demand,
		CompletionRate: req.CompletionRate,
		AverageRating:  req.AverageRating,
		CreatedAt:      now,
		UpdatedAt:      now,
		IconURL:        req.IconURL,
		ImageURL:       req.ImageURL,
		SubServices:    req.SubServices,
	}
	if err := svc.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}

	services = append(services, svc)
	if err := m.persist(ctx, services); err != nil {
		return nil, err
	}

	m.logger.Info("service added", "id", svc.ID, "name", svc.Name)
	return &svc, nil
}

// Update merges partial fields over an existing service and stamps UpdatedAt.
func (m *Manager) Update(ctx context.Context, id string, req UpdateRequest) (*Service, error) {
	return m.mutate(ctx, id, func(svc *Service) error {
		if req.Name != nil {
			svc.Name = *req.Name
		}
		if req.Description != nil {
			svc.Description = *req.Description
		}
		if req.Category != nil {
			svc.Category = *req.Category
		}
		if req.Pricing != nil {
			svc.Pricing = *req.Pricing
		}
		if req.Features != nil {
			svc.Features = req.Features
		}
		if req.IsVisible != nil {
			svc.IsVisible = *req.IsVisible
		}
		if req.Demand != nil {
			svc.Demand = *req.Demand
		}
		if req.CompletionRate != nil {
			svc.CompletionRate = *req.CompletionRate
		}
		if req.AverageRating != nil {
			svc.AverageRating = *req.AverageRating
		}
		if req.IconURL != nil {
			svc.IconURL = *req.IconURL
		}
		if req.ImageURL != nil {
			svc.ImageURL = *req.ImageURL
		}
		if req.SubServices != nil {
			svc.SubServices = req.SubServices
		}
		return svc.Validate()
	})
}

// Delete removes a service and returns the removed record.
func (m *Manager) Delete(ctx context.Context, id string) (*Service, error) {
	services, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID != id {
			continue
		}
		removed := services[i]
		services = append(services[:i], services[i+1:]...)
		if err := m.persist(ctx, services); err != nil {
			return nil, err
		}
		m.logger.Info("service deleted", "id", id)
		return &removed, nil
	}
	return nil, ErrNotFound
}

// ToggleVisibility flips whether a service appears on the public site.
func (m *Manager) ToggleVisibility(ctx context.Context, id string) (*Service, error) {
	return m.mutate(ctx, id, func(svc *Service) error {
		svc.IsVisible = !svc.IsVisible
		return nil
	})
}

// UpdatePricing replaces a service's pricing tiers.
func (m *Manager) UpdatePricing(ctx context.Context, id string, pricing Pricing) (*Service, error) {
	return m.mutate(ctx, id, func(svc *Service) error {
		svc.Pricing = pricing
		return svc.Validate()
	})
}

// SetImage updates one of a service's image URLs.
func (m *Manager) SetImage(ctx context.Context, id string, slot ImageSlot, url string) (*Service, error) {
	return m.mutate(ctx, id, func(svc *Service) error {
		switch slot {
		case SlotIcon:
			svc.IconURL = url
		case SlotImage:
			svc.ImageURL = url
		default:
			return fmt.Errorf("unknown image slot %q: %w", slot, ErrInvalidInput)
		}
		return nil
	})
}

// Stats aggregates the catalog for the dashboard.
func (m *Manager) Stats(ctx context.Context) (Stats, error) {
	services, err := m.load(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalServices: len(services)}
	if len(services) == 0 {
		return stats, nil
	}

	demandSum := 0
	top := 0
	for i, svc := range services {
		if svc.IsVisible {
			stats.VisibleServices++
		} else {
			stats.HiddenServices++
		}
		demandSum += svc.Demand
		stats.TotalRevenue += svc.Pricing.Pro
		if svc.Demand > services[top].Demand {
			top = i
		}
	}
	stats.AverageDemand = int(math.Round(float64(demandSum) / float64(len(services))))
	stats.TopPerforming = &services[top]
	return stats, nil
}

// Export serializes the full catalog to pretty-printed JSON.
func (m *Manager) Export(ctx context.Context) (string, error) {
	services, err := m.load(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(services, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding export: %w", err)
	}
	return string(data), nil
}

// Import replaces the catalog wholesale with a previously exported payload.
// Malformed payloads are rejected without touching the stored data.
func (m *Manager) Import(ctx context.Context, payload string) error {
	var services []Service
	if err := json.Unmarshal([]byte(payload), &services); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidImport)
	}
	if services == nil {
		return ErrInvalidImport
	}
	if err := validateAll(services); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidImport)
	}
	if err := m.persist(ctx, services); err != nil {
		return err
	}
	m.logger.Info("service catalog imported", "count", len(services))
	return nil
}

func (m *Manager) mutate(ctx context.Context, id string, apply func(*Service) error) (*Service, error) {
	services, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID != id {
			continue
		}
		if err := apply(&services[i]); err != nil {
			return nil, err
		}
		services[i].UpdatedAt = time.Now().UTC()
		if err := m.persist(ctx, services); err != nil {
			return nil, err
		}
		return &services[i], nil
	}
	return nil, ErrNotFound
}

func (m *Manager) load(ctx context.Context) ([]Service, error) {
	var services []Service
	err := m.store.Load(ctx, StorageKey, &services)
	if errors.Is(err, store.ErrNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading services: %w", err)
	}
	if err := validateAll(services); err != nil {
		return nil, err
	}
	return services, nil
}

func (m *Manager) persist(ctx context.Context, services []Service) error {
	if err := m.store.Save(ctx, StorageKey, services); err != nil {
		return fmt.Errorf("saving services: %w", err)
	}
	return nil
}

func validateAll(services []Service) error {
	seen := make(map[string]struct{}, len(services))
	for i := range services {
		if err := services[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[services[i].ID]; dup {
			return fmt.Errorf("duplicate service id %s: %w", services[i].ID, ErrInvalidRecord)
		}
		seen[services[i].ID] = struct{}{}
	}
	return nil
}
