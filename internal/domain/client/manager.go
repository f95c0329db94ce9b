package client

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/farvue/cms/internal/store"
)

// Manager is the CRUD facade over the client list.
type Manager struct {
	store  store.Store
	logger *slog.Logger
}

// NewManager creates a client manager.
func NewManager(st store.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{store: st, logger: logger}
}

// AddRequest describes a new client. ID is optional; a UUID is assigned
// when empty.
type AddRequest struct {
	ID            string
	Name          string
	Email         string
	Company       string
	Avatar        string
	Phone         string
	SocialHandles SocialHandles
	Preferences   Preferences
	Status        Status
	JoinedDate    string
}

// UpdateRequest carries partial updates; nil fields are left unchanged.
type UpdateRequest struct {
	Name          *string
	Email         *string
	Company       *string
	Avatar        *string
	Phone         *string
	SocialHandles *SocialHandles
	Preferences   *Preferences
	TotalProjects *int
	TotalRevenue  *float64
	Status        *Status
	JoinedDate    *string
}

// List returns all clients.
func (m *Manager) List(ctx context.Context) ([]Client, error) {
	return m.load(ctx)
}

// Search returns clients whose name, email, or company contains term,
// case-insensitive, optionally narrowed to one status. An empty term and
// empty status return everyone.
func (m *Manager) Search(ctx context.Context, term string, status Status) ([]Client, error) {
	clients, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	matched := make([]Client, 0, len(clients))
	for _, c := range clients {
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Email), needle) &&
			!strings.Contains(strings.ToLower(c.Company), needle) {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		matched = append(matched, c)
	}
	return matched, nil
}

// Get fetches a client by ID.
func (m *Manager) Get(ctx context.Context, id string) (*Client, error) {
	clients, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a new client.
func (m *Manager) Add(ctx context.Context, req AddRequest) (*Client, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}
	status := req.Status
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return nil, ErrInvalidInput
	}

	clients, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}
	for _, c := range clients {
		if c.ID == id {
			return nil, fmt.Errorf("duplicate client id %s: %w", id, ErrInvalidInput)
		}
	}

	c := Client{
		ID:            id,
		Name:          req.Name,
		Email:         req.Email,
		Company:       req.Company,
		Avatar:        req.Avatar,
		Phone:         req.Phone,
		SocialHandles: req.SocialHandles,
		Preferences:   req.Preferences,
		Status:        status,
		JoinedDate:    req.JoinedDate,
	}

	clients = append(clients, c)
	if err := m.persist(ctx, clients); err != nil {
		return nil, err
	}

	m.logger.Info("client added", "id", c.ID, "name", c.Name)
	return &c, nil
}

// Update merges partial fields over an existing client.
func (m *Manager) Update(ctx context.Context, id string, req UpdateRequest) (*Client, error) {
	clients, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID != id {
			continue
		}
		c := &clients[i]
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Company != nil {
			c.Company = *req.Company
		}
		if req.Avatar != nil {
			c.Avatar = *req.Avatar
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.SocialHandles != nil {
			c.SocialHandles = *req.SocialHandles
		}
		if req.Preferences != nil {
			c.Preferences = *req.Preferences
		}
		if req.TotalProjects != nil {
			c.TotalProjects = *req.TotalProjects
		}
		if req.TotalRevenue != nil {
			c.TotalRevenue = *req.TotalRevenue
		}
		if req.Status != nil {
			c.Status = *req.Status
		}
		if req.JoinedDate != nil {
			c.JoinedDate = *req.JoinedDate
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if err := m.persist(ctx, clients); err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, ErrNotFound
}

// Delete removes a client and returns the removed record.
func (m *Manager) Delete(ctx context.Context, id string) (*Client, error) {
	clients, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID != id {
			continue
		}
		removed := clients[i]
		clients = append(clients[:i], clients[i+1:]...)
		if err := m.persist(ctx, clients); err != nil {
			return nil, err
		}
		m.logger.Info("client deleted", "id", id)
		return &removed, nil
	}
	return nil, ErrNotFound
}

// Stats aggregates the client list for the dashboard.
func (m *Manager) Stats(ctx context.Context) (Stats, error) {
	clients, err := m.load(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{TotalClients: len(clients)}
	for _, c := range clients {
		if c.Status == StatusActive {
			stats.ActiveClients++
		}
		stats.TotalProjects += c.TotalProjects
		stats.TotalRevenue += c.TotalRevenue
	}
	return stats, nil
}

// ExportCSV renders clients as RFC 4180 CSV with a header row. Fields
// containing commas or quotes are escaped properly.
func ExportCSV(clients []Client) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{"ID", "Name", "Email", "Company", "Phone", "Status", "Total Projects", "Total Revenue", "Joined Date"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}
	for _, c := range clients {
		row := []string{
			c.ID,
			c.Name,
			c.Email,
			c.Company,
			c.Phone,
			string(c.Status),
			strconv.Itoa(c.TotalProjects),
			strconv.FormatFloat(c.TotalRevenue, 'f', -1, 64),
			c.JoinedDate,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing csv: %w", err)
	}
	return sb.String(), nil
}

func (m *Manager) load(ctx context.Context) ([]Client, error) {
	var clients []Client
	err := m.store.Load(ctx, StorageKey, &clients)
	if errors.Is(err, store.ErrNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading clients: %w", err)
	}
	seen := make(map[string]struct{}, len(clients))
	for i := range clients {
		if err := clients[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[clients[i].ID]; dup {
			return nil, fmt.Errorf("duplicate client id %s: %w", clients[i].ID, ErrInvalidRecord)
		}
		seen[clients[i].ID] = struct{}{}
	}
	return clients, nil
}

func (m *Manager) persist(ctx context.Context, clients []Client) error {
	if err := m.store.Save(ctx, StorageKey, clients); err != nil {
		return fmt.Errorf("saving clients: %w", err)
	}
	return nil
}
