package project

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/farvue/cms/internal/domain/client"
	"github.com/farvue/cms/internal/store"
)

// Manager is the CRUD facade over the project list.
type Manager struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewManager creates a project manager.
func NewManager(st store.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{store: st, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// AddRequest describes a new project. ID is optional; a UUID is assigned
// when empty. Status defaults to not-started and Priority to medium.
type AddRequest struct {
	ID             string
	Title          string
	Description    string
	Client         client.Client
	AssignedTeam   []StaffUser
	ServiceType    ServiceType
	Status         Status
	Priority       Priority
	Budget         float64
	EstimatedHours float64
	StartDate      string
	DueDate        string
	Tags           []string
	ClientNotes    string
	InternalNotes  string
	CreatedBy      string
}

// UpdateRequest carries partial updates; nil fields are left unchanged.
// Status is deliberately absent: status moves go through SetStatus so the
// progress conveniences fire.
type UpdateRequest struct {
	Title          *string
	Description    *string
	Client         *client.Client
	AssignedTeam   []StaffUser
	ServiceType    *ServiceType
	Priority       *Priority
	Budget         *float64
	EstimatedHours *float64
	ActualHours    *float64
	StartDate      *string
	DueDate        *string
	Progress       *int
	Tags           []string
	ClientNotes    *string
	InternalNotes  *string
}

// RevisionRequest describes a new revision round appended to a project.
type RevisionRequest struct {
	Description  string
	ClientNotes  string
	CreatedBy    string
	Deliverables []Deliverable
}

// List returns all projects in stored order.
func (m *Manager) List(ctx context.Context) ([]Project, error) {
	return m.load(ctx)
}

// Filtered runs the listing pipeline over the stored projects.
func (m *Manager) Filtered(ctx context.Context, term string, f Filter, key SortKey, dir SortDirection) ([]Project, error) {
	projects, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(projects, term, f, key, dir), nil
}

// Get fetches a project by ID.
func (m *Manager) Get(ctx context.Context, id string) (*Project, error) {
	projects, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a new project.
func (m *Manager) Add(ctx context.Context, req AddRequest) (*Project, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}
	status := req.Status
	if status == "" {
		status = StatusNotStarted
	}
	if !status.Valid() {
		return nil, fmt.Errorf("status %q: %w", status, ErrInvalidStatus)
	}
	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("priority %q: %w", priority, ErrInvalidInput)
	}

	projects, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}
	for _, p := range projects {
		if p.ID == id {
			return nil, fmt.Errorf("duplicate project id %s: %w", id, ErrInvalidInput)
		}
	}

	now := m.now()
	p := Project{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		Client:         req.Client,
		AssignedTeam:   req.AssignedTeam,
		ServiceType:    req.ServiceType,
		Status:         status,
		Priority:       priority,
		Budget:         req.Budget,
		EstimatedHours: req.EstimatedHours,
		StartDate:      req.StartDate,
		DueDate:        req.DueDate,
		Tags:           req.Tags,
		ClientNotes:    req.ClientNotes,
		InternalNotes:  req.InternalNotes,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      req.CreatedBy,
	}

	projects = append(projects, p)
	if err := m.persist(ctx, projects); err != nil {
		return nil, err
	}

	m.logger.Info("project added", "id", p.ID, "title", p.Title)
	return &p, nil
}

// Update merges partial fields over an existing project and stamps UpdatedAt.
func (m *Manager) Update(ctx context.Context, id string, req UpdateRequest) (*Project, error) {
	return m.mutate(ctx, id, func(p *Project) error {
		if req.Title != nil {
			p.Title = *req.Title
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Client != nil {
			p.Client = *req.Client
		}
		if req.AssignedTeam != nil {
			p.AssignedTeam = req.AssignedTeam
		}
		if req.ServiceType != nil {
			p.ServiceType = *req.ServiceType
		}
		if req.Priority != nil {
			p.Priority = *req.Priority
		}
		if req.Budget != nil {
			p.Budget = *req.Budget
		}
		if req.EstimatedHours != nil {
			p.EstimatedHours = *req.EstimatedHours
		}
		if req.ActualHours != nil {
			p.ActualHours = *req.ActualHours
		}
		if req.StartDate != nil {
			p.StartDate = *req.StartDate
		}
		if req.DueDate != nil {
			p.DueDate = *req.DueDate
		}
		if req.Progress != nil {
			p.Progress = *req.Progress
		}
		if req.Tags != nil {
			p.Tags = req.Tags
		}
		if req.ClientNotes != nil {
			p.ClientNotes = *req.ClientNotes
		}
		if req.InternalNotes != nil {
			p.InternalNotes = *req.InternalNotes
		}
		return p.Validate()
	})
}

// Delete removes a project and returns the removed record.
func (m *Manager) Delete(ctx context.Context, id string) (*Project, error) {
	projects, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		removed := projects[i]
		projects = append(projects[:i], projects[i+1:]...)
		if err := m.persist(ctx, projects); err != nil {
			return nil, err
		}
		m.logger.Info("project deleted", "id", id)
		return &removed, nil
	}
	return nil, ErrNotFound
}

// SetStatus moves a project to a new status, applying the transition's
// progress conveniences, and stamps UpdatedAt.
func (m *Manager) SetStatus(ctx context.Context, id string, status Status) (*Project, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("status %q: %w", status, ErrInvalidStatus)
	}
	p, err := m.mutate(ctx, id, func(p *Project) error {
		p.SetStatus(status, m.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.logger.Info("project status changed", "id", id, "status", status)
	return p, nil
}

// AddRevision appends a new revision round, numbered one past the highest
// existing version, and stamps UpdatedAt.
func (m *Manager) AddRevision(ctx context.Context, id string, req RevisionRequest) (*Project, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrInvalidInput
	}
	return m.mutate(ctx, id, func(p *Project) error {
		version := 1
		for _, r := range p.Revisions {
			if r.Version >= version {
				version = r.Version + 1
			}
		}
		p.Revisions = append(p.Revisions, Revision{
			ID:           uuid.NewString(),
			Version:      version,
			Description:  req.Description,
			Status:       RevisionPending,
			ClientNotes:  req.ClientNotes,
			CreatedAt:    m.now(),
			CreatedBy:    req.CreatedBy,
			Deliverables: req.Deliverables,
		})
		return nil
	})
}

// AddDeliverable attaches an uploaded asset to a project and stamps
// UpdatedAt. ID and UploadedAt are filled in when empty.
func (m *Manager) AddDeliverable(ctx context.Context, id string, d Deliverable) (*Project, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, ErrInvalidInput
	}
	return m.mutate(ctx, id, func(p *Project) error {
		if strings.TrimSpace(d.ID) == "" {
			d.ID = uuid.NewString()
		}
		if d.UploadedAt.IsZero() {
			d.UploadedAt = m.now()
		}
		p.Deliverables = append(p.Deliverables, d)
		return nil
	})
}

// Overdue returns projects past their due date that are neither completed
// nor cancelled. Projects without a parseable due date are skipped.
func (m *Manager) Overdue(ctx context.Context) ([]Project, error) {
	projects, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	today := m.now()
	overdue := make([]Project, 0)
	for _, p := range projects {
		if isOverdue(p, today) {
			overdue = append(overdue, p)
		}
	}
	return overdue, nil
}

func isOverdue(p Project, now time.Time) bool {
	if p.Status == StatusCompleted || p.Status == StatusCancelled {
		return false
	}
	due := parseDate(p.DueDate)
	return !due.IsZero() && due.Before(now.Truncate(24*time.Hour))
}

// Stats aggregates the project list for the dashboard. Active counts
// everything not completed and not cancelled; revenue sums completed budgets.
func (m *Manager) Stats(ctx context.Context) (Stats, error) {
	projects, err := m.load(ctx)
	if err != nil {
		return Stats{}, err
	}
	today := m.now()
	stats := Stats{TotalProjects: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case StatusCompleted:
			stats.CompletedProjects++
			stats.TotalRevenue += p.Budget
		case StatusCancelled:
		default:
			stats.ActiveProjects++
		}
		if isOverdue(p, today) {
			stats.OverdueProjects++
		}
	}
	return stats, nil
}

// Export serializes all projects to pretty-printed JSON.
func (m *Manager) Export(ctx context.Context) (string, error) {
	projects, err := m.load(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding export: %w", err)
	}
	return string(data), nil
}

// Import replaces all projects with a previously exported JSON array.
// Malformed payloads are rejected without touching stored data.
func (m *Manager) Import(ctx context.Context, payload string) error {
	var projects []Project
	if err := json.Unmarshal([]byte(payload), &projects); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}
	if projects == nil {
		return fmt.Errorf("payload is not a project array: %w", ErrInvalidInput)
	}
	if err := validateAll(projects); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}
	if err := m.persist(ctx, projects); err != nil {
		return err
	}
	m.logger.Info("projects imported", "count", len(projects))
	return nil
}

// ExportCSV renders projects as RFC 4180 CSV with a header row. Fields
// containing commas or quotes are escaped properly.
func ExportCSV(projects []Project) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{"ID", "Title", "Client", "Status", "Priority", "Budget", "Progress", "Start Date", "Due Date", "Assigned Team", "Service Type"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}
	for _, p := range projects {
		names := make([]string, len(p.AssignedTeam))
		for i, member := range p.AssignedTeam {
			names[i] = member.Name
		}
		row := []string{
			p.ID,
			p.Title,
			p.Client.Name,
			string(p.Status),
			string(p.Priority),
			strconv.FormatFloat(p.Budget, 'f', -1, 64),
			strconv.Itoa(p.Progress),
			p.StartDate,
			p.DueDate,
			strings.Join(names, "; "),
			string(p.ServiceType),
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

func (m *Manager) mutate(ctx context.Context, id string, apply func(*Project) error) (*Project, error) {
	projects, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		if err := apply(&projects[i]); err != nil {
			return nil, err
		}
		projects[i].UpdatedAt = m.now()
		if err := m.persist(ctx, projects); err != nil {
			return nil, err
		}
		return &projects[i], nil
	}
	return nil, ErrNotFound
}

func (m *Manager) load(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := m.store.Load(ctx, StorageKey, &projects)
	if errors.Is(err, store.ErrNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	if err := validateAll(projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (m *Manager) persist(ctx context.Context, projects []Project) error {
	if err := m.store.Save(ctx, StorageKey, projects); err != nil {
		return fmt.Errorf("saving projects: %w", err)
	}
	return nil
}

func validateAll(projects []Project) error {
	seen := make(map[string]struct{}, len(projects))
	for i := range projects {
		if err := projects[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[projects[i].ID]; dup {
			return fmt.Errorf("duplicate project id %s: %w", projects[i].ID, ErrInvalidRecord)
		}
		seen[projects[i].ID] = struct{}{}
	}
	return nil
}
